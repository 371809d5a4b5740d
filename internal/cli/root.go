// Package cli provides the command-line interface for tonal.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/internal/logging"
	"github.com/jmylchreest/tonal/internal/version"
)

// app is the state shared by every subcommand of one root command.
type app struct {
	configPath string
	verbose    bool
	quiet      bool

	cfg    config.Config
	logger hclog.Logger
}

// NewRootCmd builds the tonal command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "tonal",
		Short: "Material-style colour schemes from images and colours",
		Long: `Tonal extracts source colours from images and builds tonal palettes and
light and dark colour schemes from them.

Images may be local files, directories (a random image is picked) or
HTTP(S) URLs. Settings are read from the config file, then TONAL_*
environment variables, then flags.`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/tonal/config.yaml)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd(a))
	rootCmd.AddCommand(newSchemeCmd(a))
	rootCmd.AddCommand(newPaletteCmd(a))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// load reads the configuration and sets up logging before any subcommand runs.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	path := a.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.NewBuilder().WithFile(path).WithEnv().Build()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	stderr := cmd.ErrOrStderr()
	a.logger = logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Verbose: a.verbose,
		Quiet:   a.quiet,
		Output:  stderr,
		Color:   isTerminal(stderr),
	})
	if path != "" {
		a.logger.Debug("configuration loaded", "path", path)
	}
	return nil
}

func (a *app) loader() image.Loader {
	return image.NewSmartLoader(&image.URLLoader{CacheDir: a.cfg.CacheDir}, a.logger)
}

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" || format == "text" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return err
			}
			return encode(cmd.OutOrStdout(), version.Get(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, yaml)")
	return cmd
}
