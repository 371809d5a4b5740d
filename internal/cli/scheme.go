package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour/dynamic"
	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/theme"
)

type schemeOptions struct {
	source   string
	variant  dynamic.Variant
	contrast float64
	dark     bool
	format   string
	output   string
	terminal bool
}

func newSchemeCmd(a *app) *cobra.Command {
	var opts schemeOptions

	cmd := &cobra.Command{
		Use:   "scheme [image|dir|url]",
		Short: "Generate a colour scheme",
		Long: `Generate a light or dark colour scheme from a source colour or image.

Every scheme role is printed with its colour and tone. The json and yaml
formats include both light and dark schemes, the core tonal palettes,
custom colours from the config file and a 16 colour terminal palette.

Variants: ` + strings.Join(dynamic.VariantNames(), ", ") + `

Examples:
  # Light tonal-spot scheme from a colour
  tonal scheme --source "#4285f4"

  # Dark vibrant scheme from a wallpaper
  tonal scheme --dark --variant vibrant wallpaper.jpg

  # High contrast scheme as YAML
  tonal scheme -s "#6750a4" --contrast 1 -f yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheme(cmd, a, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "source colour as hex")
	cmd.Flags().Var(&opts.variant, "variant", "scheme variant ("+strings.Join(dynamic.VariantNames(), ", ")+")")
	cmd.Flags().Float64Var(&opts.contrast, "contrast", 0, "contrast level from -1 (reduced) to 1 (high)")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "print the dark scheme")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "hex", "output format (hex, rgb, json, yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.terminal, "terminal", false, "also print the 16 colour terminal palette")

	return cmd
}

func runScheme(cmd *cobra.Command, a *app, opts schemeOptions, args []string) error {
	cfg := a.cfg
	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Variant = opts.variant.String()
	}
	if flags.Changed("contrast") {
		cfg.Contrast = opts.contrast
	}
	if flags.Changed("dark") {
		cfg.Dark = opts.dark
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	t, err := buildTheme(cmd, a, cfg, opts.source, args)
	if err != nil {
		return err
	}

	mode := theme.ModeLight
	if cfg.Dark {
		mode = theme.ModeDark
	}

	return withOutput(cmd.OutOrStdout(), opts.output, func(w io.Writer) error {
		if isDocumentFormat(cfg.Format) {
			return encode(w, t.Document(), cfg.Format)
		}
		return writeScheme(w, t, mode, cfg.Format, opts.terminal)
	})
}

func buildTheme(cmd *cobra.Command, a *app, cfg config.Config, hex string, args []string) (*theme.Theme, error) {
	source, err := resolveSource(cmd, a, cfg, hex, args)
	if err != nil {
		return nil, err
	}
	return theme.NewBuilder(source).
		WithVariant(cfg.ParsedVariant()).
		WithContrast(cfg.Contrast).
		WithCustomColors(cfg.CustomColors...).
		WithLogger(a.logger).
		Build(), nil
}

func writeScheme(w io.Writer, t *theme.Theme, mode theme.Mode, format string, terminal bool) error {
	p := previewerFor(w)
	swatches := isTerminal(w)

	var b strings.Builder
	fmt.Fprintf(&b, "Source:   %s\nVariant:  %s\nContrast: %.1f\nMode:     %s\n\n",
		formatColour(t.Source, format), t.Variant, t.Contrast, mode)

	headers := []string{"Role", "Color", "Tone"}
	if swatches {
		headers = append(headers, "Swatch")
	}
	table := NewTable(headers)
	for _, rc := range t.Scheme(mode).Colors() {
		row := []string{rc.Role.String(), formatColour(rc.Color, format), fmt.Sprintf("%.1f", rc.Tone)}
		if swatches {
			row = append(row, p.Swatch(rc.Color, 6))
		}
		table.AddRow(row)
	}
	b.WriteString(table.Render())

	if len(t.CustomColors) > 0 {
		custom := NewTable([]string{"Custom", "Color", "On Color", "Container", "On Container"})
		for _, cc := range t.CustomColors {
			g := cc.Group(mode)
			custom.AddRow([]string{
				cc.Color.Name,
				formatColour(g.Color, format),
				formatColour(g.OnColor, format),
				formatColour(g.ColorContainer, format),
				formatColour(g.OnColorContainer, format),
			})
		}
		b.WriteString("\n")
		b.WriteString(custom.Render())
	}

	if terminal {
		ansi := t.Terminal[mode]
		names := theme.ANSINames()
		ansiHeaders := []string{"Index", "Name", "Color"}
		if swatches {
			ansiHeaders = append(ansiHeaders, "Swatch")
		}
		ansiTable := NewTable(ansiHeaders)
		for i, c := range ansi {
			row := []string{fmt.Sprint(i), names[i], formatColour(c, format)}
			if swatches {
				row = append(row, p.Swatch(c, 6))
			}
			ansiTable.AddRow(row)
		}
		b.WriteString("\n")
		b.WriteString(ansiTable.Render())
	}

	_, err := io.WriteString(w, b.String())
	return err
}
