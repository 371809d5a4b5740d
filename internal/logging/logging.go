// Package logging builds the hclog loggers used across tonal.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Options configures New.
type Options struct {
	// Name prefixes every line. Defaults to "tonal".
	Name string
	// Level is an hclog level name such as "debug" or "warn". Unknown or
	// empty values fall back to info.
	Level string
	// Verbose forces debug and wins over Quiet.
	Verbose bool
	// Quiet raises the level to error.
	Quiet bool
	// Output defaults to os.Stderr.
	Output io.Writer
	// Color enables ANSI colour when Output is a terminal.
	Color bool
}

// New returns a logger for opts.
func New(opts Options) hclog.Logger {
	if opts.Name == "" {
		opts.Name = "tonal"
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	colorOpt := hclog.ColorOff
	if opts.Color {
		colorOpt = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:            opts.Name,
		Level:           Level(opts),
		Output:          opts.Output,
		Color:           colorOpt,
		DisableTime:     true,
		IncludeLocation: false,
	})
}

// Level resolves the effective level for opts.
func Level(opts Options) hclog.Level {
	switch {
	case opts.Verbose:
		return hclog.Debug
	case opts.Quiet:
		return hclog.Error
	}
	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		return hclog.Info
	}
	return level
}
