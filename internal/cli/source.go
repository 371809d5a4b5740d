package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/config"
)

var errNoSource = errors.New("a source colour (--source) or an image is required")

// resolveSource returns the theme source colour: hex when given, otherwise
// the best colour extracted from the image named by args.
func resolveSource(cmd *cobra.Command, a *app, cfg config.Config, hex string, args []string) (colour.ARGB, error) {
	switch {
	case hex != "" && len(args) > 0:
		return 0, errors.New("use either --source or an image, not both")
	case hex != "":
		c, err := colour.ParseHex(hex)
		if err != nil {
			return 0, fmt.Errorf("invalid source colour: %w", err)
		}
		a.logger.Debug("using source colour", "source", c.Hex())
		return c, nil
	case len(args) == 1:
		ex := cfg.Extraction()
		ex.Score.Desired = 1
		seeds, err := extractSeeds(cmd, a, ex, args[0])
		if err != nil {
			return 0, err
		}
		a.logger.Debug("using extracted source colour", "source", seeds[0].Hex())
		return seeds[0], nil
	}
	return 0, errNoSource
}
