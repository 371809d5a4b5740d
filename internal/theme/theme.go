// Package theme builds complete colour themes: light and dark schemes, the
// core palettes behind them, harmonised custom colours and a terminal
// palette, all from one source colour.
package theme

import (
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/dynamic"
	"github.com/jmylchreest/tonal/internal/colour/hct"
	"github.com/jmylchreest/tonal/internal/colour/palette"
	"github.com/jmylchreest/tonal/internal/colour/quantize"
	"github.com/jmylchreest/tonal/internal/colour/score"
)

// ImageMaxColors is how many colours an image is quantized to before
// scoring picks a source colour.
const ImageMaxColors = 128

// Theme is a resolved theme. All fields are read-only once built.
type Theme struct {
	Source   colour.ARGB
	Variant  dynamic.Variant
	Contrast float64
	Palettes palette.Core
	Light    *dynamic.Scheme
	Dark     *dynamic.Scheme

	CustomColors []CustomColorGroup
	Terminal     map[Mode]ANSI
}

// Mode is light or dark.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Scheme returns the scheme for m.
func (t *Theme) Scheme(m Mode) *dynamic.Scheme {
	if m == ModeDark {
		return t.Dark
	}
	return t.Light
}

// Builder assembles a Theme.
type Builder struct {
	source   colour.ARGB
	variant  dynamic.Variant
	contrast float64
	custom   []CustomColor
	logger   hclog.Logger
}

// NewBuilder starts a theme for source with the tonal spot variant at
// standard contrast.
func NewBuilder(source colour.ARGB) *Builder {
	return &Builder{source: source, logger: hclog.NewNullLogger()}
}

// WithVariant sets the scheme variant.
func (b *Builder) WithVariant(v dynamic.Variant) *Builder {
	b.variant = v
	return b
}

// WithContrast sets the contrast level; it is clamped to [-1, 1].
func (b *Builder) WithContrast(level float64) *Builder {
	b.contrast = colour.Clamp(-1, 1, level)
	return b
}

// WithCustomColors adds colours that get their own colour groups.
func (b *Builder) WithCustomColors(colors ...CustomColor) *Builder {
	b.custom = append(b.custom, colors...)
	return b
}

// WithLogger sets the logger used for debug output.
func (b *Builder) WithLogger(l hclog.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// Build resolves the light and dark schemes concurrently and derives the
// remaining colour groups from them.
func (b *Builder) Build() *Theme {
	start := time.Now()
	source := hct.FromARGB(b.source)
	pals := dynamic.CorePalettes(source, b.variant)

	t := &Theme{
		Source:   b.source,
		Variant:  b.variant,
		Contrast: b.contrast,
		Palettes: pals,
	}

	var g errgroup.Group
	g.Go(func() error {
		t.Light = dynamic.NewScheme(source, dynamic.Options{
			Variant: b.variant, Contrast: b.contrast, Palettes: &pals,
		})
		return nil
	})
	g.Go(func() error {
		t.Dark = dynamic.NewScheme(source, dynamic.Options{
			Variant: b.variant, Dark: true, Contrast: b.contrast, Palettes: &pals,
		})
		return nil
	})
	_ = g.Wait()

	t.CustomColors = make([]CustomColorGroup, 0, len(b.custom))
	for _, c := range b.custom {
		t.CustomColors = append(t.CustomColors, NewCustomColorGroup(b.source, c))
	}
	t.Terminal = map[Mode]ANSI{
		ModeLight: Terminal(t.Light),
		ModeDark:  Terminal(t.Dark),
	}

	b.logger.Debug("theme built",
		"source", b.source.Hex(),
		"variant", b.variant,
		"contrast", b.contrast,
		"custom_colors", len(b.custom),
		"elapsed", time.Since(start))
	return t
}

// SourceColors quantizes pixels and returns the ranked candidate source
// colours. The result is never empty.
func SourceColors(pixels []colour.ARGB, opts score.Options) []colour.ARGB {
	return score.Score(quantize.Quantize(pixels, ImageMaxColors), opts)
}

// SourceColor returns the best source colour for pixels, or the default
// fallback when no pixel is usable.
func SourceColor(pixels []colour.ARGB) colour.ARGB {
	return SourceColors(pixels, score.DefaultOptions())[0]
}
