package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/dynamic"
	"github.com/jmylchreest/tonal/internal/colour/palette"
)

// ErrUnsupportedFormat is returned by Encode for an unknown format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format is a serialisation format for documents.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q (supported: json, yaml)", ErrUnsupportedFormat, s)
}

// PaletteDocument is the serialised form of a tonal palette.
type PaletteDocument struct {
	Hue      float64             `json:"hue" yaml:"hue"`
	Chroma   float64             `json:"chroma" yaml:"chroma"`
	KeyColor colour.ARGB         `json:"key_color" yaml:"key_color"`
	Tones    map[int]colour.ARGB `json:"tones" yaml:"tones"`
}

// NewPaletteDocument samples p at the common tones.
func NewPaletteDocument(p *palette.TonalPalette) PaletteDocument {
	return PaletteDocument{
		Hue:      p.Hue(),
		Chroma:   p.Chroma(),
		KeyColor: p.KeyColor().ARGB(),
		Tones:    p.Tones(),
	}
}

// PalettesDocument maps core palette names to their documents.
func PalettesDocument(core palette.Core) map[string]PaletteDocument {
	out := make(map[string]PaletteDocument, len(palette.Roles))
	for _, r := range palette.Roles {
		out[r.String()] = NewPaletteDocument(core.Get(r))
	}
	return out
}

// SchemeDocument maps role names to colours.
func SchemeDocument(s *dynamic.Scheme) map[string]colour.ARGB {
	colors := s.Colors()
	out := make(map[string]colour.ARGB, len(colors))
	for _, rc := range colors {
		out[rc.Role.String()] = rc.Color
	}
	return out
}

// Document is the serialised form of a Theme.
type Document struct {
	Source       colour.ARGB                     `json:"source" yaml:"source"`
	Variant      dynamic.Variant                 `json:"variant" yaml:"variant"`
	Contrast     float64                         `json:"contrast" yaml:"contrast"`
	Schemes      map[Mode]map[string]colour.ARGB `json:"schemes" yaml:"schemes"`
	Palettes     map[string]PaletteDocument      `json:"palettes" yaml:"palettes"`
	CustomColors []CustomColorGroup              `json:"custom_colors,omitempty" yaml:"custom_colors,omitempty"`
	Terminal     map[Mode]map[string]colour.ARGB `json:"terminal" yaml:"terminal"`
}

// Document returns the serialisable form of t.
func (t *Theme) Document() Document {
	doc := Document{
		Source:       t.Source,
		Variant:      t.Variant,
		Contrast:     t.Contrast,
		Schemes:      map[Mode]map[string]colour.ARGB{},
		Palettes:     PalettesDocument(t.Palettes),
		CustomColors: t.CustomColors,
		Terminal:     map[Mode]map[string]colour.ARGB{},
	}
	names := ANSINames()
	for _, m := range []Mode{ModeLight, ModeDark} {
		doc.Schemes[m] = SchemeDocument(t.Scheme(m))
		ansi := make(map[string]colour.ARGB, len(names))
		for i, name := range names {
			ansi[name] = t.Terminal[m][i]
		}
		doc.Terminal[m] = ansi
	}
	return doc
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}
