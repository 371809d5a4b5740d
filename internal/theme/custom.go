package theme

import (
	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/blend"
	"github.com/jmylchreest/tonal/internal/colour/palette"
)

// CustomColor is an extra brand or status colour to carry into a theme.
type CustomColor struct {
	Name  string      `json:"name" yaml:"name" toml:"name"`
	Value colour.ARGB `json:"value" yaml:"value" toml:"value"`
	// Blend rotates the hue towards the theme source so the colour sits
	// comfortably beside the generated roles.
	Blend bool `json:"blend" yaml:"blend" toml:"blend"`
}

// ColorGroup is a colour with its container and the foregrounds for both.
type ColorGroup struct {
	Color            colour.ARGB `json:"color" yaml:"color"`
	OnColor          colour.ARGB `json:"on_color" yaml:"on_color"`
	ColorContainer   colour.ARGB `json:"color_container" yaml:"color_container"`
	OnColorContainer colour.ARGB `json:"on_color_container" yaml:"on_color_container"`
}

// CustomColorGroup is a custom colour resolved for both modes.
type CustomColorGroup struct {
	Color CustomColor `json:"color" yaml:"color"`
	// Value is the colour the groups are built from, after blending.
	Value colour.ARGB `json:"value" yaml:"value"`
	Light ColorGroup  `json:"light" yaml:"light"`
	Dark  ColorGroup  `json:"dark" yaml:"dark"`
}

// NewCustomColorGroup resolves c against the theme source.
func NewCustomColorGroup(source colour.ARGB, c CustomColor) CustomColorGroup {
	value := c.Value
	if c.Blend {
		value = blend.Harmonize(value, source)
	}
	tones := palette.CoreOf(value).Primary
	return CustomColorGroup{
		Color: c,
		Value: value,
		Light: ColorGroup{
			Color:            tones.Tone(40),
			OnColor:          tones.Tone(100),
			ColorContainer:   tones.Tone(90),
			OnColorContainer: tones.Tone(10),
		},
		Dark: ColorGroup{
			Color:            tones.Tone(80),
			OnColor:          tones.Tone(20),
			ColorContainer:   tones.Tone(30),
			OnColorContainer: tones.Tone(90),
		},
	}
}

// Group returns the group for m.
func (g CustomColorGroup) Group(m Mode) ColorGroup {
	if m == ModeDark {
		return g.Dark
	}
	return g.Light
}
