package palette

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/cam16"
)

// Role names one of the core palette groups.
type Role int

// Core palette roles.
const (
	Primary Role = iota
	Secondary
	Tertiary
	Neutral
	NeutralVariant
	Error
)

var roleNames = [...]string{"primary", "secondary", "tertiary", "neutral", "neutral_variant", "error"}

// Roles lists every core palette role in declaration order.
var Roles = []Role{Primary, Secondary, Tertiary, Neutral, NeutralVariant, Error}

// String returns the snake_case role name.
func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "unknown"
	}
	return roleNames[r]
}

// Core is the set of tonal palettes a theme is built from.
type Core struct {
	Primary        *TonalPalette
	Secondary      *TonalPalette
	Tertiary       *TonalPalette
	Neutral        *TonalPalette
	NeutralVariant *TonalPalette
	Error          *TonalPalette
}

// DefaultError is the palette used for error roles.
func DefaultError() *TonalPalette {
	return FromHueAndChroma(25, 84)
}

// CoreOf derives the core palettes from a source colour, keeping the
// primary palette chromatic even for muted sources.
func CoreOf(source colour.ARGB) Core {
	cam := cam16.FromARGB(source)
	h, c := cam.Hue, cam.Chroma
	return Core{
		Primary:        FromHueAndChroma(h, math.Max(48, c)),
		Secondary:      FromHueAndChroma(h, 16),
		Tertiary:       FromHueAndChroma(h+60, 24),
		Neutral:        FromHueAndChroma(h, 4),
		NeutralVariant: FromHueAndChroma(h, 8),
		Error:          DefaultError(),
	}
}

// ContentOf derives core palettes that stay faithful to the source chroma.
func ContentOf(source colour.ARGB) Core {
	cam := cam16.FromARGB(source)
	h, c := cam.Hue, cam.Chroma
	return Core{
		Primary:        FromHueAndChroma(h, c),
		Secondary:      FromHueAndChroma(h, c/3),
		Tertiary:       FromHueAndChroma(h+60, c/2),
		Neutral:        FromHueAndChroma(h, math.Min(c/12, 4)),
		NeutralVariant: FromHueAndChroma(h, math.Min(c/6, 8)),
		Error:          DefaultError(),
	}
}

// Get returns the palette for a role.
func (c Core) Get(r Role) *TonalPalette {
	switch r {
	case Primary:
		return c.Primary
	case Secondary:
		return c.Secondary
	case Tertiary:
		return c.Tertiary
	case Neutral:
		return c.Neutral
	case NeutralVariant:
		return c.NeutralVariant
	case Error:
		return c.Error
	}
	return nil
}
