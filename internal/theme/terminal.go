package theme

import (
	"strconv"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/blend"
	"github.com/jmylchreest/tonal/internal/colour/dynamic"
	"github.com/jmylchreest/tonal/internal/colour/hct"
	"github.com/jmylchreest/tonal/internal/colour/palette"
)

// ANSI holds the 16 terminal colours, normal 0-7 then bright 8-15.
type ANSI [16]colour.ARGB

// ansiColor is one of the eight base terminal colours. Chromatic entries
// carry the conventional xterm value whose hue is harmonised with the
// theme; black and white come from the neutral palette.
type ansiColor struct {
	name    string
	base    colour.ARGB
	aliases []string
}

var ansiColors = [8]ansiColor{
	{name: "black", aliases: []string{"color0"}},
	{name: "red", base: 0xFFCD3131, aliases: []string{"color1"}},
	{name: "green", base: 0xFF0DBC79, aliases: []string{"color2"}},
	{name: "yellow", base: 0xFFE5E510, aliases: []string{"color3"}},
	{name: "blue", base: 0xFF2472C8, aliases: []string{"color4"}},
	{name: "magenta", base: 0xFFBC3FBC, aliases: []string{"color5", "purple"}},
	{name: "cyan", base: 0xFF11A8CD, aliases: []string{"color6"}},
	{name: "white", aliases: []string{"color7", "gray", "grey"}},
}

// Neutral tones for black, bright black, white and bright white.
var ansiNeutralTones = [4]int{10, 40, 80, 95}

// minANSIChroma keeps harmonised terminal colours recognisable.
const minANSIChroma = 36.0

// Terminal derives a 16 colour terminal palette for s. Chromatic colours
// keep their conventional hue, nudged towards the source, at tones that
// read on the scheme's surface.
func Terminal(s *dynamic.Scheme) ANSI {
	var out ANSI
	source := s.Source().ARGB()
	neutral := s.Palettes().Neutral

	normalTone, brightTone := 40, 50
	if s.IsDark() {
		normalTone, brightTone = 70, 80
	}

	for i, c := range ansiColors {
		switch c.name {
		case "black":
			out[i], out[i+8] = neutral.Tone(ansiNeutralTones[0]), neutral.Tone(ansiNeutralTones[1])
		case "white":
			out[i], out[i+8] = neutral.Tone(ansiNeutralTones[2]), neutral.Tone(ansiNeutralTones[3])
		default:
			h := hct.FromARGB(blend.Harmonize(c.base, source))
			p := palette.FromHueAndChroma(h.Hue(), max(h.Chroma(), minANSIChroma))
			out[i], out[i+8] = p.Tone(normalTone), p.Tone(brightTone)
		}
	}
	return out
}

// ANSINames returns the canonical names of the 16 colours in index order.
func ANSINames() []string {
	names := make([]string, 0, 16)
	for _, c := range ansiColors {
		names = append(names, c.name)
	}
	for _, c := range ansiColors {
		names = append(names, "bright"+c.name)
	}
	return names
}

// ParseANSI returns the index of a terminal colour name such as "red",
// "brightBlue", "bright-black" or "color12". Case, spaces and hyphens are
// ignored.
func ParseANSI(name string) (int, bool) {
	norm := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name))
	for i, c := range ansiColors {
		if norm == c.name {
			return i, true
		}
		if norm == "bright"+c.name {
			return i + 8, true
		}
		for _, alias := range c.aliases {
			if norm == alias {
				return i, true
			}
			if norm == "bright"+alias {
				return i + 8, true
			}
		}
	}
	// Bright colours are also addressed by number.
	for i := 8; i < 16; i++ {
		if norm == "color"+strconv.Itoa(i) {
			return i, true
		}
	}
	return 0, false
}

// Get returns the colour named name.
func (a ANSI) Get(name string) (colour.ARGB, bool) {
	i, ok := ParseANSI(name)
	if !ok {
		return 0, false
	}
	return a[i], true
}
