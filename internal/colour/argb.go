// Package colour provides the packed colour value and the colour-space
// conversions shared by the perceptual colour packages.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrParse is returned when a string cannot be parsed as a hex colour.
var ErrParse = errors.New("invalid hex colour")

// ARGB is a packed 32-bit colour with 8 bits each for alpha, red, green and blue.
type ARGB uint32

// FromRGB returns an opaque colour from its red, green and blue components.
func FromRGB(r, g, b uint8) ARGB {
	return ARGB(0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromColor converts any image/color value, un-premultiplying alpha.
func FromColor(c color.Color) ARGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B))
}

// Alpha returns the alpha component.
func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red component.
func (c ARGB) Red() uint8 { return uint8(c >> 16) }

// Green returns the green component.
func (c ARGB) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue component.
func (c ARGB) Blue() uint8 { return uint8(c) }

// IsOpaque reports whether the colour has full alpha.
func (c ARGB) IsOpaque() bool { return c.Alpha() == 0xFF }

// RGBA implements color.Color.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}

// Hex returns the colour as "#rrggbb", dropping alpha.
func (c ARGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// HexWithAlpha returns the colour as "#aarrggbb".
func (c ARGB) HexWithAlpha() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// String returns the colour in "rgb(r, g, b)" form.
func (c ARGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.Red(), c.Green(), c.Blue())
}

// ParseHex parses "#rgb", "#rrggbb" or "#aarrggbb" (the leading '#' is optional).
// Colours without an alpha component are opaque.
func ParseHex(s string) (ARGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
		fallthrough
	case 6:
		h = "ff" + h
	case 8:
	default:
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return ARGB(v), nil
}

// MustParseHex is like ParseHex but panics on error. Intended for constants and tests.
func MustParseHex(s string) ARGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText implements encoding.TextMarshaler.
func (c ARGB) MarshalText() ([]byte, error) {
	if c.IsOpaque() {
		return []byte(c.Hex()), nil
	}
	return []byte(c.HexWithAlpha()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ARGB) UnmarshalText(text []byte) error {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
