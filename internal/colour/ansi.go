package colour

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

const defaultWidth = 8

// Previewer renders colour swatches for a terminal colour profile.
// A profile of termenv.Ascii renders plain padding with no escape codes.
type Previewer struct {
	Profile termenv.Profile
}

// NewPreviewer returns a previewer using the colour profile detected from the environment.
func NewPreviewer() Previewer {
	return Previewer{Profile: termenv.EnvColorProfile()}
}

// Swatch returns a solid block of the given colour, width cells wide.
func (p Previewer) Swatch(c ARGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	block := strings.Repeat(" ", width)
	if p.Profile == termenv.Ascii {
		return block
	}
	return termenv.String(block).Background(p.Profile.Color(c.Hex())).String()
}

// SwatchWithText returns a block of the given colour with centred text overlaid.
// The text is black or white, whichever reads better against the colour.
func (p Previewer) SwatchWithText(c ARGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	if p.Profile == termenv.Ascii {
		return display
	}

	fg := "#ffffff"
	if c.LStar() > 50 {
		fg = "#000000"
	}
	return termenv.String(display).
		Foreground(p.Profile.Color(fg)).
		Background(p.Profile.Color(c.Hex())).
		String()
}

// Line formats a colour with its swatch, a label and its hex code.
func (p Previewer) Line(c ARGB, label string, width int) string {
	if label == "" {
		return fmt.Sprintf("%s %s", p.Swatch(c, width), c.Hex())
	}
	return fmt.Sprintf("%s  %-28s %s", p.Swatch(c, width), label, c.Hex())
}
