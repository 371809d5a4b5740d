// Package dislike detects and corrects the dark yellow-greens that are
// widely perceived as unpleasant.
package dislike

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour/hct"
)

// FixedTone is the tone disliked colours are lifted to.
const FixedTone = 70.0

// IsDisliked reports whether h falls in the bile-coloured region: hue
// 90-111, chroma above 16 and tone below 65, all after rounding.
func IsDisliked(h hct.HCT) bool {
	hue := math.Round(h.Hue())
	return hue >= 90 && hue <= 111 &&
		math.Round(h.Chroma()) > 16 &&
		math.Round(h.Tone()) < 65
}

// FixIfDisliked lightens disliked colours to FixedTone, keeping hue and
// chroma. Other colours are returned unchanged.
func FixIfDisliked(h hct.HCT) hct.HCT {
	if IsDisliked(h) {
		return hct.New(h.Hue(), h.Chroma(), FixedTone)
	}
	return h
}
