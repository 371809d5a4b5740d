package palette

import (
	"github.com/jmylchreest/tonal/internal/colour/hct"
)

const (
	keyColorMaxChroma = 200.0
	keyColorPivotTone = 50
	keyColorEpsilon   = 0.01
)

// KeyColor returns the colour of the given hue that reaches the requested
// chroma at the tone closest to 50. When no tone reaches the chroma, the
// tone with the most chroma available is used.
func KeyColor(hue, chroma float64) hct.HCT {
	maxChroma := make(map[int]float64)
	chromaAt := func(tone int) float64 {
		if c, ok := maxChroma[tone]; ok {
			return c
		}
		c := hct.New(hue, keyColorMaxChroma, float64(tone)).Chroma()
		maxChroma[tone] = c
		return c
	}

	lower, upper := 0, 100
	for lower < upper {
		mid := (lower + upper) / 2
		ascending := chromaAt(mid) < chromaAt(mid+1)
		sufficient := chromaAt(mid) >= chroma-keyColorEpsilon

		switch {
		case sufficient:
			// Both halves may hold an answer; search the one nearer the pivot.
			if abs(lower-keyColorPivotTone) < abs(upper-keyColorPivotTone) {
				upper = mid
			} else if lower == mid {
				return hct.New(hue, chroma, float64(lower))
			} else {
				lower = mid
			}
		case ascending:
			lower = mid + 1
		default:
			upper = mid
		}
	}
	return hct.New(hue, chroma, float64(lower))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
