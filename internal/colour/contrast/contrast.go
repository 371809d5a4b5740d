// Package contrast computes WCAG contrast ratios between tones and finds
// tones that reach a requested ratio.
package contrast

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
)

// Common ratio targets.
const (
	RatioMin = 1.0
	RatioMax = 21.0
	Ratio30  = 3.0
	Ratio45  = 4.5
	Ratio70  = 7.0
)

// Returned results are nudged past the computed tone by this much to
// absorb rounding in L* to Y conversions.
const luminanceGamutMapTolerance = 0.4

// RatioOfYs returns the contrast ratio between two relative luminances in [0, 100].
func RatioOfYs(y1, y2 float64) float64 {
	lighter := math.Max(y1, y2)
	darker := math.Min(y1, y2)
	return (lighter + 5) / (darker + 5)
}

// RatioOfTones returns the contrast ratio between two tones. Tones are
// clamped to [0, 100].
func RatioOfTones(t1, t2 float64) float64 {
	t1 = colour.Clamp(0, 100, t1)
	t2 = colour.Clamp(0, 100, t2)
	return RatioOfYs(colour.YFromLStar(t1), colour.YFromLStar(t2))
}

// Lighter returns a tone >= tone whose contrast with tone is at least
// ratio, or -1 if no such tone exists or tone is outside [0, 100].
func Lighter(tone, ratio float64) float64 {
	if tone < 0 || tone > 100 {
		return -1
	}
	darkY := colour.YFromLStar(tone)
	lightY := ratio*(darkY+5) - 5
	if lightY < 0 || lightY > 100 {
		return -1
	}
	realContrast := RatioOfYs(lightY, darkY)
	delta := math.Abs(realContrast - ratio)
	if realContrast < ratio && delta > 0.04 {
		return -1
	}
	value := colour.LStarFromY(lightY) + luminanceGamutMapTolerance
	if value < 0 || value > 100 {
		return -1
	}
	return value
}

// Darker returns a tone <= tone whose contrast with tone is at least
// ratio, or -1 if no such tone exists or tone is outside [0, 100].
func Darker(tone, ratio float64) float64 {
	if tone < 0 || tone > 100 {
		return -1
	}
	lightY := colour.YFromLStar(tone)
	darkY := (lightY+5)/ratio - 5
	if darkY < 0 || darkY > 100 {
		return -1
	}
	realContrast := RatioOfYs(lightY, darkY)
	delta := math.Abs(realContrast - ratio)
	if realContrast < ratio && delta > 0.04 {
		return -1
	}
	value := colour.LStarFromY(darkY) - luminanceGamutMapTolerance
	if value < 0 || value > 100 {
		return -1
	}
	return value
}

// LighterUnsafe is Lighter, returning 100 when the ratio cannot be reached.
func LighterUnsafe(tone, ratio float64) float64 {
	if v := Lighter(tone, ratio); v >= 0 {
		return v
	}
	return 100
}

// DarkerUnsafe is Darker, returning 0 when the ratio cannot be reached.
func DarkerUnsafe(tone, ratio float64) float64 {
	if v := Darker(tone, ratio); v >= 0 {
		return v
	}
	return 0
}
