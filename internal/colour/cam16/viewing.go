// Package cam16 implements the CAM16 colour appearance model and the
// viewing conditions it is evaluated under.
package cam16

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
)

// ViewingConditions holds the constants derived from an assumed viewing
// environment. Values are immutable once built; pass them by value.
type ViewingConditions struct {
	N      float64
	Aw     float64
	Nbb    float64
	Ncb    float64
	C      float64
	Nc     float64
	RgbD   [3]float64
	Fl     float64
	FlRoot float64
	Z      float64
}

// Environment describes the inputs used to derive viewing conditions.
type Environment struct {
	// WhitePoint in XYZ with Y normalised to 100.
	WhitePoint [3]float64
	// AdaptingLuminance in lux. Non-positive selects the default of
	// roughly 11.72 (200 lux over pi, scaled to mid-grey).
	AdaptingLuminance float64
	// BackgroundLStar is the L* of the background; values below 0.1 are raised to 0.1.
	BackgroundLStar float64
	// Surround from 0 (dark) to 2 (average).
	Surround float64
	// DiscountingIlluminant assumes full adaptation to the illuminant.
	DiscountingIlluminant bool
}

// DefaultEnvironment returns sRGB-like viewing assumptions: D65 white,
// mid-grey background and average surround.
func DefaultEnvironment() Environment {
	return Environment{
		WhitePoint:        colour.WhitePointD65,
		AdaptingLuminance: -1,
		BackgroundLStar:   50,
		Surround:          2,
	}
}

var defaultConditions = NewViewingConditions(DefaultEnvironment())

// Default returns the standard viewing conditions.
func Default() ViewingConditions {
	return defaultConditions
}

// NewViewingConditions derives viewing conditions from an environment.
func NewViewingConditions(env Environment) ViewingConditions {
	la := env.AdaptingLuminance
	if la <= 0 {
		la = 200 / math.Pi * colour.YFromLStar(50) / 100
	}
	bgLStar := math.Max(0.1, env.BackgroundLStar)
	wp := env.WhitePoint

	rW := wp[0]*0.401288 + wp[1]*0.650173 + wp[2]*-0.051461
	gW := wp[0]*-0.250268 + wp[1]*1.204414 + wp[2]*0.045854
	bW := wp[0]*-0.002079 + wp[1]*0.048952 + wp[2]*0.953127

	f := 0.8 + env.Surround/10
	var c float64
	if f >= 0.9 {
		c = colour.Lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		c = colour.Lerp(0.525, 0.59, (f-0.8)*10)
	}

	d := 1.0
	if !env.DiscountingIlluminant {
		d = f * (1 - (1/3.6)*math.Exp((-la-42)/92))
	}
	d = colour.Clamp(0, 1, d)

	rgbD := [3]float64{
		d*(100/rW) + 1 - d,
		d*(100/gW) + 1 - d,
		d*(100/bW) + 1 - d,
	}

	k := 1 / (5*la + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	fl := k4*la + 0.1*k4F*k4F*math.Cbrt(5*la)

	n := colour.YFromLStar(bgLStar) / wp[1]
	z := 1.48 + math.Sqrt(n)
	nbb := 0.725 / math.Pow(n, 0.2)

	rgbAF := [3]float64{
		math.Pow(fl*rgbD[0]*rW/100, 0.42),
		math.Pow(fl*rgbD[1]*gW/100, 0.42),
		math.Pow(fl*rgbD[2]*bW/100, 0.42),
	}
	rgbA := [3]float64{
		400 * rgbAF[0] / (rgbAF[0] + 27.13),
		400 * rgbAF[1] / (rgbAF[1] + 27.13),
		400 * rgbAF[2] / (rgbAF[2] + 27.13),
	}
	aw := (2*rgbA[0] + rgbA[1] + 0.05*rgbA[2]) * nbb

	return ViewingConditions{
		N:      n,
		Aw:     aw,
		Nbb:    nbb,
		Ncb:    nbb,
		C:      c,
		Nc:     f,
		RgbD:   rgbD,
		Fl:     fl,
		FlRoot: math.Pow(fl, 0.25),
		Z:      z,
	}
}
