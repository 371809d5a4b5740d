// Package blend mixes colours in perceptual spaces.
package blend

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/cam16"
	"github.com/jmylchreest/tonal/internal/colour/hct"
)

// MaxHarmonizeRotation caps how far Harmonize turns a hue, in degrees.
const MaxHarmonizeRotation = 15.0

// Harmonize rotates the hue of design towards source by half their hue
// difference, at most MaxHarmonizeRotation degrees. Chroma and tone are kept.
func Harmonize(design, source colour.ARGB) colour.ARGB {
	from := hct.FromARGB(design)
	to := hct.FromARGB(source)
	rotation := math.Min(colour.DifferenceDegrees(from.Hue(), to.Hue())*0.5, MaxHarmonizeRotation)
	hue := colour.SanitizeDegrees(from.Hue() + rotation*colour.RotationDirection(from.Hue(), to.Hue()))
	return hct.New(hue, from.Chroma(), from.Tone()).ARGB()
}

// HCTHue blends the hue of from towards to by amount (0 keeps from, 1 takes
// the hue of to), keeping the chroma and tone of from.
func HCTHue(from, to colour.ARGB, amount float64) colour.ARGB {
	ucs := cam16.FromARGB(CAM16UCS(from, to, amount))
	start := cam16.FromARGB(from)
	return hct.New(ucs.Hue, start.Chroma, from.LStar()).ARGB()
}

// CAM16UCS interpolates linearly between from and to in CAM16-UCS.
func CAM16UCS(from, to colour.ARGB, amount float64) colour.ARGB {
	a := cam16.FromARGB(from)
	b := cam16.FromARGB(to)
	return cam16.FromUCS(
		a.JStar+(b.JStar-a.JStar)*amount,
		a.AStar+(b.AStar-a.AStar)*amount,
		a.BStar+(b.BStar-a.BStar)*amount,
	).ARGB()
}
