package dynamic

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/dislike"
	"github.com/jmylchreest/tonal/internal/colour/hct"
	"github.com/jmylchreest/tonal/internal/colour/palette"
	"github.com/jmylchreest/tonal/internal/colour/temperature"
)

// Hue breakpoints and per-segment rotations for the secondary and tertiary
// palettes of the vibrant and expressive variants.
var (
	vibrantHues               = []float64{0, 41, 61, 101, 131, 181, 251, 301, 360}
	vibrantSecondaryRotations = []float64{18, 15, 10, 12, 15, 18, 15, 12, 12}
	vibrantTertiaryRotations  = []float64{35, 30, 20, 25, 30, 35, 30, 25, 25}

	expressiveHues               = []float64{0, 21, 51, 121, 151, 191, 271, 321, 360}
	expressiveSecondaryRotations = []float64{45, 95, 45, 20, 45, 90, 45, 45, 45}
	expressiveTertiaryRotations  = []float64{120, 120, 20, 45, 20, 15, 20, 120, 120}
)

// CorePalettes derives the six core palettes for source under variant v.
// The error palette is the same for every variant.
func CorePalettes(source hct.HCT, v Variant) palette.Core {
	h, c := source.Hue(), source.Chroma()
	of := palette.FromHueAndChroma

	core := palette.Core{Error: palette.DefaultError()}
	switch v {
	case Monochrome:
		core.Primary, core.Secondary, core.Tertiary = of(h, 0), of(h, 0), of(h, 0)
		core.Neutral, core.NeutralVariant = of(h, 0), of(h, 0)
	case Neutral:
		core.Primary, core.Secondary, core.Tertiary = of(h, 12), of(h, 8), of(h, 16)
		core.Neutral, core.NeutralVariant = of(h, 2), of(h, 2)
	case Vibrant:
		core.Primary = of(h, 200)
		core.Secondary = of(rotatedHue(h, vibrantHues, vibrantSecondaryRotations), 24)
		core.Tertiary = of(rotatedHue(h, vibrantHues, vibrantTertiaryRotations), 32)
		core.Neutral, core.NeutralVariant = of(h, 10), of(h, 12)
	case Expressive:
		core.Primary = of(colour.SanitizeDegrees(h+240), 40)
		core.Secondary = of(rotatedHue(h, expressiveHues, expressiveSecondaryRotations), 24)
		core.Tertiary = of(rotatedHue(h, expressiveHues, expressiveTertiaryRotations), 32)
		core.Neutral = of(colour.SanitizeDegrees(h+15), 8)
		core.NeutralVariant = of(colour.SanitizeDegrees(h+15), 12)
	case Fidelity, Content:
		core.Primary = of(h, c)
		core.Secondary = of(h, math.Max(c-32, c*0.5))
		temps := temperature.New(source)
		var tertiary hct.HCT
		if v == Fidelity {
			tertiary = temps.Complement()
		} else {
			tertiary = temps.Analogous(3, 6)[2]
		}
		core.Tertiary = palette.FromHCT(dislike.FixIfDisliked(tertiary))
		core.Neutral, core.NeutralVariant = of(h, c/8), of(h, c/8+4)
	case Rainbow:
		core.Primary, core.Secondary = of(h, 48), of(h, 16)
		core.Tertiary = of(colour.SanitizeDegrees(h+60), 24)
		core.Neutral, core.NeutralVariant = of(h, 0), of(h, 0)
	case FruitSalad:
		core.Primary = of(colour.SanitizeDegrees(h-50), 48)
		core.Secondary = of(colour.SanitizeDegrees(h-50), 36)
		core.Tertiary = of(h, 36)
		core.Neutral, core.NeutralVariant = of(h, 10), of(h, 16)
	default:
		core.Primary, core.Secondary = of(h, 36), of(h, 16)
		core.Tertiary = of(colour.SanitizeDegrees(h+60), 24)
		core.Neutral, core.NeutralVariant = of(h, 6), of(h, 8)
	}
	return core
}

// rotatedHue rotates hue by the rotation of the segment of hues it falls
// strictly inside. A single rotation applies everywhere. Hues on a
// breakpoint are returned unchanged.
func rotatedHue(hue float64, hues, rotations []float64) float64 {
	if len(rotations) == 1 {
		return colour.SanitizeDegrees(hue + rotations[0])
	}
	for i := 0; i+1 < len(hues); i++ {
		if hues[i] < hue && hue < hues[i+1] {
			return colour.SanitizeDegrees(hue + rotations[i])
		}
	}
	return hue
}
