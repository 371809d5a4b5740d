package hct

import (
	"fmt"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/cam16"
)

// HCT is a colour expressed as CAM16 hue and chroma with L* tone.
// Hue, chroma and tone always describe the stored sRGB colour, so they can
// differ from the values requested when the request was out of gamut.
type HCT struct {
	hue    float64
	chroma float64
	tone   float64
	argb   colour.ARGB
	solver *Solver
}

// New returns the HCT colour closest to the requested hue, chroma and tone
// under the standard viewing conditions.
func New(hue, chroma, tone float64) HCT {
	return DefaultSolver().HCT(hue, chroma, tone)
}

// FromARGB returns the HCT representation of c.
func FromARGB(c colour.ARGB) HCT {
	return DefaultSolver().FromARGB(c)
}

// HCT solves for the requested coordinates under the solver's conditions.
func (s *Solver) HCT(hue, chroma, tone float64) HCT {
	return s.FromARGB(s.Solve(hue, chroma, tone))
}

// FromARGB returns the HCT representation of c under the solver's conditions.
func (s *Solver) FromARGB(c colour.ARGB) HCT {
	cam := cam16.FromARGBIn(c, s.vc)
	return HCT{
		hue:    cam.Hue,
		chroma: cam.Chroma,
		tone:   c.LStar(),
		argb:   c,
		solver: s,
	}
}

// Hue returns the hue in degrees, [0, 360).
func (h HCT) Hue() float64 { return h.hue }

// Chroma returns the chroma.
func (h HCT) Chroma() float64 { return h.chroma }

// Tone returns the tone (L*), [0, 100].
func (h HCT) Tone() float64 { return h.tone }

// ARGB returns the sRGB colour.
func (h HCT) ARGB() colour.ARGB { return h.argb }

// String returns a readable form of the coordinates.
func (h HCT) String() string {
	return fmt.Sprintf("HCT(%.2f, %.2f, %.2f) %s", h.hue, h.chroma, h.tone, h.argb.Hex())
}

func (h HCT) solverOrDefault() *Solver {
	if h.solver == nil {
		return DefaultSolver()
	}
	return h.solver
}

// WithHue returns the colour re-solved at a new hue, keeping chroma and tone.
func (h HCT) WithHue(hue float64) HCT {
	return h.solverOrDefault().HCT(hue, h.chroma, h.tone)
}

// WithChroma returns the colour re-solved at a new chroma, keeping hue and tone.
func (h HCT) WithChroma(chroma float64) HCT {
	return h.solverOrDefault().HCT(h.hue, chroma, h.tone)
}

// WithTone returns the colour re-solved at a new tone, keeping hue and chroma.
func (h HCT) WithTone(tone float64) HCT {
	return h.solverOrDefault().HCT(h.hue, h.chroma, tone)
}

// InViewingConditions returns the colour that, seen under the standard
// conditions, looks the way h looks under vc.
func (h HCT) InViewingConditions(vc cam16.ViewingConditions) HCT {
	cam := cam16.FromARGB(h.argb)
	viewed := cam.XYZIn(vc)
	recast := cam16.FromXYZIn(viewed[0], viewed[1], viewed[2], cam16.Default())
	return New(recast.Hue, recast.Chroma, colour.LStarFromY(viewed[1]))
}
