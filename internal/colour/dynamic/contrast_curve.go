package dynamic

import "github.com/jmylchreest/tonal/internal/colour"

// ContrastCurve gives a value for each of the reference contrast levels
// -1, 0, 0.5 and 1, interpolating linearly between them.
type ContrastCurve struct {
	Low    float64 `json:"low" yaml:"low"`
	Normal float64 `json:"normal" yaml:"normal"`
	Medium float64 `json:"medium" yaml:"medium"`
	High   float64 `json:"high" yaml:"high"`
}

// Get returns the curve value at level; levels outside [-1, 1] are clamped.
func (c ContrastCurve) Get(level float64) float64 {
	switch {
	case level <= -1:
		return c.Low
	case level < 0:
		return colour.Lerp(c.Low, c.Normal, level+1)
	case level < 0.5:
		return colour.Lerp(c.Normal, c.Medium, level/0.5)
	case level < 1:
		return colour.Lerp(c.Medium, c.High, (level-0.5)/0.5)
	default:
		return c.High
	}
}

func flat(v float64) ContrastCurve {
	return ContrastCurve{Low: v, Normal: v, Medium: v, High: v}
}

// TonePolarity says which member of a ToneDeltaPair sits nearer the
// background.
type TonePolarity int

const (
	Darker TonePolarity = iota
	Lighter
	Nearer
	Farther
)

func (p TonePolarity) String() string {
	switch p {
	case Darker:
		return "darker"
	case Lighter:
		return "lighter"
	case Nearer:
		return "nearer"
	case Farther:
		return "farther"
	}
	return "unknown"
}

// ToneDeltaPair requires Subject and Basis to be at least Delta tones apart.
// With Nearer polarity Subject is kept closer to the background; Lighter
// and Darker fix the direction regardless of the background.
type ToneDeltaPair struct {
	Subject  Role
	Basis    Role
	Delta    float64
	Polarity TonePolarity
	// StayTogether moves both roles out of the 50-59 tone band when either
	// of them lands there.
	StayTogether bool
}
