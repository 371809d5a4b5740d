package dynamic

import (
	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/contrast"
	"github.com/jmylchreest/tonal/internal/colour/hct"
	"github.com/jmylchreest/tonal/internal/colour/palette"
)

// Options configures a Scheme.
type Options struct {
	Variant Variant
	Dark    bool
	// Contrast is the contrast level, clamped to [-1, 1]. 0 is standard,
	// 0.5 medium, 1 high and -1 reduced.
	Contrast float64
	// Palettes overrides the palettes derived from the source and variant.
	Palettes *palette.Core
	// Specs overrides the Material role set.
	Specs *SpecSet
}

// RoleColor pairs a role with its resolved colour.
type RoleColor struct {
	Role  Role
	Color colour.ARGB
	Tone  float64
}

// Scheme holds every role resolved for one source colour, variant,
// contrast level and mode. It is immutable and safe for concurrent use.
type Scheme struct {
	source   hct.HCT
	variant  Variant
	dark     bool
	level    float64
	palettes palette.Core
	set      *SpecSet

	tones  [numRoles]float64
	colors [numRoles]colour.ARGB
}

// NewScheme resolves every role of the spec set for source.
func NewScheme(source hct.HCT, opts Options) *Scheme {
	s := &Scheme{
		source:  source,
		variant: opts.Variant,
		dark:    opts.Dark,
		level:   colour.Clamp(-1, 1, opts.Contrast),
		set:     opts.Specs,
	}
	if s.set == nil {
		s.set = Material()
	}
	if opts.Palettes != nil {
		s.palettes = *opts.Palettes
	} else {
		s.palettes = CorePalettes(source, opts.Variant)
	}

	for _, r := range s.set.order {
		sp := s.set.specs[r]
		t := s.resolve(sp)
		s.tones[r] = t
		s.colors[r] = s.palettes.Get(sp.Palette).HCT(t).ARGB()
	}
	return s
}

// Source returns the source colour.
func (s *Scheme) Source() hct.HCT { return s.source }

// Variant returns the variant the scheme was built with.
func (s *Scheme) Variant() Variant { return s.variant }

// IsDark reports whether the scheme is for dark mode.
func (s *Scheme) IsDark() bool { return s.dark }

// ContrastLevel returns the clamped contrast level.
func (s *Scheme) ContrastLevel() float64 { return s.level }

// Palettes returns the core palettes roles draw from.
func (s *Scheme) Palettes() palette.Core { return s.palettes }

// Tone returns the resolved tone of r, or 0 if the spec set lacks r.
func (s *Scheme) Tone(r Role) float64 {
	if !s.set.Has(r) {
		return 0
	}
	return s.tones[r]
}

// Color returns the resolved colour of r, or 0 if the spec set lacks r.
func (s *Scheme) Color(r Role) colour.ARGB {
	if !s.set.Has(r) {
		return 0
	}
	return s.colors[r]
}

// HCT returns the resolved colour of r in HCT.
func (s *Scheme) HCT(r Role) hct.HCT {
	return hct.FromARGB(s.Color(r))
}

// Colors returns every resolved role in declaration order.
func (s *Scheme) Colors() []RoleColor {
	out := make([]RoleColor, 0, numRoles)
	for r := Role(0); r < numRoles; r++ {
		if s.set.Has(r) {
			out = append(out, RoleColor{Role: r, Color: s.colors[r], Tone: s.tones[r]})
		}
	}
	return out
}

func (s *Scheme) resolve(sp *Spec) float64 {
	if sp.Pair != nil {
		return s.resolvePair(sp)
	}

	answer := sp.formula(s.variant).evaluate(s, sp)
	if sp.Background == nil {
		return answer
	}

	bgTone := s.tones[sp.Background.Get(s.dark)]
	desired := sp.Curve.Get(s.level)
	if s.level < 0 || contrast.RatioOfTones(bgTone, answer) < desired {
		answer = ForegroundTone(bgTone, desired)
	}
	if sp.IsBackground && answer >= 50 && answer < 60 {
		if contrast.RatioOfTones(49, bgTone) >= desired {
			answer = 49
		} else {
			answer = 60
		}
	}

	if sp.SecondBackground == nil {
		return answer
	}
	return resolveBetween(answer, bgTone, s.tones[sp.SecondBackground.Get(s.dark)], desired)
}

// resolveBetween adjusts answer to contrast with two backgrounds at once.
func resolveBetween(answer, bg1, bg2, desired float64) float64 {
	upper, lower := max(bg1, bg2), min(bg1, bg2)
	if contrast.RatioOfTones(upper, answer) >= desired && contrast.RatioOfTones(lower, answer) >= desired {
		return answer
	}

	light := contrast.Lighter(upper, desired)
	dark := contrast.Darker(lower, desired)
	if TonePrefersLightForeground(bg1) || TonePrefersLightForeground(bg2) {
		if light < 0 {
			return 100
		}
		return light
	}
	switch {
	case light >= 0 && dark < 0:
		return light
	case dark >= 0 && light < 0:
		return dark
	case dark < 0:
		return 0
	}
	return dark
}

// resolvePair resolves one member of a tone delta pair. Both members are
// computed together so they agree on the outcome.
func (s *Scheme) resolvePair(sp *Spec) float64 {
	p := sp.Pair
	bgTone := s.tones[sp.Background.Get(s.dark)]

	subjectNearer := p.Polarity == Nearer ||
		(p.Polarity == Lighter && !s.dark) ||
		(p.Polarity == Darker && s.dark)
	nearer, farther := s.set.specs[p.Subject], s.set.specs[p.Basis]
	if !subjectNearer {
		nearer, farther = farther, nearer
	}
	dir := -1.0
	if s.dark {
		dir = 1
	}

	initial := func(x *Spec) float64 {
		ratio := x.Curve.Get(s.level)
		t := x.formula(s.variant).evaluate(s, x)
		if s.level < 0 || contrast.RatioOfTones(bgTone, t) < ratio {
			return ForegroundTone(bgTone, ratio)
		}
		return t
	}
	n, f := initial(nearer), initial(farther)

	if (f-n)*dir < p.Delta {
		f = colour.Clamp(0, 100, n+p.Delta*dir)
		if (f-n)*dir < p.Delta {
			n = colour.Clamp(0, 100, f-p.Delta*dir)
		}
	}

	// Keep both tones out of 50-59, where neither light nor dark
	// foregrounds contrast well.
	awkward := func(t float64) bool { return t >= 50 && t < 60 }
	moveNearer := func() {
		if dir > 0 {
			n = 60
			f = max(f, n+p.Delta*dir)
		} else {
			n = 49
			f = min(f, n+p.Delta*dir)
		}
	}
	switch {
	case awkward(n):
		moveNearer()
	case awkward(f) && p.StayTogether:
		moveNearer()
	case awkward(f):
		if dir > 0 {
			f = 60
		} else {
			f = 49
		}
	}

	if sp.Role == nearer.Role {
		return n
	}
	return f
}
