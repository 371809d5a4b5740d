package dynamic

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour/contrast"
	"github.com/jmylchreest/tonal/internal/colour/dislike"
	"github.com/jmylchreest/tonal/internal/colour/hct"
)

// FormulaKind selects how a Formula computes a role's starting tone.
type FormulaKind int

const (
	// KindConstant uses Light or Dark depending on the mode.
	KindConstant FormulaKind = iota
	// KindCurve evaluates LightCurve or DarkCurve at the contrast level.
	KindCurve
	// KindKeyColor uses the tone of the role's palette key colour.
	KindKeyColor
	// KindSourceTone uses the tone of the source colour.
	KindSourceTone
	// KindForeground picks the tone reaching Ratio against the resolved
	// tone of Ref.
	KindForeground
	// KindChromaSearch starts at Light or Dark and walks the tone away
	// from the background until the palette chroma is reachable.
	KindChromaSearch
	// KindDislikeFixedSource takes the role's palette at the source tone,
	// lifted out of the disliked yellow-green region.
	KindDislikeFixedSource
)

// Formula is a closed description of how a role's tone is derived from
// scheme state before contrast and tone-delta constraints are applied.
type Formula struct {
	Kind       FormulaKind
	Light      float64
	Dark       float64
	LightCurve ContrastCurve
	DarkCurve  ContrastCurve
	Ref        Role
	Ratio      float64
}

func tones(light, dark float64) Formula {
	return Formula{Kind: KindConstant, Light: light, Dark: dark}
}

func fixed(tone float64) Formula { return tones(tone, tone) }

func curves(light, dark ContrastCurve) Formula {
	return Formula{Kind: KindCurve, LightCurve: light, DarkCurve: dark}
}

func keyColor() Formula { return Formula{Kind: KindKeyColor} }

func sourceTone() Formula { return Formula{Kind: KindSourceTone} }

func foreground(ref Role, ratio float64) Formula {
	return Formula{Kind: KindForeground, Ref: ref, Ratio: ratio}
}

func chromaSearch(light, dark float64) Formula {
	return Formula{Kind: KindChromaSearch, Light: light, Dark: dark}
}

func dislikeFixedSource() Formula { return Formula{Kind: KindDislikeFixedSource} }

// refs returns the roles whose resolved tones the formula reads.
func (f Formula) refs() []Role {
	if f.Kind == KindForeground {
		return []Role{f.Ref}
	}
	return nil
}

// evaluate computes the formula for spec sp in scheme s. Every role in
// f.refs() must already be resolved.
func (f Formula) evaluate(s *Scheme, sp *Spec) float64 {
	pick := func(light, dark float64) float64 {
		if s.dark {
			return dark
		}
		return light
	}

	switch f.Kind {
	case KindConstant:
		return pick(f.Light, f.Dark)
	case KindCurve:
		if s.dark {
			return f.DarkCurve.Get(s.level)
		}
		return f.LightCurve.Get(s.level)
	case KindKeyColor:
		return s.palettes.Get(sp.Palette).KeyColor().Tone()
	case KindSourceTone:
		return s.source.Tone()
	case KindForeground:
		return ForegroundTone(s.tones[f.Ref], f.Ratio)
	case KindChromaSearch:
		p := s.palettes.Get(sp.Palette)
		return desiredChromaByTone(p.Hue(), p.Chroma(), pick(f.Light, f.Dark), !s.dark)
	case KindDislikeFixedSource:
		p := s.palettes.Get(sp.Palette)
		return dislike.FixIfDisliked(p.HCT(s.source.Tone())).Tone()
	}
	return pick(f.Light, f.Dark)
}

// ForegroundTone returns the tone, lighter or darker, that best reaches
// ratio against bgTone. Light foregrounds are preferred on tones below 60.
func ForegroundTone(bgTone, ratio float64) float64 {
	lighterTone := contrast.LighterUnsafe(bgTone, ratio)
	darkerTone := contrast.DarkerUnsafe(bgTone, ratio)
	lighterRatio := contrast.RatioOfTones(lighterTone, bgTone)
	darkerRatio := contrast.RatioOfTones(darkerTone, bgTone)

	if TonePrefersLightForeground(bgTone) {
		// When neither side can reach a high requested ratio and they are
		// about equal, stay light rather than flipping to dark.
		negligible := math.Abs(lighterRatio-darkerRatio) < 0.1 && lighterRatio < ratio && darkerRatio < ratio
		if lighterRatio >= ratio || lighterRatio >= darkerRatio || negligible {
			return lighterTone
		}
		return darkerTone
	}
	if darkerRatio >= ratio || darkerRatio >= lighterRatio {
		return darkerTone
	}
	return lighterTone
}

// EnableLightForeground moves tones that prefer a light foreground but
// cannot carry one down to 49.
func EnableLightForeground(tone float64) float64 {
	if TonePrefersLightForeground(tone) && !ToneAllowsLightForeground(tone) {
		return 49
	}
	return tone
}

// TonePrefersLightForeground reports whether tone rounds below 60.
func TonePrefersLightForeground(tone float64) bool {
	return math.Round(tone) < 60
}

// ToneAllowsLightForeground reports whether tone rounds to 49 or below.
func ToneAllowsLightForeground(tone float64) bool {
	return math.Round(tone) <= 49
}

// desiredChromaByTone walks from tone towards darker (or lighter) tones
// until the requested chroma is approximately reachable or chroma starts
// falling again.
func desiredChromaByTone(hue, chroma, tone float64, byDecreasingTone bool) float64 {
	answer := tone
	closest := hct.New(hue, chroma, tone)
	if closest.Chroma() >= chroma {
		return answer
	}

	step := 1.0
	if byDecreasingTone {
		step = -1
	}
	peak := closest.Chroma()
	for closest.Chroma() < chroma {
		answer += step
		candidate := hct.New(hue, chroma, answer)
		if peak > candidate.Chroma() {
			break
		}
		if math.Abs(candidate.Chroma()-chroma) < 0.4 {
			break
		}
		if math.Abs(candidate.Chroma()-chroma) < math.Abs(closest.Chroma()-chroma) {
			closest = candidate
		}
		peak = math.Max(peak, candidate.Chroma())
	}
	return answer
}
