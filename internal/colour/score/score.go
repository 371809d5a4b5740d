// Package score ranks quantized colours by their suitability as a theme
// source, preferring populous, chromatic and hue-diverse colours.
package score

import (
	"math"
	"slices"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/hct"
	"github.com/jmylchreest/tonal/internal/colour/quantize"
)

// Scoring constants.
const (
	TargetChroma            = 48.0
	WeightProportion        = 0.7
	WeightChromaAbove       = 0.3
	WeightChromaBelow       = 0.1
	CutoffChroma            = 5.0
	CutoffExcitedProportion = 0.01

	// Hue separation between chosen colours is relaxed one degree at a
	// time from MaxHueDifference down to MinHueDifference.
	MaxHueDifference = 90
	MinHueDifference = 15
)

// DefaultFallback is returned when no input colour is usable (Google Blue).
const DefaultFallback colour.ARGB = 0xFF4285F4

// Options controls Score.
type Options struct {
	// Desired is the maximum number of colours returned.
	Desired int
	// Fallback is returned alone when nothing survives filtering.
	Fallback colour.ARGB
	// Filter drops colours with too little chroma or hue share.
	Filter bool
}

// DefaultOptions returns four colours, Google Blue fallback, filtering on.
func DefaultOptions() Options {
	return Options{Desired: 4, Fallback: DefaultFallback, Filter: true}
}

type scored struct {
	hct   hct.HCT
	score float64
}

// Score ranks entries and returns at most opts.Desired colours, best first.
// At least one colour is always returned.
func Score(entries []quantize.Entry, opts Options) []colour.ARGB {
	colors := make([]hct.HCT, 0, len(entries))
	var huePopulation [360]int
	populationSum := 0.0
	for _, e := range entries {
		h := hct.FromARGB(e.Color)
		colors = append(colors, h)
		huePopulation[int(math.Floor(h.Hue()))%360] += e.Population
		populationSum += float64(e.Population)
	}

	// Each hue is credited with the share of population in the 30 degree
	// slice around it.
	var excited [360]float64
	for hue, population := range huePopulation {
		proportion := float64(population) / populationSum
		for i := hue - 14; i < hue+16; i++ {
			excited[colour.SanitizeDegreesInt(i)] += proportion
		}
	}

	candidates := make([]scored, 0, len(colors))
	for _, h := range colors {
		hue := colour.SanitizeDegreesInt(int(math.Round(h.Hue())))
		proportion := excited[hue]
		if opts.Filter && (h.Chroma() < CutoffChroma || proportion <= CutoffExcitedProportion) {
			continue
		}

		weight := WeightChromaAbove
		if h.Chroma() < TargetChroma {
			weight = WeightChromaBelow
		}
		s := proportion*100*WeightProportion + (h.Chroma()-TargetChroma)*weight
		candidates = append(candidates, scored{hct: h, score: s})
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	var chosen []hct.HCT
	for diff := MaxHueDifference; diff >= MinHueDifference; diff-- {
		chosen = chosen[:0]
		for _, c := range candidates {
			if !tooClose(c.hct, chosen, float64(diff)) {
				chosen = append(chosen, c.hct)
			}
			if len(chosen) >= opts.Desired {
				break
			}
		}
		if len(chosen) >= opts.Desired {
			break
		}
	}

	if len(chosen) == 0 {
		return []colour.ARGB{opts.Fallback}
	}
	out := make([]colour.ARGB, len(chosen))
	for i, h := range chosen {
		out[i] = h.ARGB()
	}
	return out
}

func tooClose(h hct.HCT, chosen []hct.HCT, degrees float64) bool {
	for _, c := range chosen {
		if colour.DifferenceDegrees(h.Hue(), c.Hue()) < degrees {
			return true
		}
	}
	return false
}
