// Package temperature orders hues by perceived warmth to derive analogous
// and complementary colours at a fixed chroma and tone.
package temperature

import (
	"math"
	"slices"
	"sync"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/hct"
)

type sample struct {
	hct  hct.HCT
	temp float64
}

// Cache holds the colours of every whole hue at the input's chroma and
// tone together with their temperatures. It is safe for concurrent use.
type Cache struct {
	input     hct.HCT
	inputTemp float64
	// byHue[h] is the colour at hue h for h in [0, 360].
	byHue  [361]sample
	byTemp []sample

	complementOnce sync.Once
	complement     hct.HCT
}

// New builds the cache for input.
func New(input hct.HCT) *Cache {
	c := &Cache{input: input, inputTemp: RawTemperature(input)}
	c.byTemp = make([]sample, 0, len(c.byHue)+1)
	for h := range c.byHue {
		x := hct.New(float64(h), input.Chroma(), input.Tone())
		c.byHue[h] = sample{hct: x, temp: RawTemperature(x)}
		c.byTemp = append(c.byTemp, c.byHue[h])
	}
	c.byTemp = append(c.byTemp, sample{hct: input, temp: c.inputTemp})
	slices.SortStableFunc(c.byTemp, func(a, b sample) int {
		switch {
		case a.temp < b.temp:
			return -1
		case a.temp > b.temp:
			return 1
		}
		return 0
	})
	return c
}

// Input returns the colour the cache was built for.
func (c *Cache) Input() hct.HCT { return c.input }

// Coldest returns the coldest colour at the input's chroma and tone.
func (c *Cache) Coldest() hct.HCT { return c.byTemp[0].hct }

// Warmest returns the warmest colour at the input's chroma and tone.
func (c *Cache) Warmest() hct.HCT { return c.byTemp[len(c.byTemp)-1].hct }

// RelativeTemperature maps h's temperature onto [0, 1] between the coldest
// and warmest colours. It is 0.5 when all hues share one temperature.
func (c *Cache) RelativeTemperature(h hct.HCT) float64 {
	return c.relative(RawTemperature(h))
}

func (c *Cache) relative(temp float64) float64 {
	coldest := c.byTemp[0].temp
	span := c.byTemp[len(c.byTemp)-1].temp - coldest
	if span == 0 {
		return 0.5
	}
	return (temp - coldest) / span
}

// Analogous returns count colours spread over the hue wheel in divisions
// equal temperature steps, with the input in the middle. The usual call is
// Analogous(5, 12).
func (c *Cache) Analogous(count, divisions int) []hct.HCT {
	startHue := int(math.Round(c.input.Hue()))
	start := c.byHue[startHue]
	lastTemp := c.relative(start.temp)
	all := []hct.HCT{start.hct}

	totalDelta := 0.0
	for i := 0; i < 360; i++ {
		s := c.byHue[colour.SanitizeDegreesInt(startHue+i)]
		t := c.relative(s.temp)
		totalDelta += math.Abs(t - lastTemp)
		lastTemp = t
	}

	step := totalDelta / float64(divisions)
	running := 0.0
	lastTemp = c.relative(start.temp)
	for addend := 1; len(all) < divisions; addend++ {
		s := c.byHue[colour.SanitizeDegreesInt(startHue+addend)]
		t := c.relative(s.temp)
		running += math.Abs(t - lastTemp)

		// A hue is repeated while it alone covers several steps, which is
		// what happens for greys where every hue has the same temperature.
		satisfied := running >= float64(len(all))*step
		indexAddend := 1
		for satisfied && len(all) < divisions {
			all = append(all, s.hct)
			satisfied = running >= float64(len(all)+indexAddend)*step
			indexAddend++
		}
		lastTemp = t

		if addend >= 360 {
			for len(all) < divisions {
				all = append(all, s.hct)
			}
			break
		}
	}

	answers := []hct.HCT{c.input}
	ccw := (count - 1) / 2
	for i := 1; i <= ccw; i++ {
		answers = slices.Insert(answers, 0, all[wrapIndex(-i, len(all))])
	}
	cw := count - ccw - 1
	for i := 1; i <= cw; i++ {
		answers = append(answers, all[wrapIndex(i, len(all))])
	}
	return answers
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Complement returns the colour on the opposite side of the temperature
// range whose relative temperature best mirrors the input's.
func (c *Cache) Complement() hct.HCT {
	c.complementOnce.Do(func() {
		coldest := c.byTemp[0]
		warmest := c.byTemp[len(c.byTemp)-1]
		span := warmest.temp - coldest.temp

		startHue, endHue := coldest.hct.Hue(), warmest.hct.Hue()
		if isBetween(c.input.Hue(), coldest.hct.Hue(), warmest.hct.Hue()) {
			startHue, endHue = endHue, startHue
		}

		target := 1 - c.relative(c.inputTemp)
		smallest := 1000.0
		answer := c.byHue[int(math.Round(c.input.Hue()))].hct
		for addend := 0; addend <= 360; addend++ {
			hue := colour.SanitizeDegrees(startHue + float64(addend))
			if !isBetween(hue, startHue, endHue) {
				continue
			}
			candidate := c.byHue[int(math.Round(hue))]
			relative := (candidate.temp - coldest.temp) / span
			if err := math.Abs(target - relative); err < smallest {
				smallest = err
				answer = candidate.hct
			}
		}
		c.complement = answer
	})
	return c.complement
}

// isBetween reports whether angle lies on the clockwise arc from a to b.
func isBetween(angle, a, b float64) bool {
	if a < b {
		return a <= angle && angle <= b
	}
	return a <= angle || angle <= b
}

// RawTemperature is an empirical warmth measure derived from L*a*b* hue and
// chroma. Warm colours score high, cool colours low; achromatic colours
// score -0.5.
func RawTemperature(h hct.HCT) float64 {
	lab := h.ARGB().Lab()
	hue := colour.SanitizeDegrees(colour.Degrees(math.Atan2(lab.B, lab.A)))
	chroma := math.Hypot(lab.A, lab.B)
	return -0.5 + 0.02*math.Pow(chroma, 1.07)*math.Cos(colour.Radians(colour.SanitizeDegrees(hue-50)))
}
