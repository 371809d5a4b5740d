// Package palette builds tonal palettes: colours sharing a hue and chroma,
// sampled along the tone axis.
package palette

import (
	"sync"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/hct"
)

// CommonTones are the tones most UI roles draw from.
var CommonTones = []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 100}

// StopTones are the evenly spaced tones 0, 5, ..., 100.
var StopTones = func() []int {
	stops := make([]int, 0, 21)
	for t := 0; t <= 100; t += 5 {
		stops = append(stops, t)
	}
	return stops
}()

// TonalPalette produces colours of one hue and chroma at any tone.
// Integer tones are cached; a TonalPalette is safe for concurrent use.
type TonalPalette struct {
	hue      float64
	chroma   float64
	keyColor hct.HCT

	mu    sync.Mutex
	cache map[int]colour.ARGB
}

// FromARGB returns the palette for the hue and chroma of c.
func FromARGB(c colour.ARGB) *TonalPalette {
	return FromHCT(hct.FromARGB(c))
}

// FromHCT returns the palette for the hue and chroma of h, with h as its key colour.
func FromHCT(h hct.HCT) *TonalPalette {
	return &TonalPalette{
		hue:      h.Hue(),
		chroma:   h.Chroma(),
		keyColor: h,
		cache:    make(map[int]colour.ARGB),
	}
}

// FromHueAndChroma returns the palette for an explicit hue and chroma.
// The key colour is the colour closest to tone 50 that reaches chroma.
func FromHueAndChroma(hue, chroma float64) *TonalPalette {
	return &TonalPalette{
		hue:      hue,
		chroma:   chroma,
		keyColor: KeyColor(hue, chroma),
		cache:    make(map[int]colour.ARGB),
	}
}

// Hue returns the palette hue.
func (p *TonalPalette) Hue() float64 { return p.hue }

// Chroma returns the requested palette chroma.
func (p *TonalPalette) Chroma() float64 { return p.chroma }

// KeyColor returns the palette's key colour.
func (p *TonalPalette) KeyColor() hct.HCT { return p.keyColor }

// Tone returns the colour at an integer tone, solving it once and caching it.
func (p *TonalPalette) Tone(tone int) colour.ARGB {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.cache[tone]; ok {
		return c
	}
	c := hct.DefaultSolver().Solve(p.hue, p.chroma, float64(tone))
	p.cache[tone] = c
	return c
}

// HCT returns the palette colour at an arbitrary tone. Results are not cached.
func (p *TonalPalette) HCT(tone float64) hct.HCT {
	return hct.New(p.hue, p.chroma, tone)
}

// Stops returns the colours at StopTones, in order.
func (p *TonalPalette) Stops() []colour.ARGB {
	out := make([]colour.ARGB, len(StopTones))
	for i, t := range StopTones {
		out[i] = p.Tone(t)
	}
	return out
}

// Tones returns the colours at CommonTones keyed by tone.
func (p *TonalPalette) Tones() map[int]colour.ARGB {
	out := make(map[int]colour.ARGB, len(CommonTones))
	for _, t := range CommonTones {
		out[t] = p.Tone(t)
	}
	return out
}
