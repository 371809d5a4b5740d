package hct

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/cam16"
)

func channelDiff(a, b colour.ARGB) int {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return max(d(a.Red(), b.Red()), d(a.Green(), b.Green()), d(a.Blue(), b.Blue()))
}

func TestRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				c := colour.FromRGB(uint8(r), uint8(g), uint8(b))
				h := FromARGB(c)
				got := New(h.Hue(), h.Chroma(), h.Tone()).ARGB()
				if channelDiff(c, got) > 1 {
					t.Fatalf("round trip of %s = %s (%v)", c.Hex(), got.Hex(), h)
				}
			}
		}
	}
}

func TestRoundTripPrimaries(t *testing.T) {
	for _, c := range []colour.ARGB{0xFFFF0000, 0xFF00FF00, 0xFF0000FF} {
		cam := cam16.FromARGB(c)
		if got := DefaultSolver().Solve(cam.Hue, cam.Chroma, c.LStar()); got != c {
			t.Errorf("Solve(%s) = %s", c.Hex(), got.Hex())
		}
	}
}

func TestSolveEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		hue  float64
		c    float64
		tone float64
		want colour.ARGB
	}{
		{name: "zero chroma is grey", hue: 120, c: 0, tone: 50, want: colour.FromLStar(50)},
		{name: "tone zero is black", hue: 120, c: 80, tone: 0, want: 0xFF000000},
		{name: "tone 100 is white", hue: 120, c: 80, tone: 100, want: 0xFFFFFFFF},
		{name: "tone below range clamps", hue: 10, c: 50, tone: -20, want: 0xFF000000},
		{name: "tone above range clamps", hue: 10, c: 50, tone: 140, want: 0xFFFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultSolver().Solve(tt.hue, tt.c, tt.tone); got != tt.want {
				t.Errorf("Solve() = %s, want %s", got.Hex(), tt.want.Hex())
			}
		})
	}
}

func TestHueIsNormalised(t *testing.T) {
	a := New(-90, 40, 60)
	b := New(270, 40, 60)
	c := New(630, 40, 60)
	assert.Equal(t, b.ARGB(), a.ARGB())
	assert.Equal(t, b.ARGB(), c.ARGB())
}

func TestOutOfGamutChromaClamps(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 15 {
		for _, tone := range []float64{10, 30, 50, 70, 90} {
			h := New(hue, 200, tone)
			assert.Less(t, h.Chroma(), 200.0)
			assert.InDelta(t, tone, h.Tone(), 1.0, "hue %v tone %v", hue, tone)
			if h.Chroma() > 20 {
				assert.LessOrEqual(t, colour.DifferenceDegrees(hue, h.Hue()), 8.0, "hue %v tone %v", hue, tone)
			}
		}
	}
}

func TestWithSetters(t *testing.T) {
	base := FromARGB(0xFF4285F4)

	lighter := base.WithTone(80)
	assert.InDelta(t, 80, lighter.Tone(), 0.5)
	assert.InDelta(t, base.Hue(), lighter.Hue(), 3)

	rotated := base.WithHue(base.Hue() + 120)
	assert.InDelta(t, base.Tone(), rotated.Tone(), 0.5)

	grey := base.WithChroma(0)
	assert.Equal(t, colour.FromLStar(base.Tone()), grey.ARGB())
}

func TestComputedMatricesMatchDefault(t *testing.T) {
	computed := solverFor(cam16.Default())
	for hue := 0.0; hue < 360; hue += 30 {
		for _, chroma := range []float64{10, 40, 120} {
			for _, tone := range []float64{20, 50, 80} {
				want := DefaultSolver().Solve(hue, chroma, tone)
				got := computed.Solve(hue, chroma, tone)
				if channelDiff(want, got) > 1 {
					t.Errorf("Solve(%v, %v, %v) = %s, want %s", hue, chroma, tone, got.Hex(), want.Hex())
				}
			}
		}
	}
}

func TestAlternateSolver(t *testing.T) {
	env := cam16.DefaultEnvironment()
	env.BackgroundLStar = 20
	s := NewSolver(cam16.NewViewingConditions(env))
	assert.NotSame(t, DefaultSolver(), s)
	assert.Same(t, DefaultSolver(), NewSolver(cam16.Default()))

	h := s.HCT(200, 30, 60)
	back := s.FromARGB(h.ARGB())
	assert.InDelta(t, h.Hue(), back.Hue(), 1e-9)
	assert.InDelta(t, 60, h.Tone(), 0.5)
	assert.False(t, math.IsNaN(h.Chroma()))
}

func TestInViewingConditions(t *testing.T) {
	c := FromARGB(0xFF4285F4)
	same := c.InViewingConditions(cam16.Default())
	assert.LessOrEqual(t, channelDiff(c.ARGB(), same.ARGB()), 1)
}
