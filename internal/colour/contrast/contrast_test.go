package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatioOfTones(t *testing.T) {
	tests := []struct {
		name   string
		t1, t2 float64
		want   float64
	}{
		{name: "black on white", t1: 0, t2: 100, want: 21},
		{name: "same tone", t1: 50, t2: 50, want: 1},
		{name: "out of range clamps", t1: -10, t2: 110, want: 21},
		{name: "order independent", t1: 100, t2: 0, want: 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RatioOfTones(tt.t1, tt.t2), 0.001)
		})
	}
}

func TestLighterAndDarker(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64, float64) float64
		tone float64
		r    float64
		want float64
	}{
		{name: "lighter impossible", fn: Lighter, tone: 90, r: 10, want: -1},
		{name: "lighter above range", fn: Lighter, tone: 110, r: 2, want: -1},
		{name: "lighter below range", fn: Lighter, tone: -10, r: 2, want: -1},
		{name: "lighter unsafe falls back", fn: LighterUnsafe, tone: 100, r: 2, want: 100},
		{name: "darker impossible", fn: Darker, tone: 10, r: 20, want: -1},
		{name: "darker above range", fn: Darker, tone: 110, r: 2, want: -1},
		{name: "darker below range", fn: Darker, tone: -10, r: 2, want: -1},
		{name: "darker unsafe falls back", fn: DarkerUnsafe, tone: 0, r: 2, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.fn(tt.tone, tt.r), 0.001)
		})
	}
}

func TestLighterReachesRatio(t *testing.T) {
	for tone := 0.0; tone <= 60; tone += 5 {
		lighter := Lighter(tone, Ratio45)
		if lighter < 0 {
			continue
		}
		assert.Greater(t, lighter, tone)
		assert.GreaterOrEqual(t, RatioOfTones(tone, lighter), Ratio45)
	}
	for tone := 40.0; tone <= 100; tone += 5 {
		darker := Darker(tone, Ratio45)
		if darker < 0 {
			continue
		}
		assert.Less(t, darker, tone)
		assert.GreaterOrEqual(t, RatioOfTones(tone, darker), Ratio45)
	}
}
