package dynamic

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/contrast"
	"github.com/jmylchreest/tonal/internal/colour/hct"
)

func scheme(source colour.ARGB, v Variant, dark bool, level float64) *Scheme {
	return NewScheme(hct.FromARGB(source), Options{Variant: v, Dark: dark, Contrast: level})
}

func TestSchemeTonalSpotGreen(t *testing.T) {
	light := scheme(0xFFAAE5A4, TonalSpot, false, 0)
	dark := scheme(0xFFAAE5A4, TonalSpot, true, 0)

	tests := []struct {
		s    *Scheme
		role Role
		want colour.ARGB
	}{
		{light, Primary, 0xFF3B693A},
		{light, OnPrimary, 0xFFFFFFFF},
		{light, PrimaryContainer, 0xFFBCF0B5},
		{light, OnPrimaryContainer, 0xFF002204},
		{light, Surface, 0xFFF7FBF1},
		{light, Background, 0xFFF7FBF1},
		{light, OnBackground, 0xFF181D17},
		{light, OnSurface, 0xFF181D17},
		{light, Outline, 0xFF72796F},
		{light, InverseSurface, 0xFF2D322C},
		{light, InversePrimary, 0xFFA0D39A},
		{light, Secondary, 0xFF52634F},
		{light, Tertiary, 0xFF38656B},
		{light, Error, 0xFFBA1A1A},
		{light, OnError, 0xFFFFFFFF},
		{light, ErrorContainer, 0xFFFFDAD6},
		{dark, Primary, 0xFFA0D39A},
		{dark, OnPrimary, 0xFF093910},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("%s/dark=%v", tt.role, tt.s.IsDark())
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want.Hex(), tt.s.Color(tt.role).Hex())
		})
	}
}

func TestSchemeVariants(t *testing.T) {
	tests := []struct {
		variant Variant
		source  colour.ARGB
		dark    bool
		level   float64
		role    Role
		want    colour.ARGB
	}{
		{Expressive, 0xFF0000FF, false, -1, Primary, 0xFF32835D},
		{Expressive, 0xFF0000FF, false, 0, Primary, 0xFF146C48},
		{Expressive, 0xFF0000FF, false, 1, Primary, 0xFF00341F},
		{Expressive, 0xFF0000FF, false, -1, PrimaryContainer, 0xFF99EABD},
		{Expressive, 0xFF0000FF, false, 0, PrimaryContainer, 0xFFA2F4C6},
		{Expressive, 0xFF0000FF, false, 1, PrimaryContainer, 0xFF005436},
		{Expressive, 0xFF0000FF, false, 1, OnPrimaryContainer, 0xFFFFFFFF},
		{Expressive, 0xFF0000FF, false, 0, Surface, 0xFFFDF7FF},
		{Expressive, 0xFF0000FF, true, -1, Primary, 0xFF51A078},
		{Expressive, 0xFF0000FF, true, 0, Primary, 0xFF87D7AB},
		{Expressive, 0xFF0000FF, true, 1, Primary, 0xFFBBFFD7},
		{Expressive, 0xFF0000FF, true, -1, PrimaryContainer, 0xFF00432A},
		{Expressive, 0xFF0000FF, true, 0, PrimaryContainer, 0xFF005234},
		{Expressive, 0xFF0000FF, true, 1, PrimaryContainer, 0xFF83D3A8},
		{Expressive, 0xFF0000FF, true, 0, OnPrimaryContainer, 0xFFA2F4C6},
		{Expressive, 0xFF0000FF, true, 0, Surface, 0xFF14121A},
		{Content, 0xFF0000FF, false, -1, Primary, 0xFF5660FF},
		{Content, 0xFF0000FF, false, 0, Primary, 0xFF0001BB},
		{Content, 0xFF0000FF, false, 1, Primary, 0xFF00019F},
		{Content, 0xFF0000FF, false, -1, PrimaryContainer, 0xFFD5D6FF},
		{Content, 0xFF0000FF, false, 0, PrimaryContainer, 0xFF0000FF},
		{Content, 0xFF0000FF, false, 1, PrimaryContainer, 0xFF0000F6},
		{Content, 0xFF0000FF, false, -1, TertiaryContainer, 0xFFFAC9FF},
		{Content, 0xFF0000FF, false, 0, TertiaryContainer, 0xFF81009F},
		{Content, 0xFF0000FF, false, 1, TertiaryContainer, 0xFF7D009A},
		{Content, 0xFF0000FF, false, 1, OnPrimaryContainer, 0xFFFFFFFF},
		{Content, 0xFF0000FF, false, 0, Surface, 0xFFFBF8FF},
		{Content, 0xFF0000FF, true, -1, Primary, 0xFF7C84FF},
		{Content, 0xFF0000FF, true, 0, Primary, 0xFFBEC2FF},
		{Content, 0xFF0000FF, true, 1, Primary, 0xFFF0EEFF},
		{Content, 0xFF0000FF, true, -1, PrimaryContainer, 0xFF0001C9},
		{Content, 0xFF0000FF, true, 0, PrimaryContainer, 0xFF0000FF},
		{Content, 0xFF0000FF, true, 1, PrimaryContainer, 0xFFBABDFF},
		{Content, 0xFF0000FF, true, 0, Surface, 0xFF12121D},
		{Content, 0xFF850096, false, -1, TertiaryContainer, 0xFFFFCCD7},
		{Content, 0xFF850096, false, 0, TertiaryContainer, 0xFF980249},
		{Content, 0xFF850096, false, 1, TertiaryContainer, 0xFF930046},
		{Fidelity, 0xFF0000FF, false, -1, Primary, 0xFF5660FF},
		{Fidelity, 0xFF0000FF, false, 0, Primary, 0xFF0001BB},
		{Fidelity, 0xFF0000FF, false, 1, Primary, 0xFF00019F},
		{Fidelity, 0xFF0000FF, false, -1, PrimaryContainer, 0xFFD5D6FF},
		{Fidelity, 0xFF0000FF, false, 0, PrimaryContainer, 0xFF0000FF},
		{Fidelity, 0xFF0000FF, false, 1, PrimaryContainer, 0xFF0000F6},
		{Fidelity, 0xFF0000FF, false, -1, TertiaryContainer, 0xFFFFCDC6},
		{Fidelity, 0xFF0000FF, false, 0, TertiaryContainer, 0xFF9D0002},
		{Fidelity, 0xFF0000FF, false, 1, TertiaryContainer, 0xFF980002},
		{Fidelity, 0xFF850096, false, -1, TertiaryContainer, 0xFFEBD982},
		{Fidelity, 0xFF850096, false, 0, TertiaryContainer, 0xFFBCAC5A},
		{Fidelity, 0xFF850096, false, 1, TertiaryContainer, 0xFF544900},
		{Fidelity, 0xFF0000FF, false, 1, OnPrimaryContainer, 0xFFFFFFFF},
		{Fidelity, 0xFF0000FF, false, 0, Surface, 0xFFFBF8FF},
		{Fidelity, 0xFF0000FF, true, -1, Primary, 0xFF7C84FF},
		{Fidelity, 0xFF0000FF, true, 0, Primary, 0xFFBEC2FF},
		{Fidelity, 0xFF0000FF, true, 1, Primary, 0xFFF0EEFF},
		{Fidelity, 0xFF0000FF, true, -1, PrimaryContainer, 0xFF0001C9},
		{Fidelity, 0xFF0000FF, true, 0, PrimaryContainer, 0xFF0000FF},
		{Fidelity, 0xFF0000FF, true, 1, PrimaryContainer, 0xFFBABDFF},
		{Fidelity, 0xFF0000FF, true, 0, Surface, 0xFF12121D},
		{FruitSalad, 0xFF0000FF, false, -1, Primary, 0xFF007EA7},
		{FruitSalad, 0xFF0000FF, false, 0, Primary, 0xFF006688},
		{FruitSalad, 0xFF0000FF, false, 1, Primary, 0xFF003042},
		{FruitSalad, 0xFF0000FF, false, -1, PrimaryContainer, 0xFFAAE0FF},
		{FruitSalad, 0xFF0000FF, false, 0, PrimaryContainer, 0xFFC2E8FF},
		{FruitSalad, 0xFF0000FF, false, 1, PrimaryContainer, 0xFF004F6B},
		{FruitSalad, 0xFF0000FF, false, -1, TertiaryContainer, 0xFFD5D6FF},
		{FruitSalad, 0xFF0000FF, false, 0, TertiaryContainer, 0xFFE0E0FF},
		{FruitSalad, 0xFF0000FF, false, 1, TertiaryContainer, 0xFF40447B},
		{FruitSalad, 0xFF0000FF, false, 1, OnPrimaryContainer, 0xFFFFFFFF},
		{FruitSalad, 0xFF0000FF, false, 0, Surface, 0xFFFBF8FF},
		{FruitSalad, 0xFF0000FF, false, 0, Secondary, 0xFF196584},
		{FruitSalad, 0xFF0000FF, false, 0, SecondaryContainer, 0xFFC2E8FF},
		{FruitSalad, 0xFF0000FF, true, -1, Primary, 0xFF1E9BCB},
		{FruitSalad, 0xFF0000FF, true, 0, Primary, 0xFF76D1FF},
		{FruitSalad, 0xFF0000FF, true, 1, Primary, 0xFFE0F3FF},
		{FruitSalad, 0xFF0000FF, true, -1, PrimaryContainer, 0xFF003F56},
		{FruitSalad, 0xFF0000FF, true, 0, PrimaryContainer, 0xFF004D67},
		{FruitSalad, 0xFF0000FF, true, 1, PrimaryContainer, 0xFF68CEFF},
		{FruitSalad, 0xFF0000FF, true, 0, OnPrimaryContainer, 0xFFC2E8FF},
		{FruitSalad, 0xFF0000FF, true, 0, OnTertiaryContainer, 0xFFE0E0FF},
		{FruitSalad, 0xFF0000FF, true, 0, Surface, 0xFF12131C},
		{FruitSalad, 0xFF0000FF, true, 0, Secondary, 0xFF8ECFF2},
		{FruitSalad, 0xFF0000FF, true, 0, SecondaryContainer, 0xFF004D67},
		{Rainbow, 0xFF0000FF, false, -1, Primary, 0xFF676DC1},
		{Rainbow, 0xFF0000FF, false, 0, Primary, 0xFF5056A9},
		{Rainbow, 0xFF0000FF, false, 1, Primary, 0xFF1B2074},
		{Rainbow, 0xFF0000FF, false, -1, PrimaryContainer, 0xFFD5D6FF},
		{Rainbow, 0xFF0000FF, false, 0, PrimaryContainer, 0xFFE0E0FF},
		{Rainbow, 0xFF0000FF, false, 1, PrimaryContainer, 0xFF3A4092},
		{Rainbow, 0xFF0000FF, false, -1, TertiaryContainer, 0xFFFBCBE7},
		{Rainbow, 0xFF0000FF, false, 0, TertiaryContainer, 0xFFFFD8EE},
		{Rainbow, 0xFF0000FF, false, 1, TertiaryContainer, 0xFF613E55},
		{Rainbow, 0xFF0000FF, false, 1, OnPrimaryContainer, 0xFFFFFFFF},
		{Rainbow, 0xFF0000FF, false, 0, Surface, 0xFFF9F9F9},
		{Rainbow, 0xFF0000FF, false, 0, Secondary, 0xFF5C5D72},
		{Rainbow, 0xFF0000FF, false, 0, SecondaryContainer, 0xFFE1E0F9},
		{Rainbow, 0xFF0000FF, true, -1, Primary, 0xFF8389E0},
		{Rainbow, 0xFF0000FF, true, 0, Primary, 0xFFBEC2FF},
		{Rainbow, 0xFF0000FF, true, 1, Primary, 0xFFF0EEFF},
		{Rainbow, 0xFF0000FF, true, -1, PrimaryContainer, 0xFF2A3082},
		{Rainbow, 0xFF0000FF, true, 0, PrimaryContainer, 0xFF383E8F},
		{Rainbow, 0xFF0000FF, true, 1, PrimaryContainer, 0xFFBABDFF},
		{Rainbow, 0xFF0000FF, true, 0, OnPrimaryContainer, 0xFFE0E0FF},
		{Rainbow, 0xFF0000FF, true, 0, OnTertiaryContainer, 0xFFFFD8EE},
		{Rainbow, 0xFF0000FF, true, 0, Surface, 0xFF131313},
		{Rainbow, 0xFF0000FF, true, 0, Secondary, 0xFFC5C4DD},
		{Rainbow, 0xFF0000FF, true, 0, SecondaryContainer, 0xFF444559},
		{Fidelity, 0xFF0000FF, false, 0, SecondaryContainer, 0xFF8D94FE},
		{Fidelity, 0xFF0000FF, false, 0, OnSecondaryContainer, 0xFF00004C},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("%s/%s/%s/dark=%v/%g", tt.variant, tt.source.Hex(), tt.role, tt.dark, tt.level)
		t.Run(name, func(t *testing.T) {
			s := scheme(tt.source, tt.variant, tt.dark, tt.level)
			assert.Equal(t, tt.want.Hex(), s.Color(tt.role).Hex())
		})
	}
}

func TestSchemeKeyColors(t *testing.T) {
	tests := []struct {
		variant Variant
		role    Role
		want    colour.ARGB
	}{
		{Expressive, PrimaryPaletteKeyColor, 0xFF35855F},
		{Expressive, SecondaryPaletteKeyColor, 0xFF8C6D8C},
		{Expressive, TertiaryPaletteKeyColor, 0xFF806EA1},
		{Expressive, NeutralPaletteKeyColor, 0xFF79757F},
		{Content, PrimaryPaletteKeyColor, 0xFF080CFF},
		{Content, SecondaryPaletteKeyColor, 0xFF656DD3},
		{Content, TertiaryPaletteKeyColor, 0xFF81009F},
		{Content, NeutralPaletteKeyColor, 0xFF767684},
	}
	for _, tt := range tests {
		t.Run(tt.variant.String()+"/"+tt.role.String(), func(t *testing.T) {
			s := scheme(0xFF0000FF, tt.variant, false, 0)
			assert.Equal(t, tt.want.Hex(), s.Color(tt.role).Hex())
		})
	}
}

func TestSchemeContrastGuarantee(t *testing.T) {
	pairs := []struct{ fg, bg Role }{
		{OnPrimary, Primary},
		{OnPrimaryContainer, PrimaryContainer},
		{OnSecondary, Secondary},
		{OnSecondaryContainer, SecondaryContainer},
		{OnTertiary, Tertiary},
		{OnTertiaryContainer, TertiaryContainer},
		{OnError, Error},
		{OnErrorContainer, ErrorContainer},
		{OnBackground, Background},
		{OnSurfaceVariant, SurfaceBright},
		{OnSurfaceVariant, SurfaceDim},
	}
	seeds := []colour.ARGB{0xFFFF0000, 0xFFFFFF00, 0xFF00FF00, 0xFF0000FF}
	levels := []float64{-1, -0.5, 0, 0.5, 1}

	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			for _, seed := range seeds {
				for _, level := range levels {
					for _, dark := range []bool{false, true} {
						s := scheme(seed, v, dark, level)
						minimum := 4.5
						if level < 0 {
							minimum = 3
						}
						for _, p := range pairs {
							fg, bg := s.Color(p.fg).LStar(), s.Color(p.bg).LStar()
							ratio := contrast.RatioOfTones(fg, bg)
							atBounds := (fg <= 0.5 && bg >= 99.5) || (fg >= 99.5 && bg <= 0.5)
							assert.True(t, ratio >= minimum || atBounds,
								"%s seed=%s level=%g dark=%v: %s/%s ratio %.3f below %.1f",
								v, seed.Hex(), level, dark, p.fg, p.bg, ratio, minimum)
						}
					}
				}
			}
		})
	}
}

func TestSchemeFixedColors(t *testing.T) {
	roles := []Role{
		PrimaryFixed, PrimaryFixedDim, OnPrimaryFixed, OnPrimaryFixedVariant,
		SecondaryFixed, SecondaryFixedDim, OnSecondaryFixed, OnSecondaryFixedVariant,
		TertiaryFixed, TertiaryFixedDim, OnTertiaryFixed, OnTertiaryFixedVariant,
	}
	monochromeTones := []float64{40, 30, 100, 90, 80, 70, 10, 25, 40, 30, 100, 90}

	tests := []struct {
		name    string
		variant Variant
		dark    bool
		want    []float64
	}{
		{"tonal spot dark", TonalSpot, true, []float64{90, 80, 10, 30, 90, 80, 10, 30, 90, 80, 10, 30}},
		{"monochrome light", Monochrome, false, monochromeTones},
		{"monochrome dark", Monochrome, true, monochromeTones},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scheme(0xFFFF0000, tt.variant, tt.dark, 0)
			for i, r := range roles {
				assert.InDelta(t, tt.want[i], s.HCT(r).Tone(), 1, r.String())
			}
		})
	}
}

func TestSchemeContrastLevelClamped(t *testing.T) {
	high := scheme(0xFF0000FF, TonalSpot, false, 1)
	beyond := scheme(0xFF0000FF, TonalSpot, false, 3)
	assert.Equal(t, 1.0, beyond.ContrastLevel())
	assert.Equal(t, high.Colors(), beyond.Colors())
}

func TestSchemeIdempotentAndConcurrent(t *testing.T) {
	s := scheme(0xFF6750A4, Vibrant, true, 0.5)
	want := s.Colors()
	require.Len(t, want, len(Roles()))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, s.Colors())
		}()
	}
	wg.Wait()

	again := scheme(0xFF6750A4, Vibrant, true, 0.5)
	assert.Equal(t, want, again.Colors())
}

func TestSchemePalettesOverride(t *testing.T) {
	source := hct.FromARGB(0xFF0000FF)
	core := CorePalettes(hct.FromARGB(0xFFAAE5A4), TonalSpot)
	s := NewScheme(source, Options{Palettes: &core})

	want := scheme(0xFFAAE5A4, TonalSpot, false, 0)
	assert.Equal(t, want.Color(Primary), s.Color(Primary))
	assert.Equal(t, want.Color(OnPrimary), s.Color(OnPrimary))
	assert.Equal(t, source, s.Source())
}

func TestSchemeColorsOrder(t *testing.T) {
	colors := scheme(0xFFAAE5A4, TonalSpot, false, 0).Colors()
	for i, rc := range colors {
		assert.Equal(t, Role(i), rc.Role)
	}
}
