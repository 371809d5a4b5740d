package dynamic

import "github.com/jmylchreest/tonal/internal/colour/palette"

func curve(low, normal, medium, high float64) *ContrastCurve {
	return &ContrastCurve{Low: low, Normal: normal, Medium: medium, High: high}
}

type override struct {
	variants []Variant
	f        Formula
}

func variantsWhere(keep func(Variant) bool, f Formula) override {
	var vs []Variant
	for _, v := range Variants() {
		if keep(v) {
			vs = append(vs, v)
		}
	}
	return override{variants: vs, f: f}
}

func monochrome(f Formula) override { return variantsWhere(Variant.isMonochrome, f) }

func fidelity(f Formula) override { return variantsWhere(Variant.isFidelity, f) }

func byVariant(os ...override) map[Variant]Formula {
	out := make(map[Variant]Formula)
	for _, o := range os {
		for _, v := range o.variants {
			out[v] = o.f
		}
	}
	return out
}

func pair(subject, basis Role, polarity TonePolarity, stayTogether bool) *ToneDeltaPair {
	return &ToneDeltaPair{Subject: subject, Basis: basis, Delta: 10, Polarity: polarity, StayTogether: stayTogether}
}

// materialSpecs returns the Material Design 3 role table.
func materialSpecs() []Spec {
	var (
		text      = curve(4.5, 7, 11, 21)
		subtle    = curve(3, 4.5, 7, 11)
		accent    = curve(3, 4.5, 7, 7)
		container = curve(1, 1, 3, 4.5)
	)

	specs := []Spec{
		{Role: PrimaryPaletteKeyColor, Palette: palette.Primary, Tone: keyColor()},
		{Role: SecondaryPaletteKeyColor, Palette: palette.Secondary, Tone: keyColor()},
		{Role: TertiaryPaletteKeyColor, Palette: palette.Tertiary, Tone: keyColor()},
		{Role: NeutralPaletteKeyColor, Palette: palette.Neutral, Tone: keyColor()},
		{Role: NeutralVariantPaletteKeyColor, Palette: palette.NeutralVariant, Tone: keyColor()},

		{Role: Background, Palette: palette.Neutral, Tone: tones(98, 6), IsBackground: true},
		{
			Role: OnBackground, Palette: palette.Neutral, Tone: tones(10, 90),
			Background: On(Background), Curve: curve(3, 3, 4.5, 7),
		},
		{Role: Surface, Palette: palette.Neutral, Tone: tones(98, 6), IsBackground: true},
		{Role: SurfaceDim, Palette: palette.Neutral, Tone: curves(ContrastCurve{87, 87, 80, 75}, flat(6)), IsBackground: true},
		{Role: SurfaceBright, Palette: palette.Neutral, Tone: curves(flat(98), ContrastCurve{24, 24, 29, 34}), IsBackground: true},
		{Role: SurfaceContainerLowest, Palette: palette.Neutral, Tone: curves(flat(100), ContrastCurve{4, 4, 2, 0}), IsBackground: true},
		{Role: SurfaceContainerLow, Palette: palette.Neutral, Tone: curves(ContrastCurve{96, 96, 96, 95}, ContrastCurve{10, 10, 11, 12}), IsBackground: true},
		{Role: SurfaceContainer, Palette: palette.Neutral, Tone: curves(ContrastCurve{94, 94, 92, 90}, ContrastCurve{12, 12, 16, 20}), IsBackground: true},
		{Role: SurfaceContainerHigh, Palette: palette.Neutral, Tone: curves(ContrastCurve{92, 92, 88, 85}, ContrastCurve{17, 17, 21, 25}), IsBackground: true},
		{Role: SurfaceContainerHighest, Palette: palette.Neutral, Tone: curves(ContrastCurve{90, 90, 84, 80}, ContrastCurve{22, 22, 26, 30}), IsBackground: true},
		{
			Role: OnSurface, Palette: palette.Neutral, Tone: tones(10, 90),
			Background: highestSurface(), Curve: text,
		},
		{Role: SurfaceVariant, Palette: palette.NeutralVariant, Tone: tones(90, 30), IsBackground: true},
		{
			Role: OnSurfaceVariant, Palette: palette.NeutralVariant, Tone: tones(30, 80),
			Background: highestSurface(), Curve: subtle,
		},
		{Role: InverseSurface, Palette: palette.Neutral, Tone: tones(20, 90)},
		{
			Role: InverseOnSurface, Palette: palette.Neutral, Tone: tones(95, 20),
			Background: On(InverseSurface), Curve: text,
		},
		{
			Role: Outline, Palette: palette.NeutralVariant, Tone: tones(50, 60),
			Background: highestSurface(), Curve: curve(1.5, 3, 4.5, 7),
		},
		{
			Role: OutlineVariant, Palette: palette.NeutralVariant, Tone: tones(80, 30),
			Background: highestSurface(), Curve: container,
		},
		{Role: Shadow, Palette: palette.Neutral, Tone: fixed(0)},
		{Role: Scrim, Palette: palette.Neutral, Tone: fixed(0)},
		{Role: SurfaceTint, Palette: palette.Primary, Tone: tones(40, 80), IsBackground: true},

		{
			Role: Primary, Palette: palette.Primary, Tone: tones(40, 80),
			Overrides:    byVariant(monochrome(tones(0, 100))),
			IsBackground: true, Background: highestSurface(), Curve: accent,
			Pair: pair(PrimaryContainer, Primary, Nearer, false),
		},
		{
			Role: OnPrimary, Palette: palette.Primary, Tone: tones(100, 20),
			Overrides:  byVariant(monochrome(tones(90, 10))),
			Background: On(Primary), Curve: curve(3, 7, 11, 21),
		},
		{
			Role: PrimaryContainer, Palette: palette.Primary, Tone: tones(90, 30),
			Overrides:    byVariant(monochrome(tones(25, 85)), fidelity(sourceTone())),
			IsBackground: true, Background: highestSurface(), Curve: container,
			Pair: pair(PrimaryContainer, Primary, Nearer, false),
		},
		{
			Role: OnPrimaryContainer, Palette: palette.Primary, Tone: tones(10, 90),
			Overrides:  byVariant(monochrome(tones(100, 0)), fidelity(foreground(PrimaryContainer, 4.5))),
			Background: On(PrimaryContainer), Curve: text,
		},
		{
			Role: InversePrimary, Palette: palette.Primary, Tone: tones(80, 40),
			Background: On(InverseSurface), Curve: accent,
		},

		{
			Role: Secondary, Palette: palette.Secondary, Tone: tones(40, 80),
			IsBackground: true, Background: highestSurface(), Curve: accent,
			Pair: pair(SecondaryContainer, Secondary, Nearer, false),
		},
		{
			Role: OnSecondary, Palette: palette.Secondary, Tone: tones(100, 20),
			Overrides:  byVariant(monochrome(tones(100, 10))),
			Background: On(Secondary), Curve: text,
		},
		{
			Role: SecondaryContainer, Palette: palette.Secondary, Tone: tones(90, 30),
			Overrides:    byVariant(monochrome(tones(85, 30)), fidelity(chromaSearch(90, 30))),
			IsBackground: true, Background: highestSurface(), Curve: container,
			Pair: pair(SecondaryContainer, Secondary, Nearer, false),
		},
		{
			Role: OnSecondaryContainer, Palette: palette.Secondary, Tone: tones(10, 90),
			Overrides:  byVariant(fidelity(foreground(SecondaryContainer, 4.5))),
			Background: On(SecondaryContainer), Curve: text,
		},

		{
			Role: Tertiary, Palette: palette.Tertiary, Tone: tones(40, 80),
			Overrides:    byVariant(monochrome(tones(25, 90))),
			IsBackground: true, Background: highestSurface(), Curve: accent,
			Pair: pair(TertiaryContainer, Tertiary, Nearer, false),
		},
		{
			Role: OnTertiary, Palette: palette.Tertiary, Tone: tones(100, 20),
			Overrides:  byVariant(monochrome(tones(90, 10))),
			Background: On(Tertiary), Curve: text,
		},
		{
			Role: TertiaryContainer, Palette: palette.Tertiary, Tone: tones(90, 30),
			Overrides:    byVariant(monochrome(tones(49, 60)), fidelity(dislikeFixedSource())),
			IsBackground: true, Background: highestSurface(), Curve: container,
			Pair: pair(TertiaryContainer, Tertiary, Nearer, false),
		},
		{
			Role: OnTertiaryContainer, Palette: palette.Tertiary, Tone: tones(10, 90),
			Overrides:  byVariant(monochrome(tones(100, 0)), fidelity(foreground(TertiaryContainer, 4.5))),
			Background: On(TertiaryContainer), Curve: text,
		},

		{
			Role: Error, Palette: palette.Error, Tone: tones(40, 80),
			IsBackground: true, Background: highestSurface(), Curve: accent,
			Pair: pair(ErrorContainer, Error, Nearer, false),
		},
		{
			Role: OnError, Palette: palette.Error, Tone: tones(100, 20),
			Background: On(Error), Curve: text,
		},
		{
			Role: ErrorContainer, Palette: palette.Error, Tone: tones(90, 30),
			IsBackground: true, Background: highestSurface(), Curve: container,
			Pair: pair(ErrorContainer, Error, Nearer, false),
		},
		{
			Role: OnErrorContainer, Palette: palette.Error, Tone: tones(10, 90),
			Background: On(ErrorContainer), Curve: text,
		},
	}

	// Fixed roles keep the same tones in light and dark mode.
	fixedFamily := func(p palette.Role, roles [4]Role, mono [4]float64) []Spec {
		fixedRole, dim, on, onVariant := roles[0], roles[1], roles[2], roles[3]
		return []Spec{
			{
				Role: fixedRole, Palette: p, Tone: fixed(90),
				Overrides:    byVariant(monochrome(fixed(mono[0]))),
				IsBackground: true, Background: highestSurface(), Curve: container,
				Pair: pair(fixedRole, dim, Lighter, true),
			},
			{
				Role: dim, Palette: p, Tone: fixed(80),
				Overrides:    byVariant(monochrome(fixed(mono[1]))),
				IsBackground: true, Background: highestSurface(), Curve: container,
				Pair: pair(fixedRole, dim, Lighter, true),
			},
			{
				Role: on, Palette: p, Tone: fixed(10),
				Overrides:  byVariant(monochrome(fixed(mono[2]))),
				Background: On(dim), SecondBackground: On(fixedRole), Curve: text,
			},
			{
				Role: onVariant, Palette: p, Tone: fixed(30),
				Overrides:  byVariant(monochrome(fixed(mono[3]))),
				Background: On(dim), SecondBackground: On(fixedRole), Curve: subtle,
			},
		}
	}

	specs = append(specs, fixedFamily(palette.Primary,
		[4]Role{PrimaryFixed, PrimaryFixedDim, OnPrimaryFixed, OnPrimaryFixedVariant},
		[4]float64{40, 30, 100, 90})...)
	specs = append(specs, fixedFamily(palette.Secondary,
		[4]Role{SecondaryFixed, SecondaryFixedDim, OnSecondaryFixed, OnSecondaryFixedVariant},
		[4]float64{80, 70, 10, 25})...)
	specs = append(specs, fixedFamily(palette.Tertiary,
		[4]Role{TertiaryFixed, TertiaryFixedDim, OnTertiaryFixed, OnTertiaryFixedVariant},
		[4]float64{40, 30, 100, 90})...)

	return specs
}

var material = MustSpecSet(materialSpecs())

// Material returns the Material Design 3 role set.
func Material() *SpecSet { return material }
