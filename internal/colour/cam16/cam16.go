package cam16

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
)

// CAM holds the appearance attributes of a colour. Values are produced by
// the forward transform or by FromJCh/FromUCS; the zero value is black.
type CAM struct {
	// Hue in degrees, [0, 360).
	Hue float64
	// Chroma is colourfulness relative to a similarly lit white.
	Chroma float64
	// J is lightness.
	J float64
	// Q is brightness.
	Q float64
	// M is colourfulness.
	M float64
	// S is saturation.
	S float64
	// JStar, AStar and BStar are the CAM16-UCS coordinates.
	JStar float64
	AStar float64
	BStar float64
}

// FromARGB returns the appearance of c under the default viewing conditions.
func FromARGB(c colour.ARGB) CAM {
	return FromARGBIn(c, Default())
}

// FromARGBIn returns the appearance of c under vc.
func FromARGBIn(c colour.ARGB, vc ViewingConditions) CAM {
	xyz := c.XYZ()
	return FromXYZIn(xyz[0], xyz[1], xyz[2], vc)
}

// FromXYZIn returns the appearance of the XYZ coordinates (Y in [0, 100]) under vc.
func FromXYZIn(x, y, z float64, vc ViewingConditions) CAM {
	rC := 0.401288*x + 0.650173*y - 0.051461*z
	gC := -0.250268*x + 1.204414*y + 0.045854*z
	bC := -0.002079*x + 0.048952*y + 0.953127*z

	rA := adapt(vc.RgbD[0]*rC, vc.Fl)
	gA := adapt(vc.RgbD[1]*gC, vc.Fl)
	bA := adapt(vc.RgbD[2]*bC, vc.Fl)

	a := (11*rA - 12*gA + bA) / 11
	b := (rA + gA - 2*bA) / 9
	u := (20*rA + 20*gA + 21*bA) / 20
	p2 := (40*rA + 20*gA + bA) / 20

	hue := colour.SanitizeDegrees(colour.Degrees(math.Atan2(b, a)))
	hueRadians := colour.Radians(hue)

	ac := p2 * vc.Nbb
	j := 100 * math.Pow(ac/vc.Aw, vc.C*vc.Z)
	q := 4 / vc.C * math.Sqrt(j/100) * (vc.Aw + 4) * vc.FlRoot

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math.Cos(colour.Radians(huePrime)+2) + 3.8)
	p1 := 50000.0 / 13 * eHue * vc.Nc * vc.Ncb
	t := p1 * math.Hypot(a, b) / (u + 0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vc.N), 0.73)

	chroma := alpha * math.Sqrt(j/100)
	m := chroma * vc.FlRoot
	s := 50 * math.Sqrt(alpha*vc.C/(vc.Aw+4))

	jStar := (1 + 100*0.007) * j / (1 + 0.007*j)
	mStar := math.Log1p(0.0228*m) / 0.0228

	return CAM{
		Hue:    hue,
		Chroma: chroma,
		J:      j,
		Q:      q,
		M:      m,
		S:      s,
		JStar:  jStar,
		AStar:  mStar * math.Cos(hueRadians),
		BStar:  mStar * math.Sin(hueRadians),
	}
}

// adapt applies the post-adaptation non-linear compression to a cone response.
func adapt(component, fl float64) float64 {
	af := math.Pow(fl*math.Abs(component)/100, 0.42)
	return colour.Signum(component) * 400 * af / (af + 27.13)
}

// FromJCh builds appearance attributes from lightness, chroma and hue under
// the default viewing conditions.
func FromJCh(j, c, h float64) CAM {
	return FromJChIn(j, c, h, Default())
}

// FromJChIn builds appearance attributes from lightness, chroma and hue under vc.
func FromJChIn(j, c, h float64, vc ViewingConditions) CAM {
	q := 4 / vc.C * math.Sqrt(j/100) * (vc.Aw + 4) * vc.FlRoot
	m := c * vc.FlRoot
	alpha := c / math.Sqrt(j/100)
	s := 50 * math.Sqrt(alpha*vc.C/(vc.Aw+4))

	hueRadians := colour.Radians(h)
	jStar := (1 + 100*0.007) * j / (1 + 0.007*j)
	mStar := math.Log1p(0.0228*m) / 0.0228

	return CAM{
		Hue:    h,
		Chroma: c,
		J:      j,
		Q:      q,
		M:      m,
		S:      s,
		JStar:  jStar,
		AStar:  mStar * math.Cos(hueRadians),
		BStar:  mStar * math.Sin(hueRadians),
	}
}

// FromUCS builds appearance attributes from CAM16-UCS coordinates under
// the default viewing conditions.
func FromUCS(jStar, aStar, bStar float64) CAM {
	return FromUCSIn(jStar, aStar, bStar, Default())
}

// FromUCSIn builds appearance attributes from CAM16-UCS coordinates under vc.
func FromUCSIn(jStar, aStar, bStar float64, vc ViewingConditions) CAM {
	m := math.Expm1(math.Hypot(aStar, bStar)*0.0228) / 0.0228
	c := m / vc.FlRoot
	h := colour.SanitizeDegrees(colour.Degrees(math.Atan2(bStar, aStar)))
	j := jStar / (1 - (jStar-100)*0.007)
	return FromJChIn(j, c, h, vc)
}

// Distance returns the perceptual distance to other in CAM16-UCS.
func (c CAM) Distance(other CAM) float64 {
	dJ := c.JStar - other.JStar
	dA := c.AStar - other.AStar
	dB := c.BStar - other.BStar
	dEPrime := math.Sqrt(dJ*dJ + dA*dA + dB*dB)
	return 1.41 * math.Pow(dEPrime, 0.63)
}

// ARGB converts back to a colour under the default viewing conditions.
func (c CAM) ARGB() colour.ARGB {
	return c.ARGBIn(Default())
}

// ARGBIn converts back to a colour under vc.
func (c CAM) ARGBIn(vc ViewingConditions) colour.ARGB {
	xyz := c.XYZIn(vc)
	return colour.FromXYZ(xyz[0], xyz[1], xyz[2])
}

// XYZIn returns the XYZ coordinates (Y in [0, 100]) of c under vc.
func (c CAM) XYZIn(vc ViewingConditions) [3]float64 {
	alpha := 0.0
	if c.Chroma != 0 && c.J != 0 {
		alpha = c.Chroma / math.Sqrt(c.J/100)
	}

	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vc.N), 0.73), 1/0.9)
	hRad := colour.Radians(c.Hue)

	eHue := 0.25 * (math.Cos(hRad+2) + 3.8)
	ac := vc.Aw * math.Pow(c.J/100, 1/vc.C/vc.Z)
	p1 := eHue * (50000.0 / 13) * vc.Nc * vc.Ncb
	p2 := ac / vc.Nbb

	hSin := math.Sin(hRad)
	hCos := math.Cos(hRad)

	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin

	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	rF := unadapt(rA, vc.Fl) / vc.RgbD[0]
	gF := unadapt(gA, vc.Fl) / vc.RgbD[1]
	bF := unadapt(bA, vc.Fl) / vc.RgbD[2]

	return [3]float64{
		1.86206786*rF - 1.01125463*gF + 0.14918677*bF,
		0.38752654*rF + 0.62144744*gF - 0.00897398*bF,
		-0.01584150*rF - 0.03412294*gF + 1.04996444*bF,
	}
}

// unadapt inverts adapt.
func unadapt(component, fl float64) float64 {
	base := math.Max(0, 27.13*math.Abs(component)/(400-math.Abs(component)))
	return colour.Signum(component) * 100 / fl * math.Pow(base, 1/0.42)
}
