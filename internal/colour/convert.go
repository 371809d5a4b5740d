package colour

import "math"

var (
	srgbToXYZ = [3][3]float64{
		{0.41233895, 0.35762064, 0.18051042},
		{0.2126, 0.7152, 0.0722},
		{0.01932141, 0.11916382, 0.95034478},
	}
	xyzToSRGB = [3][3]float64{
		{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
		{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
		{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
	}
)

// WhitePointD65 is the standard D65 white point, Y normalised to 100.
var WhitePointD65 = [3]float64{95.047, 100.0, 108.883}

// Lab is a colour in the CIE L*a*b* space.
type Lab struct {
	L, A, B float64
}

// Linearized converts an 8-bit sRGB component to linear RGB in [0, 100].
func Linearized(component uint8) float64 {
	n := float64(component) / 255
	if n <= 0.040449936 {
		return n / 12.92 * 100
	}
	return math.Pow((n+0.055)/1.055, 2.4) * 100
}

// Delinearized converts a linear RGB component in [0, 100] to 8-bit sRGB.
func Delinearized(component float64) uint8 {
	n := component / 100
	var d float64
	if n <= 0.0031308 {
		d = n * 12.92
	} else {
		d = 1.055*math.Pow(n, 1/2.4) - 0.055
	}
	return uint8(ClampInt(0, 255, int(math.Round(d*255))))
}

// FromLinRGB returns an opaque colour from linear RGB components in [0, 100].
func FromLinRGB(linrgb [3]float64) ARGB {
	return FromRGB(Delinearized(linrgb[0]), Delinearized(linrgb[1]), Delinearized(linrgb[2]))
}

// LinRGB returns the linear RGB components of c in [0, 100].
func (c ARGB) LinRGB() [3]float64 {
	return [3]float64{Linearized(c.Red()), Linearized(c.Green()), Linearized(c.Blue())}
}

// FromXYZ returns an opaque colour from XYZ coordinates with Y in [0, 100].
func FromXYZ(x, y, z float64) ARGB {
	lin := MatrixMultiply([3]float64{x, y, z}, xyzToSRGB)
	return FromLinRGB(lin)
}

// XYZ returns the XYZ coordinates of c with Y in [0, 100].
func (c ARGB) XYZ() [3]float64 {
	return MatrixMultiply(c.LinRGB(), srgbToXYZ)
}

// Lab returns c in L*a*b* under D65.
func (c ARGB) Lab() Lab {
	xyz := c.XYZ()
	fx := labF(xyz[0] / WhitePointD65[0])
	fy := labF(xyz[1] / WhitePointD65[1])
	fz := labF(xyz[2] / WhitePointD65[2])
	return Lab{L: 116*fy - 16, A: 500 * (fx - fy), B: 200 * (fy - fz)}
}

// FromLab returns an opaque colour from L*a*b* coordinates under D65.
func FromLab(lab Lab) ARGB {
	fy := (lab.L + 16) / 116
	fx := lab.A/500 + fy
	fz := fy - lab.B/200
	return FromXYZ(
		labInvf(fx)*WhitePointD65[0],
		labInvf(fy)*WhitePointD65[1],
		labInvf(fz)*WhitePointD65[2],
	)
}

// LStar returns the L* (perceptual lightness, 0-100) of c.
func (c ARGB) LStar() float64 {
	return 116*labF(c.XYZ()[1]/100) - 16
}

// FromLStar returns the grey colour with the given L*.
func FromLStar(lstar float64) ARGB {
	y := YFromLStar(lstar)
	d := Delinearized(y)
	return FromRGB(d, d, d)
}

// YFromLStar converts L* to relative luminance Y in [0, 100].
func YFromLStar(lstar float64) float64 {
	return 100 * labInvf((lstar+16)/116)
}

// LStarFromY converts relative luminance Y in [0, 100] to L*.
func LStarFromY(y float64) float64 {
	return labF(y/100)*116 - 16
}

const (
	labE     = 216.0 / 24389.0
	labKappa = 24389.0 / 27.0
)

func labF(t float64) float64 {
	if t > labE {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labInvf(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > labE {
		return ft3
	}
	return (116*ft - 16) / labKappa
}
