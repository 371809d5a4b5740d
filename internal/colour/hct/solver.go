// Package hct implements the Hue-Chroma-Tone colour space: CAM16 hue and
// chroma paired with L* tone, and the solver that maps it back to sRGB.
package hct

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/cam16"
)

var (
	scaledDiscountFromLinRGB = [3][3]float64{
		{0.001200833568784504, 0.002389694492170889, 0.0002795742885861124},
		{0.0005891086651375999, 0.0029785502573438758, 0.0003270666104008398},
		{0.00010146692491640572, 0.0005364214359186694, 0.0032979401770712076},
	}
	linRGBFromScaledDiscount = [3][3]float64{
		{1373.2198709594231, -1100.4251190754821, -7.278681089101213},
		{-271.815969077903, 559.6580465940733, -32.46047482791194},
		{1.9622899599665666, -57.173814538844006, 308.7233197812385},
	}
	yFromLinRGB = [3]float64{0.2126, 0.7152, 0.0722}

	srgbToXYZ = [3][3]float64{
		{0.41233895, 0.35762064, 0.18051042},
		{0.2126, 0.7152, 0.0722},
		{0.01932141, 0.11916382, 0.95034478},
	}
	cat16 = [3][3]float64{
		{0.401288, 0.650173, -0.051461},
		{-0.250268, 1.204414, 0.045854},
		{-0.002079, 0.048952, 0.953127},
	}
)

// Solver finds sRGB colours for HCT coordinates under fixed viewing
// conditions. A Solver is immutable and safe for concurrent use.
type Solver struct {
	vc               cam16.ViewingConditions
	scaledDiscount   [3][3]float64
	linRGBFromScaled [3][3]float64
	tInnerCoeff      float64
}

var defaultSolver = &Solver{
	vc:               cam16.Default(),
	scaledDiscount:   scaledDiscountFromLinRGB,
	linRGBFromScaled: linRGBFromScaledDiscount,
	tInnerCoeff:      1 / math.Pow(1.64-math.Pow(0.29, cam16.Default().N), 0.73),
}

// DefaultSolver returns the solver for the standard viewing conditions.
func DefaultSolver() *Solver {
	return defaultSolver
}

// NewSolver returns a solver for vc.
func NewSolver(vc cam16.ViewingConditions) *Solver {
	if vc == cam16.Default() {
		return defaultSolver
	}
	return solverFor(vc)
}

// solverFor derives the solver matrices from vc instead of using the
// precomputed standard ones.
func solverFor(vc cam16.ViewingConditions) *Solver {
	var m [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += cat16[i][k] * srgbToXYZ[k][j]
			}
			m[i][j] = sum * vc.RgbD[i] * vc.Fl / 100
		}
	}
	return &Solver{
		vc:               vc,
		scaledDiscount:   m,
		linRGBFromScaled: invert(m),
		tInnerCoeff:      1 / math.Pow(1.64-math.Pow(0.29, vc.N), 0.73),
	}
}

// ViewingConditions returns the conditions the solver was built for.
func (s *Solver) ViewingConditions() cam16.ViewingConditions {
	return s.vc
}

// Solve returns the sRGB colour closest to the requested hue, chroma and
// tone. Hue and tone are matched closely; when the chroma is out of gamut
// the most chromatic colour on the gamut boundary is returned instead.
func (s *Solver) Solve(hue, chroma, tone float64) colour.ARGB {
	tone = colour.Clamp(0, 100, tone)
	if chroma < 0.0001 || tone < 0.0001 || tone > 99.9999 {
		return colour.FromLStar(tone)
	}

	hueRadians := colour.Radians(colour.SanitizeDegrees(hue))
	y := colour.YFromLStar(tone)

	if exact, ok := s.findResultByJ(hueRadians, chroma, y); ok {
		return exact
	}
	return colour.FromLinRGB(s.bisectToLimit(y, hueRadians))
}

// SolveCAM is Solve followed by the forward CAM16 transform.
func (s *Solver) SolveCAM(hue, chroma, tone float64) cam16.CAM {
	return cam16.FromARGBIn(s.Solve(hue, chroma, tone), s.vc)
}

// findResultByJ runs Newton iterations on J at fixed hue and chroma.
// It fails when the iteration leaves the sRGB cube.
func (s *Solver) findResultByJ(hueRadians, chroma, y float64) (colour.ARGB, bool) {
	vc := s.vc
	j := math.Sqrt(y) * 11

	eHue := 0.25 * (math.Cos(hueRadians+2) + 3.8)
	p1 := eHue * (50000.0 / 13) * vc.Nc * vc.Ncb
	hSin := math.Sin(hueRadians)
	hCos := math.Cos(hueRadians)

	for round := 0; round < 5; round++ {
		jNormalized := j / 100
		alpha := 0.0
		if chroma != 0 && j != 0 {
			alpha = chroma / math.Sqrt(jNormalized)
		}
		t := math.Pow(alpha*s.tInnerCoeff, 1/0.9)
		ac := vc.Aw * math.Pow(jNormalized, 1/vc.C/vc.Z)
		p2 := ac / vc.Nbb
		gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
		a := gamma * hCos
		b := gamma * hSin
		rA := (460*p2 + 451*a + 288*b) / 1403
		gA := (460*p2 - 891*a - 261*b) / 1403
		bA := (460*p2 - 220*a - 6300*b) / 1403

		scaled := [3]float64{
			inverseChromaticAdaptation(rA),
			inverseChromaticAdaptation(gA),
			inverseChromaticAdaptation(bA),
		}
		linrgb := colour.MatrixMultiply(scaled, s.linRGBFromScaled)
		if linrgb[0] < 0 || linrgb[1] < 0 || linrgb[2] < 0 {
			return 0, false
		}

		fnj := yFromLinRGB[0]*linrgb[0] + yFromLinRGB[1]*linrgb[1] + yFromLinRGB[2]*linrgb[2]
		if fnj <= 0 {
			return 0, false
		}
		if round == 4 || math.Abs(fnj-y) < 0.002 {
			if linrgb[0] > 100.01 || linrgb[1] > 100.01 || linrgb[2] > 100.01 {
				return 0, false
			}
			return colour.FromLinRGB(linrgb), true
		}

		// 2 * fn(j) / j approximates fn'(j).
		j -= (fnj - y) * j / (2 * fnj)
	}
	return 0, false
}

func (s *Solver) hueOf(linrgb [3]float64) float64 {
	scaled := colour.MatrixMultiply(linrgb, s.scaledDiscount)
	rA := chromaticAdaptation(scaled[0])
	gA := chromaticAdaptation(scaled[1])
	bA := chromaticAdaptation(scaled[2])
	a := (11*rA - 12*gA + bA) / 11
	b := (rA + gA - 2*bA) / 9
	return math.Atan2(b, a)
}

// bisectToSegment finds the edge of the constant-Y slice of the RGB cube
// whose endpoints bracket targetHue.
func (s *Solver) bisectToSegment(y, targetHue float64) (left, right [3]float64) {
	left = [3]float64{-1, -1, -1}
	right = left
	var leftHue, rightHue float64
	initialized := false
	uncut := true

	for n := 0; n < 12; n++ {
		mid := nthVertex(y, n)
		if mid[0] < 0 {
			continue
		}
		midHue := s.hueOf(mid)
		if !initialized {
			left, right = mid, mid
			leftHue, rightHue = midHue, midHue
			initialized = true
			continue
		}
		if uncut || inCyclicOrder(leftHue, midHue, rightHue) {
			uncut = false
			if inCyclicOrder(leftHue, targetHue, midHue) {
				right = mid
				rightHue = midHue
			} else {
				left = mid
				leftHue = midHue
			}
		}
	}
	return left, right
}

// bisectToLimit walks the bracketing edge across critical planes until
// the hue is pinned to within one 8-bit step on every axis.
func (s *Solver) bisectToLimit(y, targetHue float64) [3]float64 {
	left, right := s.bisectToSegment(y, targetHue)
	leftHue := s.hueOf(left)

	for axis := 0; axis < 3; axis++ {
		if left[axis] == right[axis] {
			continue
		}
		var lPlane, rPlane int
		if left[axis] < right[axis] {
			lPlane = criticalPlaneBelow(trueDelinearized(left[axis]))
			rPlane = criticalPlaneAbove(trueDelinearized(right[axis]))
		} else {
			lPlane = criticalPlaneAbove(trueDelinearized(left[axis]))
			rPlane = criticalPlaneBelow(trueDelinearized(right[axis]))
		}
		for i := 0; i < 8; i++ {
			if abs(rPlane-lPlane) <= 1 {
				break
			}
			mPlane := int(math.Floor(float64(lPlane+rPlane) / 2))
			mid := setCoordinate(left, criticalPlanes[mPlane], right, axis)
			midHue := s.hueOf(mid)
			if inCyclicOrder(leftHue, targetHue, midHue) {
				right = mid
				rPlane = mPlane
			} else {
				left = mid
				leftHue = midHue
				lPlane = mPlane
			}
		}
	}

	return [3]float64{
		(left[0] + right[0]) / 2,
		(left[1] + right[1]) / 2,
		(left[2] + right[2]) / 2,
	}
}

// nthVertex returns the nth of the 12 candidate vertices of the polygon
// formed by the plane Y = y and the RGB cube, or {-1,-1,-1} when that
// vertex lies outside the cube.
func nthVertex(y float64, n int) [3]float64 {
	kR, kG, kB := yFromLinRGB[0], yFromLinRGB[1], yFromLinRGB[2]
	coordA := 0.0
	if n%4 > 1 {
		coordA = 100
	}
	coordB := 0.0
	if n%2 == 1 {
		coordB = 100
	}
	none := [3]float64{-1, -1, -1}

	switch {
	case n < 4:
		g, b := coordA, coordB
		r := (y - g*kG - b*kB) / kR
		if isBounded(r) {
			return [3]float64{r, g, b}
		}
	case n < 8:
		b, r := coordA, coordB
		g := (y - r*kR - b*kB) / kG
		if isBounded(g) {
			return [3]float64{r, g, b}
		}
	default:
		r, g := coordA, coordB
		b := (y - r*kR - g*kG) / kB
		if isBounded(b) {
			return [3]float64{r, g, b}
		}
	}
	return none
}

func setCoordinate(source [3]float64, coordinate float64, target [3]float64, axis int) [3]float64 {
	t := (coordinate - source[axis]) / (target[axis] - source[axis])
	return [3]float64{
		source[0] + (target[0]-source[0])*t,
		source[1] + (target[1]-source[1])*t,
		source[2] + (target[2]-source[2])*t,
	}
}

func isBounded(x float64) bool {
	return x >= 0 && x <= 100
}

func inCyclicOrder(a, b, c float64) bool {
	return sanitizeRadians(b-a) < sanitizeRadians(c-a)
}

func sanitizeRadians(angle float64) float64 {
	return math.Mod(angle+math.Pi*8, math.Pi*2)
}

// trueDelinearized is Delinearized without rounding, scaled to [0, 255].
func trueDelinearized(component float64) float64 {
	n := component / 100
	if n <= 0.0031308 {
		return n * 12.92 * 255
	}
	return (1.055*math.Pow(n, 1/2.4) - 0.055) * 255
}

func criticalPlaneBelow(x float64) int {
	return int(math.Floor(x - 0.5))
}

func criticalPlaneAbove(x float64) int {
	return int(math.Ceil(x - 0.5))
}

func chromaticAdaptation(component float64) float64 {
	af := math.Pow(math.Abs(component), 0.42)
	return colour.Signum(component) * 400 * af / (af + 27.13)
}

func inverseChromaticAdaptation(adapted float64) float64 {
	adaptedAbs := math.Abs(adapted)
	base := math.Max(0, 27.13*adaptedAbs/(400-adaptedAbs))
	return colour.Signum(adapted) * math.Pow(base, 1/0.42)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func invert(m [3][3]float64) [3][3]float64 {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	inv := 1 / det
	return [3][3]float64{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv,
		},
	}
}
