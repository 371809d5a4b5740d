package colour

import "math"

// Signum returns -1, 0 or 1 depending on the sign of x.
func Signum(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Lerp linearly interpolates between start and stop.
func Lerp(start, stop, amount float64) float64 {
	return (1-amount)*start + amount*stop
}

// Clamp restricts x to [lo, hi].
func Clamp(lo, hi, x float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampInt restricts x to [lo, hi].
func ClampInt(lo, hi, x int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// SanitizeDegrees maps an angle in degrees into [0, 360).
func SanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SanitizeDegreesInt maps an integer angle into [0, 360).
func SanitizeDegreesInt(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// RotationDirection returns 1 if the shortest rotation from one angle to
// the other is counter-clockwise (increasing), -1 otherwise.
func RotationDirection(from, to float64) float64 {
	if SanitizeDegrees(to-from) <= 180 {
		return 1
	}
	return -1
}

// DifferenceDegrees returns the shortest angular distance between a and b.
func DifferenceDegrees(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}

// MatrixMultiply multiplies a row vector by a 3x3 matrix.
func MatrixMultiply(v [3]float64, m [3][3]float64) [3]float64 {
	return [3]float64{
		v[0]*m[0][0] + v[1]*m[0][1] + v[2]*m[0][2],
		v[0]*m[1][0] + v[1]*m[1][1] + v[2]*m[1][2],
		v[0]*m[2][0] + v[1]*m[2][1] + v[2]*m[2][2],
	}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
