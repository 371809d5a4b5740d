package quantize

import (
	"github.com/jmylchreest/tonal/internal/colour"
)

// Histogram precision for the Wu quantizer.
const (
	WuIndexBits  = 5
	wuIndexCount = (1 << WuIndexBits) + 1
	wuTotalSize  = wuIndexCount * wuIndexCount * wuIndexCount
)

type direction int

const (
	red direction = iota
	green
	blue
)

type box struct {
	r0, r1 int
	g0, g1 int
	b0, b1 int
	vol    int
}

// wu holds the cumulative moments of a colour cube.
type wu struct {
	weights  []int64
	momentsR []int64
	momentsG []int64
	momentsB []int64
	moments  []float64
	cubes    []box
}

// Wu splits the colour cube of h into at most maxColors boxes of minimal
// variance and returns the population-weighted mean of each box.
func Wu(h Histogram, maxColors int) []colour.ARGB {
	if maxColors <= 0 || h.Len() == 0 {
		return nil
	}
	q := &wu{}
	q.constructHistogram(h)
	q.createMoments()
	count := q.createBoxes(maxColors)
	return q.createResult(count)
}

func wuIndex(r, g, b int) int {
	return r*wuIndexCount*wuIndexCount + g*wuIndexCount + b
}

func (q *wu) constructHistogram(h Histogram) {
	q.weights = make([]int64, wuTotalSize)
	q.momentsR = make([]int64, wuTotalSize)
	q.momentsG = make([]int64, wuTotalSize)
	q.momentsB = make([]int64, wuTotalSize)
	q.moments = make([]float64, wuTotalSize)

	const bitsToRemove = 8 - WuIndexBits
	for i, c := range h.Colors {
		count := int64(h.Counts[i])
		r, g, b := int64(c.Red()), int64(c.Green()), int64(c.Blue())
		index := wuIndex(int(r>>bitsToRemove)+1, int(g>>bitsToRemove)+1, int(b>>bitsToRemove)+1)
		q.weights[index] += count
		q.momentsR[index] += r * count
		q.momentsG[index] += g * count
		q.momentsB[index] += b * count
		q.moments[index] += float64(count * (r*r + g*g + b*b))
	}
}

// createMoments turns per-bin sums into cumulative sums so that any box
// total can be read from eight corners.
func (q *wu) createMoments() {
	for r := 1; r < wuIndexCount; r++ {
		var area, areaR, areaG, areaB [wuIndexCount]int64
		var area2 [wuIndexCount]float64
		for g := 1; g < wuIndexCount; g++ {
			var line, lineR, lineG, lineB int64
			var line2 float64
			for b := 1; b < wuIndexCount; b++ {
				index := wuIndex(r, g, b)
				line += q.weights[index]
				lineR += q.momentsR[index]
				lineG += q.momentsG[index]
				lineB += q.momentsB[index]
				line2 += q.moments[index]

				area[b] += line
				areaR[b] += lineR
				areaG[b] += lineG
				areaB[b] += lineB
				area2[b] += line2

				prev := wuIndex(r-1, g, b)
				q.weights[index] = q.weights[prev] + area[b]
				q.momentsR[index] = q.momentsR[prev] + areaR[b]
				q.momentsG[index] = q.momentsG[prev] + areaG[b]
				q.momentsB[index] = q.momentsB[prev] + areaB[b]
				q.moments[index] = q.moments[prev] + area2[b]
			}
		}
	}
}

// createBoxes repeatedly cuts the box with the largest variance and
// returns how many boxes were produced.
func (q *wu) createBoxes(maxColors int) int {
	q.cubes = make([]box, maxColors)
	variances := make([]float64, maxColors)
	q.cubes[0] = box{r1: wuIndexCount - 1, g1: wuIndexCount - 1, b1: wuIndexCount - 1}

	generated := maxColors
	next := 0
	for i := 1; i < maxColors; i++ {
		if q.cut(&q.cubes[next], &q.cubes[i]) {
			variances[next] = 0
			if q.cubes[next].vol > 1 {
				variances[next] = q.variance(q.cubes[next])
			}
			variances[i] = 0
			if q.cubes[i].vol > 1 {
				variances[i] = q.variance(q.cubes[i])
			}
		} else {
			variances[next] = 0
			i--
		}

		next = 0
		temp := variances[0]
		for j := 1; j <= i; j++ {
			if variances[j] > temp {
				temp = variances[j]
				next = j
			}
		}
		if temp <= 0 {
			generated = i + 1
			break
		}
	}
	return generated
}

func (q *wu) createResult(count int) []colour.ARGB {
	var out []colour.ARGB
	for i := 0; i < count; i++ {
		cube := q.cubes[i]
		weight := volume(cube, q.weights)
		if weight <= 0 {
			continue
		}
		r := volume(cube, q.momentsR) / weight
		g := volume(cube, q.momentsG) / weight
		b := volume(cube, q.momentsB) / weight
		out = append(out, colour.FromRGB(uint8(r), uint8(g), uint8(b)))
	}
	return out
}

func (q *wu) variance(cube box) float64 {
	dr := float64(volume(cube, q.momentsR))
	dg := float64(volume(cube, q.momentsG))
	db := float64(volume(cube, q.momentsB))
	m := q.moments
	xx := m[wuIndex(cube.r1, cube.g1, cube.b1)] -
		m[wuIndex(cube.r1, cube.g1, cube.b0)] -
		m[wuIndex(cube.r1, cube.g0, cube.b1)] +
		m[wuIndex(cube.r1, cube.g0, cube.b0)] -
		m[wuIndex(cube.r0, cube.g1, cube.b1)] +
		m[wuIndex(cube.r0, cube.g1, cube.b0)] +
		m[wuIndex(cube.r0, cube.g0, cube.b1)] -
		m[wuIndex(cube.r0, cube.g0, cube.b0)]
	hypotenuse := dr*dr + dg*dg + db*db
	return xx - hypotenuse/float64(volume(cube, q.weights))
}

func (q *wu) cut(one, two *box) bool {
	wholeR := volume(*one, q.momentsR)
	wholeG := volume(*one, q.momentsG)
	wholeB := volume(*one, q.momentsB)
	wholeW := volume(*one, q.weights)

	maxR, cutR := q.maximize(*one, red, one.r0+1, one.r1, wholeR, wholeG, wholeB, wholeW)
	maxG, cutG := q.maximize(*one, green, one.g0+1, one.g1, wholeR, wholeG, wholeB, wholeW)
	maxB, cutB := q.maximize(*one, blue, one.b0+1, one.b1, wholeR, wholeG, wholeB, wholeW)

	var dir direction
	switch {
	case maxR >= maxG && maxR >= maxB:
		if cutR < 0 {
			return false
		}
		dir = red
	case maxG >= maxR && maxG >= maxB:
		dir = green
	default:
		dir = blue
	}

	two.r1, two.g1, two.b1 = one.r1, one.g1, one.b1
	switch dir {
	case red:
		one.r1 = cutR
		two.r0, two.g0, two.b0 = one.r1, one.g0, one.b0
	case green:
		one.g1 = cutG
		two.r0, two.g0, two.b0 = one.r0, one.g1, one.b0
	case blue:
		one.b1 = cutB
		two.r0, two.g0, two.b0 = one.r0, one.g0, one.b1
	}

	one.vol = (one.r1 - one.r0) * (one.g1 - one.g0) * (one.b1 - one.b0)
	two.vol = (two.r1 - two.r0) * (two.g1 - two.g0) * (two.b1 - two.b0)
	return true
}

// maximize finds the cut position along dir that maximises the sum of
// the squared means of both halves.
func (q *wu) maximize(cube box, dir direction, first, last int, wholeR, wholeG, wholeB, wholeW int64) (float64, int) {
	bottomR := bottom(cube, dir, q.momentsR)
	bottomG := bottom(cube, dir, q.momentsG)
	bottomB := bottom(cube, dir, q.momentsB)
	bottomW := bottom(cube, dir, q.weights)

	maximum := 0.0
	cut := -1
	for i := first; i < last; i++ {
		halfR := bottomR + top(cube, dir, i, q.momentsR)
		halfG := bottomG + top(cube, dir, i, q.momentsG)
		halfB := bottomB + top(cube, dir, i, q.momentsB)
		halfW := bottomW + top(cube, dir, i, q.weights)
		if halfW == 0 {
			continue
		}
		temp := sumSquares(halfR, halfG, halfB) / float64(halfW)

		halfR = wholeR - halfR
		halfG = wholeG - halfG
		halfB = wholeB - halfB
		halfW = wholeW - halfW
		if halfW == 0 {
			continue
		}
		temp += sumSquares(halfR, halfG, halfB) / float64(halfW)

		if temp > maximum {
			maximum = temp
			cut = i
		}
	}
	return maximum, cut
}

func sumSquares(r, g, b int64) float64 {
	fr, fg, fb := float64(r), float64(g), float64(b)
	return fr*fr + fg*fg + fb*fb
}

func volume(cube box, moment []int64) int64 {
	return moment[wuIndex(cube.r1, cube.g1, cube.b1)] -
		moment[wuIndex(cube.r1, cube.g1, cube.b0)] -
		moment[wuIndex(cube.r1, cube.g0, cube.b1)] +
		moment[wuIndex(cube.r1, cube.g0, cube.b0)] -
		moment[wuIndex(cube.r0, cube.g1, cube.b1)] +
		moment[wuIndex(cube.r0, cube.g1, cube.b0)] +
		moment[wuIndex(cube.r0, cube.g0, cube.b1)] -
		moment[wuIndex(cube.r0, cube.g0, cube.b0)]
}

func bottom(cube box, dir direction, moment []int64) int64 {
	switch dir {
	case red:
		return -moment[wuIndex(cube.r0, cube.g1, cube.b1)] +
			moment[wuIndex(cube.r0, cube.g1, cube.b0)] +
			moment[wuIndex(cube.r0, cube.g0, cube.b1)] -
			moment[wuIndex(cube.r0, cube.g0, cube.b0)]
	case green:
		return -moment[wuIndex(cube.r1, cube.g0, cube.b1)] +
			moment[wuIndex(cube.r1, cube.g0, cube.b0)] +
			moment[wuIndex(cube.r0, cube.g0, cube.b1)] -
			moment[wuIndex(cube.r0, cube.g0, cube.b0)]
	default:
		return -moment[wuIndex(cube.r1, cube.g1, cube.b0)] +
			moment[wuIndex(cube.r1, cube.g0, cube.b0)] +
			moment[wuIndex(cube.r0, cube.g1, cube.b0)] -
			moment[wuIndex(cube.r0, cube.g0, cube.b0)]
	}
}

func top(cube box, dir direction, position int, moment []int64) int64 {
	switch dir {
	case red:
		return moment[wuIndex(position, cube.g1, cube.b1)] -
			moment[wuIndex(position, cube.g1, cube.b0)] -
			moment[wuIndex(position, cube.g0, cube.b1)] +
			moment[wuIndex(position, cube.g0, cube.b0)]
	case green:
		return moment[wuIndex(cube.r1, position, cube.b1)] -
			moment[wuIndex(cube.r1, position, cube.b0)] -
			moment[wuIndex(cube.r0, position, cube.b1)] +
			moment[wuIndex(cube.r0, position, cube.b0)]
	default:
		return moment[wuIndex(cube.r1, cube.g1, position)] -
			moment[wuIndex(cube.r1, cube.g0, position)] -
			moment[wuIndex(cube.r0, cube.g1, position)] +
			moment[wuIndex(cube.r0, cube.g0, position)]
	}
}
