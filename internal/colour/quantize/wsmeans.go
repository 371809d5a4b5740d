package quantize

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/tonal/internal/colour"
)

// PointProvider maps colours into the space clustering is done in.
type PointProvider interface {
	FromARGB(c colour.ARGB) colour.Lab
	ToARGB(p colour.Lab) colour.ARGB
	// Distance returns a monotonic measure of the distance between two
	// points; it need not be the true metric.
	Distance(a, b colour.Lab) float64
}

// LabProvider clusters in CIE L*a*b* with squared Euclidean distance.
type LabProvider struct{}

// FromARGB implements PointProvider.
func (LabProvider) FromARGB(c colour.ARGB) colour.Lab { return c.Lab() }

// ToARGB implements PointProvider.
func (LabProvider) ToARGB(p colour.Lab) colour.ARGB { return colour.FromLab(p) }

// Distance implements PointProvider.
func (LabProvider) Distance(a, b colour.Lab) float64 {
	dL := a.L - b.L
	dA := a.A - b.A
	dB := a.B - b.B
	return dL*dL + dA*dA + dB*dB
}

// Weighted-mean refinement tuning.
const (
	WSMeansSeed          = 0x42688
	WSMeansMaxIterations = 10
	// Points only change cluster when that moves them at least this far.
	wsmeansMinMovement = 3.0
	// Assignment is split across goroutines above this many points.
	parallelAssignThreshold = 4096
)

// WSMeans refines starting clusters against every colour of h with
// weighted k-means. When fewer starting clusters than maxColors are given
// and none are given at all, clusters are drawn from the input with a
// fixed-seed generator. Clusters that end up empty are dropped; clusters
// that converge on the same colour are merged.
func WSMeans(h Histogram, starting []colour.ARGB, maxColors int) []Entry {
	return wsmeans(h, starting, maxColors, LabProvider{}, WSMeansMaxIterations)
}

func wsmeans(h Histogram, starting []colour.ARGB, maxColors int, pp PointProvider, maxIterations int) []Entry {
	pointCount := h.Len()
	if pointCount == 0 || maxColors <= 0 {
		return nil
	}

	points := make([]colour.Lab, pointCount)
	for i, c := range h.Colors {
		points[i] = pp.FromARGB(c)
	}
	counts := h.Counts

	clusterCount := min(maxColors, pointCount)
	if len(starting) > 0 {
		clusterCount = min(clusterCount, len(starting))
	}

	clusters := make([]colour.Lab, 0, clusterCount)
	for _, c := range starting[:min(len(starting), clusterCount)] {
		clusters = append(clusters, pp.FromARGB(c))
	}
	if extra := clusterCount - len(clusters); extra > 0 {
		// Seed from real pixels rather than random points in the space so
		// that no centroid starts out far from every colour.
		pick := NewRandom(WSMeansSeed)
		used := make(map[int32]bool, extra)
		for i := 0; i < extra; i++ {
			idx := pick.Intn(int32(pointCount))
			for used[idx] {
				idx = pick.Intn(int32(pointCount))
			}
			used[idx] = true
			clusters = append(clusters, points[idx])
		}
	}

	rnd := NewRandom(WSMeansSeed)
	assignment := make([]int, pointCount)
	for i := range assignment {
		assignment[i] = int(rnd.Intn(int32(clusterCount)))
	}

	between := make([][]float64, clusterCount)
	for i := range between {
		between[i] = make([]float64, clusterCount)
	}
	sums := make([]int, clusterCount)

	for iteration := 0; iteration < maxIterations; iteration++ {
		for i := 0; i < clusterCount; i++ {
			for j := i + 1; j < clusterCount; j++ {
				d := pp.Distance(clusters[i], clusters[j])
				between[i][j] = d
				between[j][i] = d
			}
		}

		moved := assign(points, clusters, between, assignment, pp)
		if moved == 0 && iteration > 0 {
			break
		}

		sumL := make([]float64, clusterCount)
		sumA := make([]float64, clusterCount)
		sumB := make([]float64, clusterCount)
		clear(sums)
		for i, p := range points {
			ci := assignment[i]
			n := counts[i]
			sums[ci] += n
			sumL[ci] += p.L * float64(n)
			sumA[ci] += p.A * float64(n)
			sumB[ci] += p.B * float64(n)
		}
		for i := range clusters {
			if sums[i] == 0 {
				clusters[i] = colour.Lab{}
				continue
			}
			n := float64(sums[i])
			clusters[i] = colour.Lab{L: sumL[i] / n, A: sumA[i] / n, B: sumB[i] / n}
		}
	}

	var out []Entry
	index := make(map[colour.ARGB]int)
	for i, cl := range clusters {
		if sums[i] == 0 {
			continue
		}
		c := pp.ToARGB(cl)
		if j, ok := index[c]; ok {
			out[j].Population += sums[i]
			continue
		}
		index[c] = len(out)
		out = append(out, Entry{Color: c, Population: sums[i]})
	}
	return out
}

// assign moves every point to its nearest cluster and returns how many
// points moved. Each point only reads shared state, so ranges of points are
// processed concurrently and the integer move counts summed afterwards.
func assign(points, clusters []colour.Lab, between [][]float64, assignment []int, pp PointProvider) int {
	if len(points) < parallelAssignThreshold {
		return assignRange(points, clusters, between, assignment, pp, 0, len(points))
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(points) + workers - 1) / workers
	moved := make([]int, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(points))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			moved[w] = assignRange(points, clusters, between, assignment, pp, lo, hi)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, m := range moved {
		total += m
	}
	return total
}

func assignRange(points, clusters []colour.Lab, between [][]float64, assignment []int, pp PointProvider, lo, hi int) int {
	moved := 0
	for i := lo; i < hi; i++ {
		point := points[i]
		prev := assignment[i]
		prevDistance := pp.Distance(point, clusters[prev])

		minimum := prevDistance
		next := -1
		for j, cl := range clusters {
			// With squared distances, a cluster at least 4x as far from the
			// current one as the point cannot be nearer.
			if between[prev][j] >= 4*prevDistance {
				continue
			}
			d := pp.Distance(point, cl)
			if d < minimum {
				minimum = d
				next = j
			}
		}
		if next >= 0 && math.Abs(math.Sqrt(minimum)-math.Sqrt(prevDistance)) > wsmeansMinMovement {
			assignment[i] = next
			moved++
		}
	}
	return moved
}
