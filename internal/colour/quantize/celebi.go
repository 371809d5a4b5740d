package quantize

import (
	"github.com/jmylchreest/tonal/internal/colour"
)

// MaxWuColors caps how many distinct colours seed the Wu histogram. Wu
// works on a fixed-size cube so only refinement sees the full input.
const MaxWuColors = 1 << 15

// Quantize reduces pixels to at most maxColors entries, sorted by
// population then colour. Fully transparent pixels are ignored.
func Quantize(pixels []colour.ARGB, maxColors int) []Entry {
	return QuantizeHistogram(Count(pixels), maxColors)
}

// QuantizeHistogram runs the Wu then weighted-mean pipeline over an
// already counted histogram.
func QuantizeHistogram(h Histogram, maxColors int) []Entry {
	if h.Len() == 0 || maxColors <= 0 {
		return nil
	}
	seeds := Wu(h.Top(MaxWuColors), maxColors)
	entries := WSMeans(h, seeds, maxColors)
	SortEntries(entries)
	return entries
}

// Colors returns only the colours of entries, preserving order.
func Colors(entries []Entry) []colour.ARGB {
	out := make([]colour.ARGB, len(entries))
	for i, e := range entries {
		out[i] = e.Color
	}
	return out
}
