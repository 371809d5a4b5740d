// Package quantize reduces a set of pixels to a small set of representative
// colours with their populations.
package quantize

import (
	"cmp"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/tonal/internal/colour"
)

// Entry is a colour and the number of pixels it stands for.
type Entry struct {
	Color      colour.ARGB `json:"color" yaml:"color"`
	Population int         `json:"population" yaml:"population"`
}

// Histogram is a population map of distinct colours, kept in order of
// first appearance so that every consumer iterates it deterministically.
type Histogram struct {
	Colors []colour.ARGB
	Counts []int
}

// Pixel counts above this are split across goroutines.
const parallelCountThreshold = 1 << 16

// Count collapses pixels into a histogram, discarding fully transparent pixels.
func Count(pixels []colour.ARGB) Histogram {
	if len(pixels) < parallelCountThreshold {
		return countChunk(pixels)
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(pixels) + workers - 1) / workers
	parts := make([]Histogram, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(pixels))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			parts[w] = countChunk(pixels[lo:hi])
			return nil
		})
	}
	_ = g.Wait()

	// Merging in chunk order keeps first-appearance order intact.
	var out Histogram
	index := make(map[colour.ARGB]int)
	for _, part := range parts {
		for i, c := range part.Colors {
			if j, ok := index[c]; ok {
				out.Counts[j] += part.Counts[i]
				continue
			}
			index[c] = len(out.Colors)
			out.Colors = append(out.Colors, c)
			out.Counts = append(out.Counts, part.Counts[i])
		}
	}
	return out
}

func countChunk(pixels []colour.ARGB) Histogram {
	var h Histogram
	index := make(map[colour.ARGB]int)
	for _, p := range pixels {
		if p.Alpha() == 0 {
			continue
		}
		if i, ok := index[p]; ok {
			h.Counts[i]++
			continue
		}
		index[p] = len(h.Colors)
		h.Colors = append(h.Colors, p)
		h.Counts = append(h.Counts, 1)
	}
	return h
}

// FromEntries builds a histogram from explicit entries, merging repeats.
func FromEntries(entries []Entry) Histogram {
	var h Histogram
	index := make(map[colour.ARGB]int)
	for _, e := range entries {
		if e.Population <= 0 {
			continue
		}
		if i, ok := index[e.Color]; ok {
			h.Counts[i] += e.Population
			continue
		}
		index[e.Color] = len(h.Colors)
		h.Colors = append(h.Colors, e.Color)
		h.Counts = append(h.Counts, e.Population)
	}
	return h
}

// Len returns the number of distinct colours.
func (h Histogram) Len() int { return len(h.Colors) }

// Total returns the number of pixels counted.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Entries returns the histogram as entries in first-appearance order.
func (h Histogram) Entries() []Entry {
	out := make([]Entry, len(h.Colors))
	for i, c := range h.Colors {
		out[i] = Entry{Color: c, Population: h.Counts[i]}
	}
	return out
}

// Top returns a histogram of at most n of the most populous colours.
// Ties keep first-appearance order.
func (h Histogram) Top(n int) Histogram {
	if n <= 0 || h.Len() <= n {
		return h
	}
	order := make([]int, h.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(h.Counts[b], h.Counts[a])
	})
	order = order[:n]
	slices.Sort(order)

	out := Histogram{Colors: make([]colour.ARGB, n), Counts: make([]int, n)}
	for i, idx := range order {
		out.Colors[i] = h.Colors[idx]
		out.Counts[i] = h.Counts[idx]
	}
	return out
}

// SortEntries orders entries by population, largest first, breaking ties
// by ascending colour value.
func SortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Population, a.Population); c != 0 {
			return c
		}
		return cmp.Compare(a.Color, b.Color)
	})
}
