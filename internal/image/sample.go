package image

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/jmylchreest/tonal/internal/colour"
)

// DefaultSampleSize bounds the longest image side before sampling.
const DefaultSampleSize = 128

// Downscale shrinks img so its longest side is at most maxDimension,
// keeping the aspect ratio. Images already small enough, and a
// non-positive maxDimension, return img unchanged.
func Downscale(img image.Image, maxDimension int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDimension <= 0 || (w <= maxDimension && h <= maxDimension) {
		return img
	}

	if w >= h {
		h = max(1, h*maxDimension/w)
		w = maxDimension
	} else {
		w = max(1, w*maxDimension/h)
		h = maxDimension
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// Pixels returns every pixel of img in row-major order after downscaling
// it to maxDimension. Alpha is kept so that transparent pixels can be
// skipped by quantization.
func Pixels(img image.Image, maxDimension int) []colour.ARGB {
	img = Downscale(img, maxDimension)
	b := img.Bounds()
	out := make([]colour.ARGB, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, colour.FromColor(img.At(x, y)))
		}
	}
	return out
}
