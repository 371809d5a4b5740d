package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/hct"
	"github.com/jmylchreest/tonal/internal/colour/quantize"
	"github.com/jmylchreest/tonal/internal/colour/score"
	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/image"
)

type extractOptions struct {
	colors     int
	maxColors  int
	sampleSize int
	fallback   string
	noFilter   bool
	format     string
	output     string
	preview    bool
}

// ExtractedColor is one ranked source colour in extract's json and yaml output.
type ExtractedColor struct {
	Rank   int         `json:"rank" yaml:"rank"`
	Color  colour.ARGB `json:"color" yaml:"color"`
	Hue    float64     `json:"hue" yaml:"hue"`
	Chroma float64     `json:"chroma" yaml:"chroma"`
	Tone   float64     `json:"tone" yaml:"tone"`
}

// ExtractResult is extract's json and yaml output.
type ExtractResult struct {
	Source string           `json:"source" yaml:"source"`
	Colors []ExtractedColor `json:"colors" yaml:"colors"`
}

func newExtractCmd(a *app) *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract <image|dir|url>",
		Short: "Extract ranked source colours from an image",
		Long: `Extract ranked source colours from an image.

The image is downscaled, quantized to at most --max-colors colours and the
result is scored for suitability as a theme source colour. The best
candidates are printed first.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Examples:
  # Print the four best source colours
  tonal extract wallpaper.jpg

  # Print up to eight candidates with swatches
  tonal extract --preview -c 8 wallpaper.png

  # Use a random image from a directory and output JSON
  tonal extract -f json ~/Pictures/wallpapers

  # Fetch an image over HTTP
  tonal extract https://example.com/wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, a, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.colors, "colors", "c", 4, "number of source colours to print")
	cmd.Flags().IntVar(&opts.maxColors, "max-colors", 128, "number of colours kept by quantization (1-256)")
	cmd.Flags().IntVar(&opts.sampleSize, "sample-size", image.DefaultSampleSize, "longest image side after downscaling")
	cmd.Flags().StringVar(&opts.fallback, "fallback", "#4285F4", "colour printed when the image has no usable colour")
	cmd.Flags().BoolVar(&opts.noFilter, "no-filter", false, "keep low chroma and rare colours")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "hex", "output format (hex, rgb, json, yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches")

	return cmd
}

func runExtract(cmd *cobra.Command, a *app, opts extractOptions, source string) error {
	cfg := a.cfg
	flags := cmd.Flags()
	if flags.Changed("colors") {
		cfg.DesiredSeeds = opts.colors
	}
	if flags.Changed("max-colors") {
		cfg.MaxColors = opts.maxColors
	}
	if flags.Changed("sample-size") {
		cfg.SampleSize = opts.sampleSize
	}
	if flags.Changed("fallback") {
		cfg.Fallback = opts.fallback
	}
	if flags.Changed("no-filter") {
		cfg.Filter = !opts.noFilter
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seeds, err := extractSeeds(cmd, a, cfg.Extraction(), source)
	if err != nil {
		return err
	}

	return withOutput(cmd.OutOrStdout(), opts.output, func(w io.Writer) error {
		if isDocumentFormat(cfg.Format) {
			return encode(w, newExtractResult(source, seeds), cfg.Format)
		}
		return writeColours(w, seeds, cfg.Format, opts.preview)
	})
}

// extractSeeds loads source and returns its ranked source colours.
func extractSeeds(cmd *cobra.Command, a *app, opts config.Extraction, source string) ([]colour.ARGB, error) {
	start := time.Now()

	img, err := a.loader().Load(cmd.Context(), source)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	a.logger.Debug("image loaded", "source", source, "width", bounds.Dx(), "height", bounds.Dy())

	pixels := image.Pixels(img, opts.SampleSize)
	entries := quantize.Quantize(pixels, opts.MaxColors)
	seeds := score.Score(entries, opts.Score)

	a.logger.Debug("source colours extracted",
		"pixels", len(pixels),
		"clusters", len(entries),
		"seeds", len(seeds),
		"elapsed", time.Since(start))
	return seeds, nil
}

func newExtractResult(source string, seeds []colour.ARGB) ExtractResult {
	res := ExtractResult{Source: source, Colors: make([]ExtractedColor, len(seeds))}
	for i, c := range seeds {
		h := hct.FromARGB(c)
		res.Colors[i] = ExtractedColor{
			Rank:   i + 1,
			Color:  c,
			Hue:    round(h.Hue()),
			Chroma: round(h.Chroma()),
			Tone:   round(h.Tone()),
		}
	}
	return res
}

func writeColours(w io.Writer, colors []colour.ARGB, format string, preview bool) error {
	p := previewerFor(w)
	for _, c := range colors {
		text := formatColour(c, format)
		switch {
		case preview && format == "hex":
			text = p.Line(c, "", 8)
		case preview:
			text = p.Swatch(c, 8) + " " + text
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}
