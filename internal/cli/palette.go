package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/dynamic"
	"github.com/jmylchreest/tonal/internal/colour/hct"
	"github.com/jmylchreest/tonal/internal/colour/palette"
	"github.com/jmylchreest/tonal/internal/theme"
)

type paletteOptions struct {
	source  string
	variant dynamic.Variant
	content bool
	tones   []int
	format  string
	output  string
	preview bool
}

func newPaletteCmd(a *app) *cobra.Command {
	var opts paletteOptions

	cmd := &cobra.Command{
		Use:   "palette [image|dir|url]",
		Short: "Print the core tonal palettes",
		Long: `Print the six core tonal palettes (primary, secondary, tertiary, neutral,
neutral variant and error) for a source colour or image.

Examples:
  # Palettes for a colour
  tonal palette --source "#4285f4"

  # Fidelity palettes that keep the source chroma
  tonal palette --content -s "#ff8800"

  # Selected tones as JSON
  tonal palette -s "#4285f4" --tones 10,40,90 -f json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, a, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "source colour as hex")
	cmd.Flags().Var(&opts.variant, "variant", "scheme variant ("+strings.Join(dynamic.VariantNames(), ", ")+")")
	cmd.Flags().BoolVar(&opts.content, "content", false, "keep the source chroma (ignores --variant)")
	cmd.Flags().IntSliceVar(&opts.tones, "tones", palette.CommonTones, "tones to print (0-100)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "hex", "output format (hex, rgb, json, yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show a swatch strip per palette")

	return cmd
}

func runPalette(cmd *cobra.Command, a *app, opts paletteOptions, args []string) error {
	cfg := a.cfg
	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Variant = opts.variant.String()
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, t := range opts.tones {
		if t < 0 || t > 100 {
			return fmt.Errorf("tone %d out of range (0-100)", t)
		}
	}

	source, err := resolveSource(cmd, a, cfg, opts.source, args)
	if err != nil {
		return err
	}

	var core palette.Core
	if opts.content {
		core = palette.ContentOf(source)
	} else {
		core = dynamic.CorePalettes(hct.FromARGB(source), cfg.ParsedVariant())
	}

	return withOutput(cmd.OutOrStdout(), opts.output, func(w io.Writer) error {
		if isDocumentFormat(cfg.Format) {
			return encode(w, palettesDocument(core, opts.tones), cfg.Format)
		}
		return writePalettes(w, core, opts.tones, cfg.Format, opts.preview)
	})
}

func palettesDocument(core palette.Core, tones []int) map[string]theme.PaletteDocument {
	docs := theme.PalettesDocument(core)
	for _, r := range palette.Roles {
		doc := docs[r.String()]
		doc.Tones = make(map[int]colour.ARGB, len(tones))
		for _, t := range tones {
			doc.Tones[t] = core.Get(r).Tone(t)
		}
		docs[r.String()] = doc
	}
	return docs
}

func writePalettes(w io.Writer, core palette.Core, tones []int, format string, preview bool) error {
	headers := []string{"Tone"}
	for _, r := range palette.Roles {
		headers = append(headers, r.String())
	}

	table := NewTable(headers)
	for _, t := range tones {
		row := []string{fmt.Sprint(t)}
		for _, r := range palette.Roles {
			row = append(row, formatColour(core.Get(r).Tone(t), format))
		}
		table.AddRow(row)
	}

	keys := NewTable([]string{"Palette", "Hue", "Chroma", "Key Color"})
	for _, r := range palette.Roles {
		p := core.Get(r)
		keys.AddRow([]string{
			r.String(),
			fmt.Sprintf("%.1f", p.Hue()),
			fmt.Sprintf("%.1f", p.Chroma()),
			formatColour(p.KeyColor().ARGB(), format),
		})
	}

	out := keys.Render() + "\n" + table.Render()
	if preview {
		out += "\n" + swatchStrips(previewerFor(w), core, tones)
	}
	_, err := io.WriteString(w, out)
	return err
}

// swatchStrips renders one row of labelled tone swatches per palette.
func swatchStrips(p colour.Previewer, core palette.Core, tones []int) string {
	var b strings.Builder
	for _, r := range palette.Roles {
		b.WriteString(padRight(r.String(), 16))
		for _, t := range tones {
			b.WriteString(p.SwatchWithText(core.Get(r).Tone(t), fmt.Sprint(t), 5))
		}
		b.WriteString("\n")
	}
	return b.String()
}
