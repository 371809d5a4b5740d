package cli

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/theme"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}

// previewerFor returns a colour previewer for w. Writers that are not a
// terminal get plain text.
func previewerFor(w io.Writer) colour.Previewer {
	if isTerminal(w) {
		return colour.NewPreviewer()
	}
	return colour.Previewer{Profile: termenv.Ascii}
}

// formatColour renders c as hex or rgb text.
func formatColour(c colour.ARGB, format string) string {
	if format == "rgb" {
		return c.String()
	}
	return c.Hex()
}

// isDocumentFormat reports whether format is a structured document format.
func isDocumentFormat(format string) bool {
	_, err := theme.ParseFormat(format)
	return err == nil
}

// encode writes v as a json or yaml document.
func encode(w io.Writer, v any, format string) error {
	f, err := theme.ParseFormat(format)
	if err != nil {
		return err
	}
	return theme.Encode(w, v, f)
}

// withOutput calls fn with a writer for path, or for stdout when path is empty.
func withOutput(stdout io.Writer, path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(stdout)
	}

	f, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// round rounds x to two decimal places for document output.
func round(x float64) float64 {
	return math.Round(x*100) / 100
}
