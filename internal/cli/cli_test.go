package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tonal/internal/config"
)

// isolate points the config lookup at an empty directory and clears the
// environment overrides.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{
		config.EnvMaxColors, config.EnvDesiredSeeds, config.EnvVariant, config.EnvContrast,
		config.EnvDark, config.EnvFallback, config.EnvSampleSize, config.EnvLogLevel,
		config.EnvFormat, config.EnvCacheDir,
	} {
		t.Setenv(key, "")
	}
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writePNG writes an image split into vertical bands of the given colours.
func writePNG(t *testing.T, colors ...color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 40*len(colors), 40))
	for x := range img.Bounds().Dx() {
		for y := range img.Bounds().Dy() {
			img.SetNRGBA(x, y, colors[x/40])
		}
	}

	path := filepath.Join(t.TempDir(), "wallpaper.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "tonal version "))

	out, _, err = run(t, "version", "-f", "json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "go_version")
}

func TestExtract(t *testing.T) {
	isolate(t)
	path := writePNG(t, color.NRGBA{R: 0x42, G: 0x85, B: 0xF4, A: 0xFF})

	out, _, err := run(t, "extract", path)
	require.NoError(t, err)
	assert.Equal(t, "#4285f4\n", out)

	out, _, err = run(t, "extract", "-f", "rgb", path)
	require.NoError(t, err)
	assert.Equal(t, "rgb(66, 133, 244)\n", out)
}

func TestExtractJSON(t *testing.T) {
	isolate(t)
	path := writePNG(t,
		color.NRGBA{R: 0xFF, A: 0xFF},
		color.NRGBA{B: 0xFF, A: 0xFF},
	)

	out, _, err := run(t, "extract", "-f", "json", "-c", "2", path)
	require.NoError(t, err)

	var res ExtractResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, path, res.Source)
	require.Len(t, res.Colors, 2)
	assert.Equal(t, 1, res.Colors[0].Rank)
	assert.ElementsMatch(t, []string{"#ff0000", "#0000ff"},
		[]string{res.Colors[0].Color.Hex(), res.Colors[1].Color.Hex()})
}

func TestExtractFallback(t *testing.T) {
	isolate(t)
	path := writePNG(t, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF})

	out, _, err := run(t, "extract", "--fallback", "#00ff00", path)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00\n", out)

	out, _, err = run(t, "extract", "--no-filter", path)
	require.NoError(t, err)
	assert.Equal(t, "#808080\n", out)
}

func TestExtractOutputFile(t *testing.T) {
	isolate(t)
	path := writePNG(t, color.NRGBA{R: 0x42, G: 0x85, B: 0xF4, A: 0xFF})
	dest := filepath.Join(t.TempDir(), "colors.txt")

	out, _, err := run(t, "extract", "-o", dest, path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "#4285f4\n", string(data))
}

func TestExtractErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"extract", filepath.Join(t.TempDir(), "none.png")}},
		{"no args", []string{"extract"}},
		{"bad format", []string{"extract", "-f", "xml", writePNG(t, color.NRGBA{A: 0xFF})}},
		{"too many colours", []string{"extract", "--max-colors", "1000", writePNG(t, color.NRGBA{A: 0xFF})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestScheme(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "scheme", "--source", "#aae5a4")
	require.NoError(t, err)
	assert.Contains(t, out, "Mode:     light")
	assert.Regexp(t, `(?m)^primary\s+#3b693a\s+40\.0$`, out)
	assert.Regexp(t, `(?m)^onPrimary\s+#ffffff\s+100\.0$`, out)

	out, _, err = run(t, "scheme", "--source", "#aae5a4", "--dark", "--terminal")
	require.NoError(t, err)
	assert.Contains(t, out, "Mode:     dark")
	assert.Regexp(t, `(?m)^primary\s+#a0d39a\s+80\.0$`, out)
	assert.Regexp(t, `(?m)^15\s+brightwhite\s+#`, out)
}

func TestSchemeDocument(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "scheme", "-s", "#aae5a4", "-f", "json")
	require.NoError(t, err)

	var doc struct {
		Source   string                       `json:"source"`
		Variant  string                       `json:"variant"`
		Schemes  map[string]map[string]string `json:"schemes"`
		Palettes map[string]json.RawMessage   `json:"palettes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "#aae5a4", doc.Source)
	assert.Equal(t, "tonal-spot", doc.Variant)
	assert.Equal(t, "#3b693a", doc.Schemes["light"]["primary"])
	assert.Equal(t, "#a0d39a", doc.Schemes["dark"]["primary"])
	assert.Len(t, doc.Palettes, 6)

	out, _, err = run(t, "scheme", "-s", "#4285f4", "--variant", "monochrome", "-f", "yaml")
	require.NoError(t, err)
	var y map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &y))
	assert.Equal(t, "monochrome", y["variant"])
}

func TestSchemeFromImage(t *testing.T) {
	isolate(t)
	path := writePNG(t, color.NRGBA{R: 0xAA, G: 0xE5, B: 0xA4, A: 0xFF})

	out, _, err := run(t, "scheme", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Source:   #aae5a4")
	assert.Regexp(t, `(?m)^primary\s+#3b693a\s+40\.0$`, out)
}

func TestSchemeConfig(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
variant: vibrant
dark: true
custom_colors:
  - name: brand
    value: "#ff8800"
`), 0o644))

	out, _, err := run(t, "--config", cfgPath, "scheme", "-s", "#4285f4")
	require.NoError(t, err)
	assert.Contains(t, out, "Variant:  vibrant")
	assert.Contains(t, out, "Mode:     dark")
	assert.Regexp(t, `(?m)^brand\s+#`, out)

	// Flags win over the file.
	out, _, err = run(t, "--config", cfgPath, "scheme", "-s", "#4285f4", "--variant", "neutral", "--dark=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Variant:  neutral")
	assert.Contains(t, out, "Mode:     light")
}

func TestSchemeErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no source", []string{"scheme"}},
		{"source and image", []string{"scheme", "-s", "#fff", "image.png"}},
		{"bad source", []string{"scheme", "-s", "blue"}},
		{"bad variant", []string{"scheme", "-s", "#fff", "--variant", "pastel"}},
		{"bad contrast", []string{"scheme", "-s", "#fff", "--contrast", "3"}},
		{"bad config", []string{"--config", "missing.toml", "scheme", "-s", "#fff"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestPalette(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "palette", "-s", "#4285f4", "--tones", "0,50,100")
	require.NoError(t, err)
	assert.Contains(t, out, "neutral_variant")
	assert.Regexp(t, `(?m)^0\s+#000000\s+#000000`, out)
	assert.Regexp(t, `(?m)^100\s+#ffffff\s+#ffffff`, out)

	_, _, err = run(t, "palette", "-s", "#4285f4", "--tones", "101")
	assert.Error(t, err)
}

func TestPaletteDocument(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "palette", "-s", "#4285f4", "--tones", "0,40", "-f", "json")
	require.NoError(t, err)

	var docs map[string]struct {
		Chroma float64           `json:"chroma"`
		Tones  map[string]string `json:"tones"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 6)
	assert.InDelta(t, 36, docs["primary"].Chroma, 1e-9)
	assert.Len(t, docs["primary"].Tones, 2)
	assert.Equal(t, "#000000", docs["error"].Tones["0"])

	out, _, err = run(t, "palette", "-s", "#4285f4", "--content", "-f", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	assert.Greater(t, docs["primary"].Chroma, 36.0)
	assert.Len(t, docs["primary"].Tones, 13)
}

func TestVerboseLogging(t *testing.T) {
	isolate(t)

	_, stderr, err := run(t, "-v", "scheme", "-s", "#4285f4")
	require.NoError(t, err)
	assert.Contains(t, stderr, "theme built")

	_, stderr, err = run(t, "scheme", "-s", "#4285f4")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "theme built")
}

func TestPreviewWithoutTerminal(t *testing.T) {
	isolate(t)
	path := writePNG(t, color.NRGBA{R: 0x42, G: 0x85, B: 0xF4, A: 0xFF})

	out, _, err := run(t, "extract", "--preview", path)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat(" ", 8)+" #4285f4\n", out)

	out, _, err = run(t, "palette", "-s", "#4285f4", "--tones", "0,100", "--preview")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
	assert.Regexp(t, `(?m)^neutral_variant\s+0\s+100\s*$`, out)
}
