// Package config loads tonal settings from defaults, an optional YAML or
// TOML file and TONAL_* environment variables, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/colour/dynamic"
	"github.com/jmylchreest/tonal/internal/colour/score"
	"github.com/jmylchreest/tonal/internal/theme"
)

// ErrInvalid is returned for configuration that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Environment variables read by WithEnv.
const (
	EnvMaxColors    = "TONAL_MAX_COLORS"
	EnvDesiredSeeds = "TONAL_DESIRED_SEEDS"
	EnvVariant      = "TONAL_VARIANT"
	EnvContrast     = "TONAL_CONTRAST"
	EnvDark         = "TONAL_DARK"
	EnvFallback     = "TONAL_FALLBACK"
	EnvSampleSize   = "TONAL_SAMPLE_SIZE"
	EnvLogLevel     = "TONAL_LOG_LEVEL"
	EnvFormat       = "TONAL_FORMAT"
	EnvCacheDir     = "TONAL_CACHE_DIR"
)

// Config holds every setting the CLI reads.
type Config struct {
	// MaxColors is how many colours quantization keeps.
	MaxColors int `yaml:"max_colors" toml:"max_colors"`
	// DesiredSeeds is how many ranked source colours extract reports.
	DesiredSeeds int    `yaml:"desired_seeds" toml:"desired_seeds"`
	Variant      string `yaml:"variant" toml:"variant"`
	// Contrast is the contrast level in [-1, 1].
	Contrast float64 `yaml:"contrast" toml:"contrast"`
	Dark     bool    `yaml:"dark" toml:"dark"`
	// Fallback is the source colour used when an image has no usable colour.
	Fallback string `yaml:"fallback" toml:"fallback"`
	// Filter drops low chroma and rare hues before scoring.
	Filter bool `yaml:"filter" toml:"filter"`
	// SampleSize bounds the longest image side before sampling.
	SampleSize int    `yaml:"sample_size" toml:"sample_size"`
	LogLevel   string `yaml:"log_level" toml:"log_level"`
	// Format is the output format: hex, rgb, json or yaml.
	Format string `yaml:"format" toml:"format"`
	// CacheDir, when set, caches images fetched from URLs.
	CacheDir     string              `yaml:"cache_dir" toml:"cache_dir"`
	CustomColors []theme.CustomColor `yaml:"custom_colors" toml:"custom_colors"`
}

// Formats lists the accepted output formats.
var Formats = []string{"hex", "rgb", "json", "yaml"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxColors:    128,
		DesiredSeeds: 4,
		Variant:      dynamic.TonalSpot.String(),
		Contrast:     0,
		Dark:         false,
		Fallback:     "#4285F4",
		Filter:       true,
		SampleSize:   128,
		LogLevel:     "info",
		Format:       "hex",
	}
}

// Validate reports the first unusable setting, wrapped in ErrInvalid.
func (c Config) Validate() error {
	if c.MaxColors < 1 || c.MaxColors > 256 {
		return fmt.Errorf("%w: max_colors must be between 1 and 256, got %d", ErrInvalid, c.MaxColors)
	}
	if c.DesiredSeeds < 1 {
		return fmt.Errorf("%w: desired_seeds must be positive, got %d", ErrInvalid, c.DesiredSeeds)
	}
	if c.SampleSize < 1 {
		return fmt.Errorf("%w: sample_size must be positive, got %d", ErrInvalid, c.SampleSize)
	}
	if c.Contrast < -1 || c.Contrast > 1 {
		return fmt.Errorf("%w: contrast must be between -1 and 1, got %g", ErrInvalid, c.Contrast)
	}
	if _, err := dynamic.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := colour.ParseHex(c.Fallback); err != nil {
		return fmt.Errorf("%w: fallback: %w", ErrInvalid, err)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w: unknown format %q (valid: %s)", ErrInvalid, c.Format, strings.Join(Formats, ", "))
	}
	for _, cc := range c.CustomColors {
		if cc.Name == "" {
			return fmt.Errorf("%w: custom colour %s has no name", ErrInvalid, cc.Value.Hex())
		}
	}
	return nil
}

// ParsedVariant returns Variant parsed. Call Validate first.
func (c Config) ParsedVariant() dynamic.Variant {
	v, _ := dynamic.ParseVariant(c.Variant)
	return v
}

// ParsedFallback returns Fallback parsed. Call Validate first.
func (c Config) ParsedFallback() colour.ARGB {
	f, _ := colour.ParseHex(c.Fallback)
	return f
}

// Extraction holds the image sampling and scoring settings.
type Extraction struct {
	SampleSize int
	MaxColors  int
	Score      score.Options
}

// Extraction returns the sampling and scoring settings. Call Validate first.
func (c Config) Extraction() Extraction {
	return Extraction{
		SampleSize: c.SampleSize,
		MaxColors:  c.MaxColors,
		Score: score.Options{
			Desired:  c.DesiredSeeds,
			Fallback: c.ParsedFallback(),
			Filter:   c.Filter,
		},
	}
}

// DefaultPath returns the first existing config file under the user config
// directory (tonal/config.yaml, .yml or .toml), or "" if there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		path := filepath.Join(dir, "tonal", name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Builder layers configuration sources over the defaults.
type Builder struct {
	config Config
	file   string
	useEnv bool
	lookup func(string) (string, bool)
}

// NewBuilder creates a builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{config: Default(), lookup: os.LookupEnv}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(c Config) *Builder {
	b.config = c
	return b
}

// WithFile reads path when building. The format follows the extension:
// .yaml and .yml are YAML, .toml is TOML. An empty path is ignored.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithEnv applies the TONAL_* environment variables after the file.
func (b *Builder) WithEnv() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces os.LookupEnv for environment reads.
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// Build applies the file then the environment and validates the result.
func (b *Builder) Build() (Config, error) {
	c := b.config
	if b.file != "" {
		if err := loadFile(b.file, &c); err != nil {
			return Config{}, err
		}
	}
	if b.useEnv {
		if err := applyEnv(b.lookup, &c); err != nil {
			return Config{}, err
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func loadFile(path string, c *Config) error {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified config path, intended to be read
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
		}
	default:
		return fmt.Errorf("%w: unsupported config file extension %q (use .yaml, .yml or .toml)", ErrInvalid, ext)
	}
	return nil
}

func applyEnv(lookup func(string) (string, bool), c *Config) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
		}
		*dst = n
		return nil
	}

	if err := integer(EnvMaxColors, &c.MaxColors); err != nil {
		return err
	}
	if err := integer(EnvDesiredSeeds, &c.DesiredSeeds); err != nil {
		return err
	}
	if err := integer(EnvSampleSize, &c.SampleSize); err != nil {
		return err
	}
	if v, ok := lookup(EnvContrast); ok && v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvContrast, err)
		}
		c.Contrast = f
	}
	if v, ok := lookup(EnvDark); ok && v != "" {
		d, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvDark, err)
		}
		c.Dark = d
	}
	str(EnvVariant, &c.Variant)
	str(EnvFallback, &c.Fallback)
	str(EnvLogLevel, &c.LogLevel)
	str(EnvFormat, &c.Format)
	str(EnvCacheDir, &c.CacheDir)
	return nil
}
