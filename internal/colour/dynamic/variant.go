// Package dynamic resolves semantic colour roles (primary, onSurface and so
// on) to concrete colours for a source colour, variant, contrast level and
// light or dark mode.
package dynamic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned when parsing an unrecognised variant name.
var ErrUnknownVariant = errors.New("unknown variant")

// Variant selects how the core palettes are derived from the source colour.
type Variant int

// The zero value is TonalSpot.
const (
	TonalSpot Variant = iota
	Monochrome
	Neutral
	Vibrant
	Expressive
	Fidelity
	Content
	Rainbow
	FruitSalad
)

var variantNames = [...]string{
	TonalSpot:  "tonal-spot",
	Monochrome: "monochrome",
	Neutral:    "neutral",
	Vibrant:    "vibrant",
	Expressive: "expressive",
	Fidelity:   "fidelity",
	Content:    "content",
	Rainbow:    "rainbow",
	FruitSalad: "fruit-salad",
}

// Variants returns every variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, len(variantNames))
	for i := range variantNames {
		out[i] = Variant(i)
	}
	return out
}

// VariantNames returns the names accepted by ParseVariant.
func VariantNames() []string {
	return variantNames[:]
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant parses a variant name. Matching ignores case, and
// underscores or spaces may be used in place of hyphens.
func ParseVariant(s string) (Variant, error) {
	norm := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(s)))
	for i, name := range variantNames {
		if name == norm || strings.ReplaceAll(name, "-", "") == norm {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownVariant, s, strings.Join(variantNames[:], ", "))
}

// Set implements pflag.Value.
func (v *Variant) Set(s string) error {
	parsed, err := ParseVariant(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Type implements pflag.Value.
func (v *Variant) Type() string { return "variant" }

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

func (v Variant) isMonochrome() bool { return v == Monochrome }

// isFidelity reports whether the variant keeps the source colour's own
// chroma, in which case container roles track the source tone.
func (v Variant) isFidelity() bool { return v == Fidelity || v == Content }
