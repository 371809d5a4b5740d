package dynamic

import (
	"errors"
	"fmt"
)

// ErrUnknownRole is returned when parsing an unrecognised role name.
var ErrUnknownRole = errors.New("unknown role")

// Role identifies a semantic colour.
type Role int

const (
	PrimaryPaletteKeyColor Role = iota
	SecondaryPaletteKeyColor
	TertiaryPaletteKeyColor
	NeutralPaletteKeyColor
	NeutralVariantPaletteKeyColor

	Background
	OnBackground
	Surface
	SurfaceDim
	SurfaceBright
	SurfaceContainerLowest
	SurfaceContainerLow
	SurfaceContainer
	SurfaceContainerHigh
	SurfaceContainerHighest
	OnSurface
	SurfaceVariant
	OnSurfaceVariant
	InverseSurface
	InverseOnSurface
	Outline
	OutlineVariant
	Shadow
	Scrim
	SurfaceTint

	Primary
	OnPrimary
	PrimaryContainer
	OnPrimaryContainer
	InversePrimary

	Secondary
	OnSecondary
	SecondaryContainer
	OnSecondaryContainer

	Tertiary
	OnTertiary
	TertiaryContainer
	OnTertiaryContainer

	Error
	OnError
	ErrorContainer
	OnErrorContainer

	PrimaryFixed
	PrimaryFixedDim
	OnPrimaryFixed
	OnPrimaryFixedVariant

	SecondaryFixed
	SecondaryFixedDim
	OnSecondaryFixed
	OnSecondaryFixedVariant

	TertiaryFixed
	TertiaryFixedDim
	OnTertiaryFixed
	OnTertiaryFixedVariant

	numRoles
)

var roleNames = [numRoles]string{
	PrimaryPaletteKeyColor:        "primaryPaletteKeyColor",
	SecondaryPaletteKeyColor:      "secondaryPaletteKeyColor",
	TertiaryPaletteKeyColor:       "tertiaryPaletteKeyColor",
	NeutralPaletteKeyColor:        "neutralPaletteKeyColor",
	NeutralVariantPaletteKeyColor: "neutralVariantPaletteKeyColor",
	Background:                    "background",
	OnBackground:                  "onBackground",
	Surface:                       "surface",
	SurfaceDim:                    "surfaceDim",
	SurfaceBright:                 "surfaceBright",
	SurfaceContainerLowest:        "surfaceContainerLowest",
	SurfaceContainerLow:           "surfaceContainerLow",
	SurfaceContainer:              "surfaceContainer",
	SurfaceContainerHigh:          "surfaceContainerHigh",
	SurfaceContainerHighest:       "surfaceContainerHighest",
	OnSurface:                     "onSurface",
	SurfaceVariant:                "surfaceVariant",
	OnSurfaceVariant:              "onSurfaceVariant",
	InverseSurface:                "inverseSurface",
	InverseOnSurface:              "inverseOnSurface",
	Outline:                       "outline",
	OutlineVariant:                "outlineVariant",
	Shadow:                        "shadow",
	Scrim:                         "scrim",
	SurfaceTint:                   "surfaceTint",
	Primary:                       "primary",
	OnPrimary:                     "onPrimary",
	PrimaryContainer:              "primaryContainer",
	OnPrimaryContainer:            "onPrimaryContainer",
	InversePrimary:                "inversePrimary",
	Secondary:                     "secondary",
	OnSecondary:                   "onSecondary",
	SecondaryContainer:            "secondaryContainer",
	OnSecondaryContainer:          "onSecondaryContainer",
	Tertiary:                      "tertiary",
	OnTertiary:                    "onTertiary",
	TertiaryContainer:             "tertiaryContainer",
	OnTertiaryContainer:           "onTertiaryContainer",
	Error:                         "error",
	OnError:                       "onError",
	ErrorContainer:                "errorContainer",
	OnErrorContainer:              "onErrorContainer",
	PrimaryFixed:                  "primaryFixed",
	PrimaryFixedDim:               "primaryFixedDim",
	OnPrimaryFixed:                "onPrimaryFixed",
	OnPrimaryFixedVariant:         "onPrimaryFixedVariant",
	SecondaryFixed:                "secondaryFixed",
	SecondaryFixedDim:             "secondaryFixedDim",
	OnSecondaryFixed:              "onSecondaryFixed",
	OnSecondaryFixedVariant:       "onSecondaryFixedVariant",
	TertiaryFixed:                 "tertiaryFixed",
	TertiaryFixedDim:              "tertiaryFixedDim",
	OnTertiaryFixed:               "onTertiaryFixed",
	OnTertiaryFixedVariant:        "onTertiaryFixedVariant",
}

// Roles returns every role in declaration order.
func Roles() []Role {
	out := make([]Role, numRoles)
	for i := range out {
		out[i] = Role(i)
	}
	return out
}

func (r Role) valid() bool { return r >= 0 && r < numRoles }

func (r Role) String() string {
	if !r.valid() {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// ParseRole parses a camelCase role name such as "onPrimaryContainer".
func ParseRole(s string) (Role, error) {
	for i, name := range roleNames {
		if name == s {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	if !r.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
