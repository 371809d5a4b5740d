package dynamic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour/palette"
)

var (
	// ErrCycle is returned when role specs reference each other in a loop.
	ErrCycle = errors.New("role dependency cycle")
	// ErrInvalidSpec is returned for a malformed role spec.
	ErrInvalidSpec = errors.New("invalid role spec")
)

// Ref names a role per mode. Most refs use the same role in both modes.
type Ref struct {
	Light Role
	Dark  Role
}

// On is a Ref to r in both modes.
func On(r Role) *Ref { return &Ref{Light: r, Dark: r} }

// Get returns the role for the mode.
func (r Ref) Get(dark bool) Role {
	if dark {
		return r.Dark
	}
	return r.Light
}

// highestSurface is surfaceDim in light mode and surfaceBright in dark mode.
func highestSurface() *Ref { return &Ref{Light: SurfaceDim, Dark: SurfaceBright} }

// Spec describes how one role is resolved.
type Spec struct {
	Role    Role
	Palette palette.Role
	Tone    Formula
	// Overrides replaces Tone for specific variants.
	Overrides map[Variant]Formula
	// IsBackground marks roles other roles are drawn on; such roles avoid
	// the 50-59 tone band when they are contrast-adjusted.
	IsBackground     bool
	Background       *Ref
	SecondBackground *Ref
	Curve            *ContrastCurve
	Pair             *ToneDeltaPair
}

// formula returns the tone formula in effect for v.
func (sp *Spec) formula(v Variant) Formula {
	if f, ok := sp.Overrides[v]; ok {
		return f
	}
	return sp.Tone
}

// formulas returns Tone and every override.
func (sp *Spec) formulas() []Formula {
	out := make([]Formula, 0, len(sp.Overrides)+1)
	out = append(out, sp.Tone)
	for _, f := range sp.Overrides {
		out = append(out, f)
	}
	return out
}

// SpecSet is a validated, acyclic collection of role specs together with
// an order in which they can be resolved.
type SpecSet struct {
	specs [numRoles]*Spec
	order []Role
}

// NewSpecSet validates specs and orders them so every role comes after the
// roles it reads. Each role may appear at most once, and every role
// referenced must be in the set.
func NewSpecSet(specs []Spec) (*SpecSet, error) {
	set := &SpecSet{}
	for i := range specs {
		sp := specs[i]
		if !sp.Role.valid() {
			return nil, fmt.Errorf("%w: role %d out of range", ErrInvalidSpec, int(sp.Role))
		}
		if set.specs[sp.Role] != nil {
			return nil, fmt.Errorf("%w: %s defined twice", ErrInvalidSpec, sp.Role)
		}
		set.specs[sp.Role] = &sp
	}

	for _, sp := range set.specs {
		if sp == nil {
			continue
		}
		if err := set.check(sp); err != nil {
			return nil, err
		}
	}

	order, err := set.sort()
	if err != nil {
		return nil, err
	}
	set.order = order
	return set, nil
}

// MustSpecSet is NewSpecSet for tables known to be valid.
func MustSpecSet(specs []Spec) *SpecSet {
	set, err := NewSpecSet(specs)
	if err != nil {
		panic(err)
	}
	return set
}

func (s *SpecSet) check(sp *Spec) error {
	if sp.Background != nil && sp.Curve == nil {
		return fmt.Errorf("%w: %s has a background but no contrast curve", ErrInvalidSpec, sp.Role)
	}
	if sp.SecondBackground != nil && sp.Background == nil {
		return fmt.Errorf("%w: %s has a second background but no background", ErrInvalidSpec, sp.Role)
	}
	if sp.Pair != nil {
		if sp.Background == nil {
			return fmt.Errorf("%w: %s has a tone delta pair but no background", ErrInvalidSpec, sp.Role)
		}
		if sp.Pair.Subject != sp.Role && sp.Pair.Basis != sp.Role {
			return fmt.Errorf("%w: %s is not a member of its tone delta pair", ErrInvalidSpec, sp.Role)
		}
	}
	for _, dep := range s.deps(sp) {
		if !dep.valid() || s.specs[dep] == nil {
			return fmt.Errorf("%w: %s references undefined role %s", ErrInvalidSpec, sp.Role, dep)
		}
	}
	if sp.Pair != nil {
		for _, member := range []Role{sp.Pair.Subject, sp.Pair.Basis} {
			if s.specs[member].Curve == nil {
				return fmt.Errorf("%w: tone delta pair member %s has no contrast curve", ErrInvalidSpec, member)
			}
		}
	}
	return nil
}

// deps lists the roles whose resolved tones sp can read: its backgrounds,
// the roles its formulas read, and the same for both members of its pair.
func (s *SpecSet) deps(sp *Spec) []Role {
	var out []Role
	addRef := func(r *Ref) {
		if r != nil {
			out = append(out, r.Light, r.Dark)
		}
	}
	addFormulas := func(x *Spec) {
		for _, f := range x.formulas() {
			out = append(out, f.refs()...)
		}
	}

	addRef(sp.Background)
	addRef(sp.SecondBackground)
	addFormulas(sp)
	if sp.Pair != nil {
		for _, member := range []Role{sp.Pair.Subject, sp.Pair.Basis} {
			if member == sp.Role || !member.valid() {
				continue
			}
			other := s.specs[member]
			if other == nil {
				out = append(out, member)
				continue
			}
			addRef(other.Background)
			addRef(other.SecondBackground)
			addFormulas(other)
		}
	}
	return out
}

// sort returns a dependency-first order via depth-first search, failing
// with ErrCycle on a back edge.
func (s *SpecSet) sort() ([]Role, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	var (
		state [numRoles]int
		order = make([]Role, 0, numRoles)
		path  []Role
	)

	var visit func(r Role) error
	visit = func(r Role) error {
		switch state[r] {
		case done:
			return nil
		case visiting:
			start := 0
			for i, p := range path {
				if p == r {
					start = i
					break
				}
			}
			names := make([]string, 0, len(path)-start+1)
			for _, p := range path[start:] {
				names = append(names, p.String())
			}
			names = append(names, r.String())
			return fmt.Errorf("%w: %s", ErrCycle, strings.Join(names, " -> "))
		}

		state[r] = visiting
		path = append(path, r)
		for _, dep := range s.deps(s.specs[r]) {
			if dep == r {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[r] = done
		order = append(order, r)
		return nil
	}

	for r := Role(0); r < numRoles; r++ {
		if s.specs[r] == nil {
			continue
		}
		if err := visit(r); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Spec returns the spec for r, or nil when the set does not define it.
func (s *SpecSet) Spec(r Role) *Spec {
	if !r.valid() {
		return nil
	}
	return s.specs[r]
}

// Order returns the roles in resolution order.
func (s *SpecSet) Order() []Role {
	return append([]Role(nil), s.order...)
}

// Has reports whether the set defines r.
func (s *SpecSet) Has(r Role) bool { return s.Spec(r) != nil }
