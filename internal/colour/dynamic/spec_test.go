package dynamic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tonal/internal/colour/contrast"
	"github.com/jmylchreest/tonal/internal/colour/hct"
	"github.com/jmylchreest/tonal/internal/colour/palette"
)

func TestMaterialOrder(t *testing.T) {
	set := Material()
	order := set.Order()
	require.Len(t, order, len(Roles()))

	pos := make(map[Role]int, len(order))
	for i, r := range order {
		pos[r] = i
	}
	for _, r := range order {
		for _, dep := range set.deps(set.Spec(r)) {
			if dep == r {
				continue
			}
			assert.Less(t, pos[dep], pos[r], "%s must resolve after %s", r, dep)
		}
	}
}

func TestMaterialSpecs(t *testing.T) {
	set := Material()
	for _, r := range Roles() {
		sp := set.Spec(r)
		require.NotNil(t, sp, r.String())
		assert.Equal(t, r, sp.Role)
		if sp.Pair != nil {
			assert.True(t, sp.Pair.Subject == r || sp.Pair.Basis == r, r.String())
		}
	}

	assert.Nil(t, set.Spec(numRoles))
	assert.False(t, set.Has(Role(-1)))
}

func TestNewSpecSetErrors(t *testing.T) {
	bg := func(r Role) *Ref { return On(r) }
	c := curve(1, 1, 1, 1)

	tests := []struct {
		name  string
		specs []Spec
		want  error
	}{
		{
			name: "self cycle through foreground formula",
			specs: []Spec{
				{Role: Primary, Tone: foreground(OnPrimary, 4.5)},
				{Role: OnPrimary, Tone: foreground(Primary, 4.5)},
			},
			want: ErrCycle,
		},
		{
			name: "background cycle",
			specs: []Spec{
				{Role: Surface, Tone: fixed(90), Background: bg(OnSurface), Curve: c},
				{Role: OnSurface, Tone: fixed(10), Background: bg(Surface), Curve: c},
			},
			want: ErrCycle,
		},
		{
			name: "three role cycle",
			specs: []Spec{
				{Role: Primary, Tone: fixed(40), Background: bg(Secondary), Curve: c},
				{Role: Secondary, Tone: fixed(40), Background: bg(Tertiary), Curve: c},
				{Role: Tertiary, Tone: fixed(40), Background: bg(Primary), Curve: c},
			},
			want: ErrCycle,
		},
		{
			name:  "undefined reference",
			specs: []Spec{{Role: OnSurface, Tone: fixed(10), Background: bg(Surface), Curve: c}},
			want:  ErrInvalidSpec,
		},
		{
			name: "duplicate role",
			specs: []Spec{
				{Role: Surface, Tone: fixed(90)},
				{Role: Surface, Tone: fixed(80)},
			},
			want: ErrInvalidSpec,
		},
		{
			name: "background without curve",
			specs: []Spec{
				{Role: Surface, Tone: fixed(90)},
				{Role: OnSurface, Tone: fixed(10), Background: bg(Surface)},
			},
			want: ErrInvalidSpec,
		},
		{
			name: "pair without background",
			specs: []Spec{
				{Role: Primary, Tone: fixed(40), Curve: c, Pair: pair(PrimaryContainer, Primary, Nearer, false)},
				{Role: PrimaryContainer, Tone: fixed(90), Curve: c, Pair: pair(PrimaryContainer, Primary, Nearer, false)},
			},
			want: ErrInvalidSpec,
		},
		{
			name:  "role out of range",
			specs: []Spec{{Role: numRoles, Tone: fixed(50)}},
			want:  ErrInvalidSpec,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := NewSpecSet(tt.specs)
			assert.Nil(t, set)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewSpecSetCycleMessage(t *testing.T) {
	_, err := NewSpecSet([]Spec{
		{Role: Primary, Tone: foreground(OnPrimary, 4.5)},
		{Role: OnPrimary, Tone: foreground(Primary, 4.5)},
	})
	require.ErrorIs(t, err, ErrCycle)
	assert.Contains(t, err.Error(), "primary -> onPrimary -> primary")
}

func TestMustSpecSetPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustSpecSet([]Spec{{Role: Primary, Tone: foreground(Primary, 3)}, {Role: Primary}})
	})
}

func TestCustomSpecSet(t *testing.T) {
	set, err := NewSpecSet([]Spec{
		{Role: Surface, Palette: palette.Neutral, Tone: tones(98, 6), IsBackground: true},
		{
			Role: OnSurface, Palette: palette.Neutral, Tone: foreground(Surface, 7),
			Background: On(Surface), Curve: curve(4.5, 7, 11, 21),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []Role{Surface, OnSurface}, set.Order())

	s := NewScheme(hct.FromARGB(0xFF4285F4), Options{Specs: set})
	assert.Len(t, s.Colors(), 2)
	assert.Zero(t, s.Color(Primary))
	assert.InDelta(t, 98, s.Tone(Surface), 1e-9)
	assert.GreaterOrEqual(t, contrast.RatioOfTones(s.Tone(OnSurface), s.Tone(Surface)), 7.0-1e-9)
}
