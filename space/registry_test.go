package space_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wick/space"
)

func occVirt(t *testing.T) *space.Registry {
	t.Helper()
	reg := space.NewRegistry()
	require.NoError(t, reg.Add('o', space.Fermion, space.Occupied, []string{"i", "j", "k"}))
	require.NoError(t, reg.Add('v', space.Fermion, space.Unoccupied, []string{"a", "b", "c"}))

	return reg
}

// TestRegistry_Lookup checks ordering, lookups and display helpers.
func TestRegistry_Lookup(t *testing.T) {
	reg := occVirt(t)
	require.Equal(t, 2, reg.Len())

	pos, err := reg.LabelToSpace('v')
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, 'o', reg.Label(0))
	assert.Equal(t, space.Unoccupied, reg.Kind(1))
	assert.Equal(t, "a", reg.OpSymbol(0))
	assert.Equal(t, "j", reg.IndexLabel(0, 1))
	assert.Equal(t, "v_{5}", reg.IndexLabel(1, 5))
	assert.Equal(t, []int{0}, reg.IndicesOfKind(space.Occupied))
	assert.Empty(t, reg.IndicesOfKind(space.General))

	_, err = reg.LabelToSpace('x')
	assert.ErrorIs(t, err, space.ErrUnknownSpace)
}

// TestRegistry_Validation covers every configuration-time failure.
func TestRegistry_Validation(t *testing.T) {
	reg := occVirt(t)

	err := reg.Add('o', space.Fermion, space.General, []string{"p"})
	assert.ErrorIs(t, err, space.ErrDuplicateLabel)

	err = reg.Add('a', space.Fermion, space.General, []string{"u", "i"})
	assert.ErrorIs(t, err, space.ErrDuplicateIndex)

	err = reg.Add('a', space.Fermion, space.General, []string{"u", "u"})
	assert.ErrorIs(t, err, space.ErrDuplicateIndex)

	err = reg.Add(0, space.Fermion, space.General, nil)
	assert.ErrorIs(t, err, space.ErrEmptyLabel)

	err = reg.Add('g', space.Fermion, space.Kind(9), nil)
	assert.ErrorIs(t, err, space.ErrUnknownKind)

	// failed adds leave the registry untouched
	assert.Equal(t, 2, reg.Len())
	require.NoError(t, reg.Add('a', space.Fermion, space.General, []string{"u", "w"}))
	assert.Equal(t, 3, reg.Len())
}

// TestRegistry_TooManySpaces enforces the fixed vertex width.
func TestRegistry_TooManySpaces(t *testing.T) {
	reg := space.NewRegistry()
	labels := "abcdefgh"
	for _, l := range labels {
		require.NoError(t, reg.Add(l, space.Fermion, space.General, nil))
	}
	err := reg.Add('z', space.Fermion, space.General, nil)
	assert.ErrorIs(t, err, space.ErrTooManySpaces)
}

// TestParseKindAndField checks the string converters.
func TestParseKindAndField(t *testing.T) {
	for _, k := range []space.Kind{space.Occupied, space.Unoccupied, space.General} {
		got, err := space.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := space.ParseKind("virtual")
	assert.ErrorIs(t, err, space.ErrUnknownKind)

	f, err := space.ParseField("boson")
	require.NoError(t, err)
	assert.Equal(t, "b", f.Symbol())
	_, err = space.ParseField("anyon")
	assert.ErrorIs(t, err, space.ErrUnknownField)
}

// TestRegistry_SpaceIsCopy makes sure callers cannot mutate the registry.
func TestRegistry_SpaceIsCopy(t *testing.T) {
	reg := occVirt(t)
	s := reg.Space(0)
	s.Indices[0] = "zzz"
	assert.Equal(t, "i", reg.IndexLabel(0, 0))
	assert.Contains(t, reg.String(), "space type: occupied")
}
