package config_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wick/config"
	"github.com/katalvlaran/wick/diagram"
	"github.com/katalvlaran/wick/rational"
	"github.com/katalvlaran/wick/space"
	"github.com/katalvlaran/wick/wick"
)

// TestLoad_Multireference reads the core/active/virtual example file.
func TestLoad_Multireference(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "mr.yaml"))
	require.NoError(t, err)

	want := []config.Space{
		{Label: "c", Field: "fermion", Kind: "occupied", Indices: []string{"m", "n"}},
		{Label: "a", Field: "fermion", Kind: "general", Indices: []string{"u", "v", "w", "x", "y", "z"}},
		{Label: "v", Field: "fermion", Kind: "unoccupied", Indices: []string{"e", "f"}},
	}
	if diff := cmp.Diff(want, cfg.Spaces); diff != "" {
		t.Errorf("spaces mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"A", "B", "S", "T1"}, cfg.OperatorNames())
	assert.True(t, cfg.Operators["S"].Unique)

	reg, err := cfg.Registry()
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())
	assert.Equal(t, space.General, reg.Kind(1))
	assert.Equal(t, 'v', reg.Label(2))

	ops, err := cfg.BuildOperators(reg)
	require.NoError(t, err)
	require.Len(t, ops, 4)
	assert.Equal(t, 3, ops["T1"].Len())
	assert.Equal(t, 2, ops["S"].Len())
}

// TestConfig_TheoremOptions maps the engine section onto wick options.
func TestConfig_TheoremOptions(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "mr.yaml"))
	require.NoError(t, err)
	reg, err := cfg.Registry()
	require.NoError(t, err)

	th := wick.NewTheorem(reg, cfg.TheoremOptions()...)
	opts := th.Options()
	assert.Equal(t, 2, opts.MaxCumulant)
	assert.Equal(t, 2, opts.Workers)
	assert.True(t, opts.CanonicalizeGraph)
	assert.False(t, opts.SingleThreaded)
	assert.False(t, opts.ConnectedOnly)

	def := wick.NewTheorem(reg, config.Default().TheoremOptions()...).Options()
	assert.Equal(t, wick.DefaultOptions().MaxCumulant, def.MaxCumulant, "zero keeps the default")
	assert.True(t, def.CanonicalizeGraph, "unset keeps the default")
}

// TestConfig_EndToEnd contracts the commutator of two operators read
// from the file.
func TestConfig_EndToEnd(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "mr.yaml"))
	require.NoError(t, err)
	reg, err := cfg.Registry()
	require.NoError(t, err)
	ops, err := cfg.BuildOperators(reg)
	require.NoError(t, err)

	th := wick.NewTheorem(reg, cfg.TheoremOptions()...)
	sum, err := th.ContractExpression(context.Background(), rational.One(),
		diagram.Commutator(ops["A"], ops["B"]), 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Len())
}

// TestDefault_RoundTrip checks that the default setup survives YAML.
func TestDefault_RoundTrip(t *testing.T) {
	data, err := config.Default().Marshal()
	require.NoError(t, err)

	cfg, err := config.Parse(data)
	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	reg, err := cfg.Registry()
	require.NoError(t, err)
	ops, err := cfg.BuildOperators(reg)
	require.NoError(t, err)
	assert.Equal(t, 9, ops["V"].Len())
	assert.Equal(t, 4, ops["F"].Len())
}

// TestParse_Invalid rejects malformed documents with ErrInvalidConfig.
func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"unknown key", "spaces: [{label: o, field: fermion, kind: occupied}]\ncolour: red\n"},
		{"long label", "spaces: [{label: oo, field: fermion, kind: occupied}]\n"},
		{"bad kind", "spaces: [{label: o, field: fermion, kind: frozen}]\n"},
		{"bad field", "spaces: [{label: o, field: anyon, kind: occupied}]\n"},
		{"negative workers", "spaces: [{label: o, field: fermion, kind: occupied}]\nengine: {workers: -1}\n"},
		{"negative cumulant", "spaces: [{label: o, field: fermion, kind: occupied}]\nengine: {max_cumulant: -3}\n"},
		{"operator without label", "spaces: [{label: o, field: fermion, kind: occupied}]\noperators: {X: {components: [\"o+ o\"]}}\n"},
		{"operator without components", "spaces: [{label: o, field: fermion, kind: occupied}]\noperators: {X: {label: x}}\n"},
		{"not yaml", "spaces: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

// TestConfig_RegistryConflicts surfaces registry errors through both
// sentinels.
func TestConfig_RegistryConflicts(t *testing.T) {
	cfg, err := config.Parse([]byte(
		"spaces:\n" +
			"  - {label: o, field: fermion, kind: occupied, indices: [i, j]}\n" +
			"  - {label: o, field: fermion, kind: unoccupied, indices: [a]}\n"))
	require.NoError(t, err)
	_, err = cfg.Registry()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, space.ErrDuplicateLabel)

	cfg, err = config.Parse([]byte(
		"spaces:\n" +
			"  - {label: o, field: fermion, kind: occupied, indices: [i, j]}\n" +
			"  - {label: v, field: fermion, kind: unoccupied, indices: [j]}\n"))
	require.NoError(t, err)
	_, err = cfg.Registry()
	assert.ErrorIs(t, err, space.ErrDuplicateIndex)
}

// TestConfig_BadComponent reports the failing operator.
func TestConfig_BadComponent(t *testing.T) {
	cfg, err := config.Parse([]byte(
		"spaces: [{label: o, field: fermion, kind: occupied}]\n" +
			"operators: {X: {label: x, components: [\"o+ q\"]}}\n"))
	require.NoError(t, err)
	reg, err := cfg.Registry()
	require.NoError(t, err)

	_, err = cfg.BuildOperators(reg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, space.ErrUnknownSpace)
	assert.Contains(t, err.Error(), `"X"`)
}

// TestLoad_Missing wraps the file-system error.
func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}
