package wick_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wick/algebra"
	"github.com/katalvlaran/wick/diagram"
	"github.com/katalvlaran/wick/rational"
	"github.com/katalvlaran/wick/space"
)

// ovRegistry is the single-reference partition: occupied o, unoccupied v.
func ovRegistry() *space.Registry {
	return space.NewRegistry().
		MustAdd('o', space.Fermion, space.Occupied, "i", "j", "k", "l", "m", "n").
		MustAdd('v', space.Fermion, space.Unoccupied, "a", "b", "c", "d", "e", "f")
}

// caRegistry is the multireference partition: core c, active a, virtual v.
func caRegistry() *space.Registry {
	return space.NewRegistry().
		MustAdd('c', space.Fermion, space.Occupied, "m", "n").
		MustAdd('a', space.Fermion, space.General, "u", "v", "w", "x", "y", "z").
		MustAdd('v', space.Fermion, space.Unoccupied, "e", "f")
}

// oavRegistry puts a general space between occupied and unoccupied.
func oavRegistry() *space.Registry {
	return space.NewRegistry().
		MustAdd('o', space.Fermion, space.Occupied, "i", "j", "k", "l", "m", "n").
		MustAdd('a', space.Fermion, space.General, "u", "v", "w", "x", "y", "z").
		MustAdd('v', space.Fermion, space.Unoccupied, "a", "b", "c", "d", "e", "f")
}

// aRegistry holds a single general space.
func aRegistry() *space.Registry {
	return space.NewRegistry().
		MustAdd('a', space.Fermion, space.General, "u", "v", "w", "x", "y", "z")
}

// product multiplies single-product expressions and returns the product.
func product(t testing.TB, exprs ...*diagram.OperatorExpression) diagram.OperatorProduct {
	t.Helper()
	e := exprs[0]
	for _, x := range exprs[1:] {
		e = e.Mul(x)
	}
	terms := e.Terms()
	require.Len(t, terms, 1)

	return terms[0].Product
}

// parsed reads s and brings it to canonical form.
func parsed(t testing.TB, reg *space.Registry, s string) *algebra.Expression {
	t.Helper()
	e, err := algebra.ParseExpression(reg, s)
	require.NoError(t, err)
	require.NoError(t, e.Canonicalize())

	return e
}

// raw reads s as written. Use it for reference text that is already in the
// engine's output form, such as equation right-hand sides whose indices
// follow the lhs tensor.
func raw(t testing.TB, reg *space.Registry, s string) *algebra.Expression {
	t.Helper()
	e, err := algebra.ParseExpression(reg, s)
	require.NoError(t, err)

	return e
}

// residual sums the right-hand sides of the equations filed under key.
func residual(reg *space.Registry, e *algebra.Expression, key string) *algebra.Expression {
	out := algebra.NewExpression()
	for _, eq := range e.ToManyBodyEquations(reg, "r")[key] {
		out.AddExpression(eq.RHSExpression(), rational.One())
	}

	return out
}
