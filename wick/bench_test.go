package wick_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/wick/diagram"
	"github.com/katalvlaran/wick/rational"
	"github.com/katalvlaran/wick/wick"
)

// BenchmarkContract_DoublesEnergy measures <V T2> on both evaluation paths.
//
// Complexity: two elementary contractions and a single composite; the cost
// is dominated by graph canonicalization over 2! operator orders.
func BenchmarkContract_DoublesEnergy(b *testing.B) {
	reg := ovRegistry()
	cc := newCCOps(reg)
	ops := product(b, cc.Voovv, cc.T2)
	ctx := context.Background()

	for _, bc := range []struct {
		name string
		th   *wick.Theorem
	}{
		{"sequential", wick.NewTheorem(reg, wick.WithSingleThreaded(true))},
		{"parallel", wick.NewTheorem(reg, wick.WithWorkers(4))},
	} {
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := bc.th.Contract(ctx, rational.One(), ops, 0, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkContractExpression_BCH measures the second-order similarity
// transform of V by T2 down to two free operators.
func BenchmarkContractExpression_BCH(b *testing.B) {
	reg := ovRegistry()
	cc := newCCOps(reg)
	v := diagram.MustMakeOperator(reg, "v", "o+ o+ o o", "o+ v+ v o", "v+ v+ v v", "o+ o+ v v", "v+ v+ o o")
	expr := diagram.BCHSeries(v, cc.T2, 2)
	th := wick.NewTheorem(reg)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := th.ContractExpression(ctx, rational.One(), expr, 0, 2); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCanonicalizeGraph measures canonicalization of a three-operator
// graph with two identical amplitudes.
func BenchmarkCanonicalizeGraph(b *testing.B) {
	reg := ovRegistry()
	cc := newCCOps(reg)
	ops := product(b, cc.Voovv, cc.T1, cc.T1)
	el, err := wick.ElementaryContractions(reg, ops, wick.DefaultMaxCumulant)
	if err != nil {
		b.Fatal(err)
	}
	full := wick.CompositeContractions(ops, el, 0, 0)
	if len(full) == 0 {
		b.Fatal("no full contraction")
	}
	composite := wick.Composite(el, full[0])

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wick.CanonicalizeGraph(ops, composite)
	}
}
