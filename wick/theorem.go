package wick

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wick/algebra"
	"github.com/katalvlaran/wick/diagram"
	"github.com/katalvlaran/wick/rational"
	"github.com/katalvlaran/wick/space"
)

// Theorem contracts operator products over a fixed registry. The registry
// must not change while a Theorem uses it; a Theorem itself is safe for
// concurrent use.
type Theorem struct {
	reg  *space.Registry
	opts Options
}

// NewTheorem returns a Theorem for reg configured by opts.
func NewTheorem(reg *space.Registry, opts ...Option) *Theorem {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Theorem{reg: reg, opts: o}
}

// Options returns the effective configuration.
func (t *Theorem) Options() Options { return t.opts }

// Registry returns the registry the Theorem was built with.
func (t *Theorem) Registry() *space.Registry { return t.reg }

// evaluated is the contribution of one composite contraction.
type evaluated struct {
	term  algebra.SymbolicTerm
	coeff rational.Rational
}

// Contract returns factor × the sum of all contractions of ops whose free
// rank lies in [minRank, maxRank], as canonical terms.
func (t *Theorem) Contract(ctx context.Context, factor rational.Rational, ops diagram.OperatorProduct, minRank, maxRank int) (*algebra.Expression, error) {
	start := time.Now()
	log := t.opts.Logger.With(zap.String("product", ops.Render(t.reg)))

	elementary, err := ElementaryContractions(t.reg, ops, t.opts.MaxCumulant)
	if err != nil {
		return nil, fmt.Errorf("wick: Contract: %w", err)
	}
	composites := CompositeContractions(ops, elementary, minRank, maxRank)
	log.Debug("contractions generated",
		zap.Int("elementary", len(elementary)),
		zap.Int("composite", len(composites)),
		zap.Int("min_rank", minRank),
		zap.Int("max_rank", maxRank))

	results := make([]evaluated, len(composites))
	parallel := !t.opts.SingleThreaded && t.opts.Workers > 1 && len(composites) > 1
	if parallel {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(t.opts.Workers)
		for i, idx := range composites {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				r, err := t.evaluate(ops, Composite(elementary, idx), factor)
				if err != nil {
					return err
				}
				results[i] = r

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("wick: Contract: %w", err)
		}
	} else {
		for i, idx := range composites {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("wick: Contract: %w", err)
			}
			r, err := t.evaluate(ops, Composite(elementary, idx), factor)
			if err != nil {
				return nil, fmt.Errorf("wick: Contract: %w", err)
			}
			results[i] = r
		}
	}

	out := algebra.NewExpression()
	dropped := 0
	for _, r := range results {
		if t.opts.ConnectedOnly && !r.term.Connected() {
			dropped++
			continue
		}
		out.Add(r.term, r.coeff)
	}

	elapsed := time.Since(start)
	if m := t.opts.Metrics; m != nil {
		m.Calls.Inc()
		m.Elementary.Add(float64(len(elementary)))
		m.Composites.Add(float64(len(composites)))
		m.Terms.Add(float64(len(results)))
		m.Duration.Observe(elapsed.Seconds())
	}
	log.Debug("contraction done",
		zap.Bool("parallel", parallel),
		zap.Int("terms", out.Len()),
		zap.Int("disconnected", dropped),
		zap.Duration("elapsed", elapsed))

	return out, nil
}

// evaluate runs one composite through graph canonicalization, evaluation
// and term canonicalization.
func (t *Theorem) evaluate(ops diagram.OperatorProduct, composite CompositeContraction, factor rational.Rational) (evaluated, error) {
	bestOps, best, sign := ops, composite, 1
	if t.opts.CanonicalizeGraph {
		bestOps, best, sign = CanonicalizeGraph(ops, composite)
	}

	term, coeff, err := EvaluateContraction(t.reg, bestOps, best, factor.MulInt(int64(sign)))
	if err != nil {
		return evaluated{}, err
	}
	if free := ops.NumOps() - composite.NumOps(); term.NumOps() != free {
		return evaluated{}, fmt.Errorf("wick: term keeps %d operators, expected %d: %w",
			term.NumOps(), free, ErrBrokenInvariant)
	}
	canon, err := term.Canonicalize()
	if err != nil {
		return evaluated{}, err
	}

	return evaluated{term: term, coeff: coeff.MulInt(int64(canon))}, nil
}

// ContractExpression contracts every product of expr, scaled by its
// coefficient and by factor, and sums the results.
func (t *Theorem) ContractExpression(ctx context.Context, factor rational.Rational, expr *diagram.OperatorExpression, minRank, maxRank int) (*algebra.Expression, error) {
	out := algebra.NewExpression()
	for _, pt := range expr.Terms() {
		e, err := t.Contract(ctx, factor.Mul(pt.Coeff), pt.Product, minRank, maxRank)
		if err != nil {
			return nil, err
		}
		out.AddExpression(e, rational.One())
	}
	t.opts.Logger.Debug("expression contracted",
		zap.Int("products", expr.Len()),
		zap.Int("terms", out.Len()))

	return out, nil
}
