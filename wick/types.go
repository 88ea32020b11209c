package wick

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/wick/diagram"
	"github.com/katalvlaran/wick/space"
)

var (
	// ErrUnknownSpaceKind is returned when a registry space has a kind the
	// contraction rules do not cover.
	ErrUnknownSpaceKind = errors.New("wick: unknown orbital space kind")

	// ErrBrokenInvariant signals an internal inconsistency between the
	// search, the canonicalizer and the evaluator.
	ErrBrokenInvariant = errors.New("wick: broken contraction invariant")
)

// DefaultMaxCumulant is the default cap on General-space half legs.
const DefaultMaxCumulant = 100

// ElementaryContraction holds, for each operator of a product, the legs
// consumed by one minimal contraction. It is aligned with the product.
type ElementaryContraction []diagram.Vertex

// NumOps returns the number of legs consumed.
func (e ElementaryContraction) NumOps() int { return diagram.SumNumOps(e) }

// Space returns the first space with a consumed leg, or -1.
func (e ElementaryContraction) Space() int {
	for s := 0; s < space.MaxSpaces; s++ {
		for _, v := range e {
			if v.NumOpsIn(s) > 0 {
				return s
			}
		}
	}

	return -1
}

// Compare orders contractions vertex by vertex.
func (e ElementaryContraction) Compare(o ElementaryContraction) int {
	return slices.CompareFunc(e, o, diagram.Vertex.Compare)
}

// Render prints the consumed legs of every operator, e.g. "[o+|o|]".
func (e ElementaryContraction) Render(reg *space.Registry) string {
	parts := make([]string, len(e))
	for n, v := range e {
		parts[n] = v.Render(reg)
	}

	return "[" + strings.Join(parts, "|") + "]"
}

func (e ElementaryContraction) key() string { return fmt.Sprint([]diagram.Vertex(e)) }

// CompositeContraction is a multiset of elementary contractions applied
// together to one product.
type CompositeContraction []ElementaryContraction

// NumOps returns the number of legs consumed by all elements.
func (c CompositeContraction) NumOps() int {
	n := 0
	for _, e := range c {
		n += e.NumOps()
	}

	return n
}

// Option configures a Theorem.
type Option func(*Options)

// Options holds the Theorem configuration.
type Options struct {
	// MaxCumulant caps the half legs of a General-space contraction.
	// Larger patterns are dropped silently. Default DefaultMaxCumulant.
	MaxCumulant int

	// CanonicalizeGraph maps every composite contraction to its canonical
	// graph before evaluation. Default true.
	CanonicalizeGraph bool

	// SingleThreaded evaluates composites on the calling goroutine.
	// Default false.
	SingleThreaded bool

	// Workers bounds concurrent evaluations when SingleThreaded is false.
	// Default runtime.GOMAXPROCS(0).
	Workers int

	// ConnectedOnly drops terms whose tensors do not form a single
	// connected component. Default false.
	ConnectedOnly bool

	// Logger receives debug records per Contract call. Default no-op.
	Logger *zap.Logger

	// Metrics, if non-nil, is updated by every Contract call.
	Metrics *Metrics
}

// DefaultOptions returns Options with:
//   - MaxCumulant = DefaultMaxCumulant
//   - graph canonicalization on
//   - parallel evaluation on GOMAXPROCS workers
//   - a no-op logger and no metrics
func DefaultOptions() Options {
	return Options{
		MaxCumulant:       DefaultMaxCumulant,
		CanonicalizeGraph: true,
		SingleThreaded:    false,
		Workers:           runtime.GOMAXPROCS(0),
		ConnectedOnly:     false,
		Logger:            zap.NewNop(),
		Metrics:           nil,
	}
}

// WithMaxCumulant sets the General-space half-leg cap. Values below 1
// are ignored.
func WithMaxCumulant(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxCumulant = n
		}
	}
}

// WithGraphCanonicalization toggles contraction-graph canonicalization.
func WithGraphCanonicalization(on bool) Option {
	return func(o *Options) {
		o.CanonicalizeGraph = on
	}
}

// WithSingleThreaded forces sequential evaluation.
func WithSingleThreaded(on bool) Option {
	return func(o *Options) {
		o.SingleThreaded = on
	}
}

// WithWorkers bounds the number of concurrent evaluations. Values below 1
// are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

// WithConnectedOnly keeps only terms whose tensors are linked by
// contracted indices.
func WithConnectedOnly(on bool) Option {
	return func(o *Options) {
		o.ConnectedOnly = on
	}
}

// WithLogger installs l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics installs prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
