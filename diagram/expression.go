package diagram

import (
	"slices"
	"strings"

	"github.com/katalvlaran/wick/algebra"
	"github.com/katalvlaran/wick/rational"
	"github.com/katalvlaran/wick/space"
)

// ProductTerm is one product of an OperatorExpression with its coefficient.
type ProductTerm struct {
	Product OperatorProduct
	Coeff   rational.Rational
}

// OperatorExpression is a linear combination of operator products.
type OperatorExpression struct {
	acc *algebra.Accumulator[OperatorProduct, string]
}

// NewOperatorExpression returns the empty combination.
func NewOperatorExpression() *OperatorExpression {
	return &OperatorExpression{acc: algebra.NewAccumulator(OperatorProduct.Key, OperatorProduct.Compare)}
}

// FromProduct returns c · p as an expression.
func FromProduct(p OperatorProduct, c rational.Rational) *OperatorExpression {
	e := NewOperatorExpression()
	e.Add(p, c)

	return e
}

// Add adds c · p.
func (e *OperatorExpression) Add(p OperatorProduct, c rational.Rational) {
	e.acc.Add(slices.Clone(p), c)
}

// AddExpression adds scale · o.
func (e *OperatorExpression) AddExpression(o *OperatorExpression, scale rational.Rational) {
	e.acc.Merge(o.acc, scale)
}

// Sub subtracts o.
func (e *OperatorExpression) Sub(o *OperatorExpression) {
	e.acc.Merge(o.acc, rational.FromInt(-1))
}

// Scale multiplies every coefficient by c.
func (e *OperatorExpression) Scale(c rational.Rational) { e.acc.Scale(c) }

// Mul returns the product e · o, distributing over both sums.
func (e *OperatorExpression) Mul(o *OperatorExpression) *OperatorExpression {
	out := NewOperatorExpression()
	for _, l := range e.acc.Entries() {
		for _, r := range o.acc.Entries() {
			out.acc.Add(l.Item.Mul(r.Item), l.Coeff.Mul(r.Coeff))
		}
	}

	return out
}

// Len returns the number of products.
func (e *OperatorExpression) Len() int { return e.acc.Len() }

// Terms returns the products in canonical order.
func (e *OperatorExpression) Terms() []ProductTerm {
	entries := e.acc.Entries()
	out := make([]ProductTerm, len(entries))
	for n, en := range entries {
		out[n] = ProductTerm{Product: slices.Clone(en.Item), Coeff: en.Coeff}
	}

	return out
}

// Equal reports whether e and o have the same products and coefficients.
func (e *OperatorExpression) Equal(o *OperatorExpression) bool { return e.acc.Equal(o.acc) }

// Clone returns an independent copy of e.
func (e *OperatorExpression) Clone() *OperatorExpression {
	return &OperatorExpression{acc: e.acc.Clone()}
}

// Canonicalize sorts commuting operators inside every product and merges
// products that become equal.
func (e *OperatorExpression) Canonicalize() {
	next := NewOperatorExpression()
	for _, en := range e.acc.Entries() {
		p := slices.Clone(en.Item)
		sign := p.Canonicalize()
		next.acc.Add(p, en.Coeff.MulInt(int64(sign)))
	}
	e.acc = next.acc
}

// Adjoint returns the adjoint expression.
func (e *OperatorExpression) Adjoint() *OperatorExpression {
	out := NewOperatorExpression()
	for _, en := range e.acc.Entries() {
		out.acc.Add(en.Item.Adjoint(), en.Coeff)
	}

	return out
}

// Render prints one signed product per line, e.g. "+ t { v+ o }".
func (e *OperatorExpression) Render(reg *space.Registry) string {
	lines := make([]string, 0, e.acc.Len())
	for _, en := range e.acc.Entries() {
		var sb strings.Builder
		sb.WriteString(en.Coeff.Text(true))
		for _, op := range en.Item {
			sb.WriteByte(' ')
			sb.WriteString(op.Render(reg))
		}
		lines = append(lines, sb.String())
	}

	return strings.Join(lines, "\n")
}

// Commutator returns [a, b] = a·b − b·a.
func Commutator(a, b *OperatorExpression) *OperatorExpression {
	out := a.Mul(b)
	out.Sub(b.Mul(a))

	return out
}

// BCHSeries returns the Baker–Campbell–Hausdorff expansion of
// exp(-B) A exp(B) truncated after n nested commutators:
//
//	A + [A,B] + 1/2 [[A,B],B] + … + 1/n! [...[A,B]...,B]
func BCHSeries(a, b *OperatorExpression, n int) *OperatorExpression {
	out := a.Clone()
	term := a.Clone()
	for k := 1; k <= n; k++ {
		term = Commutator(term, b)
		term.Scale(rational.One().QuoInt(int64(k)))
		out.AddExpression(term, rational.One())
	}

	return out
}
