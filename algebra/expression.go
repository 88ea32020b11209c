package algebra

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wick/rational"
	"github.com/katalvlaran/wick/space"
)

// Term is a SymbolicTerm with its coefficient.
type Term struct {
	Symbolic SymbolicTerm
	Coeff    rational.Rational
}

// Expression is a sum of symbolic terms with nonzero rational coefficients.
// Terms are merged by exact equality; call Canonicalize (or add canonical
// terms) to merge terms that differ only by dummy-index names.
type Expression struct {
	acc *Accumulator[SymbolicTerm, string]
}

// NewExpression returns the empty sum.
func NewExpression() *Expression {
	return &Expression{acc: NewAccumulator(SymbolicTerm.Key, SymbolicTerm.Compare)}
}

// Add adds c·term, merging by exact key. term is not canonicalized:
// callers pass canonical terms (Theorem does) or call Canonicalize after
// adding.
func (e *Expression) Add(term SymbolicTerm, c rational.Rational) {
	e.acc.Add(term.Clone(), c)
}

// AddExpression adds scale·other.
func (e *Expression) AddExpression(other *Expression, scale rational.Rational) {
	e.acc.Merge(other.acc, scale)
}

// Sub subtracts other.
func (e *Expression) Sub(other *Expression) {
	e.acc.Merge(other.acc, rational.FromInt(-1))
}

// Scale multiplies every coefficient by c.
func (e *Expression) Scale(c rational.Rational) { e.acc.Scale(c) }

// Len returns the number of terms.
func (e *Expression) Len() int { return e.acc.Len() }

// IsZero reports whether the sum is empty.
func (e *Expression) IsZero() bool { return e.acc.Len() == 0 }

// Coefficient returns the coefficient of term, or zero.
func (e *Expression) Coefficient(term SymbolicTerm) rational.Rational {
	return e.acc.Coefficient(term)
}

// Terms returns the terms in canonical order.
func (e *Expression) Terms() []Term {
	entries := e.acc.Entries()
	out := make([]Term, len(entries))
	for n, en := range entries {
		out[n] = Term{Symbolic: en.Item.Clone(), Coeff: en.Coeff}
	}

	return out
}

// Equal reports whether e and o contain the same terms with the same
// coefficients.
func (e *Expression) Equal(o *Expression) bool { return e.acc.Equal(o.acc) }

// Clone returns an independent copy of e.
func (e *Expression) Clone() *Expression { return &Expression{acc: e.acc.Clone()} }

// Canonicalize replaces every term by its canonical form, folding the sign
// of the canonicalization into the coefficient and merging terms that
// become equal.
func (e *Expression) Canonicalize() error {
	next := NewExpression()
	for _, en := range e.acc.Entries() {
		t := en.Item.Clone()
		sign, err := t.Canonicalize()
		if err != nil {
			return fmt.Errorf("algebra: Expression.Canonicalize: %w", err)
		}
		next.acc.Add(t, en.Coeff.MulInt(int64(sign)))
	}
	e.acc = next.acc

	return nil
}

// Reindex renames indices in every term.
func (e *Expression) Reindex(m IndexMap) {
	next := NewExpression()
	for _, en := range e.acc.Entries() {
		t := en.Item.Clone()
		t.Reindex(m)
		next.acc.Add(t, en.Coeff)
	}
	e.acc = next.acc
}

// Render prints one term per line. The first coefficient is printed without
// a leading "+"; unit coefficients are implicit unless the term is empty.
func (e *Expression) Render(reg *space.Registry) string {
	lines := make([]string, 0, e.acc.Len())
	for n, t := range e.Terms() {
		body := t.Symbolic.Render(reg)
		lines = append(lines, renderCoeff(t.Coeff, n > 0, body == "")+body)
	}

	return strings.Join(lines, "\n")
}

func renderCoeff(c rational.Rational, withSign, bare bool) string {
	if bare {
		s := c.String()
		if withSign && c.Sign() > 0 {
			s = "+" + s
		}

		return s
	}
	s := c.Text(withSign)
	switch s {
	case "", "+", "-":
	default:
		s += " "
	}

	return s
}
