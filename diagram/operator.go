package diagram

import (
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/wick/combinatorics"
	"github.com/katalvlaran/wick/rational"
	"github.com/katalvlaran/wick/space"
)

// Operator is a labeled diagrammatic operator.
type Operator struct {
	Label  string
	Vertex Vertex
}

// NewOperator builds an operator from per-space creation and annihilation
// counts.
func NewOperator(label string, cre, ann []int) Operator {
	return Operator{Label: label, Vertex: NewVertex(cre, ann)}
}

// Cre returns the creation legs in space s.
func (op Operator) Cre(s int) int { return op.Vertex.Cre(s) }

// Ann returns the annihilation legs in space s.
func (op Operator) Ann(s int) int { return op.Vertex.Ann(s) }

// NumOps returns the total number of legs.
func (op Operator) NumOps() int { return op.Vertex.NumOps() }

// Factor returns 1 / ∏_s cre(s)! ann(s)!.
func (op Operator) Factor() rational.Rational {
	d := big.NewInt(1)
	for s := range op.Vertex {
		d.Mul(d, combinatorics.Factorial(op.Cre(s)))
		d.Mul(d, combinatorics.Factorial(op.Ann(s)))
	}

	return rational.FromBig(new(big.Rat).SetFrac(big.NewInt(1), d))
}

// Adjoint swaps creation and annihilation legs.
func (op Operator) Adjoint() Operator {
	return Operator{Label: op.Label, Vertex: op.Vertex.Adjoint()}
}

// Compare orders operators by label, then vertex.
func (op Operator) Compare(o Operator) int {
	if c := strings.Compare(op.Label, o.Label); c != 0 {
		return c
	}

	return op.Vertex.Compare(o.Vertex)
}

// Less reports whether op sorts before o.
func (op Operator) Less(o Operator) bool { return op.Compare(o) < 0 }

// Render prints e.g. "1/4 t { v+ v+ o o }". Creation legs are listed in
// registry order, annihilation legs in reverse registry order, and the
// factor is shown only when it differs from 1.
func (op Operator) Render(reg *space.Registry) string {
	var parts []string
	if f := op.Factor(); !f.IsOne() {
		parts = append(parts, f.Text(false))
	}
	parts = append(parts, op.Label, "{")
	for s := 0; s < reg.Len(); s++ {
		for i := 0; i < op.Cre(s); i++ {
			parts = append(parts, string(reg.Label(s))+"+")
		}
	}
	for s := reg.Len() - 1; s >= 0; s-- {
		for i := 0; i < op.Ann(s); i++ {
			parts = append(parts, string(reg.Label(s)))
		}
	}
	parts = append(parts, "}")

	return strings.Join(parts, " ")
}

// Commute reports whether a and b commute, i.e. no leg of one can be
// contracted with a leg of the other.
func Commute(a, b Operator) bool {
	n := 0
	for s := range a.Vertex {
		n += a.Ann(s)*b.Cre(s) + a.Cre(s)*b.Ann(s)
	}

	return n == 0
}

// noncommutingLess orders commuting operators and never moves
// noncommuting ones past each other.
func noncommutingLess(a, b Operator) bool {
	return Commute(a, b) && a.Less(b)
}

// OperatorProduct is an ordered product of operators.
type OperatorProduct []Operator

// NumOps returns the total number of legs.
func (p OperatorProduct) NumOps() int {
	n := 0
	for _, op := range p {
		n += op.NumOps()
	}

	return n
}

// Mul returns the concatenation p · q.
func (p OperatorProduct) Mul(q OperatorProduct) OperatorProduct {
	out := make(OperatorProduct, 0, len(p)+len(q))

	return append(append(out, p...), q...)
}

// Canonicalize bubble-sorts commuting neighbours into order in place and
// returns (-1)^(nA·nB) accumulated over every swap of operators with nA
// and nB legs.
func (p OperatorProduct) Canonicalize() int {
	nperm := 0
	for i := 0; i < len(p)-1; i++ {
		for j := 0; j < len(p)-i-1; j++ {
			if noncommutingLess(p[j+1], p[j]) {
				nperm += p[j].NumOps() * p[j+1].NumOps()
				p[j], p[j+1] = p[j+1], p[j]
			}
		}
	}
	if nperm%2 == 0 {
		return 1
	}

	return -1
}

// Adjoint returns the reversed product of adjoint operators.
func (p OperatorProduct) Adjoint() OperatorProduct {
	out := make(OperatorProduct, len(p))
	for n, op := range p {
		out[len(p)-1-n] = op.Adjoint()
	}

	return out
}

// Compare orders products lexicographically.
func (p OperatorProduct) Compare(q OperatorProduct) int {
	return slices.CompareFunc(p, q, Operator.Compare)
}

// Key returns a registry-independent identity string.
func (p OperatorProduct) Key() string {
	var sb strings.Builder
	for _, op := range p {
		sb.WriteString(strconv.Quote(op.Label))
		fmt.Fprint(&sb, op.Vertex)
	}

	return sb.String()
}

// Render prints the operators separated by spaces.
func (p OperatorProduct) Render(reg *space.Registry) string {
	parts := make([]string, len(p))
	for n, op := range p {
		parts[n] = op.Render(reg)
	}

	return strings.Join(parts, " ")
}
