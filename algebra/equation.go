package algebra

import (
	"strings"

	"github.com/katalvlaran/wick/rational"
	"github.com/katalvlaran/wick/space"
)

// Equation is a many-body equation lhs += factor · rhs.
type Equation struct {
	LHS    SymbolicTerm
	RHS    SymbolicTerm
	Factor rational.Rational
}

// RHSExpression returns factor · rhs as a one-term Expression.
func (eq Equation) RHSExpression() *Expression {
	e := NewExpression()
	e.Add(eq.RHS, eq.Factor)

	return e
}

// Equal reports whether both sides and the factor match.
func (eq Equation) Equal(o Equation) bool {
	return eq.LHS.Equal(o.LHS) && eq.RHS.Equal(o.RHS) && eq.Factor.Equal(o.Factor)
}

// Render prints "lhs += factor rhs".
func (eq Equation) Render(reg *space.Registry) string {
	parts := []string{eq.LHS.Render(reg), "+="}
	if f := eq.Factor.Text(false); f != "" {
		parts = append(parts, f)
	}
	parts = append(parts, eq.RHS.Render(reg))

	return strings.Join(parts, " ")
}

// ToManyBodyEquations turns every term of e into an equation for a tensor
// named label. Creation operators of a term become lower indices of the lhs
// tensor and annihilation operators upper indices; the coefficient is
// carried over unchanged.
//
// Equations are grouped by the space labels of the lhs indices, upper then
// lower, separated by "|" (e.g. "o|v" for a tensor r^{o0}_{v0}). Within a
// group they follow the term order of e.
func (e *Expression) ToManyBodyEquations(reg *space.Registry, label string) map[string][]Equation {
	out := make(map[string][]Equation)
	for _, t := range e.Terms() {
		var lower, upper []Index
		for _, op := range t.Symbolic.ops {
			if op.IsCreation() {
				lower = append(lower, op.Index)
			} else {
				upper = append(upper, op.Index)
			}
		}
		var lhs, rhs SymbolicTerm
		lhs.AddTensor(NewTensor(label, lower, upper, Antisymmetric))
		for _, x := range t.Symbolic.tensors {
			rhs.AddTensor(x)
		}
		key := spaceLabels(reg, upper) + "|" + spaceLabels(reg, lower)
		out[key] = append(out[key], Equation{
			LHS:    lhs,
			RHS:    rhs,
			Factor: t.Coeff,
		})
	}

	return out
}

func spaceLabels(reg *space.Registry, idx []Index) string {
	var sb strings.Builder
	for _, i := range idx {
		sb.WriteRune(reg.Label(i.Space))
	}

	return sb.String()
}
