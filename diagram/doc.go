// Package diagram describes second-quantized operators diagrammatically:
// each operator is reduced to the number of creation and annihilation legs
// it carries in every orbital space.
//
// What:
//
//   - Vertex               per-space (creation, annihilation) leg counts.
//   - Operator             labeled vertex, e.g. t { v+ o } for T1.
//   - OperatorProduct      ordered product of operators.
//   - OperatorExpression   linear combination of products with rational
//     coefficients; supports products, commutators and a truncated
//     Baker–Campbell–Hausdorff series.
//
// Building operators:
//
//	MakeOperator accepts each component in one of two forms:
//
//	    "v+ v+ o o"   creation legs carry a trailing '+' (or '^')
//	    "oo->vv"      spaces left of "->" are annihilated, right created
//
//	Both forms above build the same T2 vertex.
//
// Errors:
//
//   - ErrBadComponent   a component string could not be read.
//   - space.ErrUnknownSpace is wrapped when a label is not registered.
package diagram
