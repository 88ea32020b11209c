// Package algebra holds the symbolic objects produced by the contraction
// engine: indices, second-quantized operators, tensors, symbolic terms and
// the Expression sum that collects them with exact rational coefficients.
//
// What:
//
//   - Index          (space, position) pair, ordered lexicographically.
//   - SQOperator     a creation or annihilation operator on one Index.
//   - Tensor         labeled tensor with lower/upper index lists and a
//     permutational Symmetry.
//   - SymbolicTerm   product of tensors followed by a string of SQOperators,
//     optionally flagged as normal ordered.
//   - Accumulator    generic map from a canonical key to a nonzero
//     coefficient; the building block of Expression.
//   - Expression     canonical SymbolicTerm → Rational sum.
//   - Equation       lhs += factor · rhs, extracted from an Expression.
//   - Components     breadth-first grouping (bfs over a core.Graph) of a term's tensors by shared
//     indices; Connected filters an Expression to linked terms.
//
// Canonical form:
//
//	SymbolicTerm.Canonicalize sorts tensors by a connectivity score,
//	relabels dummy indices in a fixed traversal order, sorts the indices
//	of each tensor and finally sorts the operator string. Two terms that
//	differ only by a renaming of dummy indices and by reordering of
//	commuting factors end up identical, so their coefficients merge when
//	added to an Expression.
//
// Text syntax:
//
//	ParseExpression reads one term per line:
//
//	    -1/2 t^{o0,o1}_{v0,v1} v^{v0,v1}_{o0,o1}
//	    f^{v0}_{o0} { a+(v0) a-(o0) }
//
//	An optional leading fraction, any number of tensors and operators.
//	Index names are a space label, an optional underscore and a number.
//	Braces around the operators mark the term as normal ordered.
//
// Errors:
//
//   - ErrNonsymmetricTensor  Canonicalize on a Nonsymmetric tensor.
//   - ErrParse               malformed term text.
package algebra
