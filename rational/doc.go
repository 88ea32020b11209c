// Package rational provides exact fraction arithmetic used for every
// coefficient produced by the contraction engine.
//
// What:
//
//	Rational is an immutable, always-reduced fraction n/d with d > 0,
//	backed by math/big so that numerators and denominators never overflow
//	no matter how many legs are contracted.
//
// Why:
//
//	Contributions to a many-body expression must cancel exactly. Two
//	coefficients that are algebraically equal must compare equal, and a
//	sum that is algebraically zero must be exactly zero, otherwise the
//	zero-free invariant of an expression cannot hold. Floating point
//	cannot give either guarantee.
//
// Key Types & Functions:
//
//   - Rational       value type; the zero value is 0.
//   - New(n, d)      constructor; ErrZeroDenominator when d == 0.
//   - FromInt(n)     integer constructor.
//   - Parse(s)       "3", "-1/2", "+4/6" → reduced Rational.
//   - Add/Sub/Mul/Quo/Neg/Inv arithmetic, each returning a new value.
//   - Text(sign)     coefficient text: "" for 1, "-" for -1, "+" prefixes.
//
// Errors:
//
//   - ErrZeroDenominator  construction or division by zero.
//   - ErrSyntax           Parse received malformed input.
package rational
