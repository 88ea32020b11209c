// Package combinatorics collects the small counting primitives used by the
// contraction engine: factorials, binomials, integer partitions, lexicographic
// permutation stepping and permutation parity.
//
// What:
//
//   - Factorial(n), Binomial(n, k)          exact big.Int counts for leg bookkeeping.
//   - IntegerPartitions(n, maxLen)          ZS2 generation order, non-increasing parts.
//   - NextPermutation(p)                    in-place lexicographic successor.
//   - Permutations(n, visit)                all permutations of 0..n-1 in order.
//   - PermutationSign(p)                    +1 / -1 by inversion count.
//
// Complexity:
//
//   - IntegerPartitions: O(p(n)) amortized constant time per partition.
//   - PermutationSign:   O(n²), n is always a handful of operators.
//
// The functions are pure and safe for concurrent use.
package combinatorics
