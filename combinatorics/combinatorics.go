package combinatorics

import "math/big"

// Factorial returns n! for n ≥ 0 and 1 for negative n.
func Factorial(n int) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}

	return new(big.Int).MulRange(2, int64(n))
}

// Binomial returns C(n, k), and 0 when k > n or k < 0.
func Binomial(n, k int) *big.Int {
	if k < 0 || k > n {
		return new(big.Int)
	}

	return new(big.Int).Binomial(int64(n), int64(k))
}

// PermutationSign returns +1 for an even permutation and -1 for an odd
// one, counting inversions. Entries only need to be distinct and ordered.
func PermutationSign(p []int) int {
	inversions := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				inversions++
			}
		}
	}
	if inversions%2 == 0 {
		return 1
	}

	return -1
}

// NextPermutation rearranges p into its lexicographic successor and
// reports true, or, if p is the last permutation, resets p to the first
// (sorted) one and reports false. Repeated values are allowed, so
// stepping from the sorted state visits each distinct arrangement once.
func NextPermutation(p []int) bool {
	n := len(p)
	if n < 2 {
		return false
	}

	// 1) find the rightmost ascent p[i] < p[i+1]
	i := n - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		reverse(p)

		return false
	}

	// 2) swap p[i] with the rightmost element greater than it
	j := n - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	// 3) the suffix is non-increasing; reverse it to make it minimal
	reverse(p[i+1:])

	return true
}

// Permutations calls visit with every permutation of 0..n-1 in
// lexicographic order, starting from the identity. The slice passed to
// visit is reused between calls; copy it to keep it. Returning false from
// visit stops the enumeration.
func Permutations(n int, visit func(perm []int) bool) {
	perm := Identity(n)
	for {
		if !visit(perm) {
			return
		}
		if !NextPermutation(perm) {
			return
		}
	}
}

// Identity returns [0, 1, …, n-1].
func Identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

func reverse(p []int) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}
