package combinatorics_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wick/combinatorics"
)

// TestFactorial checks small values, the negative-input convention and
// values past the int64 range.
func TestFactorial(t *testing.T) {
	want := []int64{1, 1, 2, 6, 24, 120, 720}
	for n, w := range want {
		assert.Equal(t, w, combinatorics.Factorial(n).Int64(), "Factorial(%d)", n)
	}
	assert.Equal(t, int64(1), combinatorics.Factorial(-3).Int64())
	assert.Equal(t, int64(3628800), combinatorics.Factorial(10).Int64())
	assert.Equal(t, "15511210043330985984000000", combinatorics.Factorial(25).String())
}

// TestBinomial verifies Pascal's rule over a small triangle and the edges.
func TestBinomial(t *testing.T) {
	for n := 1; n < 12; n++ {
		for k := 1; k < n; k++ {
			sum := new(big.Int).Add(combinatorics.Binomial(n-1, k-1), combinatorics.Binomial(n-1, k))
			assert.Zero(t, sum.Cmp(combinatorics.Binomial(n, k)), "C(%d,%d)", n, k)
		}
	}
	assert.Equal(t, int64(1), combinatorics.Binomial(0, 0).Int64())
	assert.Equal(t, int64(0), combinatorics.Binomial(2, 3).Int64())
	assert.Equal(t, int64(0), combinatorics.Binomial(2, -1).Int64())
	assert.Equal(t, int64(6), combinatorics.Binomial(4, 2).Int64())
	assert.Equal(t, "7219428434016265740", combinatorics.Binomial(66, 33).String())
	assert.Equal(t, "28453041475240576740", combinatorics.Binomial(68, 34).String(), "beyond int64")
}

// TestIntegerPartitions_Order pins the ZS2 generation order.
func TestIntegerPartitions_Order(t *testing.T) {
	got := combinatorics.IntegerPartitions(4, 4)
	want := [][]int{{1, 1, 1, 1}, {2, 1, 1}, {2, 2}, {3, 1}, {4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("IntegerPartitions(4,4) mismatch (-want +got):\n%s", diff)
	}

	got = combinatorics.IntegerPartitions(4, 2)
	want = [][]int{{2, 2}, {3, 1}, {4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("IntegerPartitions(4,2) mismatch (-want +got):\n%s", diff)
	}
}

// TestIntegerPartitions_SpecialCases covers n = 0, 1, 2.
func TestIntegerPartitions_SpecialCases(t *testing.T) {
	assert.Equal(t, [][]int{{}}, combinatorics.IntegerPartitions(0, 3))
	assert.Equal(t, [][]int{{1}}, combinatorics.IntegerPartitions(1, 3))
	assert.Equal(t, [][]int{{1, 1}, {2}}, combinatorics.IntegerPartitions(2, 2))
	assert.Equal(t, [][]int{{2}}, combinatorics.IntegerPartitions(2, 1))
	assert.Nil(t, combinatorics.IntegerPartitions(-1, 3))
}

// TestIntegerPartitions_Counts compares against the partition numbers p(n).
func TestIntegerPartitions_Counts(t *testing.T) {
	p := []int{1, 1, 2, 3, 5, 7, 11, 15, 22, 30, 42}
	for n := 0; n < len(p); n++ {
		parts := combinatorics.IntegerPartitions(n, n)
		require.Len(t, parts, p[n], "p(%d)", n)
		for _, part := range parts {
			sum := 0
			for i, x := range part {
				sum += x
				if i > 0 {
					assert.LessOrEqual(t, x, part[i-1], "parts must be non-increasing")
				}
			}
			assert.Equal(t, n, sum)
		}
	}
}

// TestNextPermutation_Distinct enumerates all 3! permutations in order.
func TestNextPermutation_Distinct(t *testing.T) {
	var seen [][]int
	combinatorics.Permutations(3, func(p []int) bool {
		seen = append(seen, append([]int(nil), p...))

		return true
	})
	want := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("Permutations(3) mismatch (-want +got):\n%s", diff)
	}
}

// TestNextPermutation_Repeats checks multiset permutations and wrap-around.
func TestNextPermutation_Repeats(t *testing.T) {
	p := []int{0, 0, 1}
	var seen [][]int
	for {
		seen = append(seen, append([]int(nil), p...))
		if !combinatorics.NextPermutation(p) {
			break
		}
	}
	assert.Equal(t, [][]int{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}, seen)
	assert.Equal(t, []int{0, 0, 1}, p, "last step resets to the sorted state")
}

// TestPermutations_Stop ensures the visitor can abort the enumeration.
func TestPermutations_Stop(t *testing.T) {
	calls := 0
	combinatorics.Permutations(4, func([]int) bool {
		calls++

		return calls < 5
	})
	assert.Equal(t, 5, calls)
}

// TestPermutationSign checks parity on known permutations.
func TestPermutationSign(t *testing.T) {
	assert.Equal(t, 1, combinatorics.PermutationSign(nil))
	assert.Equal(t, 1, combinatorics.PermutationSign([]int{0, 1, 2}))
	assert.Equal(t, -1, combinatorics.PermutationSign([]int{1, 0, 2}))
	assert.Equal(t, 1, combinatorics.PermutationSign([]int{1, 2, 0}))
	assert.Equal(t, -1, combinatorics.PermutationSign([]int{0, 3, 2, 1}))
	assert.Equal(t, 1, combinatorics.PermutationSign([]int{5, 9}), "only relative order matters")
}
