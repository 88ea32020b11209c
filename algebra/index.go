package algebra

import (
	"errors"
	"math/big"
	"slices"
	"strconv"

	"github.com/katalvlaran/wick/combinatorics"
	"github.com/katalvlaran/wick/space"
)

// Sentinel errors.
var (
	// ErrNonsymmetricTensor is returned when the indices of a tensor without
	// permutational symmetry would have to be reordered.
	ErrNonsymmetricTensor = errors.New("algebra: cannot canonicalize a nonsymmetric tensor")

	// ErrParse is returned for term text that cannot be read.
	ErrParse = errors.New("algebra: parse error")
)

// Index identifies one orbital index: the registry position of its space
// and its position inside that space.
type Index struct {
	Space int
	Pos   int
}

// NewIndex returns the index (s, p).
func NewIndex(s, p int) Index { return Index{Space: s, Pos: p} }

// Compare orders indices by space, then position.
func (i Index) Compare(o Index) int {
	if i.Space != o.Space {
		if i.Space < o.Space {
			return -1
		}

		return 1
	}
	switch {
	case i.Pos < o.Pos:
		return -1
	case i.Pos > o.Pos:
		return 1
	}

	return 0
}

// Less reports whether i sorts before o.
func (i Index) Less(o Index) bool { return i.Compare(o) < 0 }

// Render prints the index as "<space label><position>", e.g. "o0".
func (i Index) Render(reg *space.Registry) string {
	return string(reg.Label(i.Space)) + strconv.Itoa(i.Pos)
}

// CompareIndices compares two index lists lexicographically; a proper
// prefix sorts first.
func CompareIndices(a, b []Index) int {
	return slices.CompareFunc(a, b, Index.Compare)
}

// CanonicalizeIndices sorts idx in increasing order in place and returns the
// sign of the permutation that was applied.
func CanonicalizeIndices(idx []Index) int {
	perm := make([]int, len(idx))
	for n := range perm {
		perm[n] = n
	}
	orig := slices.Clone(idx)
	slices.SortStableFunc(perm, func(a, b int) int { return orig[a].Compare(orig[b]) })
	for n, p := range perm {
		idx[n] = orig[p]
	}

	return combinatorics.PermutationSign(perm)
}

// IndicesPerSpace counts the indices that belong to each space.
func IndicesPerSpace(idx []Index) [space.MaxSpaces]int {
	var counts [space.MaxSpaces]int
	for _, i := range idx {
		counts[i.Space]++
	}

	return counts
}

// SymmetryFactor returns ∏_s n_s! where n_s is the number of indices of idx
// in space s.
func SymmetryFactor(idx []Index) *big.Int {
	f := big.NewInt(1)
	for _, n := range IndicesPerSpace(idx) {
		f.Mul(f, combinatorics.Factorial(n))
	}

	return f
}

// IndexMap renames indices; indices missing from the map are kept.
type IndexMap map[Index]Index

func (m IndexMap) apply(idx []Index) []Index {
	out := make([]Index, len(idx))
	for n, i := range idx {
		if j, ok := m[i]; ok {
			out[n] = j
		} else {
			out[n] = i
		}
	}

	return out
}
