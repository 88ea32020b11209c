package algebra

import (
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/katalvlaran/wick/space"
)

// Symmetry is the permutational symmetry of a tensor's index lists.
type Symmetry int

const (
	// Antisymmetric tensors change sign under an odd permutation of their
	// upper or lower indices.
	Antisymmetric Symmetry = iota
	// Symmetric tensors are invariant under index permutations.
	Symmetric
	// Nonsymmetric tensors have no permutational symmetry.
	Nonsymmetric
)

// String returns the lowercase symmetry name.
func (s Symmetry) String() string {
	switch s {
	case Antisymmetric:
		return "antisymmetric"
	case Symmetric:
		return "symmetric"
	case Nonsymmetric:
		return "nonsymmetric"
	}

	return fmt.Sprintf("Symmetry(%d)", int(s))
}

// Tensor is a labeled tensor with lower and upper indices.
type Tensor struct {
	Label    string
	Lower    []Index
	Upper    []Index
	Symmetry Symmetry
}

// NewTensor copies lower and upper into a new Tensor.
func NewTensor(label string, lower, upper []Index, sym Symmetry) Tensor {
	return Tensor{
		Label:    label,
		Lower:    slices.Clone(lower),
		Upper:    slices.Clone(upper),
		Symmetry: sym,
	}
}

// Clone returns a deep copy of t.
func (t Tensor) Clone() Tensor { return NewTensor(t.Label, t.Lower, t.Upper, t.Symmetry) }

// Rank returns the total number of indices.
func (t Tensor) Rank() int { return len(t.Lower) + len(t.Upper) }

// Compare orders tensors by label, lower indices, then upper indices.
// Symmetry does not take part in the comparison.
func (t Tensor) Compare(o Tensor) int {
	if c := strings.Compare(t.Label, o.Label); c != 0 {
		return c
	}
	if c := CompareIndices(t.Lower, o.Lower); c != 0 {
		return c
	}

	return CompareIndices(t.Upper, o.Upper)
}

// Less reports whether t sorts before o.
func (t Tensor) Less(o Tensor) bool { return t.Compare(o) < 0 }

// Equal reports whether t and o have the same label and index lists.
func (t Tensor) Equal(o Tensor) bool { return t.Compare(o) == 0 }

// Reindex renames indices through m. The index lists are replaced, never
// modified in place, so copies of t are unaffected.
func (t *Tensor) Reindex(m IndexMap) {
	t.Lower = m.apply(t.Lower)
	t.Upper = m.apply(t.Upper)
}

// Canonicalize sorts the upper and lower indices and returns the sign picked
// up by an antisymmetric tensor (always 1 for a symmetric one).
func (t *Tensor) Canonicalize() (int, error) {
	if t.Symmetry == Nonsymmetric {
		return 0, fmt.Errorf("algebra: Tensor.Canonicalize(%s): %w", t.Label, ErrNonsymmetricTensor)
	}
	upper := slices.Clone(t.Upper)
	lower := slices.Clone(t.Lower)
	sign := CanonicalizeIndices(upper) * CanonicalizeIndices(lower)
	t.Upper, t.Lower = upper, lower
	if t.Symmetry == Symmetric {
		return 1, nil
	}

	return sign, nil
}

// Signature returns the number of (upper, lower) indices per space.
func (t Tensor) Signature() [space.MaxSpaces][2]int {
	var sig [space.MaxSpaces][2]int
	for _, i := range t.Upper {
		sig[i.Space][0]++
	}
	for _, i := range t.Lower {
		sig[i.Space][1]++
	}

	return sig
}

// SymmetryFactor returns ∏_s u_s! · l_s! over the upper and lower indices.
func (t Tensor) SymmetryFactor() *big.Int {
	return new(big.Int).Mul(SymmetryFactor(t.Upper), SymmetryFactor(t.Lower))
}

// Adjoint swaps the upper and lower indices.
func (t Tensor) Adjoint() Tensor { return NewTensor(t.Label, t.Upper, t.Lower, t.Symmetry) }

// Render prints the tensor as label^{upper,…}_{lower,…}.
func (t Tensor) Render(reg *space.Registry) string {
	return t.Label + "^{" + renderIndices(reg, t.Upper) + "}_{" + renderIndices(reg, t.Lower) + "}"
}

func renderIndices(reg *space.Registry, idx []Index) string {
	parts := make([]string, len(idx))
	for n, i := range idx {
		parts[n] = i.Render(reg)
	}

	return strings.Join(parts, ",")
}
