package algebra

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/wick/space"
)

// SymbolicTerm is a product of tensors times a string of second-quantized
// operators. The zero value is the empty term (the number 1).
type SymbolicTerm struct {
	tensors       []Tensor
	ops           []SQOperator
	normalOrdered bool
}

// NewTerm builds a term from tensors and operators; both are copied.
func NewTerm(normalOrdered bool, ops []SQOperator, tensors ...Tensor) SymbolicTerm {
	t := SymbolicTerm{normalOrdered: normalOrdered, ops: slices.Clone(ops)}
	for _, x := range tensors {
		t.tensors = append(t.tensors, x.Clone())
	}

	return t
}

// AddTensor appends a copy of x.
func (t *SymbolicTerm) AddTensor(x Tensor) {
	t.tensors = append(slices.Clip(t.tensors), x.Clone())
}

// AddOperator appends operators to the operator string.
func (t *SymbolicTerm) AddOperator(ops ...SQOperator) {
	t.ops = append(slices.Clip(t.ops), ops...)
}

// SetNormalOrdered sets the normal-ordered flag.
func (t *SymbolicTerm) SetNormalOrdered(v bool) { t.normalOrdered = v }

// NormalOrdered reports whether the operator string is flagged as normal
// ordered.
func (t SymbolicTerm) NormalOrdered() bool { return t.normalOrdered }

// Tensors returns a copy of the tensor list.
func (t SymbolicTerm) Tensors() []Tensor {
	out := make([]Tensor, len(t.tensors))
	for n, x := range t.tensors {
		out[n] = x.Clone()
	}

	return out
}

// Operators returns a copy of the operator string.
func (t SymbolicTerm) Operators() []SQOperator { return slices.Clone(t.ops) }

// NumOps returns the length of the operator string.
func (t SymbolicTerm) NumOps() int { return len(t.ops) }

// Clone returns a deep copy of t.
func (t SymbolicTerm) Clone() SymbolicTerm {
	return NewTerm(t.normalOrdered, t.ops, t.tensors...)
}

// Adjoint returns the adjoint term: adjoint tensors and the reversed
// string of adjoint operators.
func (t SymbolicTerm) Adjoint() SymbolicTerm {
	out := SymbolicTerm{normalOrdered: t.normalOrdered}
	for _, x := range t.tensors {
		out.tensors = append(out.tensors, x.Adjoint())
	}
	for n := len(t.ops) - 1; n >= 0; n-- {
		out.ops = append(out.ops, t.ops[n].Adjoint())
	}

	return out
}

// IsVacuumNormalOrdered reports whether the operators are already sorted
// (creations left of annihilations).
func (t SymbolicTerm) IsVacuumNormalOrdered() bool {
	return slices.IsSortedFunc(t.ops, SQOperator.Compare)
}

// Reindex renames every index through m.
func (t *SymbolicTerm) Reindex(m IndexMap) {
	t.detach()
	for n := range t.tensors {
		t.tensors[n].Reindex(m)
	}
	for n, op := range t.ops {
		if j, ok := m[op.Index]; ok {
			t.ops[n].Index = j
		}
	}
}

// detach gives t private backing arrays; values copied from t keep theirs.
func (t *SymbolicTerm) detach() {
	t.tensors = slices.Clone(t.tensors)
	t.ops = slices.Clone(t.ops)
}

// Compare orders terms by their tensor lists, then by their operator
// strings. The normal-ordered flag is ignored.
func (t SymbolicTerm) Compare(o SymbolicTerm) int {
	if c := slices.CompareFunc(t.tensors, o.tensors, Tensor.Compare); c != 0 {
		return c
	}

	return CompareOperators(t.ops, o.ops)
}

// Less reports whether t sorts before o.
func (t SymbolicTerm) Less(o SymbolicTerm) bool { return t.Compare(o) < 0 }

// Equal reports whether t and o have identical tensors and operators.
func (t SymbolicTerm) Equal(o SymbolicTerm) bool { return t.Compare(o) == 0 }

// Key returns a string that is equal for two terms exactly when Equal
// reports true. It does not depend on a registry.
func (t SymbolicTerm) Key() string {
	var sb strings.Builder
	writeIdx := func(idx []Index) {
		for n, i := range idx {
			if n > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(i.Space))
			sb.WriteByte('.')
			sb.WriteString(strconv.Itoa(i.Pos))
		}
	}
	for _, x := range t.tensors {
		sb.WriteString(strconv.Quote(x.Label))
		sb.WriteString("^{")
		writeIdx(x.Upper)
		sb.WriteString("}_{")
		writeIdx(x.Lower)
		sb.WriteString("};")
	}
	sb.WriteByte('|')
	for _, op := range t.ops {
		if op.IsCreation() {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('-')
		}
		writeIdx([]Index{op.Index})
		sb.WriteByte(';')
	}

	return sb.String()
}

// Render prints the tensors followed by the operators; a normal-ordered
// operator string is wrapped in braces.
func (t SymbolicTerm) Render(reg *space.Registry) string {
	parts := make([]string, 0, len(t.tensors)+len(t.ops)+2)
	for _, x := range t.tensors {
		parts = append(parts, x.Render(reg))
	}
	if len(t.ops) > 0 {
		if t.normalOrdered {
			parts = append(parts, "{")
		}
		for _, op := range t.ops {
			parts = append(parts, op.Render(reg))
		}
		if t.normalOrdered {
			parts = append(parts, "}")
		}
	}

	return strings.Join(parts, " ")
}

// connection records how many indices a tensor shares with another tensor,
// per space.
type connection struct {
	label  string
	counts [space.MaxSpaces]int
}

func compareConnection(a, b connection) int {
	if c := strings.Compare(a.label, b.label); c != 0 {
		return c
	}

	return slices.Compare(a.counts[:], b.counts[:])
}

// tensorScore is the sort key of a tensor inside a term.
type tensorScore struct {
	label    string
	rank     int
	numLower [space.MaxSpaces]int
	numUpper [space.MaxSpaces]int
	lowConn  []connection
	uppConn  []connection
	tensor   Tensor
}

func compareScore(a, b tensorScore) int {
	if c := strings.Compare(a.label, b.label); c != 0 {
		return c
	}
	if c := cmp.Compare(a.rank, b.rank); c != 0 {
		return c
	}
	if c := slices.Compare(a.numLower[:], b.numLower[:]); c != 0 {
		return c
	}
	if c := slices.Compare(a.numUpper[:], b.numUpper[:]); c != 0 {
		return c
	}
	if c := slices.CompareFunc(a.lowConn, b.lowConn, compareConnection); c != 0 {
		return c
	}
	if c := slices.CompareFunc(a.uppConn, b.uppConn, compareConnection); c != 0 {
		return c
	}

	return a.tensor.Compare(b.tensor)
}

// connectivity lists, for every other tensor of the term, the number of
// indices it shares with one side of x. Upper indices of x are matched
// against lower indices of the other tensor and vice versa.
func (t SymbolicTerm) connectivity(x Tensor, upper bool) []connection {
	mine := x.Lower
	if upper {
		mine = x.Upper
	}
	mine = slices.Clone(mine)
	slices.SortFunc(mine, Index.Compare)

	var out []connection
	for _, y := range t.tensors {
		if x.Equal(y) {
			continue
		}
		theirs := y.Upper
		if upper {
			theirs = y.Lower
		}
		theirs = slices.Clone(theirs)
		slices.SortFunc(theirs, Index.Compare)
		out = append(out, connection{label: y.Label, counts: IndicesPerSpace(intersect(mine, theirs))})
	}
	slices.SortFunc(out, compareConnection)

	return out
}

// intersect returns the common elements of two sorted index lists.
func intersect(a, b []Index) []Index {
	var out []Index
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch c := a[i].Compare(b[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// Canonicalize brings t into canonical form and returns the sign produced
// by reordering antisymmetric tensor indices and operators.
//
// Steps:
//  1. Sort tensors by (label, rank, lower counts per space, upper counts per
//     space, lower connectivity, upper connectivity, tensor).
//  2. Relabel indices in traversal order (tensors in order, lower indices
//     before upper). Indices shared with an operator are numbered from 0;
//     the remaining ones continue after the operator indices of their space.
//  3. Sort each tensor's indices.
//  4. Sort the operator string.
func (t *SymbolicTerm) Canonicalize() (int, error) {
	t.detach()
	scores := make([]tensorScore, len(t.tensors))
	for n, x := range t.tensors {
		scores[n] = tensorScore{
			label:    x.Label,
			rank:     x.Rank(),
			numLower: IndicesPerSpace(x.Lower),
			numUpper: IndicesPerSpace(x.Upper),
			lowConn:  t.connectivity(x, false),
			uppConn:  t.connectivity(x, true),
			tensor:   x,
		}
	}
	slices.SortStableFunc(scores, compareScore)
	for n := range scores {
		t.tensors[n] = scores[n].tensor
	}

	var opCount, tensorCount [space.MaxSpaces]int
	isOpIndex := make(map[Index]bool, len(t.ops))
	for _, op := range t.ops {
		tensorCount[op.Index.Space]++
		isOpIndex[op.Index] = true
	}
	m := make(IndexMap)
	assign := func(i Index) {
		if _, ok := m[i]; ok {
			return
		}
		s := i.Space
		if isOpIndex[i] {
			m[i] = NewIndex(s, opCount[s])
			opCount[s]++
		} else {
			m[i] = NewIndex(s, tensorCount[s])
			tensorCount[s]++
		}
	}
	for _, x := range t.tensors {
		for _, i := range x.Lower {
			assign(i)
		}
		for _, i := range x.Upper {
			assign(i)
		}
	}
	t.Reindex(m)

	sign := 1
	for n := range t.tensors {
		s, err := t.tensors[n].Canonicalize()
		if err != nil {
			return 0, err
		}
		sign *= s
	}
	sign *= CanonicalizeOperators(t.ops)

	return sign, nil
}
