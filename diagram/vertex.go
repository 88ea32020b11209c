package diagram

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/wick/space"
)

// Vertex stores the (creation, annihilation) leg counts of an operator, or
// of the part of an operator touched by a contraction, for every space.
// The zero value has no legs. Indexing a space ≥ space.MaxSpaces panics.
type Vertex [space.MaxSpaces][2]int

// NewVertex builds a vertex from per-space creation and annihilation
// counts; missing trailing entries are zero.
func NewVertex(cre, ann []int) Vertex {
	var v Vertex
	for s, n := range cre {
		v[s][0] = n
	}
	for s, n := range ann {
		v[s][1] = n
	}

	return v
}

// Cre returns the number of creation legs in space s.
func (v Vertex) Cre(s int) int { return v[s][0] }

// Ann returns the number of annihilation legs in space s.
func (v Vertex) Ann(s int) int { return v[s][1] }

// SetCre sets the number of creation legs in space s.
func (v *Vertex) SetCre(s, n int) { v[s][0] = n }

// SetAnn sets the number of annihilation legs in space s.
func (v *Vertex) SetAnn(s, n int) { v[s][1] = n }

// NumOpsIn returns the number of legs in space s.
func (v Vertex) NumOpsIn(s int) int { return v[s][0] + v[s][1] }

// NumOps returns the total number of legs.
func (v Vertex) NumOps() int {
	n := 0
	for _, p := range v {
		n += p[0] + p[1]
	}

	return n
}

// IsZero reports whether v has no legs.
func (v Vertex) IsZero() bool { return v == Vertex{} }

// Add returns v + o leg by leg.
func (v Vertex) Add(o Vertex) Vertex {
	for s := range v {
		v[s][0] += o[s][0]
		v[s][1] += o[s][1]
	}

	return v
}

// Sub returns v - o leg by leg.
func (v Vertex) Sub(o Vertex) Vertex {
	for s := range v {
		v[s][0] -= o[s][0]
		v[s][1] -= o[s][1]
	}

	return v
}

// Adjoint swaps creation and annihilation counts.
func (v Vertex) Adjoint() Vertex {
	for s := range v {
		v[s][0], v[s][1] = v[s][1], v[s][0]
	}

	return v
}

// Compare orders vertices lexicographically by (cre, ann) per space.
func (v Vertex) Compare(o Vertex) int {
	for s := range v {
		for k := 0; k < 2; k++ {
			switch {
			case v[s][k] < o[s][k]:
				return -1
			case v[s][k] > o[s][k]:
				return 1
			}
		}
	}

	return 0
}

// Less reports whether v sorts before o.
func (v Vertex) Less(o Vertex) bool { return v.Compare(o) < 0 }

// Render lists the legs as "o+ v+ v o": creation legs first, each space in
// registry order.
func (v Vertex) Render(reg *space.Registry) string {
	var parts []string
	for s := 0; s < reg.Len(); s++ {
		for i := 0; i < v.Cre(s); i++ {
			parts = append(parts, string(reg.Label(s))+"+")
		}
	}
	for s := 0; s < reg.Len(); s++ {
		for i := 0; i < v.Ann(s); i++ {
			parts = append(parts, string(reg.Label(s)))
		}
	}

	return strings.Join(parts, " ")
}

// Signature encodes the counts of the first n spaces as digits, creation
// counts first.
func (v Vertex) Signature(n int) string {
	var sb strings.Builder
	for k := 0; k < 2; k++ {
		for s := 0; s < n; s++ {
			sb.WriteString(strconv.Itoa(v[s][k]))
		}
	}

	return sb.String()
}

// SumNumOps returns the total number of legs of a vertex list.
func SumNumOps(vs []Vertex) int {
	n := 0
	for _, v := range vs {
		n += v.NumOps()
	}

	return n
}
