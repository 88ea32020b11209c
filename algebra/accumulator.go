package algebra

import (
	"slices"

	"github.com/katalvlaran/wick/rational"
)

// Entry is one item of an Accumulator with its coefficient.
type Entry[T any] struct {
	Item  T
	Coeff rational.Rational
}

// Accumulator maps items to rational coefficients. Items with the same key
// are merged by adding their coefficients, and an entry whose coefficient
// becomes zero is removed, so an Accumulator never stores a zero.
//
// The key function must return equal keys exactly for items the caller
// considers equal; the compare function fixes the iteration order of
// Entries. The zero value is not usable; construct with NewAccumulator.
type Accumulator[T any, K comparable] struct {
	key     func(T) K
	compare func(a, b T) int
	entries map[K]Entry[T]
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator[T any, K comparable](key func(T) K, compare func(a, b T) int) *Accumulator[T, K] {
	return &Accumulator[T, K]{
		key:     key,
		compare: compare,
		entries: make(map[K]Entry[T]),
	}
}

// Add adds c·item. The first item stored under a key is kept as the
// representative of that key.
func (a *Accumulator[T, K]) Add(item T, c rational.Rational) {
	k := a.key(item)
	e, ok := a.entries[k]
	if !ok {
		if c.IsZero() {
			return
		}
		a.entries[k] = Entry[T]{Item: item, Coeff: c}

		return
	}
	e.Coeff = e.Coeff.Add(c)
	if e.Coeff.IsZero() {
		delete(a.entries, k)

		return
	}
	a.entries[k] = e
}

// Merge adds scale·other into a.
func (a *Accumulator[T, K]) Merge(other *Accumulator[T, K], scale rational.Rational) {
	for _, e := range other.Entries() {
		a.Add(e.Item, e.Coeff.Mul(scale))
	}
}

// Scale multiplies every coefficient by c. Scaling by zero empties a.
func (a *Accumulator[T, K]) Scale(c rational.Rational) {
	if c.IsZero() {
		clear(a.entries)

		return
	}
	for k, e := range a.entries {
		e.Coeff = e.Coeff.Mul(c)
		a.entries[k] = e
	}
}

// Len returns the number of nonzero entries.
func (a *Accumulator[T, K]) Len() int { return len(a.entries) }

// Coefficient returns the coefficient stored for item, or zero.
func (a *Accumulator[T, K]) Coefficient(item T) rational.Rational {
	return a.entries[a.key(item)].Coeff
}

// Entries returns the entries sorted by the compare function.
func (a *Accumulator[T, K]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(x, y Entry[T]) int { return a.compare(x.Item, y.Item) })

	return out
}

// Equal reports whether a and b hold the same keys with equal coefficients.
func (a *Accumulator[T, K]) Equal(b *Accumulator[T, K]) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}
	for k, e := range a.entries {
		o, ok := b.entries[k]
		if !ok || !e.Coeff.Equal(o.Coeff) {
			return false
		}
	}

	return true
}

// Clone returns a shallow copy; items are shared with a.
func (a *Accumulator[T, K]) Clone() *Accumulator[T, K] {
	out := NewAccumulator(a.key, a.compare)
	for k, e := range a.entries {
		out.entries[k] = e
	}

	return out
}
