package space

import (
	"fmt"
	"strconv"
	"strings"
)

// Registry is an ordered collection of orbital spaces. Positions in the
// registry are the space indices used by every other package.
//
// A Registry is mutated only while it is being configured; the engine
// treats it as read-only and it may then be shared across goroutines.
type Registry struct {
	spaces       []Space
	labelToPos   map[rune]int
	indicesToPos map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		labelToPos:   make(map[rune]int),
		indicesToPos: make(map[string]int),
	}
}

// Add appends a space. The label and every index name must be new.
func (r *Registry) Add(label rune, field Field, kind Kind, indices []string) error {
	switch {
	case label == 0:
		return ErrEmptyLabel
	case !kind.Valid():
		return fmt.Errorf("space: Add(%q): %w", label, ErrUnknownKind)
	case len(r.spaces) >= MaxSpaces:
		return fmt.Errorf("space: Add(%q): %w (max %d)", label, ErrTooManySpaces, MaxSpaces)
	}
	if _, ok := r.labelToPos[label]; ok {
		return fmt.Errorf("space: Add(%q): %w", label, ErrDuplicateLabel)
	}

	seen := make(map[string]struct{}, len(indices))
	for _, idx := range indices {
		if _, ok := r.indicesToPos[idx]; ok {
			return fmt.Errorf("space: Add(%q): index %q: %w", label, idx, ErrDuplicateIndex)
		}
		if _, ok := seen[idx]; ok {
			return fmt.Errorf("space: Add(%q): index %q: %w", label, idx, ErrDuplicateIndex)
		}
		seen[idx] = struct{}{}
	}

	pos := len(r.spaces)
	r.labelToPos[label] = pos
	for _, idx := range indices {
		r.indicesToPos[idx] = pos
	}
	r.spaces = append(r.spaces, Space{
		Label:   label,
		Kind:    kind,
		Field:   field,
		Indices: append([]string(nil), indices...),
	})

	return nil
}

// MustAdd is Add for fixed test and example setups; it panics on error.
func (r *Registry) MustAdd(label rune, field Field, kind Kind, indices ...string) *Registry {
	if err := r.Add(label, field, kind, indices); err != nil {
		panic(err)
	}

	return r
}

// Len returns the number of spaces.
func (r *Registry) Len() int { return len(r.spaces) }

// Space returns a copy of the space at position pos.
func (r *Registry) Space(pos int) Space {
	s := r.spaces[pos]
	s.Indices = append([]string(nil), s.Indices...)

	return s
}

// Label returns the label of the space at position pos.
func (r *Registry) Label(pos int) rune { return r.spaces[pos].Label }

// Kind returns the kind of the space at position pos.
func (r *Registry) Kind(pos int) Kind { return r.spaces[pos].Kind }

// Field returns the field type of the space at position pos.
func (r *Registry) Field(pos int) Field { return r.spaces[pos].Field }

// OpSymbol returns "a" or "b" for operators acting on space pos.
func (r *Registry) OpSymbol(pos int) string { return r.spaces[pos].Field.Symbol() }

// LabelToSpace returns the position of the space with the given label.
func (r *Registry) LabelToSpace(label rune) (int, error) {
	pos, ok := r.labelToPos[label]
	if !ok {
		return -1, fmt.Errorf("space: LabelToSpace(%q): %w", label, ErrUnknownSpace)
	}

	return pos, nil
}

// IndexLabel returns the display name of index number idx in space pos,
// falling back to "<label>_{idx}" once the index pool is exhausted.
func (r *Registry) IndexLabel(pos, idx int) string {
	names := r.spaces[pos].Indices
	if idx >= 0 && idx < len(names) {
		return names[idx]
	}

	return string(r.spaces[pos].Label) + "_{" + strconv.Itoa(idx) + "}"
}

// IndicesOfKind returns the positions of all spaces of kind k.
func (r *Registry) IndicesOfKind(k Kind) []int {
	var out []int
	for i, s := range r.spaces {
		if s.Kind == k {
			out = append(out, i)
		}
	}

	return out
}

// String lists the spaces in registry order.
func (r *Registry) String() string {
	parts := make([]string, 0, len(r.spaces))
	for _, s := range r.spaces {
		parts = append(parts, fmt.Sprintf(
			"space label: %c\nfield type: %s\nspace type: %s\nindices: [%s]",
			s.Label, s.Field, s.Kind, strings.Join(s.Indices, ",")))
	}

	return strings.Join(parts, "\n\n")
}
