package space

import (
	"errors"
	"fmt"
)

// MaxSpaces is the largest number of orbital spaces a registry may hold.
// Leg-count vertices are fixed-size arrays of this length.
const MaxSpaces = 8

// Sentinel errors.
var (
	ErrEmptyLabel     = errors.New("space: empty space label")
	ErrDuplicateLabel = errors.New("space: space label already defined")
	ErrDuplicateIndex = errors.New("space: index already assigned to another space")
	ErrTooManySpaces  = errors.New("space: too many orbital spaces")
	ErrUnknownKind    = errors.New("space: unknown space kind")
	ErrUnknownField   = errors.New("space: unknown field type")
	ErrUnknownSpace   = errors.New("space: unknown space label")
)

// Kind selects the contraction rule applied to a space.
type Kind int

const (
	// Occupied spaces contract a creation leg on an earlier operator with an
	// annihilation leg on a later one (hole lines).
	Occupied Kind = iota
	// Unoccupied spaces contract an annihilation leg on an earlier operator
	// with a creation leg on a later one (particle lines).
	Unoccupied
	// General spaces contract any number k ≥ 1 of creation and annihilation
	// legs into density and cumulant tensors.
	General
)

var kindNames = [...]string{
	Occupied:   "occupied",
	Unoccupied: "unoccupied",
	General:    "general",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Valid reports whether k is one of the three known kinds.
func (k Kind) Valid() bool { return k >= Occupied && k <= General }

// ParseKind converts "occupied", "unoccupied" or "general" into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if s == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("space: ParseKind(%q): %w (valid: occupied, unoccupied, general)", s, ErrUnknownKind)
}

// Field is the statistics of the particles living in a space.
type Field int

const (
	// Fermion fields anticommute; their operators print with symbol "a".
	Fermion Field = iota
	// Boson fields commute; their operators print with symbol "b".
	Boson
)

var fieldNames = [...]string{Fermion: "fermion", Boson: "boson"}

// String returns the lowercase field name.
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}

	return fieldNames[f]
}

// Symbol returns the operator symbol used when printing second-quantized
// operators of this field.
func (f Field) Symbol() string {
	if f == Boson {
		return "b"
	}

	return "a"
}

// ParseField converts "fermion" or "boson" into a Field.
func ParseField(s string) (Field, error) {
	for f, name := range fieldNames {
		if s == name {
			return Field(f), nil
		}
	}

	return 0, fmt.Errorf("space: ParseField(%q): %w (valid: fermion, boson)", s, ErrUnknownField)
}

// Space describes one orbital subspace.
type Space struct {
	Label   rune     // single-character label, unique in a registry
	Kind    Kind     // contraction rule
	Field   Field    // particle statistics
	Indices []string // index names used for display, unique in a registry
}
