// Package space defines the orbital-space registry: the ordered list of
// orbital subspaces that every operator, index and contraction refers to
// by position.
//
// What:
//
//	Each space has a single-character label (o, v, a, …), a Kind that
//	selects the contraction rule (Occupied, Unoccupied, General), a Field
//	type (Fermion, Boson) and a pool of index names used for display.
//
// Registry:
//
//	A Registry is configured once, validated as spaces are added, and then
//	passed explicitly to the engine. There is no package-level registry;
//	two registries can coexist in one process.
//
// Errors:
//
//   - ErrEmptyLabel      label is the zero rune.
//   - ErrDuplicateLabel  label already registered.
//   - ErrDuplicateIndex  index name already owned by another space.
//   - ErrTooManySpaces   more than MaxSpaces spaces.
//   - ErrUnknownKind     ParseKind received an unknown kind name.
//   - ErrUnknownField    ParseField received an unknown field name.
//   - ErrUnknownSpace    lookup by label failed.
package space
