// Package config reads the YAML description of a contraction session: the
// orbital spaces, the engine options and a set of named operators.
//
// Format:
//
//	spaces:
//	  - {label: o, field: fermion, kind: occupied,   indices: [i, j, k, l]}
//	  - {label: v, field: fermion, kind: unoccupied, indices: [a, b, c, d]}
//	engine:
//	  max_cumulant: 100
//	  canonicalize_graph: true
//	  single_threaded: false
//	  workers: 0
//	operators:
//	  T1:  {label: t, components: ["v+ o"]}
//	  Fov: {label: f, components: ["o+ v"]}
//
// Unknown keys are rejected. Engine fields left out keep the engine
// defaults; workers 0 means one worker per CPU.
//
// Errors:
//
//   - ErrInvalidConfig wraps every validation and construction failure,
//     together with the underlying space or diagram error when there is one.
package config
