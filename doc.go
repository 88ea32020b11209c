// Package wick is an in-memory engine for Wick's theorem: it contracts
// products of second-quantized operators over user-defined orbital spaces
// and returns the result as canonical tensor expressions with exact
// rational coefficients.
//
// What is in the module?
//
//	rational/      exact fractions on math/big
//	combinatorics/ integer partitions and unique permutations
//	space/         orbital space registry (occupied, unoccupied, general)
//	core/          thread-safe undirected graph keyed by string IDs
//	bfs/           breadth-first traversal over core graphs
//	algebra/       indices, tensors, symbolic terms, expressions, equations
//	diagram/       diagrammatic operators, products, commutators, BCH series
//	wick/          the contraction engine (Theorem)
//	config/        YAML description of spaces, operators and engine options
//	render/        terminal and markdown tables
//	cmd/wick/      command line front end
//
// Quick example:
//
//	reg := space.NewRegistry().
//		MustAdd('o', space.Fermion, space.Occupied, "i", "j").
//		MustAdd('v', space.Fermion, space.Unoccupied, "a", "b")
//	f := diagram.MustMakeOperator(reg, "f", "o+ v")
//	t := diagram.MustMakeOperator(reg, "t", "v+ o")
//	sum, _ := wick.NewTheorem(reg).ContractExpression(ctx, rational.One(), f.Mul(t), 0, 0)
//	fmt.Println(sum.Render(reg)) // f^{v0}_{o0} t^{o0}_{v0}
//
//	go install github.com/katalvlaran/wick/cmd/wick@latest
package wick
