// Package wick applies Wick's theorem to products of diagrammatic
// operators and accumulates the contracted results into a canonical
// algebra.Expression.
//
// What:
//
//   - ElementaryContractions lists the minimal leg pairings available to
//     an operator product, space by space:
//   - Occupied spaces pair a creation leg on an earlier operator with an
//     annihilation leg on a later one
//   - Unoccupied spaces pair an annihilation leg on an earlier operator
//     with a creation leg on a later one
//   - General spaces merge k creation and k annihilation legs (k ≥ 1,
//     capped by MaxCumulant) spread over at least two operators
//   - CompositeContractions / VisitComposites enumerate, by backtracking,
//     every multiset of elementary contractions that fits the operators'
//     legs and leaves a free rank inside [minRank, maxRank].
//   - CanonicalizeGraph picks one representative (operator order plus
//     contraction order) for each composite, with its fermionic sign.
//   - EvaluateContraction turns a composite into a SymbolicTerm and its
//     coefficient: Kronecker deltas for Occupied/Unoccupied pairs,
//     gamma1/eta1/lambdaK tensors for General merges, the sign of the
//     operator reordering, and CombinatorialFactor.
//   - Theorem.Contract drives the pipeline and merges canonical terms,
//     sequentially or on a bounded errgroup of workers. Both modes give
//     identical expressions.
//
// Why:
//
//   - Derive many-body equations (coupled-cluster residuals, MR-SRG
//     flows, perturbation theory) without hand enumeration of diagrams.
//
// Complexity:
//
//   - Elementary generation: O(S·n²) pair candidates, plus partition
//     permutations for General spaces.
//   - Composite search: proportional to the number of admissible
//     multisets (exponential in the number of legs).
//   - Graph canonicalization: O(n!·m log m) for n operators and m
//     elementary contractions.
//
// Errors:
//
//   - ErrUnknownSpaceKind   a registry space has a kind outside
//     Occupied/Unoccupied/General
//   - ErrBrokenInvariant    a leg lookup or rank check failed while
//     evaluating a contraction
//   - algebra.ErrNonsymmetricTensor  propagated from term canonicalization
//   - context errors        Contract was cancelled
//
// Options:
//
//   - WithMaxCumulant(n)             cap on General-space half legs (100)
//   - WithGraphCanonicalization(b)   canonicalize contraction graphs (true)
//   - WithSingleThreaded(b)          force sequential evaluation (false)
//   - WithWorkers(n)                 worker bound (GOMAXPROCS)
//   - WithConnectedOnly(b)           drop unlinked terms (false)
//   - WithLogger(l)                  zap logger (no-op)
//   - WithMetrics(m)                 prometheus collectors (nil)
package wick
