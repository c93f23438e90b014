// Package icefield counts monotone crossings of iceberg-strewn grids —
// two independent algorithms, one answer.
//
// 🚀 What is icefield?
//
//	A small, deterministic library around one sharp question: how many
//	monotone paths (right/down steps only) cross a rectangular ice field
//	from its top-left to its bottom-right cell without touching an iceberg?
//		• Immutable grids: parse, build, render rectangular fields
//		• Path cursor: validated step-by-step route replay
//		• Exhaustive solver: bit-encoded enumeration, the correctness oracle
//		• DP solver: O(rows·cols) accumulation, the production path
//		• Cross-check: both solvers must agree, or you hear about it
//
// ✨ Why choose icefield?
//
//   - Deterministic – seeded randomness only, identical runs everywhere
//   - Rock-solid guarantees – immutable grids, sentinel errors, no panics
//   - Pure Go core – the solver packages carry no runtime dependencies
//   - Honest limits – the exhaustive oracle refuses grids past 63 steps
//
// Everything is organized under three subpackages and one command:
//
//	grid/     — Grid, CellState, Direction & the Path cursor
//	crossing/ — CountExhaustive, CountDynamic, Count & CrossCheck
//	builder/  — deterministic all-open and seeded random fields
//	cmd/      — the icefield CLI: build or load a field, count, cross-check
//
// Quick ASCII example:
//
//	    . . X
//	    . X .
//	    . . .
//
//	admits exactly one crossing: down, down, right, right.
//
// Dive into the package docs for contracts, complexity and error taxonomy.
//
//	go get github.com/katalvlaran/icefield
package icefield
