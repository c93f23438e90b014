// Package crossing - unified dispatcher for the icefield solvers.
//
// This file provides the canonical entry points callers reach for first:
//
//   - Count: validate, then route to CountDynamic or CountExhaustive per
//     Options.Algo.
//   - CrossCheck: run both solvers and demand agreement, for callers using
//     the exhaustive method as a correctness oracle.
//
// Design principles:
//   - Deterministic: no randomness, no time, no hidden state; the count is
//     a pure function of the grid and options.
//   - Strict sentinels: validation failures return errors from types.go,
//     wrapped with fmt.Errorf("%w") where position context helps.
//   - Fail fast: every public entry validates before any counting work.
package crossing

import (
	"fmt"

	"github.com/katalvlaran/icefield/grid"
)

// StepLength returns the number of moves every monotone crossing of g
// commits: rows+cols-2. Nil or empty grids admit no crossing and report 0.
//
// Complexity: O(1).
func StepLength(g *grid.Grid) int {
	if g == nil || g.Rows() < 1 || g.Cols() < 1 {
		return 0
	}

	return g.Rows() + g.Cols() - 2
}

// Count routes to the solver selected by opts.Algo and returns its count.
// Unknown algorithms return ErrUnknownAlgorithm.
//
// Complexity: per chosen algorithm (see CountDynamic, CountExhaustive).
func Count(g *grid.Grid, opts Options) (uint64, error) {
	switch opts.Algo {
	case Dynamic:
		return CountDynamic(g, opts)
	case Exhaustive:
		return CountExhaustive(g, opts)
	default:
		return 0, fmt.Errorf("crossing: algorithm %d: %w", opts.Algo, ErrUnknownAlgorithm)
	}
}

// CrossCheck runs both solvers on g and returns the count they agree on,
// or ErrCountMismatch (wrapped with both counts) when they diverge.
// opts.Algo is ignored; Enum and Table select the variant of each solver.
//
// The exhaustive bound applies: grids beyond MaxExhaustiveSteps steps
// return ErrGridTooLarge.
//
// Complexity: the exhaustive term dominates, O(2^steps · steps).
func CrossCheck(g *grid.Grid, opts Options) (uint64, error) {
	exh, err := CountExhaustive(g, opts)
	if err != nil {
		return 0, err
	}
	dyn, err := CountDynamic(g, opts)
	if err != nil {
		return 0, err
	}
	if exh != dyn {
		return 0, fmt.Errorf("crossing: exhaustive=%d dynamic=%d: %w", exh, dyn, ErrCountMismatch)
	}

	return dyn, nil
}

// validateGrid performs the shared fail-fast shape checks of both solvers.
// Grid constructors reject empty boards, so ErrEmptyGrid here catches only
// zero-value Grids built around the constructors.
func validateGrid(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.Rows() < 1 || g.Cols() < 1 {
		return ErrEmptyGrid
	}

	return nil
}
