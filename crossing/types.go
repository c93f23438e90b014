// Package crossing defines options, modes, and sentinel errors for the
// icefield path-counting solvers.
package crossing

import "errors"

// MaxExhaustiveSteps is the largest crossing length (rows+cols-2) the
// exhaustive solver accepts. Each candidate route is encoded in the low
// bits of a uint64, one bit per step, so 63 steps is the ceiling.
const MaxExhaustiveSteps = 63

// Sentinel errors shared by both solvers and the dispatcher.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to a solver.
	ErrNilGrid = errors.New("crossing: grid is nil")

	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("crossing: grid must have at least one row and one column")

	// ErrGridTooLarge indicates a crossing longer than MaxExhaustiveSteps steps,
	// beyond the exhaustive solver's fixed-width bit encoding.
	ErrGridTooLarge = errors.New("crossing: grid too large for exhaustive enumeration")

	// ErrUnknownAlgorithm indicates Options.Algo names no known solver.
	ErrUnknownAlgorithm = errors.New("crossing: unknown algorithm")

	// ErrUnknownEnumMode indicates Options.Enum names no known enumeration mode.
	ErrUnknownEnumMode = errors.New("crossing: unknown enumeration mode")

	// ErrUnknownTableMode indicates Options.Table names no known table mode.
	ErrUnknownTableMode = errors.New("crossing: unknown table mode")

	// ErrCountMismatch indicates the two solvers disagreed in CrossCheck.
	ErrCountMismatch = errors.New("crossing: solvers disagree")
)

// Algorithm selects which solver Count dispatches to.
type Algorithm int

const (
	// Dynamic counts routes with the DP recurrence. O(rows·cols); the
	// production choice for grids of any size.
	Dynamic Algorithm = iota

	// Exhaustive counts routes by enumerating bit-encoded step sequences.
	// O(2^steps·steps); a correctness oracle for small grids only.
	Exhaustive
)

// String returns "dynamic" or "exhaustive".
func (a Algorithm) String() string {
	switch a {
	case Dynamic:
		return "dynamic"
	case Exhaustive:
		return "exhaustive"
	default:
		return "unknown"
	}
}

// EnumMode controls how the exhaustive solver walks the pattern space.
//
//   - BitReplay — replay every pattern in [0, 2^steps), skipping invalid
//     bits and scoring sequences that land on the destination. Patterns
//     that skip a bit fall short of the destination and never score.
//
//   - Combinations — visit only patterns with exactly cols-1 one-bits
//     (the only candidates that can reach the destination), replaying each
//     strictly. C(steps, cols-1) replays instead of 2^steps.
//
// Both modes return identical counts on every grid.
type EnumMode int

const (
	// BitReplay mode: scan all 2^steps patterns with skip-and-continue replay.
	BitReplay EnumMode = iota

	// Combinations mode: scan only the C(steps, cols-1) viable patterns.
	Combinations
)

// String returns "replay" or "combinations".
func (m EnumMode) String() string {
	switch m {
	case BitReplay:
		return "replay"
	case Combinations:
		return "combinations"
	default:
		return "unknown"
	}
}

// TableMode controls how the dynamic solver stores its count table.
//
//   - FullTable — one rows×cols table. Memory: O(rows·cols).
//   - TwoRows   — two reused row slices. Memory: O(cols).
//
// Both modes return identical counts.
type TableMode int

const (
	// FullTable mode: materialize the whole rows×cols count table.
	FullTable TableMode = iota

	// TwoRows mode: keep only the current and previous rows.
	TwoRows
)

// String returns "full" or "tworows".
func (m TableMode) String() string {
	switch m {
	case FullTable:
		return "full"
	case TwoRows:
		return "tworows"
	default:
		return "unknown"
	}
}

// Options configures the solvers and the Count dispatcher.
//
// Fields:
//   - Algo  — which solver Count runs (CountDynamic / CountExhaustive
//     consult only their own mode field and ignore Algo).
//   - Enum  — exhaustive enumeration mode.
//   - Table — dynamic table mode.
//
// Example:
//
//	opts := crossing.DefaultOptions()
//	opts.Algo = crossing.Exhaustive
//	opts.Enum = crossing.Combinations
//	n, err := crossing.Count(g, opts)
type Options struct {
	Algo  Algorithm
	Enum  EnumMode
	Table TableMode
}

// DefaultOptions returns the canonical configuration: the dynamic solver,
// BitReplay enumeration, and a full count table.
func DefaultOptions() Options {
	return Options{Algo: Dynamic, Enum: BitReplay, Table: FullTable}
}
