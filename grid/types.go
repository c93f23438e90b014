// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/icefield.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction, access, and path stepping.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCellRune indicates a text grid contains an unrecognized cell character.
	ErrBadCellRune = errors.New("grid: unrecognized cell character")
	// ErrOutOfBounds indicates a cell lookup outside the grid extents.
	ErrOutOfBounds = errors.New("grid: cell index out of bounds")
	// ErrNilGrid indicates a nil *Grid was passed where a grid is required.
	ErrNilGrid = errors.New("grid: grid is nil")
	// ErrInvalidStep indicates AddStep was called with a step that IsStepValid rejects.
	ErrInvalidStep = errors.New("grid: step not valid from current position")
)

// CellState is the state of a single cell: open water or iceberg.
type CellState uint8

const (
	// Open marks a cell a path may occupy. Open is the zero value.
	Open CellState = iota
	// Iceberg marks a blocked cell a path may never occupy.
	Iceberg
)

// String returns "open" or "iceberg".
func (s CellState) String() string {
	switch s {
	case Open:
		return "open"
	case Iceberg:
		return "iceberg"
	default:
		return "unknown"
	}
}

// Direction is a single monotone move over the grid: one step down or one
// step right. No other moves exist; monotone paths never go up or left.
type Direction uint8

const (
	// Down advances one row toward the bottom edge. Down is the zero value.
	Down Direction = iota
	// Right advances one column toward the right edge.
	Right
)

// String returns "down" or "right".
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
