package grid

import (
	"fmt"
)

// Path is a mutable cursor that accumulates a sequence of right/down moves
// over a Grid, validating each move against boundaries and icebergs before
// committing it. The exhaustive solver creates a fresh Path per candidate
// step sequence and discards it after scoring; a Path is never shared
// between goroutines.
//
// The two-phase check-then-act protocol is deliberate: IsStepValid never
// mutates, AddStep commits only a step IsStepValid accepts. Collapsing the
// two into one try-step call would change the replay semantics callers rely
// on (an invalid step must be skippable without moving the cursor).
type Path struct {
	g        *Grid
	row, col int
}

// NewPath returns a Path over g positioned at (0,0), or ErrNilGrid.
// The start cell may be an iceberg: openness is a post-condition of
// committed steps, not of the starting position.
func NewPath(g *Grid) (*Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	return &Path{g: g}, nil
}

// next returns the position one step in direction d from the cursor.
// ok is false for directions other than Down and Right.
func (p *Path) next(d Direction) (r, c int, ok bool) {
	switch d {
	case Down:
		return p.row + 1, p.col, true
	case Right:
		return p.row, p.col + 1, true
	default:
		return p.row, p.col, false
	}
}

// IsStepValid reports whether advancing one step in direction d stays within
// the grid bounds and lands on an open cell. It never mutates the Path.
// Complexity: O(1).
func (p *Path) IsStepValid(d Direction) bool {
	r, c, ok := p.next(d)

	return ok && p.g.IsOpen(r, c)
}

// AddStep commits one step in direction d. Callers must have checked
// IsStepValid first; an invalid step returns ErrInvalidStep (wrapped with
// the direction and current position) and leaves the cursor unchanged.
// Complexity: O(1).
func (p *Path) AddStep(d Direction) error {
	if !p.IsStepValid(d) {
		return fmt.Errorf("grid: AddStep(%s) at (%d,%d): %w", d, p.row, p.col, ErrInvalidStep)
	}
	p.row, p.col, _ = p.next(d)

	return nil
}

// Row returns the cursor's current row.
func (p *Path) Row() int {
	return p.row
}

// Col returns the cursor's current column.
func (p *Path) Col() int {
	return p.col
}
