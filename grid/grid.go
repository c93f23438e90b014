package grid

import (
	"fmt"
	"strings"
)

// Cell runes of the text grid form accepted by Parse and emitted by String.
const (
	openRune    = '.'
	icebergRune = 'X'
)

// Grid is an immutable rectangular board of cell states. Cells are stored in
// a flat row-major slice sized exactly rows×cols; dimensions and states are
// fixed at construction and never mutated afterward, so any number of
// concurrent readers may share one Grid without coordination.
type Grid struct {
	rows, cols int
	cells      []CellState // flat backing storage, length rows*cols
}

// From2D constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of cells cannot reach the Grid.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(rows×cols) time and memory.
func From2D(cells [][]CellState) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	flat := make([]CellState, 0, rows*cols)
	for _, row := range cells {
		flat = append(flat, row...)
	}

	return &Grid{rows: rows, cols: cols, cells: flat}, nil
}

// Parse constructs a Grid from its text form: one line per row, '.' for an
// open cell and 'X' for an iceberg. Blank lines (and trailing carriage
// returns) are dropped, so fixtures may be written as indent-free raw string
// literals. Returns ErrEmptyGrid when no usable lines remain,
// ErrNonRectangular when line lengths differ, and ErrBadCellRune (wrapped
// with the offending position) for any other character.
// Complexity: O(len(s)).
func Parse(s string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	rows, cols := len(lines), len([]rune(lines[0]))
	flat := make([]CellState, 0, rows*cols)
	for r, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, ErrNonRectangular
		}
		for c, ch := range runes {
			switch ch {
			case openRune:
				flat = append(flat, Open)
			case icebergRune:
				flat = append(flat, Iceberg)
			default:
				return nil, fmt.Errorf("grid: Parse: row %d col %d holds %q: %w", r, c, ch, ErrBadCellRune)
			}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: flat}, nil
}

// Rows returns the fixed number of rows.
// Complexity: O(1).
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the fixed number of columns.
// Complexity: O(1).
func (g *Grid) Cols() int {
	return g.cols
}

// index maps (r,c) to the flat row-major offset r*cols + c.
// Complexity: O(1).
func (g *Grid) index(r, c int) int {
	return r*g.cols + c
}

// InBounds reports whether (r,c) lies within the grid extents.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the state of cell (r,c), or ErrOutOfBounds (wrapped with the
// requested indices) when either index falls outside [0,rows)×[0,cols).
// Complexity: O(1).
func (g *Grid) At(r, c int) (CellState, error) {
	if !g.InBounds(r, c) {
		return 0, fmt.Errorf("grid: At(%d,%d) outside %d×%d grid: %w", r, c, g.rows, g.cols, ErrOutOfBounds)
	}

	return g.cells[g.index(r, c)], nil
}

// IsOpen reports whether (r,c) is inside the grid and open. Cells outside
// the grid are never open: a path may not occupy them.
// Complexity: O(1).
func (g *Grid) IsOpen(r, c int) bool {
	return g.InBounds(r, c) && g.cells[g.index(r, c)] == Open
}

// Icebergs returns the number of blocked cells on the board.
// Complexity: O(rows×cols).
func (g *Grid) Icebergs() int {
	n := 0
	for _, s := range g.cells {
		if s == Iceberg {
			n++
		}
	}

	return n
}

// String renders the grid in the Parse text form: one line per row,
// '.' open, 'X' iceberg, each row terminated by a newline.
// Complexity: O(rows×cols).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[g.index(r, c)] == Iceberg {
				b.WriteRune(icebergRune)
			} else {
				b.WriteRune(openRune)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
