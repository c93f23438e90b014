package builder

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/icefield/grid"
)

// Sentinel errors for grid construction requests.
var (
	// ErrBadDimensions indicates rows or cols below 1.
	ErrBadDimensions = errors.New("builder: rows and cols must be at least 1")

	// ErrBadDensity indicates an iceberg density outside [0,1].
	ErrBadDensity = errors.New("builder: density must lie in [0,1]")
)

// defaultSeed is the fixed seed substituted when callers pass seed==0,
// keeping default builds reproducible across runs and platforms.
const defaultSeed int64 = 1

// Open returns an all-open rows×cols grid.
// Returns ErrBadDimensions when rows or cols < 1.
//
// Complexity: O(rows·cols).
func Open(rows, cols int) (*grid.Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	cells := make([][]grid.CellState, rows)
	for r := range cells {
		cells[r] = make([]grid.CellState, cols)
	}

	return grid.From2D(cells)
}

// Random returns a rows×cols grid whose cells are independently icebergs
// with probability density. The corner cells (0,0) and (rows-1,cols-1) are
// always left open so every built field has usable endpoints.
//
// seed selects the math/rand stream; seed==0 substitutes a fixed default.
// Equal rows, cols, density, and seed always produce the identical grid.
// No time-based randomness anywhere.
//
// Returns ErrBadDimensions when rows or cols < 1, ErrBadDensity when
// density is NaN or outside [0,1].
//
// Complexity: O(rows·cols).
func Random(rows, cols int, density float64, seed int64) (*grid.Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	if math.IsNaN(density) || density < 0 || density > 1 {
		return nil, ErrBadDensity
	}
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	cells := make([][]grid.CellState, rows)
	for r := range cells {
		cells[r] = make([]grid.CellState, cols)
		for c := range cells[r] {
			if rng.Float64() < density {
				cells[r][c] = grid.Iceberg
			}
		}
	}
	cells[0][0] = grid.Open
	cells[rows-1][cols-1] = grid.Open

	return grid.From2D(cells)
}
