package crossing

import (
	"fmt"

	"github.com/katalvlaran/icefield/grid"
)

// CountDynamic counts the monotone routes from (0,0) to (rows-1, cols-1)
// of g with a dynamic-programming recurrence.
//
// ways(r,c) is the number of routes reaching (r,c):
//
//	ways(r,c) = 0                          if (r,c) is blocked
//	ways(0,0) = 1                          if (0,0) is open
//	ways(r,c) = ways(r-1,c) + ways(r,c-1)  otherwise (absent terms are 0)
//
// The answer is ways(rows-1, cols-1). opts.Table picks the storage:
// FullTable materializes the rows×cols table, TwoRows keeps only the
// current and previous rows. Counts wrap modulo 2^64 on open grids large
// enough to overflow a uint64.
//
// Returns ErrNilGrid, ErrEmptyGrid, or ErrUnknownTableMode.
//
// Time complexity:  O(rows·cols)
// Memory complexity: O(rows·cols) for FullTable, O(cols) for TwoRows.
func CountDynamic(g *grid.Grid, opts Options) (uint64, error) {
	if err := validateGrid(g); err != nil {
		return 0, err
	}

	switch opts.Table {
	case FullTable:
		return countFullTable(g), nil
	case TwoRows:
		return countTwoRows(g), nil
	default:
		return 0, fmt.Errorf("crossing: table mode %d: %w", opts.Table, ErrUnknownTableMode)
	}
}

// countFullTable fills a flat row-major rows×cols table in one pass.
// Blocked cells keep 0, the top-left seed is 1 when open, and every other
// open cell sums the counts above it and to its left.
func countFullTable(g *grid.Grid) uint64 {
	var (
		rows = g.Rows()
		cols = g.Cols()
		ways = make([]uint64, rows*cols)
	)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !g.IsOpen(r, c) {
				continue
			}
			i := r*cols + c
			if r == 0 && c == 0 {
				ways[i] = 1 // seed; never overwritten by the recurrence
				continue
			}
			if r > 0 {
				ways[i] += ways[i-cols]
			}
			if c > 0 {
				ways[i] += ways[i-1]
			}
		}
	}

	return ways[rows*cols-1]
}

// countTwoRows runs the same recurrence over two reused row slices,
// swapping them after each row.
func countTwoRows(g *grid.Grid) uint64 {
	var (
		rows = g.Rows()
		cols = g.Cols()
		prev = make([]uint64, cols)
		curr = make([]uint64, cols)
	)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			curr[c] = 0
			if !g.IsOpen(r, c) {
				continue
			}
			if r == 0 && c == 0 {
				curr[c] = 1
				continue
			}
			if r > 0 {
				curr[c] += prev[c]
			}
			if c > 0 {
				curr[c] += curr[c-1]
			}
		}
		prev, curr = curr, prev
	}

	// prev holds the last computed row after the final swap.
	return prev[cols-1]
}
