// Package grid models a rectangular ice field as an immutable board of open
// and iceberg cells, plus the Path cursor solvers use to replay monotone
// step sequences across it.
//
// What:
//
//   - Grid wraps a rectangular board of CellState values; it deep-copies its
//     input, so a constructed Grid can never be mutated.
//   - Parse and String convert between Grids and a plain text form
//     ('.' = open, 'X' = iceberg, one line per row).
//   - Path is a check-then-act cursor over a Grid: IsStepValid inspects one
//     candidate move, AddStep commits a validated move, Row/Col report the
//     position reached.
//
// Why:
//
//   - Path counting: both icefield solvers read a Grid; the exhaustive one
//     replays bit-encoded step sequences through fresh Paths.
//   - Fixtures: text grids keep test boards and CLI inputs human-readable.
//
// Concurrency:
//
//   - A Grid is immutable after construction and safe for any number of
//     concurrent readers. A Path is a single-goroutine cursor.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellRune: a text grid holds a character other than '.' or 'X'.
//   - ErrOutOfBounds: At was asked for a cell outside the grid.
//   - ErrNilGrid: NewPath received a nil grid.
//   - ErrInvalidStep: AddStep was called with a move IsStepValid rejects.
package grid
