// Package builder constructs icefield grids deterministically: all-open
// boards with Open, seeded random boards with Random.
//
// What:
//
//   - Open(rows, cols) — an unobstructed field.
//   - Random(rows, cols, density, seed) — each cell an iceberg with
//     probability density, corners always open, fully determined by seed
//     (seed==0 selects a fixed default stream).
//
// Why:
//
//   - Test fixtures: property tests sweep seeded random fields and expect
//     identical grids on every run.
//   - CLI inputs: the icefield command builds throwaway fields without a
//     grid file.
//
// Errors:
//
//   - ErrBadDimensions: rows or cols below 1.
//   - ErrBadDensity: density is NaN or outside [0,1].
package builder
