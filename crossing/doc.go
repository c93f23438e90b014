// Package crossing counts the monotone routes across an iceberg grid with
// two independent algorithms that must agree.
//
// What:
//
//   - CountDynamic — DP accumulation over the grid: ways(r,c) is the sum of
//     the counts above and to the left, 0 on blocked cells. The production
//     solver for grids of any size.
//   - CountExhaustive — enumeration of bit-encoded step sequences (one bit
//     per move, set = right, clear = down), replayed over a grid.Path. A
//     correctness oracle, bounded to MaxExhaustiveSteps moves.
//   - Count — dispatcher routing on Options.Algo.
//   - CrossCheck — runs both and returns the agreed count, or
//     ErrCountMismatch when an implementation fault makes them diverge.
//
// Why:
//
//   - Route counting: how many monotone crossings does a given ice field
//     admit between its corners.
//   - Differential testing: an exponential oracle and a polynomial solver
//     computed independently catch each other's faults.
//
// Complexity:
//
//   - CountDynamic:    O(rows·cols) time; O(rows·cols) or O(cols) memory
//     (TableMode FullTable / TwoRows).
//   - CountExhaustive: O(2^steps·steps) time for BitReplay,
//     O(C(steps, cols-1)·steps) for Combinations, steps = rows+cols-2.
//
// Options:
//
//   - Options.Algo: Dynamic or Exhaustive (Count only).
//   - Options.Enum: BitReplay or Combinations (exhaustive walk).
//   - Options.Table: FullTable or TwoRows (DP storage).
//
// Errors:
//
//   - ErrNilGrid: solver received a nil grid.
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrGridTooLarge: crossing exceeds MaxExhaustiveSteps steps.
//   - ErrUnknownAlgorithm / ErrUnknownEnumMode / ErrUnknownTableMode:
//     unrecognized mode value.
//   - ErrCountMismatch: CrossCheck found the solvers in disagreement.
//
// Both solvers are pure functions of an immutable grid.Grid; concurrent
// calls over one shared grid are safe.
package crossing
