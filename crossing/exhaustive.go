package crossing

import (
	"fmt"

	"github.com/katalvlaran/icefield/grid"
)

// CountExhaustive counts the monotone routes from (0,0) to
// (rows-1, cols-1) of g by enumerating bit-encoded step sequences.
//
// Every crossing commits exactly steps = rows+cols-2 moves, so a route fits
// in the low steps bits of a uint64: bit k decides move k, a set bit goes
// right, a clear bit goes down. opts.Enum picks the walk over that space:
//
//   - BitReplay replays all 2^steps patterns, skipping invalid bits and
//     scoring the sequences whose cursor ends on the destination. A replay
//     that skips a bit commits fewer than steps moves and falls short of
//     the destination, so skipped patterns never score.
//   - Combinations replays only the C(steps, cols-1) patterns with exactly
//     cols-1 one-bits, strictly.
//
// Returns ErrNilGrid, ErrEmptyGrid, ErrGridTooLarge when steps exceeds
// MaxExhaustiveSteps, or ErrUnknownEnumMode. A blocked start or destination
// yields 0 without enumerating.
//
// Time complexity:  O(2^steps · steps) for BitReplay,
// O(C(steps, cols-1) · steps) for Combinations.
// Memory complexity: O(1) beyond one Path per pattern.
func CountExhaustive(g *grid.Grid, opts Options) (uint64, error) {
	// --- 1. Validate shape, size, and mode ---
	if err := validateGrid(g); err != nil {
		return 0, err
	}
	steps := StepLength(g)
	if steps > MaxExhaustiveSteps {
		return 0, fmt.Errorf("crossing: %d×%d grid needs %d steps, max %d: %w",
			g.Rows(), g.Cols(), steps, MaxExhaustiveSteps, ErrGridTooLarge)
	}
	var enumerate func(*grid.Grid, int) (uint64, error)
	switch opts.Enum {
	case BitReplay:
		enumerate = countByReplay
	case Combinations:
		enumerate = countByCombinations
	default:
		return 0, fmt.Errorf("crossing: enum mode %d: %w", opts.Enum, ErrUnknownEnumMode)
	}

	// --- 2. Endpoint guard ---
	// A blocked corner admits no route regardless of the cells between.
	if !g.IsOpen(0, 0) || !g.IsOpen(g.Rows()-1, g.Cols()-1) {
		return 0, nil
	}

	// --- 3. Enumerate ---
	return enumerate(g, steps)
}

// countByReplay scans every pattern in [0, 2^steps). Each pattern drives a
// fresh Path; a bit whose move fails IsStepValid is skipped and the replay
// continues with the next bit. A pattern scores iff the cursor ends exactly
// on the bottom-right cell.
func countByReplay(g *grid.Grid, steps int) (uint64, error) {
	var (
		destRow  = g.Rows() - 1
		destCol  = g.Cols() - 1
		patterns = uint64(1) << uint(steps)
		count    uint64
	)
	for seq := uint64(0); seq < patterns; seq++ {
		p, err := grid.NewPath(g)
		if err != nil {
			return 0, err
		}
		for k := 0; k < steps; k++ {
			d := stepDirection(seq, k)
			if !p.IsStepValid(d) {
				continue // skip this bit, keep replaying
			}
			if err = p.AddStep(d); err != nil {
				return 0, err
			}
		}
		if p.Row() == destRow && p.Col() == destCol {
			count++
		}
	}

	return count, nil
}

// countByCombinations scans only the patterns holding exactly cols-1
// one-bits, stepping through them in ascending order with Gosper's hack.
// Each pattern is replayed strictly: one invalid move discards it.
func countByCombinations(g *grid.Grid, steps int) (uint64, error) {
	var (
		rights = g.Cols() - 1
		limit  = uint64(1) << uint(steps)
		mask   = uint64(1)<<uint(rights) - 1 // smallest pattern with rights one-bits
		count  uint64
	)
	for {
		ok, err := replayStrict(g, mask, steps)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
		if rights == 0 || rights == steps {
			break // exactly one candidate pattern exists
		}
		if mask = nextPermutation(mask); mask >= limit {
			break
		}
	}

	return count, nil
}

// replayStrict replays the low steps bits of mask on a fresh Path, requiring
// every move to be valid. It reports whether the whole pattern was walked to
// the bottom-right cell.
func replayStrict(g *grid.Grid, mask uint64, steps int) (bool, error) {
	p, err := grid.NewPath(g)
	if err != nil {
		return false, err
	}
	for k := 0; k < steps; k++ {
		d := stepDirection(mask, k)
		if !p.IsStepValid(d) {
			return false, nil
		}
		if err = p.AddStep(d); err != nil {
			return false, err
		}
	}

	return p.Row() == g.Rows()-1 && p.Col() == g.Cols()-1, nil
}

// stepDirection decodes bit k of seq: a set bit moves right, a clear bit
// moves down.
func stepDirection(seq uint64, k int) grid.Direction {
	if seq>>uint(k)&1 == 1 {
		return grid.Right
	}

	return grid.Down
}

// nextPermutation returns the next larger integer with the same number of
// one-bits as v (Gosper's hack). v must be nonzero.
func nextPermutation(v uint64) uint64 {
	c := v & -v // lowest set bit
	r := v + c  // ripple it left

	return r | ((v^r)>>2)/c
}
