package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/icefield/grid"
)

// mustParse builds a Grid from text or fails the test.
func mustParse(t *testing.T, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return g
}

//----------------------------------------------------------------------------//
// NewPath Tests
//----------------------------------------------------------------------------//

// TestNewPath_NilGrid verifies the nil-grid guard.
func TestNewPath_NilGrid(t *testing.T) {
	if _, err := grid.NewPath(nil); !errors.Is(err, grid.ErrNilGrid) {
		t.Errorf("NewPath(nil) error = %v; want %v", err, grid.ErrNilGrid)
	}
}

// TestNewPath_StartsAtOrigin checks the cursor begins at (0,0),
// even when the start cell is an iceberg.
func TestNewPath_StartsAtOrigin(t *testing.T) {
	p, err := grid.NewPath(mustParse(t, "X.\n..\n"))
	if err != nil {
		t.Fatalf("NewPath error: %v", err)
	}
	if p.Row() != 0 || p.Col() != 0 {
		t.Errorf("start = (%d,%d); want (0,0)", p.Row(), p.Col())
	}
}

//----------------------------------------------------------------------------//
// IsStepValid and AddStep Tests
//----------------------------------------------------------------------------//

// TestIsStepValid_Boundaries verifies steps off the right and bottom edges
// are rejected while in-grid open steps are accepted.
func TestIsStepValid_Boundaries(t *testing.T) {
	p, err := grid.NewPath(mustParse(t, "..\n..\n"))
	if err != nil {
		t.Fatalf("NewPath error: %v", err)
	}

	if !p.IsStepValid(grid.Down) || !p.IsStepValid(grid.Right) {
		t.Error("both moves from (0,0) on an open 2×2 grid must be valid")
	}

	// Walk to the bottom-right corner; nothing is valid from there.
	if err = p.AddStep(grid.Down); err != nil {
		t.Fatalf("AddStep(down) error: %v", err)
	}
	if err = p.AddStep(grid.Right); err != nil {
		t.Fatalf("AddStep(right) error: %v", err)
	}
	if p.IsStepValid(grid.Down) {
		t.Error("IsStepValid(down)=true off the bottom edge; want false")
	}
	if p.IsStepValid(grid.Right) {
		t.Error("IsStepValid(right)=true off the right edge; want false")
	}
}

// TestIsStepValid_Iceberg verifies a step onto a blocked cell is rejected
// without touching the cursor.
func TestIsStepValid_Iceberg(t *testing.T) {
	p, err := grid.NewPath(mustParse(t, ".X\n..\n"))
	if err != nil {
		t.Fatalf("NewPath error: %v", err)
	}

	if p.IsStepValid(grid.Right) {
		t.Error("IsStepValid(right)=true onto an iceberg; want false")
	}
	if !p.IsStepValid(grid.Down) {
		t.Error("IsStepValid(down)=false onto open water; want true")
	}
	if p.Row() != 0 || p.Col() != 0 {
		t.Errorf("IsStepValid moved the cursor to (%d,%d); want (0,0)", p.Row(), p.Col())
	}
}

// TestAddStep_InvalidLeavesCursor verifies AddStep on an invalid move
// returns ErrInvalidStep and keeps the position.
func TestAddStep_InvalidLeavesCursor(t *testing.T) {
	p, err := grid.NewPath(mustParse(t, ".X\n..\n"))
	if err != nil {
		t.Fatalf("NewPath error: %v", err)
	}

	if err = p.AddStep(grid.Right); !errors.Is(err, grid.ErrInvalidStep) {
		t.Errorf("AddStep(right) error = %v; want %v", err, grid.ErrInvalidStep)
	}
	if p.Row() != 0 || p.Col() != 0 {
		t.Errorf("cursor = (%d,%d) after rejected step; want (0,0)", p.Row(), p.Col())
	}
}

// TestAddStep_CorridorWalk drives a Path through the single open corridor
// of a 3×3 grid and checks every intermediate position.
func TestAddStep_CorridorWalk(t *testing.T) {
	p, err := grid.NewPath(mustParse(t, ".XX\n.XX\n...\n"))
	if err != nil {
		t.Fatalf("NewPath error: %v", err)
	}

	walk := []struct {
		dir  grid.Direction
		r, c int
	}{
		{grid.Down, 1, 0},
		{grid.Down, 2, 0},
		{grid.Right, 2, 1},
		{grid.Right, 2, 2},
	}
	for i, w := range walk {
		if !p.IsStepValid(w.dir) {
			t.Fatalf("step %d: IsStepValid(%s)=false; want true", i, w.dir)
		}
		if err = p.AddStep(w.dir); err != nil {
			t.Fatalf("step %d: AddStep(%s) error: %v", i, w.dir, err)
		}
		if p.Row() != w.r || p.Col() != w.c {
			t.Fatalf("step %d: cursor = (%d,%d); want (%d,%d)", i, p.Row(), p.Col(), w.r, w.c)
		}
	}
}
