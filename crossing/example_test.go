// File: crossing/example_test.go
package crossing_test

import (
	"fmt"

	"github.com/katalvlaran/icefield/crossing"
	"github.com/katalvlaran/icefield/grid"
)

// ExampleCount demonstrates counting the monotone crossings of a small
// field with the production DP solver.
// Scenario:
//
//   - 3×3 field with the center blocked
//   - routes hug the top-right or bottom-left rim: exactly 2
//
// Complexity: O(rows·cols), Memory: O(rows·cols)
func ExampleCount() {
	g, _ := grid.Parse(`
...
.X.
...
`)
	n, _ := crossing.Count(g, crossing.DefaultOptions())
	fmt.Println("crossings:", n)

	// Output:
	// crossings: 2
}

// ExampleCrossCheck demonstrates differential verification: the exhaustive
// oracle and the DP solver compute the count independently and must agree.
// Scenario:
//
//   - 4×4 field with two staggered icebergs
//   - Combinations enumeration against a TwoRows table
func ExampleCrossCheck() {
	g, _ := grid.Parse(`
....
.X..
..X.
....
`)
	opts := crossing.DefaultOptions()
	opts.Enum = crossing.Combinations
	opts.Table = crossing.TwoRows

	n, err := crossing.CrossCheck(g, opts)
	fmt.Println("crossings:", n, "err:", err)

	// Output:
	// crossings: 4 err: <nil>
}
