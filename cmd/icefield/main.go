// Command icefield counts the monotone crossings of an iceberg grid.
//
// A field is read from a text file ('.' open water, 'X' iceberg) or built
// randomly from -rows/-cols/-density/-seed. The number of monotone routes
// between its corners is computed by the solver named by -algo:
//
//	icefield -grid field.txt -algo both
//	icefield -rows 6 -cols 7 -density 0.25 -seed 42 -algo dynamic -table tworows
//	cat field.txt | icefield -grid - -algo exhaustive -enum combinations
//
// -algo both cross-checks the exhaustive oracle against the DP solver and
// exits non-zero when they disagree. The agreed (or single-solver) count is
// written to stdout; structured progress goes to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/icefield/builder"
	"github.com/katalvlaran/icefield/crossing"
	"github.com/katalvlaran/icefield/grid"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if err := run(); err != nil {
		log.WithError(err).Error("icefield failed")
		os.Exit(1)
	}
}

func run() error {
	var (
		gridPath   = flag.String("grid", "", "text grid file, '-' reads stdin; overrides the random-field flags")
		rows       = flag.Int("rows", 8, "rows of the random field")
		cols       = flag.Int("cols", 8, "cols of the random field")
		density    = flag.Float64("density", 0.2, "iceberg probability of the random field, in [0,1]")
		seed       = flag.Int64("seed", 0, "random field seed; 0 selects a fixed default")
		algo       = flag.String("algo", "both", "solver: both|dynamic|exhaustive")
		enum       = flag.String("enum", "replay", "exhaustive enumeration: replay|combinations")
		table      = flag.String("table", "full", "dynamic table storage: full|tworows")
		echo       = flag.Bool("print", false, "echo the field before solving")
		cpuprofile = flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	)
	flag.Parse()

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	opts, both, err := parseOptions(*algo, *enum, *table)
	if err != nil {
		return err
	}

	g, err := buildGrid(*gridPath, *rows, *cols, *density, *seed)
	if err != nil {
		return err
	}
	if *echo {
		fmt.Print(g)
	}

	count, err := solve(g, opts, both)
	if err != nil {
		return err
	}
	fmt.Println(count)

	return nil
}

// parseOptions maps the flag strings onto crossing.Options. The returned
// bool selects CrossCheck instead of a single solver.
func parseOptions(algo, enum, table string) (crossing.Options, bool, error) {
	opts := crossing.DefaultOptions()
	both := false

	switch algo {
	case "both":
		both = true
	case "dynamic":
		opts.Algo = crossing.Dynamic
	case "exhaustive":
		opts.Algo = crossing.Exhaustive
	default:
		return opts, false, fmt.Errorf("unknown -algo %q (want both, dynamic, or exhaustive)", algo)
	}

	switch enum {
	case "replay":
		opts.Enum = crossing.BitReplay
	case "combinations":
		opts.Enum = crossing.Combinations
	default:
		return opts, false, fmt.Errorf("unknown -enum %q (want replay or combinations)", enum)
	}

	switch table {
	case "full":
		opts.Table = crossing.FullTable
	case "tworows":
		opts.Table = crossing.TwoRows
	default:
		return opts, false, fmt.Errorf("unknown -table %q (want full or tworows)", table)
	}

	return opts, both, nil
}

// buildGrid loads the field from path when one is given, otherwise builds
// a seeded random field.
func buildGrid(path string, rows, cols int, density float64, seed int64) (*grid.Grid, error) {
	if path == "" {
		return builder.Random(rows, cols, density, seed)
	}

	var (
		text []byte
		err  error
	)
	if path == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	return grid.Parse(string(text))
}

// solve runs the requested solver(s) with wall-clock timing and logs one
// structured record per run.
func solve(g *grid.Grid, opts crossing.Options, both bool) (uint64, error) {
	fields := logrus.Fields{
		"rows":     g.Rows(),
		"cols":     g.Cols(),
		"steps":    crossing.StepLength(g),
		"icebergs": g.Icebergs(),
	}

	var (
		name    = opts.Algo.String()
		start   = time.Now()
		count   uint64
		err     error
		elapsed time.Duration
	)
	if both {
		name = "both"
		count, err = crossing.CrossCheck(g, opts)
	} else {
		count, err = crossing.Count(g, opts)
	}
	elapsed = time.Since(start)
	if err != nil {
		return 0, err
	}

	log.WithFields(fields).WithFields(logrus.Fields{
		"algorithm": name,
		"enum":      opts.Enum.String(),
		"table":     opts.Table.String(),
		"count":     count,
		"elapsed":   elapsed,
	}).Info("crossings counted")

	return count, nil
}
