//go:build !lambda

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// RunResult is the JSON-serializable result of a full search run.
type RunResult struct {
	Date      string   `json:"date"`
	Workers   int      `json:"workers"`
	Waves     int      `json:"waves"`
	Scanned   int64    `json:"scanned"`
	Pruned    int64    `json:"pruned"`
	Count     int64    `json:"count"`
	TimeMs    int64    `json:"timeMs"`
	Solutions []string `json:"solutions"`
}

const usage = `Usage: economy-solver <catalog.json> [solutions.txt]

Positional arguments:
  catalog.json    Path to the verb/resource catalog
  solutions.txt   Output file for solutions, one per line (default stdout)

Flags:
`

func main() {
	jsonOut := flag.Bool("json", false, "Output the run result as JSON")
	workers := flag.Int("workers", 0, "Worker goroutines per wave (0 = all CPUs)")
	verbose := flag.Bool("verbose", false, "Print detailed search progress to stderr")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	Verbose = *verbose

	catalog, err := LoadCatalog(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Loaded %d verbs, %d resources (score=%s)\n",
		len(catalog.Verbs), len(catalog.Resources), catalog.Resources[catalog.Score])

	cfg := DefaultConfig()
	cfg.Workers = *workers

	var solutions []State
	solver := NewSolver(catalog, cfg)
	stats := solver.Solve(ScorePositive, func(s State) {
		solutions = append(solutions, s)
	})

	var outFile *os.File
	out := io.Writer(os.Stdout)
	if len(args) >= 2 {
		f, err := os.Create(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		outFile = f
		out = f
	}

	err = writeOutput(out, *jsonOut, effectiveWorkers(cfg.Workers), stats, solutions, catalog)
	if outFile != nil {
		// A failed close can lose buffered output: treat it like a write
		// error.
		if cerr := outFile.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if !*jsonOut {
		fmt.Fprint(os.Stderr, FormatReport(stats, solutions, catalog))
		fmt.Fprintf(os.Stderr, "%-10s %11.1fs\n", "Elapsed", stats.Elapsed.Seconds())
	}
}

// writeOutput renders the run either as the JSON run result or as plain
// letter strings, one solution per line.
func writeOutput(out io.Writer, jsonOut bool, workers int, stats Stats, solutions []State, catalog *Catalog) error {
	if !jsonOut {
		return WriteSolutions(out, solutions, catalog)
	}
	letters := make([]string, len(solutions))
	for i, s := range solutions {
		letters[i] = FormatSolution(s, catalog)
	}
	result := RunResult{
		Date:      time.Now().UTC().Format(time.RFC3339),
		Workers:   workers,
		Waves:     stats.Waves,
		Scanned:   stats.Scanned,
		Pruned:    stats.Pruned,
		Count:     stats.Solutions,
		TimeMs:    stats.Elapsed.Milliseconds(),
		Solutions: letters,
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func effectiveWorkers(w int) int {
	if w <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return w
}
