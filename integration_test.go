package main

import (
	"os"
	"testing"
)

// The reference game's catalog (26 verbs, 15 resources) is player data
// distributed with the game, not with this repository. Point
// ECONOMY_CATALOG at it to run the full end-to-end check.
func loadReferenceCatalog(t *testing.T) *Catalog {
	t.Helper()
	path := os.Getenv("ECONOMY_CATALOG")
	if path == "" {
		t.Skip("ECONOMY_CATALOG not set; skipping reference catalog test")
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Verbs) != 26 {
		t.Fatalf("reference catalog has %d verbs, want 26", len(c.Verbs))
	}
	if len(c.Resources) != 15 {
		t.Fatalf("reference catalog has %d resources, want 15", len(c.Resources))
	}
	return c
}

// freebieVerbs returns the verbs that consume nothing: no negative delta
// on any resource. The reference catalog has exactly two.
func freebieVerbs(c *Catalog) []int {
	var out []int
	for i := range c.Verbs {
		free := true
		for _, d := range c.Verbs[i].Deltas {
			if d < 0 {
				free = false
				break
			}
		}
		if free {
			out = append(out, i)
		}
	}
	return out
}

func TestReferenceCatalog(t *testing.T) {
	c := loadReferenceCatalog(t)

	var solutions []State
	stats := NewSolver(c, DefaultConfig()).Solve(ScorePositive, func(s State) {
		solutions = append(solutions, s)
	})
	t.Logf("scanned=%d pruned=%d elapsed=%v", stats.Scanned, stats.Pruned, stats.Elapsed)

	// Empirical results for the reference game.
	if len(solutions) != 1326 {
		t.Errorf("got %d solutions, want 1326", len(solutions))
	}
	if len(solutions) == 0 {
		return
	}

	// Waves emit in increasing verb count, so the first solution is a
	// shortest one.
	shortest := solutions[0]
	if shortest.Count() != 6 {
		t.Errorf("shortest solution %s uses %d verbs, want 6",
			FormatSolution(shortest, c), shortest.Count())
	}

	freebies := freebieVerbs(c)
	if len(freebies) != 2 {
		t.Fatalf("found %d freebie verbs, want 2", len(freebies))
	}
	for _, f := range freebies {
		if shortest.Contains(f) {
			t.Errorf("shortest solution %s includes freebie verb %s",
				FormatSolution(shortest, c), c.Verbs[f].Letter)
		}
	}

	// No self-sustaining positive-score economy uses verb 15.
	for _, s := range solutions {
		if s.Contains(15) {
			t.Errorf("solution %s includes verb %s (index 15)",
				FormatSolution(s, c), c.Verbs[15].Letter)
		}
	}
}

func TestReferenceCatalogDeterminism(t *testing.T) {
	if testing.Short() {
		t.Skip("short mode")
	}
	c := loadReferenceCatalog(t)

	run := func(workers int) []State {
		cfg := DefaultConfig()
		cfg.Workers = workers
		var out []State
		NewSolver(c, cfg).Solve(ScorePositive, func(s State) {
			out = append(out, s)
		})
		return out
	}

	seq := run(1)
	par := run(8)
	if len(seq) != len(par) {
		t.Fatalf("worker counts disagree: %d vs %d solutions", len(seq), len(par))
	}
	for i := range seq {
		if seq[i] != par[i] {
			t.Fatalf("solution %d differs: %#x vs %#x", i, uint32(seq[i]), uint32(par[i]))
		}
	}
}
