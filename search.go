package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// ── Call contracts ──────────────────────────────────────────────────

// Predicate decides whether a valid state counts as a solution. It must
// be a pure function: workers invoke it concurrently.
type Predicate func(State, *Catalog) bool

// Handler receives each solution exactly once: sorted by state value
// within a wave, waves in increasing verb count.
type Handler func(State)

// ScorePositive is the default acceptance predicate: the distinguished
// score resource must be strictly net-positive.
func ScorePositive(s State, c *Catalog) bool {
	return ResourceProduction(s, c.Score, c) > 0
}

// ── Progress counters ───────────────────────────────────────────────

// Progress holds the shared run counters. Workers update them atomically;
// they are advisory only and never influence search decisions.
type Progress struct {
	Scanned    atomic.Int64
	Pruned     atomic.Int64
	Solutions  atomic.Int64
	nextReport atomic.Int64
}

// Stats summarizes a completed run.
type Stats struct {
	Waves     int
	Scanned   int64
	Pruned    int64
	Solutions int64
	Elapsed   time.Duration
}

// ── Solver ──────────────────────────────────────────────────────────

// Solver enumerates every verb subset that forms a self-sustaining
// economy and passes the acceptance predicate. It runs a
// level-synchronous BFS over the subset lattice ordered by verb count:
// each wave holds the reachable states with the same number of active
// verbs, scanned in parallel, with non-viable states pruned together
// with all their supersets.
type Solver struct {
	catalog  *Catalog
	cfg      Config
	progress Progress
}

// NewSolver creates a solver over the given catalog.
func NewSolver(c *Catalog, cfg Config) *Solver {
	return &Solver{catalog: c, cfg: cfg}
}

// Solve runs the search to completion, invoking emit once per solution.
// Output order is deterministic regardless of worker count.
func (s *Solver) Solve(accept Predicate, emit Handler) Stats {
	start := time.Now()
	n := len(s.catalog.Verbs)

	s.progress.Scanned.Store(0)
	s.progress.Pruned.Store(0)
	s.progress.Solutions.Store(0)
	s.progress.nextReport.Store(s.cfg.ProgressEvery)

	waves := 0
	frontier := []State{EmptyState}
	for wave := 0; len(frontier) > 0 && wave <= n; wave++ {
		waves = wave + 1
		next, solutions := s.scanWave(frontier, accept)

		// Sort before emission so results are bit-for-bit reproducible
		// across runs and worker counts.
		sort.Slice(solutions, func(i, j int) bool { return solutions[i] < solutions[j] })
		for _, sol := range solutions {
			emit(sol)
		}

		if Verbose {
			eliminated := binomial(n, wave+1) - int64(len(next))
			fmt.Fprintf(logw(), "[wave %d] frontier=%d next=%d eliminated=%d scanned=%d pruned=%d solutions=%d\n",
				wave, len(frontier), len(next), eliminated,
				s.progress.Scanned.Load(), s.progress.Pruned.Load(), s.progress.Solutions.Load())
		}
		frontier = next
	}

	return Stats{
		Waves:     waves,
		Scanned:   s.progress.Scanned.Load(),
		Pruned:    s.progress.Pruned.Load(),
		Solutions: s.progress.Solutions.Load(),
		Elapsed:   time.Since(start),
	}
}

// ── Parallel wave scan ──────────────────────────────────────────────

// workerResult collects one worker's contribution to a wave. Workers
// share nothing mutable except the atomic counters; buffers are merged
// only after the join.
type workerResult struct {
	next      map[State]struct{}
	solutions []State
}

// scanWave partitions the frontier into contiguous slices, scans them in
// parallel, and merges the per-worker buffers at the wave barrier into a
// deduplicated next frontier and this wave's solutions.
func (s *Solver) scanWave(frontier []State, accept Predicate) ([]State, []State) {
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(frontier) {
		workers = len(frontier)
	}

	results := make([]workerResult, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := len(frontier) * w / workers
		hi := len(frontier) * (w + 1) / workers
		wg.Add(1)
		go func(w int, slice []State) {
			defer wg.Done()
			buf := &scanBuf{next: make(map[State]struct{})}
			for _, st := range slice {
				s.scanState(st, accept, buf)
			}
			results[w] = workerResult{next: buf.next, solutions: buf.solutions}
		}(w, frontier[lo:hi])
	}
	wg.Wait()

	merged := results[0].next
	solutions := results[0].solutions
	for _, r := range results[1:] {
		for st := range r.next {
			merged[st] = struct{}{}
		}
		solutions = append(solutions, r.solutions...)
	}

	next := make([]State, 0, len(merged))
	for st := range merged {
		next = append(next, st)
	}
	return next, solutions
}

// scanBuf holds one worker's scratch space, reused across states to keep
// the inner loop allocation-free.
type scanBuf struct {
	prod      []int
	verbs     []int
	next      map[State]struct{}
	solutions []State
}

// scanState applies the per-state scan rule:
//   - valid: emit as a solution if accepted, then branch on every
//     available verb;
//   - invalid but viable: branch only on desired verbs, the ones that
//     could reduce a current deficit;
//   - non-viable: prune; no continuation can ever become valid.
//
// The empty state seeds expansion but is never reported as a solution.
func (s *Solver) scanState(st State, accept Predicate, buf *scanBuf) {
	c := s.catalog
	n := len(c.Verbs)

	s.tick()
	buf.prod = AppendProductions(buf.prod[:0], st, c)

	switch {
	case validProductions(buf.prod):
		if st != EmptyState && accept(st, c) {
			buf.solutions = append(buf.solutions, st)
			s.progress.Solutions.Add(1)
		}
		buf.verbs = st.AppendAvailable(buf.verbs[:0], n)
	case !viableProductions(st, c, buf.prod):
		s.progress.Pruned.Add(1)
		return
	default:
		buf.verbs = appendDesired(buf.verbs[:0], st, c, buf.prod)
	}

	for _, v := range buf.verbs {
		buf.next[st.Add(v)] = struct{}{}
	}
}

// tick bumps the scanned counter and prints a within-wave progress line
// each time the report threshold is crossed.
func (s *Solver) tick() {
	scanned := s.progress.Scanned.Add(1)
	if !Verbose || s.cfg.ProgressEvery <= 0 {
		return
	}
	threshold := s.progress.nextReport.Load()
	if scanned >= threshold && s.progress.nextReport.CompareAndSwap(threshold, threshold+s.cfg.ProgressEvery) {
		fmt.Fprintf(logw(), "[scan] scanned=%d pruned=%d solutions=%d\n",
			scanned, s.progress.Pruned.Load(), s.progress.Solutions.Load())
	}
}

// ── Helpers ─────────────────────────────────────────────────────────

// binomial returns C(n, k), the theoretical number of states at a wave.
// Used only for eliminated-count reporting.
func binomial(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := int64(1)
	for i := 1; i <= k; i++ {
		result = result * int64(n-k+i) / int64(i)
	}
	return result
}

func logw() *os.File { return os.Stderr }
