package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FormatSolution returns the letter sequence of the active verbs in
// catalog order, e.g. "abfkmq".
func FormatSolution(s State, c *Catalog) string {
	var b strings.Builder
	for i := range c.Verbs {
		if s.Contains(i) {
			b.WriteString(c.Verbs[i].Letter)
		}
	}
	return b.String()
}

// WriteSolutions writes one letter string per line, trailing newline per
// entry. Solutions arrive already deduplicated and ordered, so this is a
// plain append.
func WriteSolutions(w io.Writer, solutions []State, c *Catalog) error {
	bw := bufio.NewWriter(w)
	for _, s := range solutions {
		if _, err := bw.WriteString(FormatSolution(s, c)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FormatReport renders the run summary table. Elapsed time is excluded
// so the report is deterministic; callers print timing separately.
func FormatReport(st Stats, solutions []State, c *Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %12d\n", "Verbs", len(c.Verbs))
	fmt.Fprintf(&b, "%-10s %12d\n", "Resources", len(c.Resources))
	fmt.Fprintf(&b, "%-10s %12d\n", "Waves", st.Waves)
	fmt.Fprintf(&b, "%-10s %12d\n", "Scanned", st.Scanned)
	fmt.Fprintf(&b, "%-10s %12d\n", "Pruned", st.Pruned)
	fmt.Fprintf(&b, "%-10s %12d\n", "Solutions", st.Solutions)
	if len(solutions) > 0 {
		shortest := solutions[0]
		for _, s := range solutions[1:] {
			if s.Count() < shortest.Count() {
				shortest = s
			}
		}
		fmt.Fprintf(&b, "%-10s %12s\n", "Shortest", FormatSolution(shortest, c))
	}
	return b.String()
}
