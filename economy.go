package main

// Economy evaluation: pure integer arithmetic over a state and the
// read-only catalog. The exported functions are self-contained; the
// unexported variants take a precomputed production vector so the
// scheduler evaluates each state's sums exactly once per scan.

// AppendProductions appends the net production of every resource under s
// to dst and returns the extended slice.
func AppendProductions(dst []int, s State, c *Catalog) []int {
	base := len(dst)
	for range c.Resources {
		dst = append(dst, 0)
	}
	for i := range c.Verbs {
		if !s.Contains(i) {
			continue
		}
		for r, d := range c.Verbs[i].Deltas {
			dst[base+r] += d
		}
	}
	return dst
}

// ResourceProduction returns the net production of resource r under s:
// the sum of delta[r] over every active verb.
func ResourceProduction(s State, r int, c *Catalog) int {
	total := 0
	for i := range c.Verbs {
		if s.Contains(i) {
			total += c.Verbs[i].Deltas[r]
		}
	}
	return total
}

// IsValid reports whether no resource is net-negative under s. The empty
// state is always valid: vacuous sums are zero.
func IsValid(s State, c *Catalog) bool {
	return validProductions(AppendProductions(nil, s, c))
}

func validProductions(prod []int) bool {
	for _, p := range prod {
		if p < 0 {
			return false
		}
	}
	return true
}

// NegativeResources returns the resource indices with strictly negative
// net production under s.
func NegativeResources(s State, c *Catalog) []int {
	var neg []int
	for r, p := range AppendProductions(nil, s, c) {
		if p < 0 {
			neg = append(neg, r)
		}
	}
	return neg
}

// IsViable reports whether s could still become valid by activating more
// verbs. For each deficit resource the theoretical ceiling is the sum of
// every positive delta among the currently-available verbs: any future
// expansion activates a subset of those verbs, and active verbs are never
// removed, so no continuation can add more than the ceiling. If any
// deficit cannot be covered even by the ceiling, s and all its supersets
// are permanently invalid. A valid state is trivially viable. The
// boundary is inclusive: a deficit exactly covered by the ceiling passes.
func IsViable(s State, c *Catalog) bool {
	return viableProductions(s, c, AppendProductions(nil, s, c))
}

func viableProductions(s State, c *Catalog, prod []int) bool {
	for r, p := range prod {
		if p >= 0 {
			continue
		}
		ceiling := 0
		for i := range c.Verbs {
			if s.Contains(i) {
				continue
			}
			if d := c.Verbs[i].Deltas[r]; d > 0 {
				ceiling += d
			}
		}
		if p+ceiling < 0 {
			return false
		}
	}
	return true
}

// DesiredVerbs returns the available verbs with a strictly positive delta
// on at least one deficit resource of s. When a state is invalid but
// viable, only these verbs are worth branching on: a verb irrelevant to
// every current deficit cannot move the state toward validity, and it
// remains reachable later through expansion paths that never enter this
// deficit.
func DesiredVerbs(s State, c *Catalog) []int {
	return appendDesired(nil, s, c, AppendProductions(nil, s, c))
}

func appendDesired(dst []int, s State, c *Catalog, prod []int) []int {
	for i := range c.Verbs {
		if s.Contains(i) {
			continue
		}
		for r, p := range prod {
			if p < 0 && c.Verbs[i].Deltas[r] > 0 {
				dst = append(dst, i)
				break
			}
		}
	}
	return dst
}
