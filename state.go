package main

import (
	"fmt"
	"math/bits"
)

// MaxVerbs is the largest catalog the one-word State representation
// supports.
const MaxVerbs = 32

// State is a bitmask of active verbs: bit i set means catalog verb i is
// part of the economy. Equality is integer equality, so States serve
// directly as map keys for frontier dedup. All mutating-style operations
// return a new value.
type State uint32

// EmptyState has no verbs active.
const EmptyState State = 0

// Contains reports whether verb i is active.
func (s State) Contains(i int) bool { return s&(1<<uint(i)) != 0 }

// Add returns a copy of s with verb i active. Adding an already-active
// verb is a scheduler defect, not an input error, and panics.
func (s State) Add(i int) State {
	if s.Contains(i) {
		panic(fmt.Sprintf("state: verb %d already active in %#x", i, uint32(s)))
	}
	return s | 1<<uint(i)
}

// Count returns the number of active verbs.
func (s State) Count() int { return bits.OnesCount32(uint32(s)) }

// AppendAvailable appends every inactive verb index below n to dst, in
// catalog order, and returns the extended slice.
func (s State) AppendAvailable(dst []int, n int) []int {
	for i := 0; i < n; i++ {
		if !s.Contains(i) {
			dst = append(dst, i)
		}
	}
	return dst
}
