package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// Verb is one catalog entry: a single action with fixed per-resource
// deltas. Built once at load time and never mutated.
type Verb struct {
	Index  int
	Mask   State
	Letter string
	Name   string
	Deltas []int // indexed by resource, same order as Catalog.Resources
}

// Catalog is the immutable verb/resource table the search runs over.
// It is shared read-only across all workers.
type Catalog struct {
	Resources []string
	Score     int // index of the distinguished score resource
	Verbs     []Verb
}

// LoadCatalog reads and validates a catalog JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(string(raw))
}

// ParseCatalog builds a catalog from a JSON string. The expected shape:
//
//	{
//	  "resources": ["wood", ..., "score"],
//	  "score": "score",
//	  "verbs": [{"letter": "a", "name": "gather", "deltas": {"wood": 2}}, ...]
//	}
//
// Verb indices follow array order. Delta entries are keyed by resource
// name; resources not mentioned default to zero.
func ParseCatalog(data string) (*Catalog, error) {
	if !gjson.Valid(data) {
		return nil, fmt.Errorf("catalog: invalid JSON")
	}
	c := &Catalog{Score: -1}

	gjson.Get(data, "resources").ForEach(func(_, v gjson.Result) bool {
		c.Resources = append(c.Resources, v.String())
		return true
	})

	resIdx := make(map[string]int, len(c.Resources))
	for i, name := range c.Resources {
		resIdx[name] = i
	}

	scoreName := gjson.Get(data, "score").String()
	if i, ok := resIdx[scoreName]; ok {
		c.Score = i
	}

	var parseErr error
	gjson.Get(data, "verbs").ForEach(func(_, v gjson.Result) bool {
		idx := len(c.Verbs)
		verb := Verb{
			Index:  idx,
			Mask:   1 << uint(idx),
			Letter: v.Get("letter").String(),
			Name:   v.Get("name").String(),
			Deltas: make([]int, len(c.Resources)),
		}
		v.Get("deltas").ForEach(func(k, d gjson.Result) bool {
			ri, ok := resIdx[k.String()]
			if !ok {
				parseErr = fmt.Errorf("catalog: verb %q: unknown resource %q", verb.Letter, k.String())
				return false
			}
			if d.Type != gjson.Number || d.Num != float64(int64(d.Num)) {
				parseErr = fmt.Errorf("catalog: verb %q: delta for %q must be an integer, got %v", verb.Letter, k.String(), d.Value())
				return false
			}
			verb.Deltas[ri] = int(d.Num)
			return true
		})
		c.Verbs = append(c.Verbs, verb)
		return parseErr == nil
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate fails fast on malformed tables so the search never has to
// handle bad catalog data mid-run.
func (c *Catalog) Validate() error {
	if len(c.Resources) == 0 {
		return fmt.Errorf("catalog: no resources")
	}
	if len(c.Verbs) == 0 {
		return fmt.Errorf("catalog: no verbs")
	}
	if len(c.Verbs) > MaxVerbs {
		return fmt.Errorf("catalog: %d verbs exceeds limit of %d", len(c.Verbs), MaxVerbs)
	}
	if c.Score < 0 || c.Score >= len(c.Resources) {
		return fmt.Errorf("catalog: score resource not in resource list")
	}
	seenRes := make(map[string]bool, len(c.Resources))
	for _, name := range c.Resources {
		if seenRes[name] {
			return fmt.Errorf("catalog: duplicate resource %q", name)
		}
		seenRes[name] = true
	}
	seenLetter := make(map[string]bool, len(c.Verbs))
	for i := range c.Verbs {
		v := &c.Verbs[i]
		if v.Index != i || v.Mask != 1<<uint(i) {
			return fmt.Errorf("catalog: verb %q: index/mask mismatch at position %d", v.Letter, i)
		}
		if v.Letter == "" {
			return fmt.Errorf("catalog: verb at index %d has no letter", i)
		}
		if seenLetter[v.Letter] {
			return fmt.Errorf("catalog: duplicate verb letter %q", v.Letter)
		}
		seenLetter[v.Letter] = true
		if len(v.Deltas) != len(c.Resources) {
			return fmt.Errorf("catalog: verb %q: %d deltas for %d resources", v.Letter, len(v.Deltas), len(c.Resources))
		}
	}
	return nil
}

// FindVerb returns the verb with the given letter, or nil.
func (c *Catalog) FindVerb(letter string) *Verb {
	for i := range c.Verbs {
		if c.Verbs[i].Letter == letter {
			return &c.Verbs[i]
		}
	}
	return nil
}

func (c *Catalog) String() string {
	var b strings.Builder
	for i := range c.Verbs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(c.Verbs[i].Letter)
	}
	return fmt.Sprintf("catalog{%d verbs: %s}", len(c.Verbs), b.String())
}
