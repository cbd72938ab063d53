package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDemoCatalog(t testing.TB) *Catalog {
	t.Helper()
	c, err := LoadCatalog("testdata/demo.json")
	require.NoError(t, err)
	return c
}

func TestLoadDemoCatalog(t *testing.T) {
	c := loadDemoCatalog(t)

	assert.Equal(t, []string{"wood", "food", "score"}, c.Resources)
	assert.Equal(t, 2, c.Score)
	require.Len(t, c.Verbs, 5)

	hunt := c.FindVerb("b")
	require.NotNil(t, hunt)
	assert.Equal(t, 1, hunt.Index)
	assert.Equal(t, State(2), hunt.Mask)
	assert.Equal(t, "hunt", hunt.Name)
	assert.Equal(t, []int{-1, 2, 0}, hunt.Deltas)

	idle := c.FindVerb("d")
	require.NotNil(t, idle)
	assert.Equal(t, []int{0, 0, 0}, idle.Deltas, "unmentioned deltas default to zero")

	assert.Nil(t, c.FindVerb("z"))
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog("testdata/nope.json")
	assert.Error(t, err)
}

func TestParseCatalogErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{
			name: "invalid json",
			data: `{"resources": [`,
			want: "invalid JSON",
		},
		{
			name: "no resources",
			data: `{"resources": [], "score": "score", "verbs": [{"letter": "a"}]}`,
			want: "no resources",
		},
		{
			name: "no verbs",
			data: `{"resources": ["score"], "score": "score", "verbs": []}`,
			want: "no verbs",
		},
		{
			name: "unknown delta resource",
			data: `{"resources": ["score"], "score": "score", "verbs": [{"letter": "a", "deltas": {"gold": 1}}]}`,
			want: `unknown resource "gold"`,
		},
		{
			name: "score not a resource",
			data: `{"resources": ["wood"], "score": "score", "verbs": [{"letter": "a"}]}`,
			want: "score resource",
		},
		{
			name: "duplicate letter",
			data: `{"resources": ["score"], "score": "score", "verbs": [{"letter": "a"}, {"letter": "a"}]}`,
			want: `duplicate verb letter "a"`,
		},
		{
			name: "missing letter",
			data: `{"resources": ["score"], "score": "score", "verbs": [{"name": "gather"}]}`,
			want: "no letter",
		},
		{
			name: "fractional delta",
			data: `{"resources": ["score"], "score": "score", "verbs": [{"letter": "a", "deltas": {"score": 1.5}}]}`,
			want: "must be an integer",
		},
		{
			name: "non-numeric delta",
			data: `{"resources": ["score"], "score": "score", "verbs": [{"letter": "a", "deltas": {"score": "2"}}]}`,
			want: "must be an integer",
		},
		{
			name: "duplicate resource",
			data: `{"resources": ["score", "score"], "score": "score", "verbs": [{"letter": "a"}]}`,
			want: `duplicate resource "score"`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog(tc.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseCatalogTooManyVerbs(t *testing.T) {
	var verbs []string
	for i := 0; i <= MaxVerbs; i++ {
		verbs = append(verbs, fmt.Sprintf(`{"letter": "v%d"}`, i))
	}
	data := fmt.Sprintf(`{"resources": ["score"], "score": "score", "verbs": [%s]}`,
		strings.Join(verbs, ","))
	_, err := ParseCatalog(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds limit")
}

func TestValidateIndexMaskMismatch(t *testing.T) {
	c := &Catalog{
		Resources: []string{"score"},
		Score:     0,
		Verbs: []Verb{
			{Index: 1, Mask: 2, Letter: "a", Deltas: []int{0}},
		},
	}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index/mask mismatch")
}
