package distance

import (
	"testing"

	"github.com/bastiangx/lexivar/pkg/alphabet"
	edlib "github.com/hbollon/go-edlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lowercase() *alphabet.Alphabet {
	records := make([]alphabet.Record, 0, 26)
	for c := byte('a'); c <= 'z'; c++ {
		records = append(records, alphabet.Record{Forms: []string{string(c)}})
	}
	return alphabet.New(records)
}

func TestWeightedBasics(t *testing.T) {
	alpha := lowercase()
	w := Default()

	cases := []struct {
		a, b string
		want float64
	}{
		{"frog", "frog", 0},
		{"frog", "frig", 1},  // substitution
		{"frog", "frogs", 1}, // insertion
		{"frogs", "frog", 1}, // deletion
		{"frog", "rfog", 2},  // adjacent swap at default transpose cost
		{"", "abc", 3},
		{"abc", "", 3},
	}
	for _, tc := range cases {
		got, ok := Weighted(alpha.Normalize(tc.a), alpha.Normalize(tc.b), w, 10)
		require.True(t, ok, "%q vs %q", tc.a, tc.b)
		assert.Equal(t, tc.want, got, "%q vs %q", tc.a, tc.b)
	}
}

func TestWeightedTranspositionConfigurable(t *testing.T) {
	alpha := lowercase()
	w := Default()
	w.Transpose = 1.0

	got, ok := Weighted(alpha.Normalize("udnerstand"), alpha.Normalize("understand"), w, 10)
	require.True(t, ok)
	assert.Equal(t, 1.0, got)
}

func TestWeightedConfusableDiscount(t *testing.T) {
	alpha := lowercase()
	w := Default()
	a := alpha.Normalize("a")[0]
	e := alpha.Normalize("e")[0]
	w.SetConfusable(a, e, 0.25)

	got, ok := Weighted(alpha.Normalize("salamandar"), alpha.Normalize("salamander"), w, 10)
	require.True(t, ok)
	assert.Equal(t, 0.25, got)

	// discount applies in both directions
	got, ok = Weighted(alpha.Normalize("salamander"), alpha.Normalize("salamandar"), w, 10)
	require.True(t, ok)
	assert.Equal(t, 0.25, got)

	// unrelated substitutions keep the base cost
	got, ok = Weighted(alpha.Normalize("salamandzr"), alpha.Normalize("salamander"), w, 10)
	require.True(t, ok)
	assert.Equal(t, 1.0, got)
}

// A transposition cheaper than every other operation must survive a tight
// budget: the row cutoff has to account for the two-row lookback.
func TestWeightedCheapTranspositionSurvivesCutoff(t *testing.T) {
	alpha := lowercase()
	w := &Weights{Insert: 5, Delete: 5, Substitute: 5, Transpose: 0.5}

	got, ok := Weighted(alpha.Normalize("ab"), alpha.Normalize("ba"), w, 1)
	require.True(t, ok)
	assert.Equal(t, 0.5, got)

	// swaps chain: two cheap transpositions under a budget no single
	// substitution row would pass
	got, ok = Weighted(alpha.Normalize("abcd"), alpha.Normalize("badc"), w, 1)
	require.True(t, ok)
	assert.Equal(t, 1.0, got)

	// the cutoff still rejects pairs whose true distance exceeds the budget
	_, ok = Weighted(alpha.Normalize("ab"), alpha.Normalize("cd"), w, 1)
	assert.False(t, ok)
}

func TestWeightedMaxDistanceCutoff(t *testing.T) {
	alpha := lowercase()
	w := Default()

	_, ok := Weighted(alpha.Normalize("frog"), alpha.Normalize("salamander"), w, 2)
	assert.False(t, ok)

	// length gap alone exceeds the budget, exits before the DP
	_, ok = Weighted(alpha.Normalize("ab"), alpha.Normalize("abcdefgh"), w, 3)
	assert.False(t, ok)
}

// With uniform unit costs the metric must agree with the optimal string
// alignment distance from go-edlib.
func TestWeightedMatchesReferenceUniform(t *testing.T) {
	alpha := lowercase()
	w := &Weights{Insert: 1, Delete: 1, Substitute: 1, Transpose: 1}

	pairs := [][2]string{
		{"understand", "udnerstand"},
		{"salamander", "salamandre"},
		{"frog", "toad"},
		{"lizard", "lizzard"},
		{"snake", "snaek"},
		{"congratulations", "congradulation"},
		{"a", "ba"},
		{"kitten", "sitting"},
	}
	for _, p := range pairs {
		want := float64(edlib.OSADamerauLevenshteinDistance(p[0], p[1]))
		got, ok := Weighted(alpha.Normalize(p[0]), alpha.Normalize(p[1]), w, 100)
		require.True(t, ok, "%q vs %q", p[0], p[1])
		assert.Equal(t, want, got, "%q vs %q", p[0], p[1])
	}
}

func TestEditBudget(t *testing.T) {
	w := Default()
	assert.Equal(t, 3, EditBudget(3, w))
	assert.Equal(t, 0, EditBudget(0, w))

	w.SetConfusable(0, 1, 0.5)
	assert.Equal(t, 6, EditBudget(3, w))
}
