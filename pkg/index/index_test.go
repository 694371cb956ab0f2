package index

import (
	"testing"

	"github.com/bastiangx/lexivar/pkg/alphabet"
	"github.com/bastiangx/lexivar/pkg/distance"
	"github.com/bastiangx/lexivar/pkg/lexicon"
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

func buildIndex(t *testing.T, alpha *alphabet.Alphabet, words ...string) (*Index, *lexicon.Store) {
	t.Helper()
	store := lexicon.NewStore(alpha)
	require.NoError(t, store.Add("words", lexicon.NewSliceSource(words...)))
	store.Freeze()
	ix := New(alpha)
	require.NoError(t, ix.Build(store))
	return ix, store
}

func TestFingerprintOrderIndependent(t *testing.T) {
	alpha := lowercase()

	assert.Equal(t,
		Compute(alpha.Normalize("understand"), alpha),
		Compute(alpha.Normalize("udnerstand"), alpha),
		"transpositions must not move the fingerprint")
	assert.Equal(t,
		Compute(alpha.Normalize("listen"), alpha),
		Compute(alpha.Normalize("silent"), alpha),
		"anagrams share a fingerprint")
}

func TestBuildTwiceFails(t *testing.T) {
	alpha := lowercase()
	ix, store := buildIndex(t, alpha, "frog")
	err := ix.Build(store)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBuilt)

	ix.Reset()
	assert.NoError(t, ix.Build(store))
}

func TestExactBucket(t *testing.T) {
	alpha := lowercase()
	ix, store := buildIndex(t, alpha, "frog", "toad", "orfg")

	fp := Compute(alpha.Normalize("frog"), alpha)
	ids := ix.Bucket(fp)
	require.NotEmpty(t, ids)
	surfaces := make([]string, 0, len(ids))
	for _, id := range ids {
		surfaces = append(surfaces, store.Entry(id).Surface)
	}
	// "orfg" is an anagram of "frog" and lands in the same bucket
	assert.ElementsMatch(t, []string{"frog", "orfg"}, surfaces)
}

// Soundness: every entry within the edit budget must be reachable through the
// delta walk before exact-distance filtering.
func TestCandidatesWithinSound(t *testing.T) {
	alpha := lowercase()
	words := []string{"salamander", "frog", "toad", "lizard", "snake", "understand", "understands"}
	ix, store := buildIndex(t, alpha, words...)
	w := distance.Default()

	queries := []string{
		"salamander", "salamandre", "salamanderz", "alamander", // exact, swap, insert, delete
		"frog", "frig", "fog", "frogs", "rfog",
		"udnerstand", "understnad", "understan",
		"lizzard", "snaek", "tood",
	}
	const maxDist = 3.0
	budget := distance.EditBudget(maxDist, w)

	for _, q := range queries {
		norm := alpha.Normalize(q)
		found := make(map[string]bool)
		for _, id := range ix.CandidatesWithin(Compute(norm, alpha), budget) {
			found[store.Entry(id).Surface] = true
		}
		for _, word := range words {
			d, ok := distance.Weighted(norm, alpha.Normalize(word), w, maxDist)
			if !ok {
				continue
			}
			assert.True(t, found[word],
				"query %q: entry %q at distance %.1f missing from candidates", q, word, d)
		}
	}
}

func TestCandidatesWithinDeterministic(t *testing.T) {
	alpha := lowercase()
	ix, _ := buildIndex(t, alpha, "salamander", "frog", "toad", "lizard", "snake")

	fp := Compute(alpha.Normalize("frig"), alpha)
	first := ix.CandidatesWithin(fp, 3)
	second := ix.CandidatesWithin(fp, 3)
	assert.Equal(t, first, second)
}

func TestCandidatesWithinZeroBudget(t *testing.T) {
	alpha := lowercase()
	ix, store := buildIndex(t, alpha, "frog", "toad")

	fp := Compute(alpha.Normalize("frog"), alpha)
	ids := ix.CandidatesWithin(fp, 0)
	require.Len(t, ids, 1)
	assert.Equal(t, "frog", store.Entry(ids[0]).Surface)
}
