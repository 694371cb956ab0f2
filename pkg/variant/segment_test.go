package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func animalModel(t *testing.T) *Model {
	t.Helper()
	return builtModel(t, map[string][]string{
		"amphibians": {"salamander", "frog", "toad"},
		"reptiles":   {"lizard", "snake"},
	})
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("a frog, two toads!")
	require.Len(t, tokens, 4)
	assert.Equal(t, "frog", tokens[1].text)
	assert.Equal(t, 2, tokens[1].begin)
	assert.Equal(t, 6, tokens[1].end)
	assert.Equal(t, "toads", tokens[3].text)

	assert.Empty(t, tokenize(""))
	assert.Empty(t, tokenize(" ,.! "))
}

func TestFindAllMatchesFiveSpansInOrder(t *testing.T) {
	m := animalModel(t)

	text := "Salamander lizard frog snake toad"
	results, err := m.FindAllMatches(text, SearchParameters{MaxEditDistance: 3, MaxNgram: 1})
	require.NoError(t, err)
	require.Len(t, results, 5)

	expect := []struct {
		input   string
		match   string
		lexicon string
	}{
		{"Salamander", "salamander", "amphibians"},
		{"lizard", "lizard", "reptiles"},
		{"frog", "frog", "amphibians"},
		{"snake", "snake", "reptiles"},
		{"toad", "toad", "amphibians"},
	}
	for i, want := range expect {
		res := results[i]
		assert.Equal(t, want.input, res.Input)
		require.NotEmpty(t, res.Variants, "span %d %q", i, want.input)
		assert.Equal(t, want.match, res.Variants[0].Text)
		assert.Equal(t, 0.0, res.Variants[0].Score)
		assert.Equal(t, []string{want.lexicon}, res.Variants[0].Lexicons)
	}
}

func TestFindAllMatchesOffsetsTrackSource(t *testing.T) {
	m := animalModel(t)

	text := "a frog, then a toad"
	results, err := m.FindAllMatches(text, SearchParameters{MaxEditDistance: 2, MaxNgram: 1})
	require.NoError(t, err)

	for _, res := range results {
		assert.Equal(t, res.Input, text[res.Offset.Begin:res.Offset.End])
	}
}

func TestFindAllMatchesEchoesUnmatchedTokens(t *testing.T) {
	m := animalModel(t)

	results, err := m.FindAllMatches("the frog jumped", SearchParameters{MaxEditDistance: 1, MaxNgram: 1})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "the", results[0].Input)
	assert.Empty(t, results[0].Variants)
	assert.Equal(t, "frog", results[1].Input)
	require.NotEmpty(t, results[1].Variants)
	assert.Equal(t, "jumped", results[2].Input)
	assert.Empty(t, results[2].Variants)
}

func TestFindAllMatchesBigramSpan(t *testing.T) {
	m := builtModel(t, map[string][]string{
		"species": {"tree frog", "frog", "toad"},
	})

	results, err := m.FindAllMatches("a tree frog sat", SearchParameters{MaxEditDistance: 1, MaxNgram: 2})
	require.NoError(t, err)

	var matched []string
	for _, res := range results {
		if len(res.Variants) > 0 {
			matched = append(matched, res.Variants[0].Text)
		}
	}
	// the bigram beats the unigram "frog" over the same tokens
	assert.Equal(t, []string{"tree frog"}, matched)
}

func TestFindAllMatchesNoisyTokens(t *testing.T) {
	m := animalModel(t)

	results, err := m.FindAllMatches("lizzard & snaek", SearchParameters{MaxEditDistance: 2, MaxNgram: 1})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "lizard", results[0].Variants[0].Text)
	assert.Equal(t, "snake", results[1].Variants[0].Text)
}

func TestFindAllMatchesEmptyText(t *testing.T) {
	m := animalModel(t)

	results, err := m.FindAllMatches("", DefaultParameters())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindAllMatchesBeforeBuild(t *testing.T) {
	m := New(caseFolding(), nil, false)

	_, err := m.FindAllMatches("frog", DefaultParameters())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
}
