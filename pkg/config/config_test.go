package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/lexivar/pkg/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1.0, cfg.Weights.Insert)
	assert.Equal(t, 2.0, cfg.Weights.Transpose)
	assert.Equal(t, 3.0, cfg.Search.MaxEditDistance)
	assert.Equal(t, 2, cfg.Search.MaxNgram)
	assert.Equal(t, 20, cfg.Search.MaxMatches)
	assert.Equal(t, 60, cfg.Server.MaxQueryLen)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Weights.Transpose = 1.0
	cfg.Weights.Confusable = []ConfusableConfig{{A: "a", B: "e", Cost: 0.25}}
	cfg.Search.MaxEditDistance = 2
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	created, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), created)
	assert.FileExists(t, path)

	// second call loads the existing file
	loaded, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, created, loaded)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\nmax_edit_distance = 1\n"), 0o644))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1.0, loaded.Search.MaxEditDistance)
	assert.Equal(t, 2, loaded.Search.MaxNgram, "untouched fields keep defaults")
	assert.Equal(t, 2.0, loaded.Weights.Transpose)
}

func alpha() *alphabet.Alphabet {
	records := make([]alphabet.Record, 0, 26)
	for c := byte('a'); c <= 'z'; c++ {
		records = append(records, alphabet.Record{Forms: []string{string(c)}})
	}
	return alphabet.New(records)
}

func TestBuildWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights.Transpose = 1.5
	cfg.Weights.Confusable = []ConfusableConfig{
		{A: "a", B: "e", Cost: 0.25},
		{A: "a", B: "a", Cost: 0.1}, // same class, dropped
		{A: "a", B: "9", Cost: 0.1}, // unknown, dropped
	}

	a := alpha()
	w := cfg.BuildWeights(a)
	assert.Equal(t, 1.5, w.Transpose)

	sa := a.Normalize("a")[0]
	se := a.Normalize("e")[0]
	assert.Equal(t, 0.25, w.SubstitutionCost(sa, se))
	assert.Equal(t, 0.25, w.SubstitutionCost(se, sa))
	assert.Equal(t, 1.0, w.SubstitutionCost(sa, a.Normalize("b")[0]))
}

func TestSearchParameters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.ScoreThreshold = 1.5

	params := cfg.SearchParameters()
	assert.Equal(t, 3.0, params.MaxEditDistance)
	assert.Equal(t, 2, params.MaxNgram)
	assert.Equal(t, 20, params.MaxMatches)
	assert.Equal(t, 1.5, params.ScoreThreshold)
}
