/*
Package config manages TOML config for lexivar.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bastiangx/lexivar/pkg/alphabet"
	"github.com/bastiangx/lexivar/pkg/distance"
	"github.com/bastiangx/lexivar/pkg/variant"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Weights WeightsConfig `toml:"weights"`
	Search  SearchConfig  `toml:"search"`
	Server  ServerConfig  `toml:"server"`
}

// WeightsConfig holds edit operation costs and confusable overrides.
type WeightsConfig struct {
	Insert     float64            `toml:"insert"`
	Delete     float64            `toml:"delete"`
	Substitute float64            `toml:"substitute"`
	Transpose  float64            `toml:"transpose"`
	Confusable []ConfusableConfig `toml:"confusable"`
}

// ConfusableConfig is one reduced-cost substitution pair. A and B are raw
// forms resolved against the alphabet at model construction.
type ConfusableConfig struct {
	A    string  `toml:"a"`
	B    string  `toml:"b"`
	Cost float64 `toml:"cost"`
}

// SearchConfig holds per-query defaults.
type SearchConfig struct {
	MaxEditDistance float64 `toml:"max_edit_distance"`
	MaxNgram        int     `toml:"max_ngram"`
	MaxMatches      int     `toml:"max_matches"`
	ScoreThreshold  float64 `toml:"score_threshold"`
	CutoffFactor    float64 `toml:"cutoff_factor"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxQueryLen int `toml:"max_query_len"`
	MaxTextLen  int `toml:"max_text_len"`
}

// DefaultConfig returns the builtin defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: WeightsConfig{
			Insert:     1.0,
			Delete:     1.0,
			Substitute: 1.0,
			Transpose:  2.0,
		},
		Search: SearchConfig{
			MaxEditDistance: 3,
			MaxNgram:        2,
			MaxMatches:      20,
		},
		Server: ServerConfig{
			MaxQueryLen: 60,
			MaxTextLen:  4096,
		},
	}
}

// BuildWeights converts the weights section into a distance.Weights,
// resolving confusable raw forms against the alphabet. Pairs that normalize
// to the same class or to unknown symbols are dropped with a warning.
func (c *Config) BuildWeights(alpha *alphabet.Alphabet) *distance.Weights {
	w := distance.Default()
	if c.Weights.Insert > 0 {
		w.Insert = c.Weights.Insert
	}
	if c.Weights.Delete > 0 {
		w.Delete = c.Weights.Delete
	}
	if c.Weights.Substitute > 0 {
		w.Substitute = c.Weights.Substitute
	}
	if c.Weights.Transpose > 0 {
		w.Transpose = c.Weights.Transpose
	}
	for _, conf := range c.Weights.Confusable {
		a := alpha.Normalize(conf.A)
		b := alpha.Normalize(conf.B)
		if len(a) != 1 || len(b) != 1 || a[0] == alpha.Unknown() || b[0] == alpha.Unknown() {
			log.Warnf("confusable pair %q/%q does not resolve to single known classes, dropped", conf.A, conf.B)
			continue
		}
		if a[0] == b[0] {
			log.Warnf("confusable pair %q/%q normalizes to one class, dropped", conf.A, conf.B)
			continue
		}
		w.SetConfusable(a[0], b[0], conf.Cost)
	}
	return w
}

// SearchParameters converts the search section into per-query parameters.
func (c *Config) SearchParameters() variant.SearchParameters {
	return variant.SearchParameters{
		MaxEditDistance: c.Search.MaxEditDistance,
		MaxNgram:        c.Search.MaxNgram,
		MaxMatches:      c.Search.MaxMatches,
		ScoreThreshold:  c.Search.ScoreThreshold,
		CutoffFactor:    c.Search.CutoffFactor,
	}
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes a config as TOML.
func SaveConfig(path string, config *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(config)
}

// InitConfig loads the config at path, creating it with defaults first when
// it does not exist yet.
func InitConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		config := DefaultConfig()
		if err := SaveConfig(path, config); err != nil {
			return nil, err
		}
		log.Debugf("created default config at %s", path)
		return config, nil
	}
	return LoadConfig(path)
}

// GetDefaultConfigPath returns [user config dir]/lexivar/config.toml.
func GetDefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "lexivar", "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [user config dir]/lexivar/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("failed to determine default config path: %v. Using builtin defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}
