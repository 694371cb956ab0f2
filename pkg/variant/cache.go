package variant

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Cache memoizes FindVariants results across repeated queries, keyed by an
// xxhash of the query and every parameter that affects the outcome. The model
// itself stays lock-free; callers that want memoization own a cache and go
// through it. The server keeps one per session.
type Cache struct {
	mu      sync.RWMutex
	entries map[uint64]VariantResult
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]VariantResult)}
}

// FindVariants is Model.FindVariants with memoization. Errors are never
// cached.
func (c *Cache) FindVariants(m *Model, query string, params SearchParameters) (VariantResult, error) {
	key := cacheKey(query, params)
	c.mu.RLock()
	res, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return res, nil
	}
	res, err := m.FindVariants(query, params)
	if err != nil {
		return res, err
	}
	c.mu.Lock()
	c.entries[key] = res
	c.mu.Unlock()
	return res, nil
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every cached result. Call after Reset/rebuild of the model.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[uint64]VariantResult)
	c.mu.Unlock()
}

func cacheKey(query string, p SearchParameters) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(query)
	var buf [8]byte
	for _, f := range []float64{p.MaxEditDistance, p.ScoreThreshold, p.CutoffFactor} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(p.MaxMatches))
	_, _ = d.Write(buf[:])
	return d.Sum64()
}
