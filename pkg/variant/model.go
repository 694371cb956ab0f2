/*
Package variant is the approximate matching engine: it ties the alphabet
normalizer, lexicon store, fingerprint index and weighted distance scorer
together behind a model with a two-phase lifecycle.

Build phase (single-threaded): construct the model, read lexicons, call
Build. Query phase: FindVariants and FindAllMatches are pure reads over
immutable state and safe from any number of goroutines without locking.
*/
package variant

import (
	"github.com/bastiangx/lexivar/pkg/alphabet"
	"github.com/bastiangx/lexivar/pkg/distance"
	"github.com/bastiangx/lexivar/pkg/index"
	"github.com/bastiangx/lexivar/pkg/lexicon"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// Model owns a lexicon store and its candidate index, and shares the alphabet
// and weights read-only with every lookup.
type Model struct {
	alpha   *alphabet.Alphabet
	weights *distance.Weights
	store   *lexicon.Store
	index   *index.Index
	debug   bool
}

// New constructs an empty model. Weights may be nil for defaults.
func New(alpha *alphabet.Alphabet, weights *distance.Weights, debug bool) *Model {
	if weights == nil {
		weights = distance.Default()
	}
	return &Model{
		alpha:   alpha,
		weights: weights,
		store:   lexicon.NewStore(alpha),
		index:   index.New(alpha),
		debug:   debug,
	}
}

// Alphabet returns the shared alphabet.
func (m *Model) Alphabet() *alphabet.Alphabet { return m.alpha }

// Weights returns the shared edit weights.
func (m *Model) Weights() *distance.Weights { return m.weights }

// Store exposes the lexicon store, read-only once built.
func (m *Model) Store() *lexicon.Store { return m.store }

// ReadLexicon drains a source into the named lexicon. May be called any
// number of times before Build; afterwards it fails with ErrConfiguration.
func (m *Model) ReadLexicon(name string, src lexicon.Source) error {
	if err := m.store.Add(name, src); err != nil {
		if errors.Is(err, lexicon.ErrFrozen) {
			return errors.Mark(err, ErrConfiguration)
		}
		return err
	}
	return nil
}

// Build freezes the store and constructs the candidate index. One-shot:
// building twice without Reset fails with ErrConfiguration.
func (m *Model) Build() error {
	if m.index.Built() {
		return configErrorf("model already built; call Reset to rebuild")
	}
	m.store.Freeze()
	if err := m.index.Build(m.store); err != nil {
		return errors.Mark(err, ErrConfiguration)
	}
	if m.debug {
		log.Debugf("model built: %d entries", m.store.Len())
	}
	return nil
}

// Built reports whether the model is queryable.
func (m *Model) Built() bool { return m.index.Built() }

// Reset discards the index and reopens the store for loading. Existing
// entries are kept; rebuilding reindexes everything from scratch.
func (m *Model) Reset() {
	m.index.Reset()
	m.store.Unfreeze()
}
