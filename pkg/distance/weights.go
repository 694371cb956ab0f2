/*
Package distance scores symbol sequences with a weighted Damerau-Levenshtein
metric: configurable per-operation costs plus optional confusable-pair
discounts for substitutions between commonly mistaken classes.
*/
package distance

import (
	"github.com/bastiangx/lexivar/pkg/alphabet"
)

type pair [2]alphabet.Symbol

// Weights holds the cost of each edit operation. Build it once, optionally
// register confusable pairs, then share it read-only across queries.
type Weights struct {
	Insert     float64
	Delete     float64
	Substitute float64
	// Transpose is charged for an adjacent swap when cheaper than the two
	// substitutions it replaces. The default of 2.0 keeps a swap equal to
	// two substitutions unless configured lower.
	Transpose float64

	confusables map[pair]float64
}

// Default returns uniform unit costs with a transposition cost of 2.
func Default() *Weights {
	return &Weights{
		Insert:     1.0,
		Delete:     1.0,
		Substitute: 1.0,
		Transpose:  2.0,
	}
}

// SetConfusable registers a reduced substitution cost between two classes,
// in both directions. Call before sharing the weights with a model.
func (w *Weights) SetConfusable(a, b alphabet.Symbol, cost float64) {
	if w.confusables == nil {
		w.confusables = make(map[pair]float64)
	}
	w.confusables[pair{a, b}] = cost
	w.confusables[pair{b, a}] = cost
}

// SubstitutionCost returns the cost of replacing a with b: zero for identical
// symbols, the confusable override when present, the base cost otherwise.
func (w *Weights) SubstitutionCost(a, b alphabet.Symbol) float64 {
	if a == b {
		return 0
	}
	if cost, ok := w.confusables[pair{a, b}]; ok {
		return cost
	}
	return w.Substitute
}

// MinUnitCost returns the cheapest nonzero cost a single edit can have.
// The index derives its walk depth from this so that discounted edits
// cannot slip past the fingerprint pruning.
func (w *Weights) MinUnitCost() float64 {
	min := w.Insert
	for _, c := range []float64{w.Delete, w.Substitute} {
		if c < min {
			min = c
		}
	}
	for _, c := range w.confusables {
		if c < min {
			min = c
		}
	}
	if min <= 0 {
		min = 1
	}
	return min
}
