/*
Package index prunes the candidate space with an order-independent fingerprint.

A form's fingerprint is the sum of its symbols' weights. Because the sum
ignores order, transpositions leave it untouched, while a single insert,
delete or substitute moves it by one value from a small, enumerable delta set
derived from the alphabet's weight table. CandidatesWithin walks that delta
space breadth-first, so a lookup touches only fingerprints reachable within
the edit budget instead of scanning the whole index.

The walk is a deliberate overapproximation: every true match within the
budget is reachable (unrelated forms colliding on a fingerprint merely add
candidates for the exact scorer to discard).
*/
package index

import (
	"runtime"
	"sort"
	"sync"

	"github.com/bastiangx/lexivar/pkg/alphabet"
	"github.com/bastiangx/lexivar/pkg/lexicon"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// ErrBuilt is returned when Build is called twice without a reset.
var ErrBuilt = errors.New("candidate index is already built")

// Fingerprint is the additive summary of a symbol multiset.
type Fingerprint int64

// Compute sums the weights of a normalized form.
func Compute(norm []alphabet.Symbol, alpha *alphabet.Alphabet) Fingerprint {
	var sum int64
	for _, s := range norm {
		sum += int64(alpha.Weight(s))
	}
	return Fingerprint(sum)
}

// Index maps fingerprints to the entries sharing them. Build once, then read
// concurrently without locking.
type Index struct {
	alpha   *alphabet.Alphabet
	buckets map[Fingerprint][]lexicon.EntryID
	deltas  []int64
	built   bool
}

// New creates an empty index over the given alphabet.
func New(alpha *alphabet.Alphabet) *Index {
	return &Index{alpha: alpha}
}

// Built reports whether Build has run.
func (ix *Index) Built() bool { return ix.built }

// Build groups every store entry by fingerprint. One O(n) pass, run exactly
// once; fingerprints are computed in parallel since entries are independent,
// the bucket assembly stays single-threaded.
func (ix *Index) Build(store *lexicon.Store) error {
	if ix.built {
		return ErrBuilt
	}
	entries := store.Entries()
	prints := make([]Fingerprint, len(entries))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(entries) {
		workers = len(entries)
	}
	if workers > 1 {
		var wg sync.WaitGroup
		chunk := (len(entries) + workers - 1) / workers
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := lo + chunk
			if hi > len(entries) {
				hi = len(entries)
			}
			if lo >= hi {
				break
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					prints[i] = Compute(entries[i].Norm, ix.alpha)
				}
			}(lo, hi)
		}
		wg.Wait()
	} else {
		for i := range entries {
			prints[i] = Compute(entries[i].Norm, ix.alpha)
		}
	}

	ix.buckets = make(map[Fingerprint][]lexicon.EntryID, len(entries))
	for i, fp := range prints {
		ix.buckets[fp] = append(ix.buckets[fp], lexicon.EntryID(i))
	}
	ix.deltas = editDeltas(ix.alpha.Weights())
	ix.built = true
	log.Debugf("index built: %d entries in %d fingerprint buckets, %d edit deltas",
		len(entries), len(ix.buckets), len(ix.deltas))
	return nil
}

// editDeltas enumerates every fingerprint shift a single edit can cause:
// +w and -w for inserts and deletes, w2-w1 for substitutions. Transpositions
// shift nothing and need no delta.
func editDeltas(weights []int) []int64 {
	seen := make(map[int64]bool)
	for _, w := range weights {
		seen[int64(w)] = true
		seen[int64(-w)] = true
	}
	for _, w1 := range weights {
		for _, w2 := range weights {
			if w1 != w2 {
				seen[int64(w2-w1)] = true
			}
		}
	}
	delete(seen, 0)
	out := make([]int64, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CandidatesWithin returns the entries stored at every fingerprint reachable
// from the query fingerprint in at most maxEdits single-edit deltas. The walk
// expands breadth-first with a visited set; enumeration order is
// deterministic, so results are too.
func (ix *Index) CandidatesWithin(fp Fingerprint, maxEdits int) []lexicon.EntryID {
	visited := map[Fingerprint]bool{fp: true}
	frontier := []Fingerprint{fp}
	reached := []Fingerprint{fp}

	for depth := 0; depth < maxEdits; depth++ {
		var next []Fingerprint
		for _, f := range frontier {
			for _, d := range ix.deltas {
				nf := Fingerprint(int64(f) + d)
				if nf < 0 || visited[nf] {
					continue
				}
				visited[nf] = true
				next = append(next, nf)
				reached = append(reached, nf)
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}

	var out []lexicon.EntryID
	for _, f := range reached {
		out = append(out, ix.buckets[f]...)
	}
	return out
}

// Bucket returns the entries stored exactly at a fingerprint.
func (ix *Index) Bucket(fp Fingerprint) []lexicon.EntryID { return ix.buckets[fp] }

// Reset discards the built state so the model can rebuild from scratch.
func (ix *Index) Reset() {
	ix.buckets = nil
	ix.deltas = nil
	ix.built = false
}
