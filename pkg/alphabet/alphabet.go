/*
Package alphabet maps raw character sequences onto canonical symbol classes.

An alphabet is a declarative table of equivalence classes: every line of the
definition lists one or more raw forms (single characters or short sequences,
so ligatures and diacritic combinations work) that all normalize to the same
class. The first form on a line is the canonical rendering of that class.

Normalization walks the input with greedy longest-match against the class
table; anything the table does not cover maps to the reserved unknown class.
Each class carries a small integer weight used by the fingerprint index and
exposed to the distance scorer.
*/
package alphabet

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Symbol is the index of a canonical character class. The highest index of an
// alphabet is reserved for characters outside the class table.
type Symbol uint16

// Record is one line of an alphabet definition: the raw forms of one class and
// an optional fingerprint weight (0 means "assign a default").
type Record struct {
	Forms  []string
	Weight int
}

// Alphabet is the immutable class table. Build one with New and share it
// read-only between the lexicon store, the index and any number of queries.
type Alphabet struct {
	classes    [][]string
	weights    []int
	forms      *patricia.Trie
	maxFormLen int
	unkWeight  int
}

// New builds an alphabet from class records. Class indices follow record
// order. When a raw form occurs in more than one class, the earliest class
// wins, matching the greedy in-order semantics of the definition file.
// Records with a zero weight get a default of their class index plus one,
// which keeps weights distinct and small.
func New(records []Record) *Alphabet {
	a := &Alphabet{
		classes: make([][]string, 0, len(records)),
		weights: make([]int, 0, len(records)),
		forms:   patricia.NewTrie(),
	}
	for _, rec := range records {
		if len(rec.Forms) == 0 {
			continue
		}
		class := Symbol(len(a.classes))
		weight := rec.Weight
		if weight <= 0 {
			weight = int(class) + 1
		}
		kept := make([]string, 0, len(rec.Forms))
		for _, form := range rec.Forms {
			if form == "" {
				continue
			}
			kept = append(kept, form)
			if a.forms.Get(patricia.Prefix(form)) == nil {
				a.forms.Insert(patricia.Prefix(form), class)
			}
			if len(form) > a.maxFormLen {
				a.maxFormLen = len(form)
			}
		}
		if len(kept) == 0 {
			continue
		}
		a.classes = append(a.classes, kept)
		a.weights = append(a.weights, weight)
	}
	a.unkWeight = len(a.classes) + 1
	return a
}

// Size returns the number of classes including the unknown class.
func (a *Alphabet) Size() int { return len(a.classes) + 1 }

// Unknown returns the reserved symbol for unmapped characters.
func (a *Alphabet) Unknown() Symbol { return Symbol(len(a.classes)) }

// Weight returns the fingerprint weight of a symbol.
func (a *Alphabet) Weight(s Symbol) int {
	if int(s) >= len(a.weights) {
		return a.unkWeight
	}
	return a.weights[s]
}

// Weights returns the distinct weight values in use, unknown class included.
// The index derives its edit-delta set from this.
func (a *Alphabet) Weights() []int {
	seen := make(map[int]bool, len(a.weights)+1)
	out := make([]int, 0, len(a.weights)+1)
	for _, w := range a.weights {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	if !seen[a.unkWeight] {
		out = append(out, a.unkWeight)
	}
	return out
}

// Canonical returns the canonical rendering of a symbol. The unknown class has
// no rendering of its own and returns the empty string.
func (a *Alphabet) Canonical(s Symbol) string {
	if int(s) >= len(a.classes) {
		return ""
	}
	return a.classes[s][0]
}

// Normalize maps a raw string to its symbol sequence. Greedy longest-match:
// at each position the longest raw form known to the table is consumed;
// uncovered characters consume one rune and yield the unknown symbol.
// Total on valid UTF-8, deterministic and idempotent.
func (a *Alphabet) Normalize(raw string) []Symbol {
	out := make([]Symbol, 0, utf8.RuneCountInString(raw))
	for pos := 0; pos < len(raw); {
		length, class := a.longestMatch(raw[pos:])
		if length == 0 {
			_, size := utf8.DecodeRuneInString(raw[pos:])
			out = append(out, a.Unknown())
			pos += size
			continue
		}
		out = append(out, class)
		pos += length
	}
	return out
}

// NormalizeString renders the normalized form back as text: canonical forms
// for known classes, the original rune for unknown ones. Normalizing the
// result again yields the same symbol sequence.
func (a *Alphabet) NormalizeString(raw string) string {
	var out []byte
	for pos := 0; pos < len(raw); {
		length, class := a.longestMatch(raw[pos:])
		if length == 0 {
			_, size := utf8.DecodeRuneInString(raw[pos:])
			out = append(out, raw[pos:pos+size]...)
			pos += size
			continue
		}
		out = append(out, a.classes[class][0]...)
		pos += length
	}
	return string(out)
}

// longestMatch finds the longest raw form the table holds at the start of s.
// Returns (0, 0) when nothing matches.
func (a *Alphabet) longestMatch(s string) (int, Symbol) {
	limit := a.maxFormLen
	if limit > len(s) {
		limit = len(s)
	}
	var bestLen int
	var bestClass Symbol
	a.forms.VisitPrefixes(patricia.Prefix(s[:limit]), func(prefix patricia.Prefix, item patricia.Item) error {
		// visited shortest to longest, so the last hit wins
		bestLen = len(prefix)
		bestClass = item.(Symbol)
		return nil
	})
	return bestLen, bestClass
}

// Key packs a symbol sequence into a string usable as a map key. Two forms
// share a key exactly when they normalize identically.
func Key(syms []Symbol) string {
	buf := make([]byte, 2*len(syms))
	for i, s := range syms {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}
	return string(buf)
}

// Equal reports whether two symbol sequences are identical.
func Equal(a, b []Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
