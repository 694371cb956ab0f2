/*
Package lexicon stores named word lists for the variant matcher.

Entries are normalized at add time. Two surface forms that normalize
identically collapse into a single entry whose lexicon-name set is the union
of every list that contributed them; the index therefore never holds
duplicates. The store freezes once the candidate index is built.
*/
package lexicon

import (
	"io"
	"sort"

	"github.com/bastiangx/lexivar/pkg/alphabet"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// ErrFrozen is returned on any mutation after the index has been built.
var ErrFrozen = errors.New("lexicon store is frozen after build")

// EntryID indexes into the entry arena.
type EntryID uint32

// Entry is one merged vocabulary item.
type Entry struct {
	// Surface is the original form of the first occurrence.
	Surface string
	// Norm is the normalized symbol sequence shared by all merged forms.
	Norm []alphabet.Symbol
	// Frequency is the highest frequency seen across merged occurrences.
	Frequency int
	// Lexicons holds the sorted names of every list containing this form.
	Lexicons []string
}

// Record is one item from a lexicon source.
type Record struct {
	Surface   string
	Frequency int
}

// Source yields lexicon records; io.EOF ends iteration. File-backed sources
// live in pkg/dictionary, SliceSource covers in-memory use.
type Source interface {
	Next() (Record, error)
}

// SliceSource serves records from a slice.
type SliceSource struct {
	records []Record
	pos     int
}

// NewSliceSource wraps plain words with zero frequency.
func NewSliceSource(words ...string) *SliceSource {
	records := make([]Record, len(words))
	for i, w := range words {
		records[i] = Record{Surface: w}
	}
	return &SliceSource{records: records}
}

// NewRecordSource wraps prepared records.
func NewRecordSource(records []Record) *SliceSource {
	return &SliceSource{records: records}
}

func (s *SliceSource) Next() (Record, error) {
	if s.pos >= len(s.records) {
		return Record{}, io.EOF
	}
	r := s.records[s.pos]
	s.pos++
	return r, nil
}

// Store is the entry arena plus an encoder from normalized form to entry.
type Store struct {
	alpha   *alphabet.Alphabet
	entries []Entry
	byNorm  map[string]EntryID
	frozen  bool
}

// NewStore creates an empty store over the given alphabet.
func NewStore(alpha *alphabet.Alphabet) *Store {
	return &Store{
		alpha:  alpha,
		byNorm: make(map[string]EntryID),
	}
}

// Add drains a source into the named lexicon. Fails with ErrFrozen once the
// index has been built.
func (s *Store) Add(lexicon string, src Source) error {
	if s.frozen {
		return errors.Wrapf(ErrFrozen, "cannot add lexicon %q", lexicon)
	}
	count := 0
	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "reading lexicon %q", lexicon)
		}
		if rec.Surface == "" {
			continue
		}
		s.addWord(lexicon, rec.Surface, rec.Frequency)
		count++
	}
	log.Debugf("lexicon %q: %d words loaded, %d distinct entries total", lexicon, count, len(s.entries))
	return nil
}

// AddWord inserts or merges a single word.
func (s *Store) AddWord(lexicon, surface string, frequency int) error {
	if s.frozen {
		return errors.Wrapf(ErrFrozen, "cannot add word %q", surface)
	}
	s.addWord(lexicon, surface, frequency)
	return nil
}

func (s *Store) addWord(lexicon, surface string, frequency int) {
	norm := s.alpha.Normalize(surface)
	key := alphabet.Key(norm)
	if id, ok := s.byNorm[key]; ok {
		e := &s.entries[id]
		if frequency > e.Frequency {
			e.Frequency = frequency
		}
		e.Lexicons = insertName(e.Lexicons, lexicon)
		return
	}
	id := EntryID(len(s.entries))
	s.entries = append(s.entries, Entry{
		Surface:   surface,
		Norm:      norm,
		Frequency: frequency,
		Lexicons:  []string{lexicon},
	})
	s.byNorm[key] = id
}

// insertName keeps the name set sorted and duplicate-free.
func insertName(names []string, name string) []string {
	i := sort.SearchStrings(names, name)
	if i < len(names) && names[i] == name {
		return names
	}
	names = append(names, "")
	copy(names[i+1:], names[i:])
	names[i] = name
	return names
}

// Freeze makes the store immutable. Called by the model at build time.
func (s *Store) Freeze() { s.frozen = true }

// Unfreeze reopens the store; only the model's reset path uses this.
func (s *Store) Unfreeze() { s.frozen = false }

// Frozen reports whether the store still accepts additions.
func (s *Store) Frozen() bool { return s.frozen }

// Len returns the number of distinct entries.
func (s *Store) Len() int { return len(s.entries) }

// Entry returns the entry for an id. The returned pointer stays valid for the
// life of the store once frozen.
func (s *Store) Entry(id EntryID) *Entry { return &s.entries[id] }

// Lookup finds the entry for a normalized form, if any.
func (s *Store) Lookup(norm []alphabet.Symbol) (*Entry, bool) {
	id, ok := s.byNorm[alphabet.Key(norm)]
	if !ok {
		return nil, false
	}
	return &s.entries[id], true
}

// Entries returns the arena. Read-only for callers.
func (s *Store) Entries() []Entry { return s.entries }
