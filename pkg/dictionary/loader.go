/*
Package dictionary loads alphabet and lexicon definitions from plain text
files and feeds them to the matching core.

Alphabet files hold one class per line: tab-separated raw forms that all
normalize to the first form, with an optional trailing integer weight.
Lexicon files hold one word per line with an optional tab-separated frequency
column. Malformed lines are skipped with a collected warning unless strict
mode is on, in which case the first bad line aborts the load.
*/
package dictionary

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bastiangx/lexivar/pkg/alphabet"
	"github.com/bastiangx/lexivar/pkg/lexicon"
	"github.com/bastiangx/lexivar/pkg/variant"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// LoadAlphabet reads an alphabet definition file. Returns the alphabet and
// any per-line warnings; in strict mode the first malformed line is an error
// instead.
func LoadAlphabet(path string, strict bool) (*alphabet.Alphabet, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening alphabet file %s", path)
	}
	defer f.Close()
	return ReadAlphabet(f, strict)
}

// ReadAlphabet parses an alphabet definition from a reader.
func ReadAlphabet(r io.Reader, strict bool) (*alphabet.Alphabet, []string, error) {
	var records []alphabet.Record
	var warnings []string

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		weight := 0
		// a trailing integer on a multi-field line is the class weight
		if len(fields) >= 2 {
			if w, err := strconv.Atoi(fields[len(fields)-1]); err == nil {
				weight = w
				fields = fields[:len(fields)-1]
			}
		}
		forms := fields[:0]
		for _, f := range fields {
			if f != "" {
				forms = append(forms, f)
			}
		}
		if len(forms) == 0 {
			msg := "alphabet line " + strconv.Itoa(lineno) + ": no raw forms"
			if strict {
				return nil, nil, errors.Mark(errors.New(msg), variant.ErrConfiguration)
			}
			warnings = append(warnings, msg)
			log.Warnf("%s (skipped)", msg)
			continue
		}
		records = append(records, alphabet.Record{Forms: forms, Weight: weight})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "reading alphabet")
	}
	log.Debugf("alphabet loaded: %d classes, %d warnings", len(records), len(warnings))
	return alphabet.New(records), warnings, nil
}

// FileSource streams lexicon records from a word list file. Implements
// lexicon.Source; close it after the store has drained it.
type FileSource struct {
	f        *os.File
	scanner  *bufio.Scanner
	strict   bool
	lineno   int
	warnings []string
}

// OpenLexicon opens a word list file as a lexicon source.
func OpenLexicon(path string, strict bool) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening lexicon file %s", path)
	}
	return &FileSource{f: f, scanner: bufio.NewScanner(f), strict: strict}, nil
}

// Next returns the next record, io.EOF at the end of the file. Malformed
// frequency columns warn and fall back to zero frequency, or abort in strict
// mode.
func (s *FileSource) Next() (lexicon.Record, error) {
	for s.scanner.Scan() {
		s.lineno++
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		rec := lexicon.Record{Surface: fields[0]}
		if len(fields) >= 2 && fields[1] != "" {
			freq, err := strconv.Atoi(fields[1])
			if err != nil {
				if fv, ferr := strconv.ParseFloat(fields[1], 64); ferr == nil {
					freq = int(fv)
				} else {
					msg := "lexicon line " + strconv.Itoa(s.lineno) + ": bad frequency " + strconv.Quote(fields[1])
					if s.strict {
						return lexicon.Record{}, errors.Mark(errors.New(msg), variant.ErrConfiguration)
					}
					s.warnings = append(s.warnings, msg)
					log.Warnf("%s (frequency ignored)", msg)
				}
			}
			rec.Frequency = freq
		}
		return rec, nil
	}
	if err := s.scanner.Err(); err != nil {
		return lexicon.Record{}, errors.Wrap(err, "reading lexicon")
	}
	return lexicon.Record{}, io.EOF
}

// Warnings returns the collected per-line warnings so far.
func (s *FileSource) Warnings() []string { return s.warnings }

// Close releases the underlying file.
func (s *FileSource) Close() error { return s.f.Close() }
