package variant

import (
	"sort"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// token is one word-like run in the source text, with byte offsets.
type token struct {
	text  string
	begin int
	end   int
}

// tokenize splits text into letter/digit runs, preserving surface form and
// position. Everything between runs is treated as a boundary.
func tokenize(text string) []token {
	var tokens []token
	begin := -1
	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if begin < 0 {
				begin = i
			}
			continue
		}
		if begin >= 0 {
			tokens = append(tokens, token{text: text[begin:i], begin: begin, end: i})
			begin = -1
		}
	}
	if begin >= 0 {
		tokens = append(tokens, token{text: text[begin:], begin: begin, end: len(text)})
	}
	return tokens
}

// span is a candidate n-gram match over tokens [first, first+n).
type span struct {
	first  int
	n      int
	result VariantResult
}

// FindAllMatches segments free text into token n-grams, runs FindVariants on
// each, and resolves overlaps into a non-overlapping best covering. Spans
// come back left to right; tokens with no accepted match are echoed with an
// empty variant list so positional correspondence with the source survives.
func (m *Model) FindAllMatches(text string, params SearchParameters) ([]VariantResult, error) {
	if !m.Built() {
		return nil, configErrorf("FindAllMatches called before Build")
	}
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return []VariantResult{}, nil
	}

	maxNgram := params.MaxNgram
	if maxNgram < 1 {
		maxNgram = 1
	}
	if maxNgram > len(tokens) {
		maxNgram = len(tokens)
	}

	var candidates []span
	for n := 1; n <= maxNgram; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			begin, end := tokens[i].begin, tokens[i+n-1].end
			spanText := text[begin:end]
			res, err := m.FindVariants(spanText, params)
			if err != nil {
				if errors.Is(err, ErrInvalidInput) {
					continue
				}
				return nil, err
			}
			if len(res.Variants) == 0 {
				continue
			}
			res.Offset = Offset{Begin: begin, End: end}
			candidates = append(candidates, span{first: i, n: n, result: res})
		}
	}
	if m.debug {
		log.Debugf("segmenter: %d tokens, %d candidate spans", len(tokens), len(candidates))
	}

	// Greedy longest-best-first: widest spans win, then best leading score,
	// then leftmost position.
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.n != b.n {
			return a.n > b.n
		}
		as, bs := a.result.Variants[0].Score, b.result.Variants[0].Score
		if as != bs {
			return as < bs
		}
		return a.first < b.first
	})

	accepted := make([]*span, len(tokens)) // indexed by first token
	covered := make([]bool, len(tokens))
	for i := range candidates {
		c := &candidates[i]
		overlap := false
		for t := c.first; t < c.first+c.n; t++ {
			if covered[t] {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}
		for t := c.first; t < c.first+c.n; t++ {
			covered[t] = true
		}
		accepted[c.first] = c
	}

	results := make([]VariantResult, 0, len(tokens))
	for t := 0; t < len(tokens); {
		if s := accepted[t]; s != nil {
			results = append(results, s.result)
			t += s.n
			continue
		}
		results = append(results, VariantResult{
			Input:    tokens[t].text,
			Variants: []Variant{},
			Offset:   Offset{Begin: tokens[t].begin, End: tokens[t].end},
		})
		t++
	}
	return results, nil
}
