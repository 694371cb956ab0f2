package variant

// SearchParameters configures one lookup. Construct fresh per call; the
// zero value is unusable, start from DefaultParameters.
type SearchParameters struct {
	// MaxEditDistance bounds the weighted edit distance of returned variants.
	MaxEditDistance float64

	// MaxNgram is the largest token n-gram FindAllMatches will try.
	MaxNgram int

	// MaxMatches caps the variant list per input; 0 means unlimited.
	MaxMatches int

	// ScoreThreshold prunes variants scoring above this absolute value
	// when positive.
	ScoreThreshold float64

	// CutoffFactor drops the ranked tail once a score exceeds the best
	// score times this factor, when positive and the best score is nonzero.
	CutoffFactor float64
}

// DefaultParameters mirrors the [search] section defaults of the config.
func DefaultParameters() SearchParameters {
	return SearchParameters{
		MaxEditDistance: 3,
		MaxNgram:        2,
		MaxMatches:      20,
	}
}

// WithEditDistance returns a copy with the distance budget replaced.
func (p SearchParameters) WithEditDistance(d float64) SearchParameters {
	p.MaxEditDistance = d
	return p
}

// WithMaxNgram returns a copy with the n-gram bound replaced.
func (p SearchParameters) WithMaxNgram(n int) SearchParameters {
	p.MaxNgram = n
	return p
}

// WithMaxMatches returns a copy with the result cap replaced.
func (p SearchParameters) WithMaxMatches(n int) SearchParameters {
	p.MaxMatches = n
	return p
}
