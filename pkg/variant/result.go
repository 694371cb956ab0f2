package variant

// Variant is one ranked candidate for an input span. Field names are part of
// the wire contract: bindings and their tests match on "text", "score" and
// "lexicons".
type Variant struct {
	// Text is the surface form of the lexicon entry.
	Text string `json:"text" msgpack:"text"`

	// Score is the weighted edit distance to the input; lower is better.
	Score float64 `json:"score" msgpack:"score"`

	// Frequency is the entry's frequency, 0 when the lexicon carried none.
	Frequency int `json:"freq,omitempty" msgpack:"freq,omitempty"`

	// Lexicons names every list the entry was found in, sorted.
	Lexicons []string `json:"lexicons" msgpack:"lexicons"`
}

// Offset locates a match span in the source text, in bytes.
type Offset struct {
	Begin int `json:"begin" msgpack:"begin"`
	End   int `json:"end" msgpack:"end"`
}

// VariantResult is the outcome for one input token or n-gram: the input span
// echoed back plus its candidates, best first. An empty Variants list means
// "nothing within the distance bound", which is a normal outcome, not an
// error. The "input" and "variants" names are part of the wire contract.
type VariantResult struct {
	Input    string    `json:"input" msgpack:"input"`
	Variants []Variant `json:"variants" msgpack:"variants"`
	Offset   Offset    `json:"offset,omitempty" msgpack:"offset,omitempty"`
}
