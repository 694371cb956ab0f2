package variant

import (
	"sort"

	"github.com/bastiangx/lexivar/pkg/distance"
	"github.com/bastiangx/lexivar/pkg/index"
	"github.com/charmbracelet/log"
)

// FindVariants looks up ranked variants for one query string. Pure and
// deterministic: identical (query, model, params) always yield identical
// ordered output. Fails with ErrConfiguration before Build and with
// ErrInvalidInput on an empty or unnormalizable query; finding nothing
// within the bound returns an empty list, not an error.
func (m *Model) FindVariants(query string, params SearchParameters) (VariantResult, error) {
	if !m.Built() {
		return VariantResult{}, configErrorf("FindVariants called before Build")
	}
	if query == "" {
		return VariantResult{}, inputErrorf("empty query")
	}
	norm := m.alpha.Normalize(query)
	if len(norm) == 0 {
		return VariantResult{}, inputErrorf("query %q normalizes to nothing", query)
	}

	fp := index.Compute(norm, m.alpha)
	budget := distance.EditBudget(params.MaxEditDistance, m.weights)
	ids := m.index.CandidatesWithin(fp, budget)
	if m.debug {
		log.Debugf("query %q: fingerprint=%d budget=%d candidates=%d", query, fp, budget, len(ids))
	}

	variants := make([]Variant, 0, len(ids))
	for _, id := range ids {
		entry := m.store.Entry(id)
		d, ok := distance.Weighted(norm, entry.Norm, m.weights, params.MaxEditDistance)
		if !ok {
			continue
		}
		if params.ScoreThreshold > 0 && d > params.ScoreThreshold {
			continue
		}
		variants = append(variants, Variant{
			Text:      entry.Surface,
			Score:     d,
			Frequency: entry.Frequency,
			Lexicons:  entry.Lexicons,
		})
	}

	rankVariants(variants)
	variants = applyCutoff(variants, params)

	return VariantResult{Input: query, Variants: variants}, nil
}

// rankVariants orders best first: score ascending, then frequency descending,
// then lexical order of the surface form. The final tie-break keeps the
// ordering fully deterministic.
func rankVariants(variants []Variant) {
	sort.Slice(variants, func(i, j int) bool {
		a, b := variants[i], variants[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		return a.Text < b.Text
	})
}

// applyCutoff crops the ranked list at the cutoff factor and the match cap.
func applyCutoff(variants []Variant, params SearchParameters) []Variant {
	if len(variants) == 0 {
		return variants
	}
	if params.CutoffFactor > 0 && variants[0].Score > 0 {
		limit := variants[0].Score * params.CutoffFactor
		cut := len(variants)
		for i, v := range variants {
			if v.Score > limit {
				cut = i
				break
			}
		}
		variants = variants[:cut]
	}
	if params.MaxMatches > 0 && len(variants) > params.MaxMatches {
		variants = variants[:params.MaxMatches]
	}
	return variants
}
