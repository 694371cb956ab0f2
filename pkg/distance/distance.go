package distance

import (
	"math"

	"github.com/bastiangx/lexivar/pkg/alphabet"
)

// Weighted computes the weighted Damerau-Levenshtein distance between two
// normalized sequences. Returns (distance, true) when the distance does not
// exceed maxDistance, (0, false) otherwise. Identical symbols substitute for
// free; an adjacent transposition is charged w.Transpose when that beats the
// cost of aligning the pair otherwise.
//
// Two sliding DP rows plus a third for the transposition lookback, so memory
// stays O(len(b)) regardless of input size.
func Weighted(a, b []alphabet.Symbol, w *Weights, maxDistance float64) (float64, bool) {
	la, lb := len(a), len(b)

	// cheap length-gap exit before allocating anything
	minIndel := w.Insert
	if w.Delete < minIndel {
		minIndel = w.Delete
	}
	gap := la - lb
	if gap < 0 {
		gap = -gap
	}
	if float64(gap)*minIndel > maxDistance {
		return 0, false
	}

	if la == 0 {
		d := float64(lb) * w.Insert
		return d, d <= maxDistance
	}
	if lb == 0 {
		d := float64(la) * w.Delete
		return d, d <= maxDistance
	}

	prev2 := make([]float64, lb+1) // row i-2, for transpositions
	prev := make([]float64, lb+1)  // row i-1
	curr := make([]float64, lb+1)

	for j := 1; j <= lb; j++ {
		prev[j] = float64(j) * w.Insert
	}
	prevRowMin := 0.0

	for i := 1; i <= la; i++ {
		curr[0] = float64(i) * w.Delete
		rowMin := curr[0]
		for j := 1; j <= lb; j++ {
			best := prev[j-1] + w.SubstitutionCost(a[i-1], b[j-1])
			if del := prev[j] + w.Delete; del < best {
				best = del
			}
			if ins := curr[j-1] + w.Insert; ins < best {
				best = ins
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if tr := prev2[j-2] + w.Transpose; tr < best {
					best = tr
				}
			}
			curr[j] = best
			if best < rowMin {
				rowMin = best
			}
		}
		// later rows grow from this row, or reach the one above it through
		// the transposition lookback
		if rowMin > maxDistance && prevRowMin+w.Transpose > maxDistance {
			return 0, false
		}
		prevRowMin = rowMin
		prev2, prev, curr = prev, curr, prev2
	}

	result := prev[lb]
	if result > maxDistance {
		return 0, false
	}
	return result, true
}

// EditBudget converts a distance budget into the maximum number of raw edit
// steps it can buy, given the cheapest single-edit cost.
func EditBudget(maxDistance float64, w *Weights) int {
	if maxDistance <= 0 {
		return 0
	}
	return int(math.Ceil(maxDistance / w.MinUnitCost()))
}
