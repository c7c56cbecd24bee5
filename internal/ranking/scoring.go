// Package ranking scores a CV against a JD: five subscores, a weighted
// aggregate, the mandatory-skill gate and the level classification.
package ranking

import "math"

// Score bounds
const (
	minScore = 0.0
	maxScore = 100.0
)

// clamp limits v to [lo, hi]. NaN collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampScore(v float64) float64 {
	return clamp(v, minScore, maxScore)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundScore rounds a 0-100 score to the nearest integer.
func roundScore(v float64) int {
	return int(math.Round(clampScore(v)))
}
