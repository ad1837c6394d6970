// Package scoring provides the similarity primitives used by domain
// detection and intent classification.
package scoring

import (
	"math"
	"strings"
)

// Cosine returns the cosine similarity between two equal-length vectors.
// Mismatched lengths or a zero-norm vector score 0 rather than failing,
// so degenerate embeddings classify as "no similarity".
func Cosine(u, v []float32) float64 {
	if len(u) == 0 || len(u) != len(v) {
		return 0
	}

	var dot, uNorm, vNorm float64
	for i := range u {
		dot += float64(u[i]) * float64(v[i])
		uNorm += float64(u[i]) * float64(u[i])
		vNorm += float64(v[i]) * float64(v[i])
	}

	if uNorm == 0 || vNorm == 0 {
		return 0
	}

	return dot / (math.Sqrt(uNorm) * math.Sqrt(vNorm))
}

// KeywordOverlap returns the fraction of keywords that occur as a
// case-insensitive substring of text. An empty keyword list scores 0.
func KeywordOverlap(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	lower := strings.ToLower(text)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			matches++
		}
	}

	return float64(matches) / float64(len(keywords))
}
