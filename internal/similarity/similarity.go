// Package similarity scores how closely text matches emotion keyword sets.
package similarity

import "math"

// MaxConcentration caps the tone multiplier for texts dense in one
// emotion's keywords.
const MaxConcentration = 3.0

// Tone returns a tone score for every emotion in index.
//
// For an emotion whose keywords match m of the n tokens, the score is
// m/(n+1) * min(n/m, MaxConcentration); emotions with no match score 0.
// Repeated tokens count once per occurrence.
func Tone(tokens []string, index map[string][]string) map[string]float64 {
	tone := make(map[string]float64, len(index))
	n := float64(len(tokens))
	for emotion, keywords := range index {
		kw := toSet(keywords)
		matches := 0
		for _, t := range tokens {
			if kw[t] {
				matches++
			}
		}
		if matches == 0 {
			tone[emotion] = 0
			continue
		}
		m := float64(matches)
		tone[emotion] = m / (n + 1) * math.Min(n/m, MaxConcentration)
	}
	return tone
}

// Jaccard returns |a ∩ b| / |a ∪ b| over the distinct elements of a and b,
// or 0 when both are empty.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}

	setA := toSet(a)
	setB := toSet(b)

	intersection := 0
	for s := range setA {
		if setB[s] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}
