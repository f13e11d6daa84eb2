// ABOUTME: Fuzzy corrector repairs likely typos against the vocabulary index
// ABOUTME: Bounded Levenshtein distance with early exit, first-letter candidate filter
package core

import "unicode"

// maxEditDistance bounds how far a typo may be from a vocabulary term.
const maxEditDistance = 2

// Correct returns the closest vocabulary term within the edit-distance
// bound, or term unchanged when no candidate qualifies. Terms of length
// <= 3 or starting with a digit are never corrected. Only vocabulary
// terms sharing the term's first letter are considered.
func (v *Vocabulary) Correct(term string) string {
	if term == "" || v == nil || v.Len() == 0 {
		return term
	}
	if v.Contains(term) {
		return term
	}

	runes := []rune(term)
	if len(runes) <= 3 {
		return term
	}
	if unicode.IsDigit(runes[0]) {
		return term
	}

	first := unicode.ToLower(runes[0])
	best := term
	bestDist := maxEditDistance + 1

	for _, cand := range v.order {
		cr := []rune(cand)
		if len(cr) < 2 {
			continue
		}
		if unicode.ToLower(cr[0]) != first {
			continue
		}

		d := boundedLevenshtein(runes, cr, maxEditDistance)
		if d < bestDist {
			bestDist = d
			best = cand
			if d == 0 {
				break
			}
		}
	}

	if bestDist <= maxEditDistance {
		return best
	}
	return term
}

// boundedLevenshtein computes edit distance between a and b, giving up
// once the distance provably exceeds maxDist. Returns maxDist+1 when the
// bound is exceeded.
func boundedLevenshtein(a, b []rune, maxDist int) int {
	n, m := len(a), len(b)

	diff := n - m
	if diff < 0 {
		diff = -diff
	}
	if diff > maxDist {
		return maxDist + 1
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		minInRow := curr[0]

		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			val := curr[j-1] + 1 // insertion
			if del := prev[j] + 1; del < val {
				val = del
			}
			if sub := prev[j-1] + cost; sub < val {
				val = sub
			}

			curr[j] = val
			if val < minInRow {
				minInRow = val
			}
		}

		if minInRow > maxDist {
			return maxDist + 1
		}

		prev, curr = curr, prev
	}

	return prev[m]
}
