// Package similarity provides pure string similarity scoring for fuzzy cache
// lookups. Short strings are compared by edit distance, longer ones by word
// token overlap.
package similarity

import (
	"strings"
	"unicode"
)

// shortStringBoundary is the character count below which edit distance is
// more reliable than token overlap.
const shortStringBoundary = 10

// Score compares two normalized strings and returns a similarity in [0,1].
// Levenshtein is used when either string is shorter than ten characters,
// Jaccard otherwise. The either-operand rule is intentional: a long query
// compared against a short cached entry still uses edit distance, because a
// short string rarely has enough tokens for a meaningful set overlap.
func Score(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) < shortStringBoundary || len(rb) < shortStringBoundary {
		return Levenshtein(a, b)
	}
	return Jaccard(a, b)
}

// Levenshtein returns an edit-distance-based similarity in [0,1]:
// 1 - distance/max(len(a), len(b)). Two empty strings are identical (1.0).
func Levenshtein(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1.0
	}

	dist := levenshteinDistance(ra, rb)
	return 1.0 - float64(dist)/float64(longest)
}

// Jaccard returns a word-token-set overlap similarity in [0,1]:
// |intersection| / |union| over word tokens. Tokens split on anything that is
// not a letter or digit, so trailing punctuation does not turn "bottles?"
// and "bottles" into distinct tokens. Two empty token sets are identical
// (1.0); empty versus non-empty is 0.
func Jaccard(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}

	intersection := 0
	union := len(setA)
	for tok := range setB {
		if _, ok := setA[tok]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// levenshteinDistance computes the edit distance between two rune slices
// using the standard dynamic programming matrix.
func levenshteinDistance(s1, s2 []rune) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}

	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = min3(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
