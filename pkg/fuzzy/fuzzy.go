package fuzzy

import (
	"strings"
	"unicode"
)

// LevenshteinDistance calculates the edit distance between two strings:
// how many single-character insertions, deletions or substitutions are
// required to change one into the other.
func LevenshteinDistance(s1, s2 string) int {
	s1 = normalizeString(s1)
	s2 = normalizeString(s2)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
	}
	for i := 0; i <= m; i++ {
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			d[i][j] = min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d[m][n]
}

// Match checks if query fuzzy-matches text within a maximum edit distance.
func Match(query, text string, threshold int) bool {
	query = normalizeString(query)
	text = normalizeString(text)

	if strings.Contains(text, query) {
		return true
	}

	for _, word := range strings.Fields(text) {
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
		if strings.HasPrefix(word, query) {
			return true
		}
	}

	return false
}

// ThresholdFor picks a typo-tolerance threshold from the query length.
func ThresholdFor(query string) int {
	switch {
	case len(query) <= 3:
		return 1
	case len(query) >= 8:
		return 3
	default:
		return 2
	}
}

// Score rates how relevant a set of name fields is to a query. Earlier
// fields weigh more; higher score means more relevant, zero means no match.
func Score(query string, fields ...string) float64 {
	query = normalizeString(query)
	score := 0.0
	weight := 100.0

	for _, field := range fields {
		norm := normalizeString(field)
		if norm == "" {
			weight *= 0.8
			continue
		}

		if strings.Contains(norm, query) {
			score += weight
			if containsWord(norm, query) {
				score += weight / 2
			}
		} else {
			for _, word := range strings.Fields(norm) {
				dist := LevenshteinDistance(query, word)
				if dist <= 2 {
					score += weight/2 - float64(dist)*weight/8
				}
				if strings.HasPrefix(word, query) {
					score += weight * 0.4
				}
			}
		}

		weight *= 0.8
	}

	return score
}

// normalizeString lowercases and strips diacritics for accent-insensitive
// matching of botanical names.
func normalizeString(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'à' && r <= 'å', r == 'ā', r == 'ă':
			b.WriteRune('a')
		case r >= 'è' && r <= 'ë', r == 'ē', r == 'ĕ':
			b.WriteRune('e')
		case r >= 'ì' && r <= 'ï', r == 'ī':
			b.WriteRune('i')
		case r >= 'ò' && r <= 'ö', r == 'ō':
			b.WriteRune('o')
		case r >= 'ù' && r <= 'ü', r == 'ū':
			b.WriteRune('u')
		case r == 'ñ':
			b.WriteRune('n')
		case r == 'ç':
			b.WriteRune('c')
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

func containsWord(text, word string) bool {
	for _, w := range strings.Fields(text) {
		if w == word {
			return true
		}
	}
	return false
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
