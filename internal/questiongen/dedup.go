package questiongen

import (
	"fmt"
	"strings"
)

// wordSet lowercases a question and returns its distinct words.
func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}

// Similarity computes Jaccard similarity between the word sets of two
// questions. Two empty questions are identical.
func Similarity(a, b string) float64 {
	sa, sb := wordSet(a), wordSet(b)
	if len(sa) == 0 && len(sb) == 0 {
		return 1.0
	}
	inter := 0
	for w := range sa {
		if _, ok := sb[w]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

// isDuplicate reports whether candidate is too close to any asked question.
func isDuplicate(candidate string, asked []string, threshold float64) bool {
	for _, q := range asked {
		if Similarity(candidate, q) > threshold {
			return true
		}
	}
	return false
}

// buildDedup formats asked questions for the prompt, respecting the max
// limit. Returns "None" if nothing has been asked.
func buildDedup(asked []string, max int) string {
	if len(asked) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(asked) > max {
		asked = asked[len(asked)-max:]
	}

	var b strings.Builder
	for i, q := range asked {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
