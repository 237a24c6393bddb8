package evaluate

import "strings"

// Ratio computes a normalized similarity between two texts in [0,1]:
// the longest common subsequence over lowercase word tokens, scaled by
// the combined length (2*LCS/(len(a)+len(b))). Identical texts score
// 1.0, texts with disjoint vocabularies score 0.0. Deterministic.
func Ratio(a, b string) float64 {
	aw := strings.Fields(strings.ToLower(a))
	bw := strings.Fields(strings.ToLower(b))

	if len(aw) == 0 && len(bw) == 0 {
		return 1.0
	}
	if len(aw) == 0 || len(bw) == 0 {
		return 0.0
	}

	lcs := wordLCS(aw, bw)
	return float64(2*lcs) / float64(len(aw)+len(bw))
}

// wordLCS is the classic LCS length over word slices, with a rolling
// single-row table. Answers and model answers are short (hundreds of
// words), so quadratic time is fine.
func wordLCS(a, b []string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
