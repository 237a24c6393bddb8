package session

// averageScore is the arithmetic mean of all scores, 0 when empty.
func averageScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// performanceTrend labels the mean of the last up-to-3 scores. It is
// the adaptation signal fed back into question generation.
func performanceTrend(scores []float64) string {
	if len(scores) < 2 {
		return "Starting"
	}
	recent := scores
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	switch avg := averageScore(recent); {
	case avg >= 8:
		return "Strong"
	case avg >= 6:
		return "Good"
	case avg >= 4:
		return "Moderate"
	default:
		return "Needs Improvement"
	}
}

// scoreTrend compares first-half and second-half means of the whole
// session.
func scoreTrend(scores []float64) string {
	if len(scores) < 3 {
		return "Insufficient data"
	}
	mid := len(scores) / 2
	first := averageScore(scores[:mid])
	second := averageScore(scores[mid:])
	switch {
	case second-first > 1:
		return "Improving"
	case first-second > 1:
		return "Declining"
	default:
		return "Consistent"
	}
}
