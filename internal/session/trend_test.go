package session

import "testing"

func TestAverageScore(t *testing.T) {
	if got := averageScore(nil); got != 0 {
		t.Errorf("averageScore(nil) = %v, want 0", got)
	}
	if got := averageScore([]float64{4, 6}); got != 5 {
		t.Errorf("averageScore = %v, want 5", got)
	}
}

func TestPerformanceTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"no scores", nil, "Starting"},
		{"one score", []float64{9}, "Starting"},
		{"strong", []float64{8, 9, 8}, "Strong"},
		{"good", []float64{6, 7, 6}, "Good"},
		{"moderate", []float64{4, 5, 4}, "Moderate"},
		{"weak", []float64{2, 3, 1}, "Needs Improvement"},
		{"only last three count", []float64{1, 1, 1, 9, 9, 9}, "Strong"},
		{"boundary eight", []float64{8, 8}, "Strong"},
		{"boundary six", []float64{6, 6}, "Good"},
		{"boundary four", []float64{4, 4}, "Moderate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := performanceTrend(tt.scores); got != tt.want {
				t.Errorf("performanceTrend(%v) = %q, want %q", tt.scores, got, tt.want)
			}
		})
	}
}

func TestScoreTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"empty", nil, "Insufficient data"},
		{"two answers", []float64{2, 9}, "Insufficient data"},
		{"improving", []float64{2, 3, 9, 9}, "Improving"},
		{"declining", []float64{9, 9, 3, 2}, "Declining"},
		{"consistent", []float64{6, 6, 6, 6}, "Consistent"},
		{"within one point is consistent", []float64{5, 6, 6, 6}, "Consistent"},
		{"odd length splits by integer division", []float64{2, 8, 8}, "Improving"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreTrend(tt.scores); got != tt.want {
				t.Errorf("scoreTrend(%v) = %q, want %q", tt.scores, got, tt.want)
			}
		})
	}
}
