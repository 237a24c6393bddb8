package session

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/preptalk/internal/bank"
	"github.com/abhisek/preptalk/internal/evaluate"
)

// FinalReport computes the end-of-interview report from history. It is
// idempotent and may be called at any point; the qualitative AI
// assessment is requested only while the breaker is closed and is
// omitted, never fabricated, when it fails.
func (s *AdaptiveSession) FinalReport(ctx context.Context) *FinalReport {
	scores := s.scores()
	avg := averageScore(scores)

	report := &FinalReport{
		SessionID:       s.id,
		CandidateName:   s.params.CandidateName,
		Roles:           s.params.Roles,
		Company:         s.params.Company,
		Mode:            s.params.Mode,
		InterviewDate:   s.startedAt.Format("2006-01-02"),
		DurationMinutes: round2(time.Since(s.startedAt).Minutes()),
		Questions:       len(s.history),
		AverageScore:    round2(avg),
		ScoreTrend:      scoreTrend(scores),
		Categories:      s.categoryPerformance(),
		History:         s.History(),
	}

	if s.remoteAvailable && s.assessor != nil && len(s.history) > 0 {
		assessment, err := s.assessor.Assess(ctx, s.summary(avg))
		if err != nil {
			s.tripBreaker("final-report", err)
			s.log.Warn("final assessment unavailable", zap.Error(err))
		} else {
			report.Assessment = assessment
		}
	}

	return report
}

// categoryPerformance averages scores per category, ordered by the
// category's first appearance in history.
func (s *AdaptiveSession) categoryPerformance() []CategoryScore {
	var order []bank.Category
	sums := make(map[bank.Category]float64)
	counts := make(map[bank.Category]int)

	for _, h := range s.history {
		if counts[h.Category] == 0 {
			order = append(order, h.Category)
		}
		sums[h.Category] += h.Score
		counts[h.Category]++
	}

	out := make([]CategoryScore, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryScore{
			Category: c,
			Average:  round2(sums[c] / float64(counts[c])),
			Count:    counts[c],
		})
	}
	return out
}

func (s *AdaptiveSession) summary(avg float64) evaluate.SessionSummary {
	transcript := make([]evaluate.TranscriptEntry, len(s.history))
	for i, h := range s.history {
		transcript[i] = evaluate.TranscriptEntry{
			Question: h.Question,
			Category: h.Category,
			Answer:   h.Answer,
			Score:    h.Score,
		}
	}
	return evaluate.SessionSummary{
		CandidateName: s.params.CandidateName,
		Roles:         s.params.Roles,
		Company:       s.params.Company,
		QuestionCount: len(s.history),
		AverageScore:  avg,
		Transcript:    transcript,
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
