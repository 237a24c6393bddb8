package session

import (
	"time"

	"github.com/abhisek/preptalk/internal/bank"
	"github.com/abhisek/preptalk/internal/evaluate"
	"github.com/abhisek/preptalk/internal/questiongen"
)

// Greeting is the payload returned by Start.
type Greeting struct {
	Message  string   `json:"message"`
	Mode     Mode     `json:"mode"`
	Roles    []string `json:"roles"`
	Company  string   `json:"company,omitempty"`
	JDParsed bool     `json:"jd_parsed"`
}

// QuestionPayload is what NextQuestion hands to the caller.
type QuestionPayload struct {
	Number     int                    `json:"question_number"`
	Question   string                 `json:"question"`
	Category   bank.Category          `json:"category"`
	Difficulty questiongen.Difficulty `json:"difficulty"`
	Reasoning  string                 `json:"reasoning,omitempty"`
}

// AnsweredQuestion is one history record. Optional evaluation fields
// are empty strings or empty slices, never nil.
type AnsweredQuestion struct {
	Number     int                    `json:"question_number"`
	Question   string                 `json:"question"`
	Category   bank.Category          `json:"category"`
	Difficulty questiongen.Difficulty `json:"difficulty"`
	Answer     string                 `json:"answer"`
	Score      float64                `json:"score"`
	Evaluation *evaluate.Evaluation   `json:"evaluation"`
	AnsweredAt time.Time              `json:"answered_at"`
}

// CategoryScore is the per-category aggregate in a final report,
// ordered by first appearance in history.
type CategoryScore struct {
	Category bank.Category `json:"category"`
	Average  float64       `json:"average"`
	Count    int           `json:"count"`
}

// FinalReport combines candidate identity, timing, numeric aggregates,
// and the full history for audit.
type FinalReport struct {
	SessionID       string                    `json:"session_id"`
	CandidateName   string                    `json:"candidate_name"`
	Roles           []string                  `json:"roles"`
	Company         string                    `json:"company,omitempty"`
	Mode            Mode                      `json:"mode"`
	InterviewDate   string                    `json:"interview_date"`
	DurationMinutes float64                   `json:"duration_minutes"`
	Questions       int                       `json:"questions_answered"`
	AverageScore    float64                   `json:"average_score"`
	ScoreTrend      string                    `json:"score_trend"`
	Categories      []CategoryScore           `json:"category_performance"`
	Assessment      *evaluate.FinalAssessment `json:"ai_assessment,omitempty"`
	History         []AnsweredQuestion        `json:"history"`
}
