// Package evaluate scores interview answers. The remote evaluator asks
// an LLM for structured feedback, the fallback evaluator computes a
// deterministic keyword/similarity score against the question bank. Both
// produce the same Evaluation shape so the session never cares which one
// ran.
package evaluate

import (
	"context"

	"github.com/abhisek/preptalk/internal/bank"
)

// Context carries session state relevant to scoring one answer.
type Context struct {
	Roles            []string
	Company          string
	Category         bank.Category
	QuestionCount    int
	PerformanceTrend string
}

// Evaluation is the single result shape for every evaluator. Optional
// fields are empty strings or empty slices, never nil, once normalized.
type Evaluation struct {
	// Score is the answer score, clamped to [0,10].
	Score float64 `json:"score"`

	// Assessment is the interviewer's verdict on the answer.
	Assessment string `json:"interviewer_assessment"`

	// Tested names the skill or knowledge the question probed.
	Tested string `json:"what_question_tested"`

	// Mistakes lists specific problems found in the answer.
	Mistakes []string `json:"specific_mistakes"`

	// WhyThisFails explains why the weak areas matter.
	WhyThisFails string `json:"why_this_fails"`

	// MentorGuidance is supportive advice for the candidate.
	MentorGuidance string `json:"mentor_guidance"`

	// Improvements lists actionable steps to do better.
	Improvements []string `json:"how_to_improve"`

	// ModelAnswer is an example of a strong answer.
	ModelAnswer string `json:"model_answer"`
}

// normalize clamps the score and replaces nil slices so history records
// never carry nulls.
func (e *Evaluation) normalize() {
	e.Score = ClampScore(e.Score)
	if e.Mistakes == nil {
		e.Mistakes = []string{}
	}
	if e.Improvements == nil {
		e.Improvements = []string{}
	}
}

// ClampScore bounds a score to [0,10].
func ClampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 10 {
		return 10
	}
	return s
}

// Evaluator scores a single answer.
type Evaluator interface {
	Evaluate(ctx context.Context, question, answer string, ec Context) (*Evaluation, error)
}

// TranscriptEntry is one answered question as the assessor sees it.
type TranscriptEntry struct {
	Question string
	Category bank.Category
	Answer   string
	Score    float64
}

// SessionSummary is the digest handed to the final assessor.
type SessionSummary struct {
	CandidateName string
	Roles         []string
	Company       string
	QuestionCount int
	AverageScore  float64
	Transcript    []TranscriptEntry
}

// FinalAssessment is the qualitative wrap-up of a whole session. It is
// only ever produced remotely; when the remote side is unavailable the
// report simply omits it.
type FinalAssessment struct {
	ReadinessLevel     string   `json:"readiness_level"`
	TopStrengths       []string `json:"top_strengths"`
	CriticalGaps       []string `json:"critical_gaps"`
	Recommendations    []string `json:"specific_recommendations"`
	SuccessProbability string   `json:"estimated_success_probability"`
	Overall            string   `json:"overall_assessment"`
}

// Assessor produces the final qualitative assessment.
type Assessor interface {
	Assess(ctx context.Context, summary SessionSummary) (*FinalAssessment, error)
}
