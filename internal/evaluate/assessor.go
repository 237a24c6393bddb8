package evaluate

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/preptalk/internal/llm"
)

const assessorSystemPrompt = `You are a senior hiring manager writing a final candidate assessment
after a full mock interview. Be honest and specific. The candidate reads
this to decide what to work on before the real interview.`

// LLMAssessor implements Assessor using the LLM provider.
type LLMAssessor struct {
	provider llm.Provider
	config   Config
}

// NewLLMAssessor creates an assessor backed by the given provider.
func NewLLMAssessor(provider llm.Provider, cfg Config) *LLMAssessor {
	return &LLMAssessor{provider: provider, config: cfg}
}

// Assess produces a qualitative assessment of a completed session.
func (a *LLMAssessor) Assess(ctx context.Context, summary SessionSummary) (*FinalAssessment, error) {
	ctx = llm.WithPurpose(ctx, "final-report")

	req := llm.Request{
		System: assessorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAssessMessage(summary)},
		},
		Schema:      AssessmentSchema,
		MaxTokens:   2000,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM assessment failed: %w", err)
	}

	var out FinalAssessment
	if err := llm.DecodeJSON(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse assessment response: %w", err)
	}
	return &out, nil
}

func buildAssessMessage(summary SessionSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Candidate: %s\n", summary.CandidateName)
	fmt.Fprintf(&b, "Target roles: %s\n", strings.Join(summary.Roles, ", "))
	if summary.Company != "" {
		fmt.Fprintf(&b, "Target company: %s\n", summary.Company)
	}
	fmt.Fprintf(&b, "Questions answered: %d\n", summary.QuestionCount)
	fmt.Fprintf(&b, "Average score: %.2f/10\n", summary.AverageScore)

	b.WriteString("\nInterview transcript:\n")
	for i, h := range summary.Transcript {
		fmt.Fprintf(&b, "\nQ%d (%s): %s\n", i+1, h.Category, h.Question)
		fmt.Fprintf(&b, "Answer: %s\n", h.Answer)
		fmt.Fprintf(&b, "Score: %.1f/10\n", h.Score)
	}

	b.WriteString(`
Write the final assessment. Return JSON with:
- readiness_level: one of "Not Ready", "Needs Practice", "Interview Ready", "Strong Candidate", "Outstanding"
- top_strengths: the candidate's strongest demonstrated qualities
- critical_gaps: the gaps most likely to cost them the offer
- specific_recommendations: concrete preparation steps
- estimated_success_probability: e.g. "60-70% - Competitive with focused preparation"
- overall_assessment: 2-3 paragraphs addressed directly to the candidate`)

	return b.String()
}
