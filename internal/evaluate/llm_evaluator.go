package evaluate

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/preptalk/internal/llm"
)

const evaluatorSystemPrompt = `You are a brutally honest senior interviewer evaluating a candidate's answer.
Score strictly and explain your reasoning.

Score guidelines:
- 9-10: Exceptional. Specific, structured, backed by concrete results.
- 7-8: Strong. Clear and relevant with minor gaps.
- 5-6: Adequate. Addresses the question but lacks depth or specifics.
- 3-4: Weak. Vague, generic, or partially off-topic.
- 0-2: Poor. Empty, irrelevant, or fundamentally wrong.

Be direct about mistakes. Candidates improve from honest feedback, not praise.`

// Config controls the remote evaluator's generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns evaluation defaults. Low temperature keeps
// scoring consistent across similar answers.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1500,
		Temperature: 0.3,
	}
}

// LLMEvaluator implements Evaluator using the LLM provider.
type LLMEvaluator struct {
	provider llm.Provider
	config   Config
}

// NewLLMEvaluator creates an evaluator backed by the given provider.
func NewLLMEvaluator(provider llm.Provider, cfg Config) *LLMEvaluator {
	return &LLMEvaluator{provider: provider, config: cfg}
}

// evaluationOutput is the raw LLM response before normalization.
type evaluationOutput struct {
	Score            float64  `json:"score"`
	Assessment       string   `json:"interviewer_assessment"`
	Tested           string   `json:"what_question_tested"`
	SpecificMistakes []string `json:"specific_mistakes"`
	WhyThisFails     string   `json:"why_this_fails"`
	MentorGuidance   string   `json:"mentor_guidance"`
	HowToImprove     []string `json:"how_to_improve"`
	ModelAnswer      string   `json:"model_answer"`
}

// Evaluate scores a single answer against the question that prompted it.
func (e *LLMEvaluator) Evaluate(ctx context.Context, question, answer string, ec Context) (*Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "answer-eval")

	req := llm.Request{
		System: evaluatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvalMessage(question, answer, ec)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM evaluation failed: %w", err)
	}

	var raw evaluationOutput
	if err := llm.DecodeJSON(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse evaluation response: %w", err)
	}

	ev := &Evaluation{
		Score:          raw.Score,
		Assessment:     raw.Assessment,
		Tested:         raw.Tested,
		Mistakes:       raw.SpecificMistakes,
		WhyThisFails:   raw.WhyThisFails,
		MentorGuidance: raw.MentorGuidance,
		Improvements:   raw.HowToImprove,
		ModelAnswer:    raw.ModelAnswer,
	}
	ev.normalize()
	return ev, nil
}

func buildEvalMessage(question, answer string, ec Context) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target roles: %s\n", strings.Join(ec.Roles, ", "))
	if ec.Company != "" {
		fmt.Fprintf(&b, "Target company: %s\n", ec.Company)
	}
	if ec.Category != "" {
		fmt.Fprintf(&b, "Question category: %s\n", ec.Category)
	}
	fmt.Fprintf(&b, "Question number: %d\n", ec.QuestionCount)
	if ec.PerformanceTrend != "" {
		fmt.Fprintf(&b, "Performance so far: %s\n", ec.PerformanceTrend)
	}

	fmt.Fprintf(&b, "\nQuestion: %s\n", question)
	fmt.Fprintf(&b, "\nCandidate's answer: %s\n", answer)

	b.WriteString(`
Evaluate the answer. Return JSON with:
- score: 0-10 following the guidelines
- interviewer_assessment: detailed honest feedback
- what_question_tested: what this question was evaluating
- specific_mistakes: list of concrete mistakes (empty if none)
- why_this_fails: why the weak areas hurt in a real interview
- mentor_guidance: supportive advice on how to grow
- how_to_improve: list of actionable improvements
- model_answer: an example of a strong answer`)

	return b.String()
}
