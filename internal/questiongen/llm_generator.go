package questiongen

import (
	"context"
	"fmt"

	"github.com/abhisek/preptalk/internal/bank"
	"github.com/abhisek/preptalk/internal/llm"
)

// ErrOnlyDuplicates is returned when every generation attempt produced
// a near-copy of an already-asked question.
var ErrOnlyDuplicates = fmt.Errorf("all generated questions duplicated asked ones")

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before normalization.
type questionOutput struct {
	Question   string `json:"question"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Reasoning  string `json:"reasoning"`
}

// Generate produces a single question for the given input context.
// Duplicate candidates are regenerated up to MaxAttempts times before
// giving up with ErrOnlyDuplicates.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	for attempt := 0; attempt < g.config.MaxAttempts; attempt++ {
		resp, err := g.provider.Generate(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("LLM generation failed: %w", err)
		}

		var raw questionOutput
		if err := llm.DecodeJSON(resp.Content, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse question response: %w", err)
		}
		if raw.Question == "" {
			return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty question text")}
		}

		if isDuplicate(raw.Question, input.AskedQuestions, g.config.DuplicateThreshold) {
			continue
		}

		return &Question{
			Text:       raw.Question,
			Category:   bank.NormalizeCategory(raw.Category),
			Difficulty: NormalizeDifficulty(Difficulty(raw.Difficulty)),
			Reasoning:  raw.Reasoning,
		}, nil
	}

	return nil, ErrOnlyDuplicates
}
