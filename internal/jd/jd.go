// Package jd extracts structured context from a pasted job description
// so the generator can target its questions.
package jd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/preptalk/internal/llm"
)

// Context is the structured summary of a job description.
type Context struct {
	OriginalText        string   `json:"original_text"`
	RequiredSkills      []string `json:"required_skills"`
	KeyResponsibilities []string `json:"key_responsibilities"`
	ExperienceLevel     string   `json:"experience_level"`
}

// Summary renders the context as prompt text for the question generator.
func (c *Context) Summary() string {
	var b strings.Builder
	if len(c.RequiredSkills) > 0 {
		fmt.Fprintf(&b, "Required skills: %s\n", strings.Join(c.RequiredSkills, ", "))
	}
	if len(c.KeyResponsibilities) > 0 {
		fmt.Fprintf(&b, "Key responsibilities: %s\n", strings.Join(c.KeyResponsibilities, "; "))
	}
	if c.ExperienceLevel != "" {
		fmt.Fprintf(&b, "Experience level: %s\n", c.ExperienceLevel)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Parser extracts a Context from raw job description text.
type Parser interface {
	Parse(ctx context.Context, text string) (*Context, error)
}

const parserSystemPrompt = `You extract structured facts from job descriptions.
List only skills and responsibilities actually stated in the text.
Experience level is one of: entry, mid, senior, lead, unspecified.`

// jdSchema constrains the parser's output.
var jdSchema = &llm.Schema{
	Name:        "jd-context",
	Description: "Structured summary of a job description",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"required_skills": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"key_responsibilities": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"experience_level": map[string]any{
				"type": "string",
				"enum": []any{"entry", "mid", "senior", "lead", "unspecified"},
			},
		},
		"required": []any{"required_skills", "key_responsibilities"},
	},
}

// LLMParser implements Parser using the LLM provider.
type LLMParser struct {
	provider llm.Provider
}

// NewLLMParser creates a parser backed by the given provider.
func NewLLMParser(provider llm.Provider) *LLMParser {
	return &LLMParser{provider: provider}
}

// Parse extracts structured context from text. The original text is
// always carried through, even when extraction finds nothing.
func (p *LLMParser) Parse(ctx context.Context, text string) (*Context, error) {
	ctx = llm.WithPurpose(ctx, "jd-parse")

	req := llm.Request{
		System: parserSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Job description:\n\n" + text},
		},
		Schema:      jdSchema,
		MaxTokens:   800,
		Temperature: 0.1,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("JD parsing failed: %w", err)
	}

	var out Context
	if err := llm.DecodeJSON(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse JD response: %w", err)
	}
	out.OriginalText = text
	if out.RequiredSkills == nil {
		out.RequiredSkills = []string{}
	}
	if out.KeyResponsibilities == nil {
		out.KeyResponsibilities = []string{}
	}
	return &out, nil
}
