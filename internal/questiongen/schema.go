package questiongen

import "github.com/abhisek/preptalk/internal/llm"

// QuestionSchema constrains the generator's output.
var QuestionSchema = &llm.Schema{
	Name:        "interview-question",
	Description: "A single interview question with metadata",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The interview question to ask",
			},
			"category": map[string]any{
				"type": "string",
				"enum": []any{"hr", "technical", "scenario", "general"},
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Why this question fits the session right now",
			},
		},
		"required": []any{"question", "category"},
	},
}
