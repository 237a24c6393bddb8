package evaluate

import "github.com/abhisek/preptalk/internal/llm"

// EvaluationSchema constrains the remote evaluator's output.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Structured evaluation of one interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"description": "Answer score from 0 to 10",
			},
			"interviewer_assessment": map[string]any{
				"type":        "string",
				"description": "Detailed honest feedback on the answer",
			},
			"what_question_tested": map[string]any{
				"type":        "string",
				"description": "What skills or knowledge this question evaluated",
			},
			"specific_mistakes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"why_this_fails": map[string]any{
				"type":        "string",
				"description": "Why the weak areas are problematic",
			},
			"mentor_guidance": map[string]any{
				"type":        "string",
				"description": "Supportive advice for improvement",
			},
			"how_to_improve": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"model_answer": map[string]any{
				"type":        "string",
				"description": "Example of a strong answer to this question",
			},
		},
		"required": []any{"score", "interviewer_assessment"},
	},
}

// AssessmentSchema constrains the final assessment output.
var AssessmentSchema = &llm.Schema{
	Name:        "final-assessment",
	Description: "Qualitative assessment of a completed interview session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"readiness_level": map[string]any{
				"type": "string",
				"enum": []any{"Not Ready", "Needs Practice", "Interview Ready", "Strong Candidate", "Outstanding"},
			},
			"top_strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"critical_gaps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"specific_recommendations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"estimated_success_probability": map[string]any{
				"type":        "string",
				"description": "e.g. 60-70% - Competitive with focused preparation",
			},
			"overall_assessment": map[string]any{
				"type":        "string",
				"description": "2-3 paragraphs addressing the candidate directly",
			},
		},
		"required": []any{"readiness_level", "overall_assessment"},
	},
}
