// Package questiongen produces interview questions. The LLM generator
// asks the provider for a question tailored to the session so far and
// rejects near-duplicates of questions already asked.
package questiongen

import (
	"context"

	"github.com/abhisek/preptalk/internal/bank"
)

// Difficulty grades a generated question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// NormalizeDifficulty maps free-form LLM output to a known difficulty.
// Anything unrecognized becomes medium.
func NormalizeDifficulty(s Difficulty) Difficulty {
	switch s {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return s
	default:
		return DifficultyMedium
	}
}

// Question is a single interview question ready to ask.
type Question struct {
	Text       string
	Category   bank.Category
	Difficulty Difficulty

	// Reasoning is the generator's note on why this question fits
	// now. Empty for bank questions.
	Reasoning string
}

// FromBankEntry wraps a question-bank entry as a Question.
func FromBankEntry(e bank.Entry) *Question {
	return &Question{
		Text:       e.Question,
		Category:   e.Category,
		Difficulty: DifficultyMedium,
	}
}

// GenerateInput carries the session state the generator adapts to.
type GenerateInput struct {
	// Roles the candidate is interviewing for.
	Roles []string

	// Company is the target company, empty when none was given.
	Company string

	// JDContext summarizes the parsed job description, empty in
	// role-based sessions.
	JDContext string

	// QuestionCount is the 1-based number of the question being
	// generated.
	QuestionCount int

	// AverageScore is the running average so far, 0 before any
	// answers.
	AverageScore float64

	// PerformanceTrend labels recent performance, e.g. "Strong".
	PerformanceTrend string

	// AskedQuestions lists questions already asked this session.
	AskedQuestions []string
}

// Generator produces interview questions.
type Generator interface {
	// Generate produces a single question for the given input.
	// Returns an error when the provider fails or every attempt
	// duplicated an already-asked question.
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}
