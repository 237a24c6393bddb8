package evaluate

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/preptalk/internal/bank"
)

// Weighting of the two fallback signals. Similarity to the model answer
// dominates; keywords matter most for technical questions.
const (
	similarityWeight = 0.7
	keywordWeight    = 0.3
)

const starGuidance = "Structure your answer: Situation, Task, Action, Result. Add specific metrics when possible."

// Fallback scores answers without any network dependency, using keyword
// coverage and text similarity against the question bank's model
// answers. It never returns an error: a question missing from the bank
// degrades to a neutral score, an empty answer scores zero.
type Fallback struct {
	bank *bank.Bank
}

// NewFallback creates a Fallback evaluator over the given bank.
func NewFallback(b *bank.Bank) *Fallback {
	return &Fallback{bank: b}
}

// Evaluate implements Evaluator. Deterministic for identical inputs.
func (f *Fallback) Evaluate(_ context.Context, question, answer string, ec Context) (*Evaluation, error) {
	if strings.TrimSpace(answer) == "" {
		ev := &Evaluation{
			Score:          0,
			Assessment:     "No answer was provided.",
			Tested:         string(ec.Category),
			Mistakes:       []string{"No answer provided."},
			MentorGuidance: starGuidance,
			Improvements:   []string{"Provide an answer, even a brief one built around a single concrete example."},
		}
		ev.normalize()
		return ev, nil
	}

	entry, ok := f.bank.Lookup(question)
	if !ok {
		// Question came from the remote generator before the breaker
		// tripped; no model answer to compare against.
		ev := &Evaluation{
			Score:          5.0,
			Assessment:     "Good effort. Provide more specifics and examples.",
			Tested:         string(ec.Category),
			MentorGuidance: starGuidance,
			Improvements:   []string{"Add concrete metrics or examples to strengthen the answer."},
		}
		ev.normalize()
		return ev, nil
	}

	matches := countKeywords(answer, entry.Keywords)
	coverage := 0.0
	if len(entry.Keywords) > 0 {
		coverage = float64(matches) / float64(len(entry.Keywords))
	}

	sim := Ratio(answer, entry.IdealAnswer)

	combined := similarityWeight*sim + keywordWeight*coverage
	score := ClampScore(math.Round(combined*100) / 10)

	ev := &Evaluation{
		Score: score,
		Assessment: fmt.Sprintf("Keyword matches: %d/%d. Similarity to model answer: %d%%.",
			matches, len(entry.Keywords), int(sim*100)),
		Tested:         string(ec.Category),
		MentorGuidance: starGuidance,
		ModelAnswer:    entry.IdealAnswer,
	}

	if matches == 0 {
		ev.Mistakes = append(ev.Mistakes, "Missing core keywords from the model answer.")
	}
	if sim < 0.4 {
		ev.Mistakes = append(ev.Mistakes, "Answer lacks the expected structure or depth.")
	}

	if matches == 0 {
		ev.Improvements = append(ev.Improvements, "Include the key terms and technologies the question is probing for.")
	}
	if sim < 0.5 {
		ev.Improvements = append(ev.Improvements, "Bring your answer closer to the model structure: explain the concept, give an example, show the impact.")
	}
	if len(strings.Fields(answer)) < 20 {
		ev.Improvements = append(ev.Improvements, "Expand your answer with a short example or a metric.")
	}
	if len(ev.Improvements) == 0 {
		ev.Improvements = append(ev.Improvements, "Add concrete metrics or examples to strengthen the answer.")
	}

	ev.normalize()
	return ev, nil
}

// countKeywords counts keywords present in the answer as
// case-insensitive substrings.
func countKeywords(answer string, keywords []string) int {
	lower := strings.ToLower(answer)
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			n++
		}
	}
	return n
}
