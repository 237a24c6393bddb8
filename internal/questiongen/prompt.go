package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an experienced interviewer running a realistic mock interview.

Rules:
- Generate exactly one interview question for the given roles and context.
- Categorize it as "hr", "technical", "scenario", or "general".
- Sequence naturally: questions 1-2 cover background and motivation,
  questions 3-5 cover role fundamentals, questions 6-8 are scenarios and
  problem solving, question 9 onward probes advanced and edge-case depth.
- Adapt difficulty to performance: push harder when the candidate is
  scoring well, consolidate fundamentals when they are struggling.
- When a job description summary is provided, anchor questions in its
  required skills and responsibilities.
- Never repeat or lightly rephrase a question from the "already asked" list.
- Keep the question self-contained. Do not stack multiple questions into one.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target roles: %s\n", strings.Join(input.Roles, ", "))
	if input.Company != "" {
		fmt.Fprintf(&b, "Target company: %s\n", input.Company)
	}
	fmt.Fprintf(&b, "Question number: %d\n", input.QuestionCount)
	if input.QuestionCount > 1 {
		fmt.Fprintf(&b, "Average score so far: %.1f/10\n", input.AverageScore)
	}
	if input.PerformanceTrend != "" {
		fmt.Fprintf(&b, "Recent performance: %s\n", input.PerformanceTrend)
	}

	if input.JDContext != "" {
		b.WriteString("\nJob description summary:\n")
		b.WriteString(input.JDContext)
		b.WriteString("\n")
	}

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.AskedQuestions, cfg.MaxPriorQuestions))

	return b.String()
}
