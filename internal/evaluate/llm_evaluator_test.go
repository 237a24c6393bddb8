package evaluate

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/preptalk/internal/llm"
)

func validEvaluationJSON() json.RawMessage {
	return json.RawMessage(`{
		"score": 7.5,
		"interviewer_assessment": "Solid answer with a concrete example.",
		"what_question_tested": "System design fundamentals",
		"specific_mistakes": ["No mention of trade-offs"],
		"why_this_fails": "Interviewers probe trade-off thinking.",
		"mentor_guidance": "Name one alternative and why you rejected it.",
		"how_to_improve": ["Compare at least two approaches"],
		"model_answer": "A strong answer weighs caching against read replicas."
	}`)
}

func TestLLMEvaluatorMapsResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validEvaluationJSON()})
	e := NewLLMEvaluator(mock, DefaultConfig())

	ev, err := e.Evaluate(context.Background(), "How would you scale reads?", "I would add caching.", Context{
		Roles: []string{"Software Developer"},
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if ev.Score != 7.5 {
		t.Errorf("score = %v", ev.Score)
	}
	if ev.Assessment == "" || ev.Tested == "" || ev.WhyThisFails == "" {
		t.Errorf("fields not mapped: %+v", ev)
	}
	if len(ev.Mistakes) != 1 || len(ev.Improvements) != 1 {
		t.Errorf("slices not mapped: %+v", ev)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d", mock.CallCount())
	}
}

func TestLLMEvaluatorClampsAndNormalizes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`{"score": 14, "interviewer_assessment": "over-enthusiastic grader"}`,
	)})
	e := NewLLMEvaluator(mock, DefaultConfig())

	ev, err := e.Evaluate(context.Background(), "q", "a", Context{})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ev.Score != 10 {
		t.Errorf("score = %v, want clamped 10", ev.Score)
	}
	if ev.Mistakes == nil || ev.Improvements == nil {
		t.Error("nil slices leaked through normalization")
	}
}

func TestLLMEvaluatorStripsFences(t *testing.T) {
	fenced := "```json\n" + `{"score": 6, "interviewer_assessment": "fine"}` + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	e := NewLLMEvaluator(mock, DefaultConfig())

	ev, err := e.Evaluate(context.Background(), "q", "a", Context{})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ev.Score != 6 {
		t.Errorf("score = %v", ev.Score)
	}
}

func TestLLMEvaluatorPropagatesErrors(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue fails
	e := NewLLMEvaluator(mock, DefaultConfig())

	if _, err := e.Evaluate(context.Background(), "q", "a", Context{}); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestLLMEvaluatorRejectsGarbage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("not json at all")})
	e := NewLLMEvaluator(mock, DefaultConfig())

	if _, err := e.Evaluate(context.Background(), "q", "a", Context{}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLLMAssessorMapsResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"readiness_level": "Interview Ready",
		"top_strengths": ["Clear communication"],
		"critical_gaps": ["Shallow system design depth"],
		"specific_recommendations": ["Do two design drills per week"],
		"estimated_success_probability": "60-70% - Competitive with focused preparation",
		"overall_assessment": "You communicate well and structure answers cleanly."
	}`)})
	a := NewLLMAssessor(mock, DefaultConfig())

	out, err := a.Assess(context.Background(), SessionSummary{
		CandidateName: "Priya",
		Roles:         []string{"Software Developer"},
		QuestionCount: 5,
		AverageScore:  6.8,
		Transcript: []TranscriptEntry{
			{Question: "q1", Answer: "a1", Score: 7},
		},
	})
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if out.ReadinessLevel != "Interview Ready" {
		t.Errorf("readiness = %q", out.ReadinessLevel)
	}
	if len(out.TopStrengths) != 1 || len(out.CriticalGaps) != 1 || len(out.Recommendations) != 1 {
		t.Errorf("lists not mapped: %+v", out)
	}
}
