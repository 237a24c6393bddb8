package jd

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/preptalk/internal/llm"
)

const sampleJD = "We are hiring a backend engineer. Requirements: Go, PostgreSQL, Kubernetes. You will own the billing service."

func TestParse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"required_skills": ["Go", "PostgreSQL", "Kubernetes"],
		"key_responsibilities": ["Own the billing service"],
		"experience_level": "mid"
	}`)})
	p := NewLLMParser(mock)

	out, err := p.Parse(context.Background(), sampleJD)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out.OriginalText != sampleJD {
		t.Error("original text not carried through")
	}
	if len(out.RequiredSkills) != 3 || out.ExperienceLevel != "mid" {
		t.Errorf("parsed = %+v", out)
	}

	// The raw JD must reach the model.
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "billing service") {
		t.Error("JD text missing from prompt")
	}
}

func TestParseEmptyExtraction(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{}`)})
	p := NewLLMParser(mock)

	out, err := p.Parse(context.Background(), sampleJD)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out.RequiredSkills == nil || out.KeyResponsibilities == nil {
		t.Error("nil slices not normalized")
	}
}

func TestParseError(t *testing.T) {
	mock := llm.NewMockProvider()
	p := NewLLMParser(mock)
	if _, err := p.Parse(context.Background(), sampleJD); err == nil {
		t.Fatal("expected provider error")
	}
}

func TestSummary(t *testing.T) {
	c := &Context{
		RequiredSkills:      []string{"Go", "SQL"},
		KeyResponsibilities: []string{"Build services"},
		ExperienceLevel:     "senior",
	}
	s := c.Summary()
	for _, want := range []string{"Go, SQL", "Build services", "senior"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q: %q", want, s)
		}
	}

	empty := &Context{}
	if empty.Summary() != "" {
		t.Errorf("empty context summary = %q", empty.Summary())
	}
}
