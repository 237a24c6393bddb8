package bank

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tell me about yourself", "tell me about yourself"},
		{"  Tell  me\tabout   yourself  ", "tell me about yourself"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"hr", CategoryHR},
		{"HR", CategoryHR},
		{"behavioral", CategoryHR},
		{"technical", CategoryTechnical},
		{"scenario", CategoryScenario},
		{"situational", CategoryScenario},
		{"general", CategoryGeneral},
		{"something-else", CategoryGeneral},
		{"", CategoryGeneral},
	}
	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultBankRoles(t *testing.T) {
	b := Default()
	if b.Len() == 0 {
		t.Fatal("default bank is empty")
	}
	if !b.HasRole("Software Developer") {
		t.Errorf("default bank missing Software Developer, has %v", b.Roles())
	}
	for _, role := range b.Roles() {
		if len(b.ForRole(role)) == 0 {
			t.Errorf("role %q has no questions", role)
		}
	}
}

func TestLookup(t *testing.T) {
	b := Default()
	q := b.ForRole("Software Developer")[0].Question

	entry, ok := b.Lookup("  " + q + "  ")
	if !ok {
		t.Fatalf("Lookup(%q) not found", q)
	}
	if entry.Question != q {
		t.Errorf("Lookup returned %q, want %q", entry.Question, q)
	}

	if _, ok := b.Lookup("this question does not exist"); ok {
		t.Error("Lookup of unknown question succeeded")
	}
}

func TestPickCategoryOrder(t *testing.T) {
	b := New([]Entry{
		{Role: "r", Question: "hr q", Category: CategoryHR},
		{Role: "r", Question: "tech q", Category: CategoryTechnical},
		{Role: "r", Question: "scenario q", Category: CategoryScenario},
	})

	asked := map[string]bool{}
	entry, ok := b.Pick("r", asked)
	if !ok {
		t.Fatal("Pick failed on fresh bank")
	}
	if entry.Category != CategoryTechnical {
		t.Errorf("first pick category = %q, want technical", entry.Category)
	}

	asked[Normalize(entry.Question)] = true
	entry, _ = b.Pick("r", asked)
	if entry.Category != CategoryScenario {
		t.Errorf("second pick category = %q, want scenario", entry.Category)
	}

	asked[Normalize(entry.Question)] = true
	entry, _ = b.Pick("r", asked)
	if entry.Category != CategoryHR {
		t.Errorf("third pick category = %q, want hr", entry.Category)
	}
}

func TestPickExhaustion(t *testing.T) {
	b := New([]Entry{
		{Role: "r", Question: "only q", Category: CategoryTechnical},
	})

	asked := map[string]bool{Normalize("only q"): true}
	if _, ok := b.Pick("r", asked); ok {
		t.Error("Pick succeeded on exhausted bank")
	}

	// Caller clears the set to allow repeats.
	if _, ok := b.Pick("r", map[string]bool{}); !ok {
		t.Error("Pick failed after reset")
	}
}

func TestPickUnknownRoleFallsBack(t *testing.T) {
	b := Default()
	entry, ok := b.Pick("Astronaut", map[string]bool{})
	if !ok {
		t.Fatal("Pick failed for unknown role")
	}
	if entry.Question == "" {
		t.Error("Pick returned empty question")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")
	content := `roles:
  - role: Site Reliability Engineer
    questions:
      - question: How do you define an SLO?
        category: technical
        ideal_answer: An SLO is a target level of reliability measured by SLIs over a window.
        keywords: [slo, sli, reliability, error budget]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !b.HasRole("Site Reliability Engineer") {
		t.Fatal("loaded role missing")
	}
	entries := b.ForRole("Site Reliability Engineer")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Category != CategoryTechnical {
		t.Errorf("category = %q, want technical", entries[0].Category)
	}
	if len(entries[0].Keywords) != 4 {
		t.Errorf("keywords = %v", entries[0].Keywords)
	}

	// Built-in roles survive alongside extras.
	if !b.HasRole("Software Developer") {
		t.Error("built-in roles lost when loading extras")
	}
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("roles:\n  - role: X\n    questions:\n      - question: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted entry with empty question")
	}
}
