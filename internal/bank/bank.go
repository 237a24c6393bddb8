// Package bank holds the offline question bank: role-keyed interview
// questions with model answers and keywords. It is the fallback source
// when the remote question generator is unavailable. The bank is
// read-only after construction and safe for concurrent reads.
package bank

import (
	"strings"
)

// Category classifies an interview question.
type Category string

const (
	CategoryHR        Category = "HR"
	CategoryTechnical Category = "Technical"
	CategoryScenario  Category = "Scenario"
	CategoryGeneral   Category = "General"
)

// pickOrder is the category preference on the fallback path. Technical
// first keeps the pacing useful when the whole interview runs offline.
var pickOrder = []Category{CategoryTechnical, CategoryScenario, CategoryHR, CategoryGeneral}

// NormalizeCategory maps free-form category labels onto the known set.
// Remote generators use labels like "Behavioral" and "Situational".
func NormalizeCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hr", "behavioral", "behavioural":
		return CategoryHR
	case "technical":
		return CategoryTechnical
	case "scenario", "situational":
		return CategoryScenario
	default:
		return CategoryGeneral
	}
}

// Entry is one question in the bank.
type Entry struct {
	Role        string
	Question    string
	Category    Category
	IdealAnswer string
	Keywords    []string
}

// Bank indexes entries by role and by normalized question text.
type Bank struct {
	roles      []string // insertion order
	byRole     map[string][]Entry
	byQuestion map[string]Entry
}

// New builds a Bank from entries. Role grouping preserves first-seen
// order; duplicate question texts keep the first entry.
func New(entries []Entry) *Bank {
	b := &Bank{
		byRole:     make(map[string][]Entry),
		byQuestion: make(map[string]Entry),
	}
	for _, e := range entries {
		if _, seen := b.byRole[e.Role]; !seen {
			b.roles = append(b.roles, e.Role)
		}
		b.byRole[e.Role] = append(b.byRole[e.Role], e)

		key := Normalize(e.Question)
		if _, dup := b.byQuestion[key]; !dup {
			b.byQuestion[key] = e
		}
	}
	return b
}

// Default returns a Bank built from the embedded seed entries.
func Default() *Bank {
	return New(seedEntries)
}

// Roles returns the role names in the bank, in first-seen order.
func (b *Bank) Roles() []string {
	out := make([]string, len(b.roles))
	copy(out, b.roles)
	return out
}

// HasRole reports whether the bank holds entries for role.
func (b *Bank) HasRole(role string) bool {
	_, ok := b.byRole[role]
	return ok
}

// ForRole returns all entries for the given role.
func (b *Bank) ForRole(role string) []Entry {
	entries := b.byRole[role]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Len returns the total number of entries.
func (b *Bank) Len() int {
	return len(b.byQuestion)
}

// Lookup finds the entry whose question text matches q, compared
// case-insensitively with whitespace collapsed. Used by the fallback
// evaluator to recover the ideal answer for a previously served question.
func (b *Bank) Lookup(q string) (Entry, bool) {
	e, ok := b.byQuestion[Normalize(q)]
	return e, ok
}

// Pick selects the next fallback question for role, skipping any entry
// whose normalized question text appears in asked. Categories are tried
// in the order Technical, Scenario, HR, General. When the requested role
// has no entries the first role in the bank is used instead. Returns
// false when every candidate has already been asked; the caller decides
// whether to reset its asked set and allow repeats.
func (b *Bank) Pick(role string, asked map[string]bool) (Entry, bool) {
	entries := b.byRole[role]
	if len(entries) == 0 && len(b.roles) > 0 {
		entries = b.byRole[b.roles[0]]
	}
	if len(entries) == 0 {
		return Entry{}, false
	}

	for _, cat := range pickOrder {
		for _, e := range entries {
			if !inCategory(e.Category, cat) {
				continue
			}
			if asked[Normalize(e.Question)] {
				continue
			}
			return e, true
		}
	}
	return Entry{}, false
}

// inCategory matches an entry against a pick-order slot. The General
// slot collects every entry outside the three named categories.
func inCategory(c, want Category) bool {
	if want == CategoryGeneral {
		return c != CategoryHR && c != CategoryTechnical && c != CategoryScenario
	}
	return c == want
}

// Normalize lowercases question text and collapses internal whitespace
// so repeated questions compare equal regardless of formatting.
func Normalize(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
