package bank

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSchema is the YAML layout for user-supplied bank files:
//
//	roles:
//	  - role: Site Reliability Engineer
//	    questions:
//	      - question: What is an error budget?
//	        category: Technical
//	        ideal_answer: ...
//	        keywords: [SLO, SLI, budget]
type fileSchema struct {
	Roles []struct {
		Role      string `yaml:"role"`
		Questions []struct {
			Question    string   `yaml:"question"`
			Category    string   `yaml:"category"`
			IdealAnswer string   `yaml:"ideal_answer"`
			Keywords    []string `yaml:"keywords"`
		} `yaml:"questions"`
	} `yaml:"roles"`
}

// LoadFile reads additional bank entries from a YAML file. Entries with
// an empty question or ideal answer are rejected; categories outside the
// known set are kept as General.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file %s: %w", path, err)
	}

	var parsed fileSchema
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse bank file %s: %w", path, err)
	}

	var entries []Entry
	for _, r := range parsed.Roles {
		if r.Role == "" {
			return nil, fmt.Errorf("bank file %s: role name is required", path)
		}
		for i, q := range r.Questions {
			if q.Question == "" {
				return nil, fmt.Errorf("bank file %s: role %q question %d has no text", path, r.Role, i+1)
			}
			if q.IdealAnswer == "" {
				return nil, fmt.Errorf("bank file %s: role %q question %d has no ideal_answer", path, r.Role, i+1)
			}
			entries = append(entries, Entry{
				Role:        r.Role,
				Question:    q.Question,
				Category:    NormalizeCategory(q.Category),
				IdealAnswer: q.IdealAnswer,
				Keywords:    q.Keywords,
			})
		}
	}
	return entries, nil
}

// Load builds a Bank from the embedded seed plus any extra YAML files.
func Load(extraFiles ...string) (*Bank, error) {
	entries := make([]Entry, len(seedEntries))
	copy(entries, seedEntries)

	for _, path := range extraFiles {
		extra, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, extra...)
	}
	return New(entries), nil
}
