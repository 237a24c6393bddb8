// Package report persists finished interview reports. Sinks are
// fan-out targets; the interview loop writes to every configured sink
// and reports per-sink failures without aborting the others.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/preptalk/internal/session"
)

// Sink persists one final report.
type Sink interface {
	Persist(ctx context.Context, r *session.FinalReport) error
}

// FileSink writes each report as a pretty-printed JSON file.
type FileSink struct {
	dir string
}

// NewFileSink creates a sink writing into dir, creating it if needed.
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &FileSink{dir: dir}, nil
}

// Persist writes the report to interview_<candidate>_<date>_<id8>.json.
func (f *FileSink) Persist(_ context.Context, r *session.FinalReport) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	name := fmt.Sprintf("interview_%s_%s_%s.json",
		slug(r.CandidateName), r.InterviewDate, shortID(r.SessionID))
	path := filepath.Join(f.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Path returns where a given report would be written.
func (f *FileSink) Path(r *session.FinalReport) string {
	name := fmt.Sprintf("interview_%s_%s_%s.json",
		slug(r.CandidateName), r.InterviewDate, shortID(r.SessionID))
	return filepath.Join(f.dir, name)
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "candidate"
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
