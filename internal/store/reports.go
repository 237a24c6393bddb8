package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/preptalk/internal/session"
)

// ReportRow is a stored report summary, without the full payload.
type ReportRow struct {
	ID            string
	CandidateName string
	Roles         []string
	Company       string
	Mode          string
	InterviewDate string
	Questions     int
	AverageScore  float64
	ScoreTrend    string
	CreatedAt     time.Time
}

// Persist archives a final report. Implements report.Sink.
func (s *Store) Persist(ctx context.Context, r *session.FinalReport) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO reports (id, candidate_name, roles, company, mode, interview_date, questions, average_score, score_trend, payload)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID,
		r.CandidateName,
		strings.Join(r.Roles, ","),
		r.Company,
		string(r.Mode),
		r.InterviewDate,
		r.Questions,
		r.AverageScore,
		r.ScoreTrend,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// List returns stored report summaries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]ReportRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, candidate_name, roles, company, mode, interview_date, questions, average_score, score_trend, created_at
FROM reports ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var out []ReportRow
	for rows.Next() {
		var row ReportRow
		var roles string
		if err := rows.Scan(&row.ID, &row.CandidateName, &roles, &row.Company, &row.Mode,
			&row.InterviewDate, &row.Questions, &row.AverageScore, &row.ScoreTrend, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		if roles != "" {
			row.Roles = strings.Split(roles, ",")
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Get loads the full report payload by session ID.
func (s *Store) Get(ctx context.Context, id string) (*session.FinalReport, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM reports WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", id, err)
	}

	var r session.FinalReport
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", id, err)
	}
	return &r, nil
}
