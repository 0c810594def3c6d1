package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/haeyanglab/searep/internal/marine"
)

// SQLite stores each report as a JSON document row, keyed by report ID.
// Status and submission time are lifted into columns for ad-hoc queries.
type SQLite struct {
	db *sql.DB
}

// NewSQLite returns a store over an already-migrated database handle.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) Put(ctx context.Context, report marine.Report) error {
	doc, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report %s: %w", report.ReportID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (id, status, submitted_at, doc)
		VALUES (?, ?, ?, ?)
	`, report.ReportID, string(report.Status), report.SubmittedAt, string(doc))
	if err != nil {
		return fmt.Errorf("inserting report %s: %w", report.ReportID, err)
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context, reportID string) (marine.Report, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `
		SELECT doc FROM reports WHERE id = ?
	`, reportID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return marine.Report{}, ErrNotFound
	}
	if err != nil {
		return marine.Report{}, fmt.Errorf("querying report %s: %w", reportID, err)
	}

	var report marine.Report
	if err := json.Unmarshal([]byte(doc), &report); err != nil {
		return marine.Report{}, fmt.Errorf("decoding report %s: %w", reportID, err)
	}
	return report, nil
}
