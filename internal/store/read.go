package store

import (
	"context"
	"fmt"
)

// Run summarizes one stored capture side.
type Run struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	File        string `json:"file"`
	CreatedAt   string `json:"created_at"`
	RecordCount int    `json:"record_count"`
}

// ListRuns returns all stored runs, oldest first, with their record counts.
// Ordering ties on created_at break on id so results are stable.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.label, r.file, r.created_at, COUNT(rec.id)
		FROM runs r
		LEFT JOIN records rec ON rec.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at ASC, r.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Label, &r.File, &r.CreatedAt, &r.RecordCount); err != nil {
			return nil, fmt.Errorf("list runs: scan: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// CountRecords returns the number of records stored for a run.
func (s *Store) CountRecords(ctx context.Context, runID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}
