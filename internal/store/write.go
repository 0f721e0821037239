package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/harcmp/internal/record"
)

// SaveRun stores one capture side - a labeled run plus all of its normalized
// records - in a single transaction and returns the generated run ID.
//
// Records are written in slice order with their position, so a later reader
// sees them in original capture order. Header maps are serialized as JSON;
// GraphQL variables are stored in canonical form so stored rows compare
// bytewise.
func (s *Store) SaveRun(ctx context.Context, label, file string, recs []record.TransactionRecord) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("save run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, label, file) VALUES (?, ?, ?)`,
		runID, label, file,
	); err != nil {
		return "", fmt.Errorf("save run: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records
		(run_id, pos, variant, method, url, normalized_url, domain, endpoint,
		 status, duration_ms, request_headers, response_headers,
		 request_body, response_body, param_signature,
		 gql_operation, gql_query, gql_query_norm, gql_variables, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("save run: prepare: %w", err)
	}
	defer stmt.Close()

	for pos, rec := range recs {
		reqHeaders, err := json.Marshal(rec.RequestHeaders)
		if err != nil {
			return "", fmt.Errorf("save run: record %d: %w", pos, err)
		}
		resHeaders, err := json.Marshal(rec.ResponseHeaders)
		if err != nil {
			return "", fmt.Errorf("save run: record %d: %w", pos, err)
		}

		if _, err := stmt.ExecContext(ctx,
			runID, pos, string(rec.Variant), rec.Method, rec.URL,
			rec.NormalizedURL, rec.Domain, rec.Endpoint,
			rec.Status, rec.DurationMs, string(reqHeaders), string(resHeaders),
			[]byte(rec.RequestBody), []byte(rec.ResponseBody),
			rec.REST.ParameterSignature,
			rec.GraphQL.OperationName, rec.GraphQL.RawQuery,
			rec.GraphQL.NormalizedQuery,
			record.CanonicalizeValue(rec.GraphQL.Variables),
			rec.StartedAt,
		); err != nil {
			return "", fmt.Errorf("save run: record %d: %w", pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("save run: commit: %w", err)
	}
	return runID, nil
}
