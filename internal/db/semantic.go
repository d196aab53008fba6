package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jonathan/job-screener/internal/types"
)

// DefaultSemanticDBPath is the default location for the semantic store.
const DefaultSemanticDBPath = "semantic_search.db"

const semanticSchema = `
CREATE TABLE IF NOT EXISTS semantic_data (
	name TEXT,
	email TEXT,
	score INTEGER,
	cv_text TEXT,
	jd_text TEXT,
	job_role TEXT
)`

// SemanticStore persists every screening event in full, append-only. Repeated
// screenings of the same person produce duplicate rows; deduplication happens
// at query time, not storage time.
type SemanticStore struct {
	path string
}

// NewSemanticStore returns a store backed by the SQLite file at path.
func NewSemanticStore(path string) *SemanticStore {
	if path == "" {
		path = DefaultSemanticDBPath
	}
	return &SemanticStore{path: path}
}

func (s *SemanticStore) open(ctx context.Context) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, &PersistenceError{Store: "semantic", Message: "failed to open database", Cause: err}
	}
	if _, err := conn.ExecContext(ctx, semanticSchema); err != nil {
		conn.Close()
		return nil, &PersistenceError{Store: "semantic", Message: "failed to create schema", Cause: err}
	}
	return conn, nil
}

// Insert appends one screening event. Called for every processed resume
// regardless of score.
func (s *SemanticStore) Insert(ctx context.Context, rec types.SemanticRecord) error {
	conn, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx,
		`INSERT INTO semantic_data (name, email, score, cv_text, jd_text, job_role)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Name, rec.Email, rec.Score, rec.CVText, rec.JDText, rec.JobRole,
	)
	if err != nil {
		return &PersistenceError{Store: "semantic", Message: fmt.Sprintf("failed to insert record for %s", rec.Email), Cause: err}
	}
	return nil
}

// FetchAll reads back every screening event verbatim, in insertion order.
func (s *SemanticStore) FetchAll(ctx context.Context) ([]types.SemanticRecord, error) {
	conn, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx,
		`SELECT name, email, score, cv_text, jd_text, job_role FROM semantic_data`)
	if err != nil {
		return nil, &PersistenceError{Store: "semantic", Message: "failed to query records", Cause: err}
	}
	defer rows.Close()

	var out []types.SemanticRecord
	for rows.Next() {
		var rec types.SemanticRecord
		if err := rows.Scan(&rec.Name, &rec.Email, &rec.Score, &rec.CVText, &rec.JDText, &rec.JobRole); err != nil {
			return nil, &PersistenceError{Store: "semantic", Message: "failed to scan record row", Cause: err}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Store: "semantic", Message: "failed to iterate records", Cause: err}
	}
	return out, nil
}
