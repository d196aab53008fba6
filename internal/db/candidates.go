// Package db provides SQLite-backed persistence for screened candidates.
// Connections are scoped to each operation: opened, used, and closed within a
// single call, with no long-lived handle spanning operations.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/jonathan/job-screener/internal/types"
)

// DefaultCandidateDBPath is the default location for the candidate store.
const DefaultCandidateDBPath = "job_screening.db"

const candidateSchema = `
CREATE TABLE IF NOT EXISTS candidates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT,
	email TEXT UNIQUE,
	score INTEGER,
	job_role TEXT
)`

// CandidateStore persists shortlisted candidates keyed by email.
type CandidateStore struct {
	path string
}

// NewCandidateStore returns a store backed by the SQLite file at path.
func NewCandidateStore(path string) *CandidateStore {
	if path == "" {
		path = DefaultCandidateDBPath
	}
	return &CandidateStore{path: path}
}

// open acquires a connection and ensures the schema exists.
func (s *CandidateStore) open(ctx context.Context) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, &PersistenceError{Store: "candidate", Message: "failed to open database", Cause: err}
	}
	if _, err := conn.ExecContext(ctx, candidateSchema); err != nil {
		conn.Close()
		return nil, &PersistenceError{Store: "candidate", Message: "failed to create schema", Cause: err}
	}
	return conn, nil
}

// InsertIfAbsent inserts the candidate unless a row with the same email
// already exists. The first write wins: later candidates with the same email
// are silently dropped, even at a higher score. Returns true when a row was
// inserted.
func (s *CandidateStore) InsertIfAbsent(ctx context.Context, c types.Candidate) (bool, error) {
	conn, err := s.open(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	// Existence check then insert. Not atomic against concurrent writers,
	// which is acceptable under the single-writer model; the UNIQUE
	// constraint still backstops the invariant.
	var existing int64
	err = conn.QueryRowContext(ctx,
		`SELECT id FROM candidates WHERE email = ?`, c.Email,
	).Scan(&existing)
	if err == nil {
		return false, nil
	}
	if err != sql.ErrNoRows {
		return false, &PersistenceError{Store: "candidate", Message: "failed to check existing email", Cause: err}
	}

	_, err = conn.ExecContext(ctx,
		`INSERT INTO candidates (name, email, score, job_role) VALUES (?, ?, ?, ?)`,
		c.Name, c.Email, c.Score, c.JobRole,
	)
	if err != nil {
		return false, &PersistenceError{Store: "candidate", Message: fmt.Sprintf("failed to insert candidate %s", c.Email), Cause: err}
	}
	return true, nil
}

// List returns all shortlisted candidates ordered by insertion.
func (s *CandidateStore) List(ctx context.Context) ([]types.Candidate, error) {
	conn, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx,
		`SELECT id, name, email, score, job_role FROM candidates ORDER BY id`)
	if err != nil {
		return nil, &PersistenceError{Store: "candidate", Message: "failed to query candidates", Cause: err}
	}
	defer rows.Close()

	var out []types.Candidate
	for rows.Next() {
		var c types.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Score, &c.JobRole); err != nil {
			return nil, &PersistenceError{Store: "candidate", Message: "failed to scan candidate row", Cause: err}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Store: "candidate", Message: "failed to iterate candidates", Cause: err}
	}
	return out, nil
}
