package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"tableflip.dev/dday/pkg/exam"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS exams (
    position INTEGER NOT NULL,
    id TEXT NOT NULL DEFAULT '',
    subject TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    note TEXT NOT NULL DEFAULT '',
    owner TEXT NOT NULL DEFAULT ''
);
`

// SQLite keeps the schedule in a single table. A bulk write replaces every
// row in one transaction.
type SQLite struct {
	db   *sql.DB
	path string
}

var _ Persistence = (*SQLite)(nil)

// NewSQLite opens (creating if needed) the database at path.
func NewSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: create database directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

func (s *SQLite) Path() string { return s.path }

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) ReadAll(ctx context.Context) ([]exam.Exam, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, subject, date, description, note, owner FROM exams ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("store: query exams: %w", err)
	}
	defer rows.Close()

	var exams []exam.Exam
	for rows.Next() {
		var e exam.Exam
		if err := rows.Scan(&e.ID, &e.Subject, &e.Date, &e.Desc, &e.Note, &e.Owner); err != nil {
			return nil, fmt.Errorf("store: scan exam: %w", err)
		}
		exams = append(exams, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate exams: %w", err)
	}
	return exams, nil
}

func (s *SQLite) WriteAll(ctx context.Context, exams []exam.Exam) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM exams"); err != nil {
		return fmt.Errorf("store: clear exams: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO exams (position, id, subject, date, description, note, owner) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("store: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range exams {
		if _, err := stmt.ExecContext(ctx, i, e.ID, e.Subject, e.Date, e.Desc, e.Note, e.Owner); err != nil {
			return fmt.Errorf("store: insert exam %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}
