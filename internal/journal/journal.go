// Package journal records finished runs in a SQLite database.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tatianab/budget-survival/internal/models"
)

// timeFormat is fixed width so ended_at sorts chronologically as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id        TEXT PRIMARY KEY,
	ended_at  TEXT NOT NULL,
	reason    TEXT NOT NULL,
	months    INTEGER NOT NULL,
	days      INTEGER NOT NULL,
	day       INTEGER NOT NULL,
	budget    REAL NOT NULL,
	happiness INTEGER NOT NULL,
	comfort   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_ended_at ON runs(ended_at);
`

// Run is a journal entry.
type Run struct {
	ID      string
	EndedAt time.Time
	models.RunSummary
}

// Store is a SQLite-backed run journal.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (and creates if needed) the journal at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun stores a finished run and returns its id.
func (s *Store) RecordRun(ctx context.Context, summary models.RunSummary) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, ended_at, reason, months, days, day, budget, happiness, comfort)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		s.now().UTC().Format(timeFormat),
		string(summary.Reason),
		summary.MonthsCompleted,
		summary.DaysPlayed,
		summary.Day,
		summary.Budget,
		summary.Happiness,
		summary.Comfort,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ended_at, reason, months, days, day, budget, happiness, comfort
		 FROM runs ORDER BY ended_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			endedAt string
			reason  string
		)
		if err := rows.Scan(&r.ID, &endedAt, &reason, &r.MonthsCompleted, &r.DaysPlayed,
			&r.Day, &r.Budget, &r.Happiness, &r.Comfort); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Reason = models.GameOverReason(reason)
		if r.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, fmt.Errorf("parse ended_at: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
