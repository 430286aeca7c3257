// Package store handles SQLite persistence of test results.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/katype/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for result history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY,
			run_id TEXT NOT NULL UNIQUE,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			lang TEXT NOT NULL,
			words INTEGER NOT NULL,
			typed_words INTEGER NOT NULL,
			correct_words INTEGER NOT NULL,
			duration_s INTEGER NOT NULL,
			wpm REAL NOT NULL,
			acc REAL NOT NULL,
			consistency REAL NOT NULL,
			code TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_ended_at ON results(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// NewRunID returns a random identifier for a run.
func NewRunID() string {
	return uuid.New().String()
}

// timeLayout is fixed width so stored UTC times order correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// InsertResult stores a completed run. A missing RunID is filled with a new
// random UUID; the stored run ID is written back into run.
func (s *Store) InsertResult(ctx context.Context, run *model.Run) (int64, error) {
	if run.RunID == "" {
		run.RunID = NewRunID()
	} else if _, err := uuid.Parse(run.RunID); err != nil {
		return 0, fmt.Errorf("invalid run id %q: %w", run.RunID, err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO results (run_id, started_at, ended_at, lang, words, typed_words, correct_words, duration_s, wpm, acc, consistency, code)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		formatTime(run.StartedAt),
		formatTime(run.EndedAt),
		run.Lang,
		run.Words,
		run.TypedWords,
		run.CorrectWords,
		run.DurationS,
		run.WPM,
		run.Accuracy,
		run.Consistency,
		run.Code,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	run.ID = id
	return id, nil
}

// ListResults returns runs filtered by stats config, oldest first.
func (s *Store) ListResults(ctx context.Context, cfg model.StatsConfig) ([]model.Run, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Lang != "" {
		clauses = append(clauses, "lang = ?")
		args = append(args, cfg.Lang)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, formatTime(*cfg.Since))
	}
	query := fmt.Sprintf(`SELECT id, run_id, started_at, ended_at, lang, words, typed_words, correct_words, duration_s, wpm, acc, consistency, code
		FROM results
		WHERE %s
		ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.Run
	for rows.Next() {
		var run model.Run
		var startedAt, endedAt string
		if err := rows.Scan(&run.ID, &run.RunID, &startedAt, &endedAt, &run.Lang, &run.Words, &run.TypedWords,
			&run.CorrectWords, &run.DurationS, &run.WPM, &run.Accuracy, &run.Consistency, &run.Code); err != nil {
			return nil, err
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if run.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}
