// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/readability/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timestampLayout is fixed-width so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for analysis history.
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
		`CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			text TEXT NOT NULL,
			letters INTEGER NOT NULL,
			words INTEGER NOT NULL,
			sentences INTEGER NOT NULL,
			grade_index INTEGER NOT NULL,
			grade TEXT NOT NULL,
			computable INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_grade ON analyses(grade);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAnalysis stores an analysis and returns its id.
func (s *Store) InsertAnalysis(ctx context.Context, a model.Analysis) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (created_at, text, letters, words, sentences, grade_index, grade, computable)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.CreatedAt.UTC().Format(timestampLayout),
		a.Text,
		a.Letters,
		a.Words,
		a.Sentences,
		a.Index,
		a.Grade,
		boolToInt(a.Computable),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func historyFilter(cfg model.HistoryConfig) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Grade != "" {
		clauses = append(clauses, "grade = ?")
		args = append(args, cfg.Grade)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, cfg.Since.UTC().Format(timestampLayout))
	}
	return strings.Join(clauses, " AND "), args
}

// ListAnalyses returns analyses filtered by history config, oldest first.
func (s *Store) ListAnalyses(ctx context.Context, cfg model.HistoryConfig) ([]model.Analysis, error) {
	where, args := historyFilter(cfg)
	query := fmt.Sprintf(`SELECT id, created_at, text, letters, words, sentences, grade_index, grade, computable
		FROM analyses
		WHERE %s
		ORDER BY created_at ASC, id ASC`, where)
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

	var analyses []model.Analysis
	for rows.Next() {
		var a model.Analysis
		var createdAt string
		if err := rows.Scan(&a.ID, &createdAt, &a.Text, &a.Letters, &a.Words, &a.Sentences, &a.Index, &a.Grade, &a.Computable); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timestampLayout, createdAt)
		if err != nil {
			return nil, err
		}
		a.CreatedAt = parsed
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return analyses, nil
}

// GradeCounts returns the number of analyses per grade label, most frequent first.
func (s *Store) GradeCounts(ctx context.Context, cfg model.HistoryConfig) ([]model.GradeCount, error) {
	where, args := historyFilter(cfg)
	query := fmt.Sprintf(`SELECT grade, COUNT(*) AS n
		FROM analyses
		WHERE %s
		GROUP BY grade
		ORDER BY n DESC, grade ASC`, where)
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

	var result []model.GradeCount
	for rows.Next() {
		var gc model.GradeCount
		if err := rows.Scan(&gc.Grade, &gc.Count); err != nil {
			return nil, err
		}
		result = append(result, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Prune deletes all but the newest keep analyses and returns how many were removed.
// A non-positive keep leaves the table untouched.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM analyses WHERE id NOT IN (
			SELECT id FROM analyses ORDER BY created_at DESC, id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
