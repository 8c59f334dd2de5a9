// Package store handles SQLite persistence of the custom phrase library.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/typeracer/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

var (
	// ErrPhraseNotFound is returned when a phrase id does not exist.
	ErrPhraseNotFound = errors.New("phrase not found")
	// ErrDuplicatePhrase is returned when the phrase already exists for the difficulty.
	ErrDuplicatePhrase = errors.New("phrase already exists")
)

// Store wraps SQLite access for custom phrases.
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
		`CREATE TABLE IF NOT EXISTS phrases (
			id INTEGER PRIMARY KEY,
			difficulty TEXT NOT NULL,
			text TEXT NOT NULL,
			created_at TEXT NOT NULL,
			UNIQUE (difficulty, text)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_phrases_difficulty ON phrases(difficulty);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// AddPhrase stores a phrase and returns its id.
func (s *Store) AddPhrase(ctx context.Context, difficulty, text string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO phrases (difficulty, text, created_at) VALUES (?, ?, ?)`,
		difficulty, text, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrDuplicatePhrase
	}
	return res.LastInsertId()
}

// ImportPhrases stores phrases in one transaction, skipping duplicates.
func (s *Store) ImportPhrases(ctx context.Context, difficulty string, texts []string) (added int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO phrases (difficulty, text, created_at) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, text := range texts {
		res, err := stmt.ExecContext(ctx, difficulty, text, now)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		added += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// ListPhrases returns phrases ordered by id. An empty difficulty lists all.
func (s *Store) ListPhrases(ctx context.Context, difficulty string) ([]model.Phrase, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, difficulty, text, created_at FROM phrases
		WHERE (? = '' OR difficulty = ?)
		ORDER BY id ASC`, difficulty, difficulty)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.Phrase
	for rows.Next() {
		var p model.Phrase
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Difficulty, &p.Text, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		p.CreatedAt = parsed
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// RemovePhrase deletes a phrase by id.
func (s *Store) RemovePhrase(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM phrases WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPhraseNotFound
	}
	return nil
}

// CountByDifficulty returns the number of stored phrases per difficulty.
func (s *Store) CountByDifficulty(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT difficulty, COUNT(*) FROM phrases GROUP BY difficulty`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	counts := map[string]int{}
	for rows.Next() {
		var difficulty string
		var n int
		if err := rows.Scan(&difficulty, &n); err != nil {
			return nil, err
		}
		counts[difficulty] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
