package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/notesweep/notesweep/internal/logging"
)

// Run is one recorded scan. Fields that a given mode does not produce stay
// at their zero value.
type Run struct {
	ID          int64
	Mode        string
	Root        string
	Tag         string
	TotalFiles  uint64
	TotalWords  uint64
	TaggedFiles uint64
	TaggedWords uint64
	Percentage  float64
	CreatedAt   time.Time
}

// Store provides run persistence on the history database.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RecordRun inserts a run row. CreatedAt is set to now if unset.
func (s *Store) RecordRun(r Run) error {
	logging.Sub("history").Debug("RecordRun", "mode", r.Mode, "root", r.Root, "tag", r.Tag)

	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO runs (mode, root, tag, total_files, total_words, tagged_files, tagged_words, percentage, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.Mode, r.Root, r.Tag, r.TotalFiles, r.TotalWords, r.TaggedFiles, r.TaggedWords, r.Percentage, createdAt.Unix())
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first, capped at limit.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT id, mode, root, tag, total_files, total_words, tagged_files, tagged_words, percentage, created_at
		FROM runs ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Mode, &r.Root, &r.Tag, &r.TotalFiles, &r.TotalWords,
			&r.TaggedFiles, &r.TaggedWords, &r.Percentage, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt = time.Unix(createdAt, 0)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
