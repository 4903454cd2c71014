package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"quizdb/internal/qmeta"
)

// Store manages the question archive backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the archive database and applies
// migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Counts returns row counts for the tables surfaced by the status command.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	tables := []string{
		"question_set", "question_set_edition", "packet", "question",
		"tossup", "bonus", "bonus_part", "packet_question",
		"tournament", "round", "team", "player", "game", "buzz",
		"bonus_part_direct",
	}
	counts := make(map[string]int64, len(tables))
	for _, table := range tables {
		var count int64
		row := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM "+table)
		if err := row.Scan(&count); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableField(field qmeta.Field) any {
	if !field.Set {
		return nil
	}
	return field.Value
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}

func fieldFromNull(value sql.NullString) qmeta.Field {
	if !value.Valid {
		return qmeta.Field{}
	}
	return qmeta.Field{Value: value.String, Set: true}
}
