// Package database is the persistence layer for the progress engine. A Store
// owns the single database handle (sqlite by default, postgres optionally)
// and per-entity repositories provide point lookups, upserts and indexed
// range queries over it.
package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/example/vbcards/internal/config"
)

// Store wraps the database connection. It is constructed once and injected
// into the components that need it; Open is idempotent so repeated calls
// return the same handle without touching existing data.
type Store struct {
	cfg    config.DatabaseConfig
	logger *logrus.Logger

	mu sync.Mutex
	db *sqlx.DB
}

// New creates an unopened store.
func New(cfg config.DatabaseConfig, logger *logrus.Logger) *Store {
	return &Store{cfg: cfg, logger: logger}
}

// Open establishes the database connection and creates the schema if needed.
func (s *Store) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	var (
		db  *sqlx.DB
		err error
	)
	switch s.cfg.Driver {
	case "", "sqlite":
		if dir := filepath.Dir(s.cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		db, err = sqlx.Connect("sqlite3", s.cfg.Path)
		if err != nil {
			return fmt.Errorf("failed to connect to sqlite: %w", err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	case "postgres":
		db, err = sqlx.Connect("postgres", s.cfg.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", s.cfg.Driver)
	}

	if err := initializeSchema(db); err != nil {
		db.Close()
		return err
	}

	s.db = db
	s.logger.WithField("driver", db.DriverName()).Debug("database opened")
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// rebind converts ?-style placeholders to the driver's bind form.
func (s *Store) rebind(query string) string {
	return s.db.Rebind(query)
}

// DeleteUserData removes a profile and every dependent entity in one
// transaction, so a failed sweep leaves no orphaned rows.
func (s *Store) DeleteUserData(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{
		"word_progress", "learning_history", "daily_stats", "user_settings", "user_profiles",
	} {
		query := tx.Rebind(fmt.Sprintf("DELETE FROM %s WHERE user_id = ?", table))
		if _, err := tx.ExecContext(ctx, query, userID); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}

	return tx.Commit()
}

// initializeSchema creates necessary tables if they don't exist.
func initializeSchema(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS user_profiles (
			user_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			avatar TEXT NOT NULL,
			theme_color TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			last_active_at TIMESTAMP NOT NULL,
			total_words_learned INTEGER NOT NULL DEFAULT 0,
			current_streak INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_user_profiles_last_active ON user_profiles(last_active_at)`,

		`CREATE TABLE IF NOT EXISTS word_progress (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			word_id TEXT NOT NULL,
			word TEXT NOT NULL,
			level INTEGER NOT NULL,
			total_attempts INTEGER NOT NULL DEFAULT 0,
			correct_count INTEGER NOT NULL DEFAULT 0,
			incorrect_count INTEGER NOT NULL DEFAULT 0,
			proficiency TEXT NOT NULL DEFAULT 'new',
			correct_streak INTEGER NOT NULL DEFAULT 0,
			first_learned_at TIMESTAMP NOT NULL,
			last_reviewed_at TIMESTAMP NOT NULL,
			next_review_at TIMESTAMP NOT NULL,
			speech_correct INTEGER NOT NULL DEFAULT 0,
			speech_incorrect INTEGER NOT NULL DEFAULT 0,
			keyboard_correct INTEGER NOT NULL DEFAULT 0,
			keyboard_incorrect INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_word_progress_user ON word_progress(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_word_progress_user_level ON word_progress(user_id, level)`,

		`CREATE TABLE IF NOT EXISTS learning_history (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			word_id TEXT NOT NULL,
			word TEXT NOT NULL,
			level INTEGER NOT NULL,
			ts TIMESTAMP NOT NULL,
			is_correct BOOLEAN NOT NULL,
			input_method TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_learning_history_user ON learning_history(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_learning_history_user_ts ON learning_history(user_id, ts)`,

		`CREATE TABLE IF NOT EXISTS daily_stats (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			date TEXT NOT NULL,
			total_words INTEGER NOT NULL DEFAULT 0,
			new_words INTEGER NOT NULL DEFAULT 0,
			review_words INTEGER NOT NULL DEFAULT 0,
			correct_count INTEGER NOT NULL DEFAULT 0,
			incorrect_count INTEGER NOT NULL DEFAULT 0,
			study_time_sec INTEGER NOT NULL DEFAULT 0,
			levels TEXT NOT NULL DEFAULT '[]'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_stats_user ON daily_stats(user_id)`,

		`CREATE TABLE IF NOT EXISTS user_settings (
			user_id TEXT PRIMARY KEY,
			start_date TIMESTAMP NOT NULL,
			enable_reminders BOOLEAN NOT NULL DEFAULT true,
			daily_goal INTEGER NOT NULL DEFAULT 10,
			total_study_sec INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS app_settings (
			id TEXT PRIMARY KEY,
			last_active_user_id TEXT NOT NULL DEFAULT '',
			show_profile_selector BOOLEAN NOT NULL DEFAULT true,
			version INTEGER NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
