package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/vbcards/pkg/models"
)

// DailyStatsRepository handles database operations for per-day aggregates.
type DailyStatsRepository struct {
	store *Store
}

// NewDailyStatsRepository creates a new repository instance.
func NewDailyStatsRepository(store *Store) *DailyStatsRepository {
	return &DailyStatsRepository{store: store}
}

func scanDailyStats(row sqlx.ColScanner) (*models.DailyStats, error) {
	var (
		s          models.DailyStats
		levelsJSON string
	)
	err := row.Scan(
		&s.ID, &s.UserID, &s.Date,
		&s.TotalWords, &s.NewWords, &s.ReviewWords,
		&s.CorrectCount, &s.IncorrectCount, &s.StudyTimeSec,
		&levelsJSON,
	)
	if err != nil {
		return nil, err
	}
	if levelsJSON != "" {
		if err := json.Unmarshal([]byte(levelsJSON), &s.Levels); err != nil {
			return nil, fmt.Errorf("failed to parse levels: %w", err)
		}
	}
	return &s, nil
}

// Get returns the stats row for a (user, day) pair, or nil when absent.
func (r *DailyStatsRepository) Get(ctx context.Context, userID, dateKey string) (*models.DailyStats, error) {
	query := r.store.rebind(`
		SELECT id, user_id, date, total_words, new_words, review_words,
		       correct_count, incorrect_count, study_time_sec, levels
		FROM daily_stats
		WHERE id = ?
	`)
	row := r.store.db.QueryRowxContext(ctx, query, models.DailyStatsID(userID, dateKey))
	stats, err := scanDailyStats(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}
	return stats, nil
}

// ListByUser returns all stats rows for a user, order unspecified.
func (r *DailyStatsRepository) ListByUser(ctx context.Context, userID string) ([]models.DailyStats, error) {
	query := r.store.rebind(`
		SELECT id, user_id, date, total_words, new_words, review_words,
		       correct_count, incorrect_count, study_time_sec, levels
		FROM daily_stats
		WHERE user_id = ?
	`)
	rows, err := r.store.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily stats: %w", err)
	}
	defer rows.Close()

	var result []models.DailyStats
	for rows.Next() {
		s, err := scanDailyStats(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily stats: %w", err)
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list daily stats: %w", err)
	}
	return result, nil
}

// Upsert writes a stats row, last write wins on the composite key.
func (r *DailyStatsRepository) Upsert(ctx context.Context, s *models.DailyStats) error {
	levels := s.Levels
	if levels == nil {
		levels = []int{}
	}
	levelsJSON, err := json.Marshal(levels)
	if err != nil {
		return fmt.Errorf("failed to marshal levels: %w", err)
	}

	query := r.store.rebind(`
		INSERT INTO daily_stats (
			id, user_id, date, total_words, new_words, review_words,
			correct_count, incorrect_count, study_time_sec, levels
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			total_words = EXCLUDED.total_words,
			new_words = EXCLUDED.new_words,
			review_words = EXCLUDED.review_words,
			correct_count = EXCLUDED.correct_count,
			incorrect_count = EXCLUDED.incorrect_count,
			study_time_sec = EXCLUDED.study_time_sec,
			levels = EXCLUDED.levels
	`)
	_, err = r.store.db.ExecContext(ctx, query,
		s.ID, s.UserID, s.Date,
		s.TotalWords, s.NewWords, s.ReviewWords,
		s.CorrectCount, s.IncorrectCount, s.StudyTimeSec,
		string(levelsJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily stats: %w", err)
	}
	return nil
}
