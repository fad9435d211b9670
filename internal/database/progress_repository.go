package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/vbcards/pkg/models"
)

const progressColumns = `id, user_id, word_id, word, level,
	total_attempts, correct_count, incorrect_count, proficiency, correct_streak,
	first_learned_at, last_reviewed_at, next_review_at,
	speech_correct, speech_incorrect, keyboard_correct, keyboard_incorrect`

// ProgressRepository handles database operations for word progress.
type ProgressRepository struct {
	store *Store
}

// NewProgressRepository creates a new repository instance.
func NewProgressRepository(store *Store) *ProgressRepository {
	return &ProgressRepository{store: store}
}

func scanProgress(row sqlx.ColScanner) (*models.WordProgress, error) {
	var p models.WordProgress
	err := row.Scan(
		&p.ID, &p.UserID, &p.WordID, &p.Word, &p.Level,
		&p.TotalAttempts, &p.CorrectCount, &p.IncorrectCount, &p.Proficiency, &p.CorrectStreak,
		&p.FirstLearnedAt, &p.LastReviewedAt, &p.NextReviewAt,
		&p.InputMethods.Speech.Correct, &p.InputMethods.Speech.Incorrect,
		&p.InputMethods.Keyboard.Correct, &p.InputMethods.Keyboard.Incorrect,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID returns progress for a composite key, or nil when it does not exist.
func (r *ProgressRepository) GetByID(ctx context.Context, id string) (*models.WordProgress, error) {
	query := r.store.rebind("SELECT " + progressColumns + " FROM word_progress WHERE id = ?")
	row := r.store.db.QueryRowxContext(ctx, query, id)
	p, err := scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word progress: %w", err)
	}
	return p, nil
}

// ListByUser returns all progress rows for a user, order unspecified.
func (r *ProgressRepository) ListByUser(ctx context.Context, userID string) ([]models.WordProgress, error) {
	query := r.store.rebind("SELECT " + progressColumns + " FROM word_progress WHERE user_id = ?")
	return r.list(ctx, query, userID)
}

// ListByUserAndLevel returns all progress rows for a user within one level.
func (r *ProgressRepository) ListByUserAndLevel(ctx context.Context, userID string, level int) ([]models.WordProgress, error) {
	query := r.store.rebind("SELECT " + progressColumns + " FROM word_progress WHERE user_id = ? AND level = ?")
	return r.list(ctx, query, userID, level)
}

func (r *ProgressRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.WordProgress, error) {
	rows, err := r.store.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list word progress: %w", err)
	}
	defer rows.Close()

	var result []models.WordProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word progress: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list word progress: %w", err)
	}
	return result, nil
}

// Upsert writes a progress row, last write wins on the composite key.
func (r *ProgressRepository) Upsert(ctx context.Context, p *models.WordProgress) error {
	query := r.store.rebind(`
		INSERT INTO word_progress (` + progressColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			total_attempts = EXCLUDED.total_attempts,
			correct_count = EXCLUDED.correct_count,
			incorrect_count = EXCLUDED.incorrect_count,
			proficiency = EXCLUDED.proficiency,
			correct_streak = EXCLUDED.correct_streak,
			last_reviewed_at = EXCLUDED.last_reviewed_at,
			next_review_at = EXCLUDED.next_review_at,
			speech_correct = EXCLUDED.speech_correct,
			speech_incorrect = EXCLUDED.speech_incorrect,
			keyboard_correct = EXCLUDED.keyboard_correct,
			keyboard_incorrect = EXCLUDED.keyboard_incorrect
	`)
	_, err := r.store.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.WordID, p.Word, p.Level,
		p.TotalAttempts, p.CorrectCount, p.IncorrectCount, p.Proficiency, p.CorrectStreak,
		p.FirstLearnedAt, p.LastReviewedAt, p.NextReviewAt,
		p.InputMethods.Speech.Correct, p.InputMethods.Speech.Incorrect,
		p.InputMethods.Keyboard.Correct, p.InputMethods.Keyboard.Incorrect,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert word progress: %w", err)
	}
	return nil
}

// Delete removes a progress row by its composite key.
func (r *ProgressRepository) Delete(ctx context.Context, id string) error {
	query := r.store.rebind("DELETE FROM word_progress WHERE id = ?")
	if _, err := r.store.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete word progress: %w", err)
	}
	return nil
}
