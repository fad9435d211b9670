package database

import (
	"context"
	"fmt"
	"time"

	"github.com/example/vbcards/pkg/models"
)

// HistoryRepository handles database operations for the learning history log.
// History is append-only; there is no update or single-row delete.
type HistoryRepository struct {
	store *Store
}

// NewHistoryRepository creates a new repository instance.
func NewHistoryRepository(store *Store) *HistoryRepository {
	return &HistoryRepository{store: store}
}

// Append writes a new history record.
func (r *HistoryRepository) Append(ctx context.Context, h *models.LearningHistory) error {
	query := r.store.rebind(`
		INSERT INTO learning_history (id, user_id, word_id, word, level, ts, is_correct, input_method)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.store.db.ExecContext(ctx, query,
		h.ID, h.UserID, h.WordID, h.Word, h.Level, h.Timestamp, h.IsCorrect, h.InputMethod,
	)
	if err != nil {
		return fmt.Errorf("failed to append learning history: %w", err)
	}
	return nil
}

// ListByUser returns all history records for a user, oldest first.
func (r *HistoryRepository) ListByUser(ctx context.Context, userID string) ([]models.LearningHistory, error) {
	query := r.store.rebind(`
		SELECT id, user_id, word_id, word, level, ts, is_correct, input_method
		FROM learning_history
		WHERE user_id = ?
		ORDER BY ts ASC
	`)
	var history []models.LearningHistory
	if err := r.store.db.SelectContext(ctx, &history, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list learning history: %w", err)
	}
	return history, nil
}

// ListByUserBetween returns history records within [from, to), oldest first.
func (r *HistoryRepository) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]models.LearningHistory, error) {
	query := r.store.rebind(`
		SELECT id, user_id, word_id, word, level, ts, is_correct, input_method
		FROM learning_history
		WHERE user_id = ? AND ts >= ? AND ts < ?
		ORDER BY ts ASC
	`)
	var history []models.LearningHistory
	if err := r.store.db.SelectContext(ctx, &history, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("failed to list learning history: %w", err)
	}
	return history, nil
}
