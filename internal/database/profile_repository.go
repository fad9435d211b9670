package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/vbcards/pkg/models"
)

// ProfileRepository handles database operations for user profiles.
type ProfileRepository struct {
	store *Store
}

// NewProfileRepository creates a new repository instance.
func NewProfileRepository(store *Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

// GetByID returns a profile by user id, or nil when it does not exist.
func (r *ProfileRepository) GetByID(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := r.store.rebind(`
		SELECT user_id, name, avatar, theme_color, created_at, last_active_at,
		       total_words_learned, current_streak, longest_streak
		FROM user_profiles
		WHERE user_id = ?
	`)
	var profile models.UserProfile
	err := r.store.db.GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// List returns all profiles, most recently active first.
func (r *ProfileRepository) List(ctx context.Context) ([]models.UserProfile, error) {
	query := `
		SELECT user_id, name, avatar, theme_color, created_at, last_active_at,
		       total_words_learned, current_streak, longest_streak
		FROM user_profiles
		ORDER BY last_active_at DESC
	`
	var profiles []models.UserProfile
	if err := r.store.db.SelectContext(ctx, &profiles, query); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// Upsert writes a profile, replacing any existing row with the same user id.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	query := r.store.rebind(`
		INSERT INTO user_profiles (
			user_id, name, avatar, theme_color, created_at, last_active_at,
			total_words_learned, current_streak, longest_streak
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			avatar = EXCLUDED.avatar,
			theme_color = EXCLUDED.theme_color,
			last_active_at = EXCLUDED.last_active_at,
			total_words_learned = EXCLUDED.total_words_learned,
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak
	`)
	_, err := r.store.db.ExecContext(ctx, query,
		profile.UserID,
		profile.Name,
		profile.Avatar,
		profile.ThemeColor,
		profile.CreatedAt,
		profile.LastActiveAt,
		profile.TotalWordsLearned,
		profile.CurrentStreak,
		profile.LongestStreak,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
