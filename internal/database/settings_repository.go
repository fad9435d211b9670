package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/vbcards/pkg/models"
)

// SettingsRepository handles database operations for per-user settings and
// the global app settings singleton.
type SettingsRepository struct {
	store *Store
}

// NewSettingsRepository creates a new repository instance.
func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// GetUserSettings returns settings for a user, or nil when absent.
func (r *SettingsRepository) GetUserSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	query := r.store.rebind(`
		SELECT user_id, start_date, enable_reminders, daily_goal, total_study_sec
		FROM user_settings
		WHERE user_id = ?
	`)
	var settings models.UserSettings
	err := r.store.db.GetContext(ctx, &settings, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return &settings, nil
}

// UpsertUserSettings writes settings for a user.
func (r *SettingsRepository) UpsertUserSettings(ctx context.Context, s *models.UserSettings) error {
	query := r.store.rebind(`
		INSERT INTO user_settings (user_id, start_date, enable_reminders, daily_goal, total_study_sec)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			enable_reminders = EXCLUDED.enable_reminders,
			daily_goal = EXCLUDED.daily_goal,
			total_study_sec = EXCLUDED.total_study_sec
	`)
	_, err := r.store.db.ExecContext(ctx, query,
		s.UserID, s.StartDate, s.EnableReminders, s.DailyGoal, s.TotalStudySec,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user settings: %w", err)
	}
	return nil
}

// GetAppSettings returns the global settings row, creating the default row on
// first access.
func (r *SettingsRepository) GetAppSettings(ctx context.Context) (*models.AppSettings, error) {
	query := r.store.rebind(`
		SELECT id, last_active_user_id, show_profile_selector, version
		FROM app_settings
		WHERE id = ?
	`)
	var settings models.AppSettings
	err := r.store.db.GetContext(ctx, &settings, query, models.AppSettingsID)
	if errors.Is(err, sql.ErrNoRows) {
		settings = models.AppSettings{
			ID:                  models.AppSettingsID,
			ShowProfileSelector: true,
			Version:             models.SchemaVersion,
		}
		if err := r.UpsertAppSettings(ctx, &settings); err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get app settings: %w", err)
	}
	return &settings, nil
}

// UpsertAppSettings writes the global settings row.
func (r *SettingsRepository) UpsertAppSettings(ctx context.Context, s *models.AppSettings) error {
	query := r.store.rebind(`
		INSERT INTO app_settings (id, last_active_user_id, show_profile_selector, version)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			last_active_user_id = EXCLUDED.last_active_user_id,
			show_profile_selector = EXCLUDED.show_profile_selector,
			version = EXCLUDED.version
	`)
	_, err := r.store.db.ExecContext(ctx, query,
		s.ID, s.LastActiveUserID, s.ShowProfileSelector, s.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert app settings: %w", err)
	}
	return nil
}

// SetLastActiveUser records which profile was used most recently. An empty
// userID clears the pointer.
func (r *SettingsRepository) SetLastActiveUser(ctx context.Context, userID string) error {
	settings, err := r.GetAppSettings(ctx)
	if err != nil {
		return err
	}
	settings.LastActiveUserID = userID
	return r.UpsertAppSettings(ctx, settings)
}
