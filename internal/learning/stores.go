// Package learning contains the progress-tracking core: answer checking, the
// attempt recorder, streak derivation, profile lifecycle and the read-side
// queries the UI renders from.
package learning

import (
	"context"

	"github.com/example/vbcards/pkg/models"
)

// The store interfaces are satisfied by the repositories in
// internal/database. Point gets return (nil, nil) when the row is absent;
// callers decide whether that means "initialize" or "not found".

// ProgressStore persists per-word progress rows.
type ProgressStore interface {
	GetByID(ctx context.Context, id string) (*models.WordProgress, error)
	ListByUser(ctx context.Context, userID string) ([]models.WordProgress, error)
	ListByUserAndLevel(ctx context.Context, userID string, level int) ([]models.WordProgress, error)
	Upsert(ctx context.Context, p *models.WordProgress) error
}

// HistoryStore appends immutable attempt records.
type HistoryStore interface {
	Append(ctx context.Context, h *models.LearningHistory) error
}

// DailyStatsStore persists per-day aggregates.
type DailyStatsStore interface {
	Get(ctx context.Context, userID, dateKey string) (*models.DailyStats, error)
	ListByUser(ctx context.Context, userID string) ([]models.DailyStats, error)
	Upsert(ctx context.Context, s *models.DailyStats) error
}

// ProfileStore persists user profiles.
type ProfileStore interface {
	GetByID(ctx context.Context, userID string) (*models.UserProfile, error)
	List(ctx context.Context) ([]models.UserProfile, error)
	Upsert(ctx context.Context, p *models.UserProfile) error
}

// SettingsStore persists per-user settings and the app settings singleton.
type SettingsStore interface {
	GetUserSettings(ctx context.Context, userID string) (*models.UserSettings, error)
	UpsertUserSettings(ctx context.Context, s *models.UserSettings) error
	GetAppSettings(ctx context.Context) (*models.AppSettings, error)
	UpsertAppSettings(ctx context.Context, s *models.AppSettings) error
	SetLastActiveUser(ctx context.Context, userID string) error
}

// UserDataDeleter removes a user and all dependent rows atomically.
type UserDataDeleter interface {
	DeleteUserData(ctx context.Context, userID string) error
}

// ManifestSource provides read-only vocabulary manifests for level totals.
type ManifestSource interface {
	Level(level int) (*models.LevelManifest, error)
}
