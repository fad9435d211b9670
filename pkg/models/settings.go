package models

import "time"

// UserSettings holds low-cardinality per-user preferences.
type UserSettings struct {
	UserID          string    `json:"user_id" db:"user_id"`
	StartDate       time.Time `json:"start_date" db:"start_date"`
	EnableReminders bool      `json:"enable_reminders" db:"enable_reminders"`
	DailyGoal       int       `json:"daily_goal" db:"daily_goal"` // words per day
	TotalStudySec   int       `json:"total_study_sec" db:"total_study_sec"`
}

// DefaultUserSettings returns the settings written when a profile is created.
func DefaultUserSettings(userID string, now time.Time) *UserSettings {
	return &UserSettings{
		UserID:          userID,
		StartDate:       now,
		EnableReminders: true,
		DailyGoal:       10,
	}
}

// AppSettingsID is the key of the single global settings row.
const AppSettingsID = "app"

// SchemaVersion is written into the app settings row on first open.
const SchemaVersion = 2

// AppSettings is the global singleton configuration record.
// An empty LastActiveUserID means no user has been active yet.
type AppSettings struct {
	ID                  string `json:"id" db:"id"`
	LastActiveUserID    string `json:"last_active_user_id" db:"last_active_user_id"`
	ShowProfileSelector bool   `json:"show_profile_selector" db:"show_profile_selector"`
	Version             int    `json:"version" db:"version"`
}
