package models

import "time"

// UserProfile represents one local learner on this device.
// The snapshot fields are derived from progress data after every recorded
// attempt so the profile picker can render without extra queries.
type UserProfile struct {
	UserID       string    `json:"user_id" db:"user_id"` // UUID v4
	Name         string    `json:"name" db:"name"`
	Avatar       string    `json:"avatar" db:"avatar"` // emoji token
	ThemeColor   string    `json:"theme_color" db:"theme_color"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	LastActiveAt time.Time `json:"last_active_at" db:"last_active_at"`

	// Derived snapshot
	TotalWordsLearned int `json:"total_words_learned" db:"total_words_learned"`
	CurrentStreak     int `json:"current_streak" db:"current_streak"`
	LongestStreak     int `json:"longest_streak" db:"longest_streak"`
}

// MaxProfileNameLen bounds the display name, matching the profile creator UI.
const MaxProfileNameLen = 32
