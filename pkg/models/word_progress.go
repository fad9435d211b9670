package models

import (
	"fmt"
	"time"
)

// ProficiencyLevel is a coarse mastery classification for a word.
type ProficiencyLevel string

const (
	// ProficiencyNew marks a word with fewer than two attempts
	ProficiencyNew ProficiencyLevel = "new"
	// ProficiencyLearning marks a word the user has started practicing
	ProficiencyLearning ProficiencyLevel = "learning"
	// ProficiencyFamiliar marks a word with 75%+ accuracy and a streak of 3+
	ProficiencyFamiliar ProficiencyLevel = "familiar"
	// ProficiencyMastered marks a word with 90%+ accuracy and a streak of 5+
	ProficiencyMastered ProficiencyLevel = "mastered"
)

// InputMethod identifies how the user answered a card.
type InputMethod string

const (
	// InputSpeech means the answer came from speech recognition
	InputSpeech InputMethod = "speech"
	// InputKeyboard means the answer was typed
	InputKeyboard InputMethod = "keyboard"
)

// Valid reports whether the input method is one of the known values.
func (m InputMethod) Valid() bool {
	return m == InputSpeech || m == InputKeyboard
}

// MethodStats holds correct/incorrect counters for a single input method.
type MethodStats struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// InputMethodStats breaks attempt counters down by input method.
// The key set is closed, so this is a fixed record rather than a map.
type InputMethodStats struct {
	Speech   MethodStats `json:"speech"`
	Keyboard MethodStats `json:"keyboard"`
}

// For returns the counters for the given method.
func (s *InputMethodStats) For(m InputMethod) *MethodStats {
	if m == InputSpeech {
		return &s.Speech
	}
	return &s.Keyboard
}

// WordProgress tracks one user's proficiency with one word.
type WordProgress struct {
	ID             string           `json:"id" db:"id"` // "userId:level:wordId"
	UserID         string           `json:"user_id" db:"user_id"`
	WordID         string           `json:"word_id" db:"word_id"`
	Word           string           `json:"word" db:"word"`
	Level          int              `json:"level" db:"level"`
	TotalAttempts  int              `json:"total_attempts" db:"total_attempts"`
	CorrectCount   int              `json:"correct_count" db:"correct_count"`
	IncorrectCount int              `json:"incorrect_count" db:"incorrect_count"`
	Proficiency    ProficiencyLevel `json:"proficiency" db:"proficiency"`
	CorrectStreak  int              `json:"correct_streak" db:"correct_streak"` // consecutive correct since last miss
	FirstLearnedAt time.Time        `json:"first_learned_at" db:"first_learned_at"`
	LastReviewedAt time.Time        `json:"last_reviewed_at" db:"last_reviewed_at"`
	NextReviewAt   time.Time        `json:"next_review_at" db:"next_review_at"`
	InputMethods   InputMethodStats `json:"input_methods"`
}

// ProgressID builds the composite key for a (user, level, word) triple.
// The colon-joined form doubles as the index emulation scheme, so it must
// stay stable across schema versions.
func ProgressID(userID string, level int, wordID string) string {
	return fmt.Sprintf("%s:%d:%s", userID, level, wordID)
}
