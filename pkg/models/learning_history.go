package models

import (
	"fmt"
	"time"
)

// LearningHistory is an append-only record of a single answer attempt.
// Rows are immutable once written and are only read for analytics.
type LearningHistory struct {
	ID          string      `json:"id" db:"id"` // "userId:level:wordId:unixMillis"
	UserID      string      `json:"user_id" db:"user_id"`
	WordID      string      `json:"word_id" db:"word_id"`
	Word        string      `json:"word" db:"word"`
	Level       int         `json:"level" db:"level"`
	Timestamp   time.Time   `json:"timestamp" db:"ts"`
	IsCorrect   bool        `json:"is_correct" db:"is_correct"`
	InputMethod InputMethod `json:"input_method" db:"input_method"`
}

// HistoryID builds the composite key for a history record.
func HistoryID(progressID string, ts time.Time) string {
	return fmt.Sprintf("%s:%d", progressID, ts.UnixMilli())
}
