package models

import (
	"fmt"
	"time"
)

// DateKeyLayout is the calendar-day key format. ISO dates sort
// lexicographically in chronological order, which the streak walk relies on.
const DateKeyLayout = "2006-01-02"

// DateKey formats a timestamp as the calendar-day key for daily stats.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// DailyStatsID builds the composite key for a (user, day) pair.
func DailyStatsID(userID, dateKey string) string {
	return fmt.Sprintf("%s:%s", userID, dateKey)
}

// DailyStats accumulates one user's activity for one calendar day.
type DailyStats struct {
	ID             string `json:"id" db:"id"` // "userId:YYYY-MM-DD"
	UserID         string `json:"user_id" db:"user_id"`
	Date           string `json:"date" db:"date"` // YYYY-MM-DD
	TotalWords     int    `json:"total_words" db:"total_words"`
	NewWords       int    `json:"new_words" db:"new_words"`
	ReviewWords    int    `json:"review_words" db:"review_words"`
	CorrectCount   int    `json:"correct_count" db:"correct_count"`
	IncorrectCount int    `json:"incorrect_count" db:"incorrect_count"`
	StudyTimeSec   int    `json:"study_time_sec" db:"study_time_sec"`
	Levels         []int  `json:"levels"` // levels touched that day
}

// TouchLevel records that a level was studied, keeping the list unique.
func (s *DailyStats) TouchLevel(level int) {
	for _, l := range s.Levels {
		if l == level {
			return
		}
	}
	s.Levels = append(s.Levels, level)
}
