package spaced_repetition

import (
	"sort"
	"time"

	"github.com/example/vbcards/pkg/models"
)

// NextReview computes when a word should come up again. The delay grows with
// the proficiency tier, and within a tier repeated correct answers push the
// review further out.
func NextReview(level models.ProficiencyLevel, correctStreak int, now time.Time) time.Time {
	var hours int
	switch level {
	case models.ProficiencyLearning:
		hours = 4 + 2*correctStreak
	case models.ProficiencyFamiliar:
		hours = 24 + 12*correctStreak
	case models.ProficiencyMastered:
		hours = 168 + 168*correctStreak // week-scale, streak-multiplied
	default: // new
		hours = 1
	}
	return now.Add(time.Duration(hours) * time.Hour)
}

// DueForReview filters words whose review time has arrived and orders them by
// priority: unseen words first, then by how overdue they are. The result is
// capped at limit when limit is positive.
func DueForReview(progress []models.WordProgress, now time.Time, limit int) []models.WordProgress {
	var due []models.WordProgress
	for _, p := range progress {
		if !p.NextReviewAt.After(now) {
			due = append(due, p)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].Proficiency == models.ProficiencyNew && due[j].Proficiency != models.ProficiencyNew {
			return true
		}
		if due[j].Proficiency == models.ProficiencyNew && due[i].Proficiency != models.ProficiencyNew {
			return false
		}
		return due[i].NextReviewAt.Before(due[j].NextReviewAt)
	})

	if limit > 0 && len(due) > limit {
		return due[:limit]
	}
	return due
}
