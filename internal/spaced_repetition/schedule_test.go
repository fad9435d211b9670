package spaced_repetition

import (
	"testing"
	"time"

	"github.com/example/vbcards/pkg/models"
)

func TestNextReview(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		level     models.ProficiencyLevel
		streak    int
		wantHours int
	}{
		{"new", models.ProficiencyNew, 0, 1},
		{"new ignores streak", models.ProficiencyNew, 4, 1},
		{"learning base", models.ProficiencyLearning, 0, 4},
		{"learning with streak", models.ProficiencyLearning, 3, 10},
		{"familiar base", models.ProficiencyFamiliar, 0, 24},
		{"familiar with streak", models.ProficiencyFamiliar, 4, 72},
		{"mastered base", models.ProficiencyMastered, 0, 168},
		{"mastered with streak", models.ProficiencyMastered, 5, 1008},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextReview(tt.level, tt.streak, now)
			want := now.Add(time.Duration(tt.wantHours) * time.Hour)
			if !got.Equal(want) {
				t.Errorf("NextReview(%s, %d) = %v, want %v", tt.level, tt.streak, got, want)
			}
		})
	}
}

// Within each tier the delay must never shrink as the streak grows.
func TestNextReviewMonotonicInStreak(t *testing.T) {
	now := time.Now()
	levels := []models.ProficiencyLevel{
		models.ProficiencyNew,
		models.ProficiencyLearning,
		models.ProficiencyFamiliar,
		models.ProficiencyMastered,
	}
	for _, level := range levels {
		prev := NextReview(level, 0, now)
		for streak := 1; streak <= 20; streak++ {
			next := NextReview(level, streak, now)
			if next.Before(prev) {
				t.Errorf("%s: delay shrank from streak %d to %d", level, streak-1, streak)
			}
			prev = next
		}
	}
}

func TestDueForReview(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	word := func(id string, level models.ProficiencyLevel, due time.Time) models.WordProgress {
		return models.WordProgress{ID: id, Proficiency: level, NextReviewAt: due}
	}

	progress := []models.WordProgress{
		word("future", models.ProficiencyLearning, now.Add(time.Hour)),
		word("overdue-familiar", models.ProficiencyFamiliar, now.Add(-48*time.Hour)),
		word("barely-due", models.ProficiencyLearning, now),
		word("new-word", models.ProficiencyNew, now.Add(-time.Hour)),
	}

	due := DueForReview(progress, now, 0)
	if len(due) != 3 {
		t.Fatalf("got %d due words, want 3", len(due))
	}
	// New words first, then most overdue.
	wantOrder := []string{"new-word", "overdue-familiar", "barely-due"}
	for i, id := range wantOrder {
		if due[i].ID != id {
			t.Errorf("due[%d] = %s, want %s", i, due[i].ID, id)
		}
	}

	limited := DueForReview(progress, now, 2)
	if len(limited) != 2 {
		t.Errorf("got %d due words with limit 2, want 2", len(limited))
	}
}
