package learning

import (
	"context"
	"time"

	"github.com/example/vbcards/internal/spaced_repetition"
	"github.com/example/vbcards/pkg/models"
)

// DefaultReviewLimit caps a review session when the caller passes no limit.
const DefaultReviewLimit = 20

// Overview aggregates a user's progress across all levels.
type Overview struct {
	TotalWords       int     `json:"total_words"`
	New              int     `json:"new"`
	Learning         int     `json:"learning"`
	Familiar         int     `json:"familiar"`
	Mastered         int     `json:"mastered"`
	TotalAttempts    int     `json:"total_attempts"`
	CorrectAnswers   int     `json:"correct_answers"`
	IncorrectAnswers int     `json:"incorrect_answers"`
	AverageAccuracy  float64 `json:"average_accuracy"` // percent
}

// LevelProgress summarizes a user's progress within one vocabulary level.
type LevelProgress struct {
	Level           int     `json:"level"`
	TotalWords      int     `json:"total_words"` // from the level manifest
	LearnedWords    int     `json:"learned_words"`
	NewCount        int     `json:"new_count"`
	LearningCount   int     `json:"learning_count"`
	FamiliarCount   int     `json:"familiar_count"`
	MasteredCount   int     `json:"mastered_count"`
	ProgressPercent float64 `json:"progress_percent"`
}

// Queries is the read side of the engine: everything the UI renders comes
// through here and nothing here mutates state.
type Queries struct {
	progress  ProgressStore
	daily     DailyStatsStore
	manifests ManifestSource
	clock     func() time.Time
}

// NewQueries wires the read-side stores with the real clock.
func NewQueries(progress ProgressStore, daily DailyStatsStore, manifests ManifestSource) *Queries {
	return &Queries{
		progress:  progress,
		daily:     daily,
		manifests: manifests,
		clock:     time.Now,
	}
}

// WordProgress returns progress for one word, or nil if never attempted.
func (q *Queries) WordProgress(ctx context.Context, userID, wordID string, level int) (*models.WordProgress, error) {
	return q.progress.GetByID(ctx, models.ProgressID(userID, level, wordID))
}

// UserProgress returns all progress rows for a user.
func (q *Queries) UserProgress(ctx context.Context, userID string) ([]models.WordProgress, error) {
	return q.progress.ListByUser(ctx, userID)
}

// DueForReview returns words whose review time has arrived, unseen words
// first, capped at limit (DefaultReviewLimit when limit <= 0).
func (q *Queries) DueForReview(ctx context.Context, userID string, limit int) ([]models.WordProgress, error) {
	if limit <= 0 {
		limit = DefaultReviewLimit
	}
	all, err := q.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return spaced_repetition.DueForReview(all, q.clock(), limit), nil
}

// DueCount returns how many words are currently due, without a cap.
func (q *Queries) DueCount(ctx context.Context, userID string) (int, error) {
	all, err := q.progress.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(spaced_repetition.DueForReview(all, q.clock(), 0)), nil
}

// UserOverview aggregates tier counts and accuracy across all of a user's
// progress rows.
func (q *Queries) UserOverview(ctx context.Context, userID string) (*Overview, error) {
	all, err := q.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	o := &Overview{TotalWords: len(all)}
	for _, p := range all {
		switch p.Proficiency {
		case models.ProficiencyNew:
			o.New++
		case models.ProficiencyLearning:
			o.Learning++
		case models.ProficiencyFamiliar:
			o.Familiar++
		case models.ProficiencyMastered:
			o.Mastered++
		}
		o.TotalAttempts += p.TotalAttempts
		o.CorrectAnswers += p.CorrectCount
		o.IncorrectAnswers += p.IncorrectCount
	}
	if o.TotalAttempts > 0 {
		o.AverageAccuracy = float64(o.CorrectAnswers) / float64(o.TotalAttempts) * 100
	}
	return o, nil
}

// LevelProgress joins a user's per-level tier counts with the manifest's
// total word count. A missing manifest leaves TotalWords at zero.
func (q *Queries) LevelProgress(ctx context.Context, userID string, level int) (*LevelProgress, error) {
	rows, err := q.progress.ListByUserAndLevel(ctx, userID, level)
	if err != nil {
		return nil, err
	}

	lp := &LevelProgress{Level: level, LearnedWords: len(rows)}
	for _, p := range rows {
		switch p.Proficiency {
		case models.ProficiencyNew:
			lp.NewCount++
		case models.ProficiencyLearning:
			lp.LearningCount++
		case models.ProficiencyFamiliar:
			lp.FamiliarCount++
		case models.ProficiencyMastered:
			lp.MasteredCount++
		}
	}

	if manifest, err := q.manifests.Level(level); err == nil && manifest != nil {
		lp.TotalWords = manifest.TotalWords
		if lp.TotalWords > 0 {
			lp.ProgressPercent = float64(lp.LearnedWords) / float64(lp.TotalWords) * 100
		}
	}
	return lp, nil
}

// DailyStats returns the raw per-day aggregates for a user.
func (q *Queries) DailyStats(ctx context.Context, userID string) ([]models.DailyStats, error) {
	return q.daily.ListByUser(ctx, userID)
}
