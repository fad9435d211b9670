package learning

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/vbcards/internal/spaced_repetition"
	"github.com/example/vbcards/pkg/models"
)

// Recorder ingests answer attempts. Each attempt updates the word's
// proficiency state, reschedules its next review, appends a history record,
// folds the attempt into today's daily stats and refreshes the user profile
// snapshot.
type Recorder struct {
	progress ProgressStore
	history  HistoryStore
	daily    DailyStatsStore
	profiles ProfileStore
	logger   *logrus.Logger
	clock    func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRecorder wires the stores with the real clock.
func NewRecorder(progress ProgressStore, history HistoryStore, daily DailyStatsStore, profiles ProfileStore, logger *logrus.Logger) *Recorder {
	return &Recorder{
		progress: progress,
		history:  history,
		daily:    daily,
		profiles: profiles,
		logger:   logger,
		clock:    time.Now,
		locks:    make(map[string]*sync.Mutex),
	}
}

// lock serializes attempts addressed to the same progress key, so a rapid
// double submission cannot read-modify-write stale counters.
func (r *Recorder) lock(progressID string) func() {
	r.mu.Lock()
	m, ok := r.locks[progressID]
	if !ok {
		m = &sync.Mutex{}
		r.locks[progressID] = m
	}
	r.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// RecordAttempt applies one answer attempt and returns the updated progress.
// Any step failing aborts the remaining steps and surfaces the error; there
// is no automatic retry, and replaying the same attempt advances the counters
// again.
func (r *Recorder) RecordAttempt(ctx context.Context, userID, wordID, word string, level int, isCorrect bool, method models.InputMethod) (*models.WordProgress, error) {
	if !method.Valid() {
		return nil, models.ErrInvalidInputMethod
	}

	progressID := models.ProgressID(userID, level, wordID)
	unlock := r.lock(progressID)
	defer unlock()

	now := r.clock()

	progress, err := r.progress.GetByID(ctx, progressID)
	if err != nil {
		return nil, err
	}
	created := progress == nil
	if created {
		progress = &models.WordProgress{
			ID:             progressID,
			UserID:         userID,
			WordID:         wordID,
			Word:           word,
			Level:          level,
			Proficiency:    models.ProficiencyNew,
			FirstLearnedAt: now,
			LastReviewedAt: now,
			NextReviewAt:   spaced_repetition.NextReview(models.ProficiencyNew, 0, now),
		}
	}

	progress.TotalAttempts++
	progress.LastReviewedAt = now
	if isCorrect {
		progress.CorrectCount++
		progress.CorrectStreak++
		progress.InputMethods.For(method).Correct++
	} else {
		progress.IncorrectCount++
		progress.CorrectStreak = 0 // reset streak on incorrect answer
		progress.InputMethods.For(method).Incorrect++
	}

	progress.Proficiency = spaced_repetition.Classify(
		progress.CorrectCount,
		progress.IncorrectCount,
		progress.CorrectStreak,
	)
	progress.NextReviewAt = spaced_repetition.NextReview(progress.Proficiency, progress.CorrectStreak, now)

	if err := r.progress.Upsert(ctx, progress); err != nil {
		return nil, err
	}

	attempt := &models.LearningHistory{
		ID:          models.HistoryID(progressID, now),
		UserID:      userID,
		WordID:      wordID,
		Word:        word,
		Level:       level,
		Timestamp:   now,
		IsCorrect:   isCorrect,
		InputMethod: method,
	}
	if err := r.history.Append(ctx, attempt); err != nil {
		return nil, err
	}

	if err := r.updateDailyStats(ctx, userID, level, isCorrect, created, now); err != nil {
		return nil, err
	}

	if err := r.updateProfileSnapshot(ctx, userID, now); err != nil {
		return nil, err
	}

	r.logger.WithFields(logrus.Fields{
		"progress_id": progressID,
		"correct":     isCorrect,
		"method":      method,
		"proficiency": progress.Proficiency,
	}).Debug("attempt recorded")

	return progress, nil
}

// updateDailyStats folds the attempt into today's aggregate row.
func (r *Recorder) updateDailyStats(ctx context.Context, userID string, level int, isCorrect, firstAttempt bool, now time.Time) error {
	dateKey := models.DateKey(now)

	stats, err := r.daily.Get(ctx, userID, dateKey)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = &models.DailyStats{
			ID:     models.DailyStatsID(userID, dateKey),
			UserID: userID,
			Date:   dateKey,
		}
	}

	stats.TotalWords++
	if firstAttempt {
		stats.NewWords++
	} else {
		stats.ReviewWords++
	}
	if isCorrect {
		stats.CorrectCount++
	} else {
		stats.IncorrectCount++
	}
	stats.TouchLevel(level)

	return r.daily.Upsert(ctx, stats)
}

// updateProfileSnapshot recomputes the derived profile fields. Words learned
// is a full scan over the user's progress rows; fine at per-user corpus
// sizes in the hundreds.
func (r *Recorder) updateProfileSnapshot(ctx context.Context, userID string, now time.Time) error {
	profile, err := r.profiles.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		// Attempts recorded outside a profile still count toward word
		// progress; there is just no snapshot to refresh.
		return nil
	}

	allProgress, err := r.progress.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	learned := 0
	for _, p := range allProgress {
		if p.CorrectCount > 0 {
			learned++
		}
	}

	streak, err := r.Streak(ctx, userID)
	if err != nil {
		return err
	}

	profile.TotalWordsLearned = learned
	profile.CurrentStreak = streak.Current
	if streak.Longest > profile.LongestStreak {
		profile.LongestStreak = streak.Longest
	}
	profile.LastActiveAt = now

	return r.profiles.Upsert(ctx, profile)
}

// Streak derives the user's consecutive-day streaks from daily stats.
func (r *Recorder) Streak(ctx context.Context, userID string) (StreakResult, error) {
	stats, err := r.daily.ListByUser(ctx, userID)
	if err != nil {
		return StreakResult{}, fmt.Errorf("failed to derive streak: %w", err)
	}
	return CalculateStreak(stats, r.clock()), nil
}
