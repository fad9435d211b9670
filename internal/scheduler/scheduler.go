// Package scheduler runs the periodic review-reminder job: inside the
// configured hour window it checks every profile with reminders enabled for
// due words and daily-goal shortfall, and hands the result to a Notifier.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/example/vbcards/internal/config"
	"github.com/example/vbcards/internal/learning"
	"github.com/example/vbcards/pkg/models"
)

// Notifier delivers a reminder to the user through some channel.
type Notifier interface {
	SendReminder(profile *models.UserProfile, dueWords, remainingGoal int) error
}

// Scheduler manages scheduled tasks for the application.
type Scheduler struct {
	scheduler *gocron.Scheduler
	cfg       config.ReminderConfig
	profiles  learning.ProfileStore
	settings  learning.SettingsStore
	queries   *learning.Queries
	notifier  Notifier
	logger    *logrus.Logger
	clock     func() time.Time
}

// New creates a new scheduler instance.
func New(cfg config.ReminderConfig, profiles learning.ProfileStore, settings learning.SettingsStore, queries *learning.Queries, notifier Notifier, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		cfg:       cfg,
		profiles:  profiles,
		settings:  settings,
		queries:   queries,
		notifier:  notifier,
		logger:    logger,
		clock:     time.Now,
	}
}

// Start begins running all scheduled tasks.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminders checks every profile and sends reminders where due.
func (s *Scheduler) checkAndSendReminders() {
	now := s.clock()
	hour := now.Hour()
	if hour < s.cfg.StartHour || hour > s.cfg.EndHour {
		s.logger.WithField("hour", hour).Debug("outside reminder window, skipping")
		return
	}

	ctx := context.Background()
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list profiles for reminders")
		return
	}

	for i := range profiles {
		if err := s.CheckUser(ctx, &profiles[i]); err != nil {
			s.logger.WithError(err).WithField("user_id", profiles[i].UserID).Error("reminder check failed")
		}
	}
}

// CheckUser runs the reminder check for one profile immediately, regardless
// of the hour window.
func (s *Scheduler) CheckUser(ctx context.Context, profile *models.UserProfile) error {
	settings, err := s.settings.GetUserSettings(ctx, profile.UserID)
	if err != nil {
		return err
	}
	if settings == nil || !settings.EnableReminders {
		return nil
	}

	due, err := s.queries.DueCount(ctx, profile.UserID)
	if err != nil {
		return err
	}

	remaining, err := s.remainingGoal(ctx, profile.UserID, settings.DailyGoal)
	if err != nil {
		return err
	}

	if due == 0 && remaining == 0 {
		return nil
	}
	return s.notifier.SendReminder(profile, due, remaining)
}

// remainingGoal returns how many words are still missing from today's goal.
func (s *Scheduler) remainingGoal(ctx context.Context, userID string, goal int) (int, error) {
	if goal <= 0 {
		return 0, nil
	}
	stats, err := s.queries.DailyStats(ctx, userID)
	if err != nil {
		return 0, err
	}
	today := models.DateKey(s.clock())
	for _, day := range stats {
		if day.Date == today {
			if day.TotalWords >= goal {
				return 0, nil
			}
			return goal - day.TotalWords, nil
		}
	}
	return goal, nil
}
