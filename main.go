package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/vbcards/internal/config"
	"github.com/example/vbcards/internal/database"
	"github.com/example/vbcards/internal/excel"
	"github.com/example/vbcards/internal/learning"
	"github.com/example/vbcards/internal/scheduler"
	"github.com/example/vbcards/internal/speech"
	"github.com/example/vbcards/internal/vocab"
	"github.com/example/vbcards/pkg/models"
)

func main() {
	importFile := flag.String("import", "", "import a word list (.xlsx or .csv) and exit")
	importLevel := flag.Int("level", 1, "level to import or practice")
	importLevelName := flag.String("level-name", "", "display name for the imported level")
	profileName := flag.String("profile", "", "profile to practice with (created if missing)")
	flag.Parse()

	// Local overrides live in .env; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to configure logger: %v", err)
	}

	if *importFile != "" {
		importConfig := excel.DefaultImportConfig()
		importConfig.FilePath = *importFile
		importConfig.OutputDir = cfg.Data.Dir
		importConfig.Level = *importLevel
		importConfig.LevelName = *importLevelName

		result, err := excel.ImportWords(importConfig)
		if err != nil {
			logger.WithError(err).Fatal("import failed")
		}
		logger.WithFields(map[string]interface{}{
			"processed": result.TotalProcessed,
			"imported":  result.Imported,
			"skipped":   result.Skipped,
			"manifest":  result.ManifestPath,
		}).Info("import finished")
		for _, e := range result.Errors {
			logger.Warn(e)
		}
		return
	}

	store := database.New(cfg.Database, logger)
	if err := store.Open(); err != nil {
		logger.WithError(err).Fatal("failed to open database")
	}
	defer store.Close()

	profileRepo := database.NewProfileRepository(store)
	progressRepo := database.NewProgressRepository(store)
	historyRepo := database.NewHistoryRepository(store)
	dailyRepo := database.NewDailyStatsRepository(store)
	settingsRepo := database.NewSettingsRepository(store)

	loader := vocab.NewLoader(cfg.Data.Dir, cfg.Data.MaxLevel)
	queries := learning.NewQueries(progressRepo, dailyRepo, loader)
	recorder := learning.NewRecorder(progressRepo, historyRepo, dailyRepo, profileRepo, logger)
	profiles := learning.NewProfileService(profileRepo, settingsRepo, store, logger)

	var notifier scheduler.Notifier = scheduler.NewLogNotifier(logger)
	if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != 0 {
		tn, err := scheduler.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			logger.WithError(err).Fatal("failed to set up telegram notifier")
		}
		notifier = tn
	}

	var reminders *scheduler.Scheduler
	if cfg.Reminder.Enabled {
		reminders = scheduler.New(cfg.Reminder, profileRepo, settingsRepo, queries, notifier, logger)
		reminders.Start()
		defer reminders.Stop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		sig := <-sigChan
		logger.WithField("signal", sig.String()).Info("shutting down")
		cancel()
	}()

	// No speech engine ships with the CLI; a host UI provides its own
	// Recognizer and the session falls back to keyboard without one.
	recognizer := speech.Unavailable{}

	if err := runPractice(ctx, *profileName, *importLevel, recognizer, loader, profiles, recorder, queries); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Fatal("practice session failed")
	}
}

// runPractice drives a practice session, due words first, then the rest of
// the level's cards. Answers come from the recognizer when one is usable,
// otherwise from stdin.
func runPractice(ctx context.Context, profileName string, level int, recognizer speech.Recognizer, loader *vocab.Loader, profiles *learning.ProfileService, recorder *learning.Recorder, queries *learning.Queries) error {
	profile, err := resolveProfile(ctx, profileName, profiles)
	if err != nil {
		return err
	}
	if err := profiles.TouchLastActive(ctx, profile.UserID); err != nil {
		return err
	}

	cards, err := loader.Cards(level)
	if err != nil {
		return fmt.Errorf("no vocabulary for level %d (run with -import first): %w", level, err)
	}

	due, err := queries.DueForReview(ctx, profile.UserID, 0)
	if err != nil {
		return err
	}
	order := practiceOrder(cards, due)

	method := models.InputKeyboard
	var transcripts <-chan string
	if speech.Supported(recognizer) {
		ch, err := recognizer.Recognize(ctx)
		if err != nil {
			return err
		}
		transcripts = ch
		method = models.InputSpeech
	}

	fmt.Printf("Practicing level %d as %s (%d cards, %d due). Answer each meaning; empty answer quits.\n",
		level, profile.Name, len(order), len(due))

	reader := bufio.NewReader(os.Stdin)
	for _, card := range order {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fmt.Printf("\n%s> ", card.Meaning)
		answer, ok := nextAnswer(reader, transcripts)
		if !ok || answer == "" {
			break
		}

		correct, err := learning.CheckAnswer(answer, card.Word, method)
		if err != nil {
			return err
		}
		progress, err := recorder.RecordAttempt(ctx, profile.UserID, fmt.Sprint(card.ID), card.Word, card.Level, correct, method)
		if err != nil {
			return err
		}
		if correct {
			fmt.Printf("correct (%s, streak %d)\n", progress.Proficiency, progress.CorrectStreak)
		} else {
			fmt.Printf("incorrect, it was %q (%s)\n", card.Word, progress.Proficiency)
		}
	}

	overview, err := queries.UserOverview(ctx, profile.UserID)
	if err != nil {
		return err
	}
	streak, err := recorder.Streak(ctx, profile.UserID)
	if err != nil {
		return err
	}
	fmt.Printf("\n%d words tracked: %d new, %d learning, %d familiar, %d mastered. Accuracy %.0f%%, streak %d day(s).\n",
		overview.TotalWords, overview.New, overview.Learning, overview.Familiar, overview.Mastered,
		overview.AverageAccuracy, streak.Current)
	return nil
}

// nextAnswer reads one answer, from the transcript stream in speech mode or
// from stdin otherwise.
func nextAnswer(reader *bufio.Reader, transcripts <-chan string) (string, bool) {
	if transcripts != nil {
		answer, ok := <-transcripts
		return answer, ok
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	return strings.TrimRight(line, "\n"), true
}

// resolveProfile finds the named profile, falling back to the most recently
// active one, creating a profile when none exists.
func resolveProfile(ctx context.Context, name string, profiles *learning.ProfileService) (*models.UserProfile, error) {
	all, err := profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	if name == "" {
		if len(all) > 0 {
			return &all[0], nil
		}
		return profiles.Create(ctx, "Learner", "🙂", "#6366f1")
	}
	for i := range all {
		if all[i].Name == name {
			return &all[i], nil
		}
	}
	return profiles.Create(ctx, name, "🙂", "#6366f1")
}

// practiceOrder puts due words first, then the remaining cards in manifest
// order, without repeats.
func practiceOrder(cards []models.FlashCard, due []models.WordProgress) []models.FlashCard {
	byWordID := make(map[string]models.FlashCard, len(cards))
	for _, c := range cards {
		byWordID[fmt.Sprint(c.ID)] = c
	}

	ordered := make([]models.FlashCard, 0, len(cards))
	seen := make(map[string]bool, len(cards))
	for _, p := range due {
		if c, ok := byWordID[p.WordID]; ok && !seen[p.WordID] {
			ordered = append(ordered, c)
			seen[p.WordID] = true
		}
	}
	for _, c := range cards {
		id := fmt.Sprint(c.ID)
		if !seen[id] {
			ordered = append(ordered, c)
			seen[id] = true
		}
	}
	return ordered
}
