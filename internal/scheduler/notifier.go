package scheduler

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/example/vbcards/pkg/models"
)

// LogNotifier writes reminders to the application log. It is the default
// channel when no external one is configured.
type LogNotifier struct {
	logger *logrus.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendReminder(profile *models.UserProfile, dueWords, remainingGoal int) error {
	n.logger.WithFields(logrus.Fields{
		"user_id":        profile.UserID,
		"name":           profile.Name,
		"due_words":      dueWords,
		"remaining_goal": remainingGoal,
	}).Info("review reminder")
	return nil
}

// TelegramNotifier delivers reminders to a Telegram chat. One chat serves
// the whole device since all profiles are local.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier creates a notifier backed by the Telegram bot API.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) SendReminder(profile *models.UserProfile, dueWords, remainingGoal int) error {
	text := fmt.Sprintf("%s %s: %d word(s) due for review", profile.Avatar, profile.Name, dueWords)
	if remainingGoal > 0 {
		text += fmt.Sprintf(", %d more to reach today's goal", remainingGoal)
	}
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	return nil
}
