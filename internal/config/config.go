package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Data     DataConfig     `mapstructure:"data"`
	Log      LogConfig      `mapstructure:"log"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

// DatabaseConfig selects and parameterizes the storage driver.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "sqlite" or "postgres"
	Path   string `mapstructure:"path"`   // sqlite database file
	URL    string `mapstructure:"url"`    // postgres connection string
}

// DataConfig locates the read-only vocabulary content.
type DataConfig struct {
	Dir      string `mapstructure:"dir"`
	MaxLevel int    `mapstructure:"max_level"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReminderConfig bounds the review-reminder window.
type ReminderConfig struct {
	Enabled   bool `mapstructure:"enabled"`
	StartHour int  `mapstructure:"start_hour"`
	EndHour   int  `mapstructure:"end_hour"`
}

// TelegramConfig enables the optional Telegram reminder channel when both
// fields are set.
type TelegramConfig struct {
	Token  string `mapstructure:"token"`
	ChatID int64  `mapstructure:"chat_id"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "data/vbcards.db")
	viper.SetDefault("database.url", "")

	viper.SetDefault("data.dir", "data")
	viper.SetDefault("data.max_level", 18)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	viper.SetDefault("reminder.enabled", true)
	viper.SetDefault("reminder.start_hour", 8)
	viper.SetDefault("reminder.end_hour", 22)

	viper.SetDefault("telegram.token", "")
	viper.SetDefault("telegram.chat_id", 0)
}
