package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jalsahq/hydration-helper/internal/logger"
)

type Config struct {
	TelegramToken string
	OwnerChatID   int64
	Storage       StorageConfig
	Reminder      ReminderConfig
	Logger        LoggerConfig
}

type StorageConfig struct {
	Path string
}

type ReminderConfig struct {
	Enabled  bool
	Interval time.Duration
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	var ownerChatID int64
	if raw := os.Getenv("OWNER_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid OWNER_CHAT_ID %q: %w", raw, err)
		}
		ownerChatID = id
	}

	interval, err := time.ParseDuration(getEnvOrDefault("REMINDER_INTERVAL", "2h"))
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_INTERVAL: %w", err)
	}

	return &Config{
		TelegramToken: token,
		OwnerChatID:   ownerChatID,
		Storage: StorageConfig{
			Path: getEnvOrDefault("STORAGE_PATH", "hydration.db"),
		},
		Reminder: ReminderConfig{
			Enabled:  getEnvOrDefault("REMINDER_ENABLED", "true") == "true",
			Interval: interval,
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "logs/app.log"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}, nil
}
