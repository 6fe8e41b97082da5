package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jalsahq/hydration-helper/internal/config"
)

func main() {
	fmt.Println("🔍 Checking configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("⚠️  .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Configuration invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Configuration valid!")
	fmt.Printf("📋 Details:\n")
	fmt.Printf("  - Telegram Token: %s\n", maskToken(cfg.TelegramToken))
	fmt.Printf("  - Owner Chat ID: %d\n", cfg.OwnerChatID)
	fmt.Printf("  - Storage Path: %s\n", cfg.Storage.Path)
	fmt.Printf("  - Reminder Enabled: %v\n", cfg.Reminder.Enabled)
	fmt.Printf("  - Reminder Interval: %s\n", cfg.Reminder.Interval)
	fmt.Printf("  - Log Level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log Output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log Format: %s\n", cfg.Logger.Format)
}

func maskToken(token string) string {
	if token == "" {
		return "<not set>"
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
