package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jalsahq/hydration-helper/internal/bot"
	"github.com/jalsahq/hydration-helper/internal/bot/handlers"
	"github.com/jalsahq/hydration-helper/internal/config"
	"github.com/jalsahq/hydration-helper/internal/ledger"
	"github.com/jalsahq/hydration-helper/internal/logger"
	"github.com/jalsahq/hydration-helper/internal/reminder"
	"github.com/jalsahq/hydration-helper/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Info("Starting Hydration Helper")

	// A broken database is not fatal: fall back to in-memory so the
	// session stays usable, state just will not survive a restart.
	var store storage.Store
	store, err = storage.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		logger.Errorf("Store unavailable, continuing in-memory: %v", err)
		store = storage.NewMemoryStore()
	} else {
		logger.Infof("Store opened at %s", cfg.Storage.Path)
	}

	ledgerService := ledger.NewService(store)
	logger.Info("Ledger loaded")

	telegramBot, err := bot.NewBot(cfg.TelegramToken, cfg.OwnerChatID, handlers.Dependencies{
		Ledger: ledgerService,
	})
	if err != nil {
		logger.Fatal("Failed to create bot", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := telegramBot.Start(ctx); err != nil && ctx.Err() == nil {
			logger.Errorf("Bot stopped with error: %v", err)
			os.Exit(1)
		}
	}()

	if cfg.Reminder.Enabled {
		watcher := reminder.New(telegramBot.API(), telegramBot.OwnerChatID, ledgerService, cfg.Reminder.Interval)
		wg.Add(1)
		go func() {
			defer wg.Done()
			watcher.Start(ctx)
		}()
	}

	logger.Info("Hydration Helper is running, press Ctrl+C to stop")
	wg.Wait()
}
