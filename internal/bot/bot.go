package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jalsahq/hydration-helper/internal/bot/handlers"
	"github.com/jalsahq/hydration-helper/internal/bot/state"
	apperrors "github.com/jalsahq/hydration-helper/internal/errors"
	"github.com/jalsahq/hydration-helper/internal/logger"
)

// Bot is the Telegram presentation layer over the hydration ledger
type Bot struct {
	api           *tgbotapi.BotAPI
	updateHandler *handlers.UpdateHandler
	errHandler    *apperrors.Handler
}

// NewBot creates the bot and its handler chain
func NewBot(token string, ownerChatID int64, deps handlers.Dependencies) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Infof("Bot authorized on account %s", api.Self.UserName)

	stateManager := state.NewManager()
	return &Bot{
		api:           api,
		updateHandler: handlers.NewUpdateHandler(api, deps, stateManager, ownerChatID),
		errHandler:    apperrors.NewHandler(logger.GetLogger()),
	}, nil
}

// API exposes the underlying client for collaborators that only send
// messages, such as the reminder watcher.
func (b *Bot) API() *tgbotapi.BotAPI {
	return b.api
}

// OwnerChatID returns the chat bound to the ledger, 0 if none yet
func (b *Bot) OwnerChatID() int64 {
	return b.updateHandler.OwnerChatID()
}

// Start runs the update loop until the context is cancelled
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	logger.Info("Bot is now listening for updates")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Bot is shutting down")
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if err := b.updateHandler.Handle(ctx, update); err != nil {
				b.errHandler.Handle(ctx, err)
			}
		}
	}
}
