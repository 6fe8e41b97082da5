package handlers

import (
	"context"
	"sync/atomic"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jalsahq/hydration-helper/internal/bot/state"
	"github.com/jalsahq/hydration-helper/internal/logger"
)

// UpdateHandler handles telegram updates and coordinates other handlers
type UpdateHandler struct {
	api             *tgbotapi.BotAPI
	stateManager    state.StateManager
	callbackHandler *CallbackHandler
	commandHandler  *CommandHandler
	textHandler     *TextHandler

	// ownerChatID is written by the update loop on first contact and read
	// concurrently by the reminder watcher, hence atomic.
	ownerChatID atomic.Int64
}

// NewUpdateHandler creates a new update handler. When ownerChatID is zero
// the first chat that talks to the bot becomes the owner; the ledger is
// strictly single-user.
func NewUpdateHandler(
	api *tgbotapi.BotAPI,
	deps Dependencies,
	stateManager state.StateManager,
	ownerChatID int64,
) *UpdateHandler {
	h := &UpdateHandler{
		api:             api,
		stateManager:    stateManager,
		callbackHandler: NewCallbackHandler(api, deps, stateManager),
		commandHandler:  NewCommandHandler(api, deps, stateManager),
		textHandler:     NewTextHandler(api, deps, stateManager),
	}
	h.ownerChatID.Store(ownerChatID)
	return h
}

// OwnerChatID returns the chat currently bound to the ledger, 0 if none yet
func (h *UpdateHandler) OwnerChatID() int64 {
	return h.ownerChatID.Load()
}

// Handle processes a telegram update
func (h *UpdateHandler) Handle(ctx context.Context, update tgbotapi.Update) error {
	if update.Message == nil && update.CallbackQuery == nil {
		return nil
	}

	chatID := updateChatID(update)

	if h.ownerChatID.CompareAndSwap(0, chatID) {
		logger.Infof("Bound ledger to chat %d", chatID)
	} else if chatID != h.ownerChatID.Load() {
		logger.Warningf("Ignoring update from non-owner chat %d", chatID)
		return nil
	}

	if update.CallbackQuery != nil {
		// Answer the callback query to remove the loading state
		callback := tgbotapi.NewCallback(update.CallbackQuery.ID, "")
		if _, err := h.api.Request(callback); err != nil {
			logger.Warningf("Failed to answer callback query: %v", err)
		}
		return h.callbackHandler.Handle(ctx, update.CallbackQuery)
	}

	if update.Message.IsCommand() {
		return h.commandHandler.Handle(ctx, update.Message)
	}

	if update.Message.Text != "" {
		return h.textHandler.Handle(ctx, update.Message)
	}

	return nil
}

// updateChatID resolves the originating chat. Stale callback queries can
// arrive without their message; the sender id identifies the private chat
// in that case.
func updateChatID(update tgbotapi.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID
	}
	return update.CallbackQuery.From.ID
}
