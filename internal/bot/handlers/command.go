package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jalsahq/hydration-helper/internal/bot/keyboards"
	"github.com/jalsahq/hydration-helper/internal/bot/menus"
	"github.com/jalsahq/hydration-helper/internal/bot/state"
	"github.com/jalsahq/hydration-helper/internal/logger"
)

// CommandHandler handles bot commands
type CommandHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *CommandHandler {
	return &CommandHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a command message
func (h *CommandHandler) Handle(ctx context.Context, message *tgbotapi.Message) error {
	logger.Infof("Handling command %s from chat %d", message.Command(), message.Chat.ID)

	switch message.Command() {
	case "start":
		h.stateManager.SetUserState(message.Chat.ID, state.None)
		return h.sendMainMenu(message.Chat.ID)
	case "stats":
		return menus.SendStats(h.api, message.Chat.ID, h.deps.Ledger.State(), h.deps.Ledger.Goal(), h.deps.Ledger.ProgressPercent())
	case "week":
		return menus.SendHistory(h.api, message.Chat.ID, h.deps.Ledger.State())
	case "reset":
		msg := tgbotapi.NewMessage(message.Chat.ID, "This erases all history, streaks, badges and settings. Are you sure?")
		msg.ReplyMarkup = keyboards.ConfirmResetMenu()
		_, err := h.api.Send(msg)
		return err
	case "help":
		return h.handleHelp(message.Chat.ID)
	default:
		return h.handleUnknownCommand(message.Chat.ID)
	}
}

func (h *CommandHandler) sendMainMenu(chatID int64) error {
	return menus.SendMainMenu(h.api, chatID, h.deps.Ledger.State(), h.deps.Ledger.Goal(), h.deps.Ledger.ProgressPercent())
}

// handleHelp handles the /help command
func (h *CommandHandler) handleHelp(chatID int64) error {
	text := `Available commands:
/start - Show the main menu
/stats - Show today's progress
/week - Show the past week
/reset - Erase everything and start over
/help - Show this message

Logging drinks:
1. Tap "💧 Glass" or "🍼 Bottle" for quick water entries
2. Tap "🥤 Other drink" to pick a beverage and type the amount in ml

Coffee, tea, soda and juice count toward your goal at a reduced rate.`

	msg := tgbotapi.NewMessage(chatID, text)
	_, err := h.api.Send(msg)
	return err
}

// handleUnknownCommand handles unknown commands
func (h *CommandHandler) handleUnknownCommand(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "Unknown command. Use /help to see what I can do.")
	_, err := h.api.Send(msg)
	return err
}
