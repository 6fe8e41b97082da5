package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jalsahq/hydration-helper/internal/bot/state"
	"github.com/jalsahq/hydration-helper/internal/domain"
	apperrors "github.com/jalsahq/hydration-helper/internal/errors"
	"github.com/jalsahq/hydration-helper/internal/logger"
)

// TextHandler handles free-form text according to the conversation state
type TextHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewTextHandler creates a new text handler
func NewTextHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *TextHandler {
	return &TextHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a text message
func (h *TextHandler) Handle(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	switch h.stateManager.GetUserState(chatID) {
	case state.WaitingForAmount:
		return h.handleAmount(chatID, text)
	case state.WaitingForWeight:
		return h.handleWeight(chatID, text)
	case state.WaitingForManualGoal:
		return h.handleManualGoal(chatID, text)
	case state.WaitingForName:
		return h.handleName(chatID, text)
	case state.WaitingForPhone:
		return h.handlePhone(chatID, text)
	default:
		return sendText(h.api, chatID, "Please use the menu, or /help if you're lost.")
	}
}

func (h *TextHandler) handleAmount(chatID int64, text string) error {
	amount, err := strconv.Atoi(text)
	if err != nil {
		return sendText(h.api, chatID, "Please enter a whole number of milliliters (e.g. 250).")
	}

	kind := domain.BeverageWater
	if raw, ok := h.stateManager.GetTempData(chatID, state.TempKeyBeverage); ok {
		if s, ok := raw.(string); ok {
			kind = domain.BeverageKind(s)
		}
	}

	result, err := h.deps.Ledger.AddDrink(amount, kind)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount):
			return sendText(h.api, chatID, "The amount has to be positive. Try again:")
		case errors.Is(err, apperrors.ErrUnknownBeverage):
			h.stateManager.ClearUserState(chatID)
			h.stateManager.ClearTempData(chatID)
			return sendText(h.api, chatID, "I don't know that drink. Pick one from the menu.")
		default:
			logger.Errorf("AddDrink failed: %v", err)
			return sendText(h.api, chatID, "Something went wrong, please try again.")
		}
	}

	h.stateManager.ClearUserState(chatID)
	h.stateManager.ClearTempData(chatID)
	return sendDrinkFeedback(h.api, chatID, result)
}

func (h *TextHandler) handleWeight(chatID int64, text string) error {
	weight, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return sendText(h.api, chatID, "Please enter your weight as a number (e.g. 70 or 70.5).")
	}

	if _, err := h.deps.Ledger.UpdateConfig(domain.ConfigUpdate{WeightKg: &weight}); err != nil {
		if errors.Is(err, apperrors.ErrInvalidConfiguration) {
			return sendText(h.api, chatID, "Weight has to be positive. Try again:")
		}
		logger.Errorf("Weight update failed: %v", err)
		return sendText(h.api, chatID, "Something went wrong, please try again.")
	}

	h.stateManager.ClearUserState(chatID)
	return sendText(h.api, chatID, "⚖️ Weight saved.")
}

func (h *TextHandler) handleManualGoal(chatID int64, text string) error {
	goal, err := strconv.Atoi(text)
	if err != nil {
		return sendText(h.api, chatID, "Please enter the goal as a whole number of milliliters (e.g. 3000).")
	}

	if _, err := h.deps.Ledger.UpdateConfig(domain.ConfigUpdate{ManualGoalMl: &goal}); err != nil {
		if errors.Is(err, apperrors.ErrInvalidConfiguration) {
			return sendText(h.api, chatID, "The goal has to be positive. Try again:")
		}
		logger.Errorf("Manual goal update failed: %v", err)
		return sendText(h.api, chatID, "Something went wrong, please try again.")
	}

	h.stateManager.ClearUserState(chatID)
	return sendText(h.api, chatID, "🎯 Goal saved.")
}

func (h *TextHandler) handleName(chatID int64, text string) error {
	if _, err := h.deps.Ledger.UpdateConfig(domain.ConfigUpdate{DisplayName: &text}); err != nil {
		logger.Errorf("Name update failed: %v", err)
		return sendText(h.api, chatID, "Something went wrong, please try again.")
	}

	h.stateManager.ClearUserState(chatID)
	return sendText(h.api, chatID, "👤 Name saved.")
}

func (h *TextHandler) handlePhone(chatID int64, text string) error {
	if _, err := h.deps.Ledger.UpdateConfig(domain.ConfigUpdate{PhoneNumber: &text}); err != nil {
		logger.Errorf("Phone update failed: %v", err)
		return sendText(h.api, chatID, "Something went wrong, please try again.")
	}

	h.stateManager.ClearUserState(chatID)
	return sendText(h.api, chatID, "📱 Phone saved.")
}
