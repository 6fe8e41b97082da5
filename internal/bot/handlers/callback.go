package handlers

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jalsahq/hydration-helper/internal/bot/keyboards"
	"github.com/jalsahq/hydration-helper/internal/bot/menus"
	"github.com/jalsahq/hydration-helper/internal/bot/state"
	"github.com/jalsahq/hydration-helper/internal/domain"
	"github.com/jalsahq/hydration-helper/internal/logger"
)

const (
	glassAmountMl  = 250
	bottleAmountMl = 500
)

// CallbackHandler handles inline keyboard button presses
type CallbackHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *CallbackHandler {
	return &CallbackHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a callback query
func (h *CallbackHandler) Handle(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	chatID := query.From.ID
	if query.Message != nil {
		chatID = query.Message.Chat.ID
	}

	if kind, ok := strings.CutPrefix(query.Data, "drink_"); ok {
		return h.handleBeveragePicked(chatID, domain.BeverageKind(kind))
	}
	if level, ok := strings.CutPrefix(query.Data, "activity_"); ok {
		return h.handleActivityPicked(chatID, domain.ActivityLevel(level))
	}

	switch query.Data {
	case "add_glass":
		return h.handleQuickAdd(chatID, glassAmountMl)
	case "add_bottle":
		return h.handleQuickAdd(chatID, bottleAmountMl)

	case "pick_beverage":
		msg := tgbotapi.NewMessage(chatID, "What are you drinking?")
		msg.ReplyMarkup = keyboards.BeverageMenu()
		_, err := h.api.Send(msg)
		return err

	case "stats":
		return menus.SendStats(h.api, chatID, h.deps.Ledger.State(), h.deps.Ledger.Goal(), h.deps.Ledger.ProgressPercent())

	case "history_view":
		return menus.SendHistory(h.api, chatID, h.deps.Ledger.State())

	case "settings":
		h.stateManager.SetUserState(chatID, state.None)
		return h.sendSettings(chatID)

	case "set_name":
		h.stateManager.SetUserState(chatID, state.WaitingForName)
		return sendText(h.api, chatID, "What should I call you?")

	case "set_weight":
		h.stateManager.SetUserState(chatID, state.WaitingForWeight)
		return sendText(h.api, chatID, "Enter your weight in kg (e.g. 70):")

	case "set_manual_goal":
		h.stateManager.SetUserState(chatID, state.WaitingForManualGoal)
		return sendText(h.api, chatID, "Enter your daily goal in ml (e.g. 3000):")

	case "set_phone":
		h.stateManager.SetUserState(chatID, state.WaitingForPhone)
		return sendText(h.api, chatID, "Enter your phone number:")

	case "set_activity":
		msg := tgbotapi.NewMessage(chatID, "How active are you?")
		msg.ReplyMarkup = keyboards.ActivityMenu()
		_, err := h.api.Send(msg)
		return err

	case "toggle_goal_mode":
		current := h.deps.Ledger.State().Config.UseSmartGoal
		useSmart := !current
		if _, err := h.deps.Ledger.UpdateConfig(domain.ConfigUpdate{UseSmartGoal: &useSmart}); err != nil {
			logger.Warningf("Goal mode toggle rejected: %v", err)
			return sendText(h.api, chatID, "Set a valid weight before switching to the smart goal.")
		}
		return h.sendSettings(chatID)

	case "reset_today":
		h.deps.Ledger.ResetToday()
		return sendText(h.api, chatID, "🔄 Today's tracking is back to zero. Streak and badges are untouched.")

	case "reset_all":
		msg := tgbotapi.NewMessage(chatID, "This erases all history, streaks, badges and settings. Are you sure?")
		msg.ReplyMarkup = keyboards.ConfirmResetMenu()
		_, err := h.api.Send(msg)
		return err

	case "confirm_reset_all":
		h.deps.Ledger.ResetAll()
		h.stateManager.ClearUserState(chatID)
		h.stateManager.ClearTempData(chatID)
		return sendText(h.api, chatID, "🗑 Everything erased. Fresh start!")

	case "main_menu":
		h.stateManager.SetUserState(chatID, state.None)
		return h.sendMainMenu(chatID)
	}

	return nil
}

func (h *CallbackHandler) handleQuickAdd(chatID int64, amountMl int) error {
	result, err := h.deps.Ledger.AddDrink(amountMl, domain.BeverageWater)
	if err != nil {
		logger.Warningf("Quick add rejected: %v", err)
		return sendText(h.api, chatID, "Could not log that drink, please try again.")
	}
	return sendDrinkFeedback(h.api, chatID, result)
}

func (h *CallbackHandler) handleBeveragePicked(chatID int64, kind domain.BeverageKind) error {
	if _, ok := domain.HydrationFactor(kind); !ok {
		logger.Warningf("Beverage picker produced unknown kind %q", kind)
		return sendText(h.api, chatID, "I don't know that drink.")
	}
	h.stateManager.SetTempData(chatID, state.TempKeyBeverage, string(kind))
	h.stateManager.SetUserState(chatID, state.WaitingForAmount)
	return sendText(h.api, chatID, fmt.Sprintf("How much %s, in ml? (e.g. 250)", kind))
}

func (h *CallbackHandler) handleActivityPicked(chatID int64, level domain.ActivityLevel) error {
	if _, err := h.deps.Ledger.UpdateConfig(domain.ConfigUpdate{ActivityLevel: &level}); err != nil {
		logger.Warningf("Activity update rejected: %v", err)
		return sendText(h.api, chatID, "That activity level didn't work, please pick again.")
	}
	return h.sendSettings(chatID)
}

func (h *CallbackHandler) sendMainMenu(chatID int64) error {
	return menus.SendMainMenu(h.api, chatID, h.deps.Ledger.State(), h.deps.Ledger.Goal(), h.deps.Ledger.ProgressPercent())
}

func (h *CallbackHandler) sendSettings(chatID int64) error {
	return menus.SendSettingsMenu(h.api, chatID, h.deps.Ledger.State().Config, h.deps.Ledger.Goal())
}
