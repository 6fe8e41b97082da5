package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jalsahq/hydration-helper/internal/bot/keyboards"
	"github.com/jalsahq/hydration-helper/internal/bot/menus"
	"github.com/jalsahq/hydration-helper/internal/domain"
)

// sendDrinkFeedback reports a recorded drink back to the user. The goal
// crossing and badge unlocks come as pure signals from the ledger; the
// celebration lives entirely here.
func sendDrinkFeedback(api *tgbotapi.BotAPI, chatID int64, result domain.AddDrinkResult) error {
	text := fmt.Sprintf("🥛 Logged %d ml of %s", result.Event.RawAmountMl, result.Event.Beverage)
	if result.Event.EffectiveAmountMl != result.Event.RawAmountMl {
		text += fmt.Sprintf(" (counts as %d ml)", result.Event.EffectiveAmountMl)
	}
	text += fmt.Sprintf("\n💧 %d / %d ml today", result.TodayTotalMl, result.GoalMl)

	if result.GoalJustCrossed {
		text += "\n\n🎉🎉🎉 Daily goal reached, great job!"
	}
	for _, id := range result.NewlyUnlocked {
		text += fmt.Sprintf("\n🏅 Badge unlocked: %s", menus.BadgeLabel(id))
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := api.Send(msg)
	return err
}

func sendText(api *tgbotapi.BotAPI, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := api.Send(msg)
	return err
}
