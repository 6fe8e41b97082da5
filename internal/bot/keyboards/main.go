package keyboards

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jalsahq/hydration-helper/internal/domain"
)

// MainMenu creates the main menu keyboard. The 250/500 ml quick buttons
// mirror the glass and bottle of the original widget.
func MainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💧 Glass (250 ml)", "add_glass"),
			tgbotapi.NewInlineKeyboardButtonData("🍼 Bottle (500 ml)", "add_bottle"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🥤 Other drink", "pick_beverage"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", "stats"),
			tgbotapi.NewInlineKeyboardButtonData("🗓 Week", "history_view"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", "settings"),
		),
	)
}

// BeverageMenu creates the beverage picker keyboard
func BeverageMenu() tgbotapi.InlineKeyboardMarkup {
	labels := map[domain.BeverageKind]string{
		domain.BeverageWater:  "💧 Water",
		domain.BeverageCoffee: "☕ Coffee",
		domain.BeverageTea:    "🍵 Tea",
		domain.BeverageSoda:   "🥤 Soda",
		domain.BeverageJuice:  "🧃 Juice",
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup()
	row := tgbotapi.NewInlineKeyboardRow()
	for _, kind := range domain.BeverageKinds() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(labels[kind], "drink_"+string(kind)))
		if len(row) == 2 {
			keyboard.InlineKeyboard = append(keyboard.InlineKeyboard, row)
			row = tgbotapi.NewInlineKeyboardRow()
		}
	}
	if len(row) > 0 {
		keyboard.InlineKeyboard = append(keyboard.InlineKeyboard, row)
	}

	keyboard.InlineKeyboard = append(keyboard.InlineKeyboard,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main menu", "main_menu"),
		),
	)
	return keyboard
}

// SettingsMenu creates the settings keyboard
func SettingsMenu(useSmartGoal bool) tgbotapi.InlineKeyboardMarkup {
	goalModeLabel := "🎯 Goal: manual"
	if useSmartGoal {
		goalModeLabel = "🎯 Goal: smart"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👤 Name", "set_name"),
			tgbotapi.NewInlineKeyboardButtonData("⚖️ Weight", "set_weight"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏃 Activity", "set_activity"),
			tgbotapi.NewInlineKeyboardButtonData("📱 Phone", "set_phone"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(goalModeLabel, "toggle_goal_mode"),
			tgbotapi.NewInlineKeyboardButtonData("✏️ Manual goal", "set_manual_goal"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Reset today", "reset_today"),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Reset all", "reset_all"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main menu", "main_menu"),
		),
	)
}

// ActivityMenu creates the activity level keyboard
func ActivityMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚶 Low", "activity_low"),
			tgbotapi.NewInlineKeyboardButtonData("🏃 Moderate", "activity_moderate"),
			tgbotapi.NewInlineKeyboardButtonData("🏋️ High", "activity_high"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Back", "settings"),
		),
	)
}

// ConfirmResetMenu asks for explicit confirmation before wiping everything
func ConfirmResetMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚠️ Yes, erase everything", "confirm_reset_all"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Cancel", "settings"),
		),
	)
}

// BackToMainMenu is the single-button navigation row
func BackToMainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main menu", "main_menu"),
		),
	)
}
