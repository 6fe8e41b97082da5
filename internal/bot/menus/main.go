package menus

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jalsahq/hydration-helper/internal/bot/keyboards"
	"github.com/jalsahq/hydration-helper/internal/domain"
)

// SendMainMenu sends the main menu with today's progress readout
func SendMainMenu(api *tgbotapi.BotAPI, chatID int64, state domain.LedgerState, goalMl int, pct float64) error {
	greeting := "💧 *Hydration Helper*"
	if state.Config.DisplayName != "" {
		greeting = fmt.Sprintf("💧 *Hydration Helper* — hi, %s!", state.Config.DisplayName)
	}

	text := fmt.Sprintf(`%s

%s %.0f%%
🥛 %d / %d ml today
🔥 Streak: %d day(s)

Pick an action:`,
		greeting,
		progressBar(pct),
		pct,
		state.TodayTotalMl,
		goalMl,
		state.StreakDays,
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := api.Send(msg)
	return err
}

// SendStats sends today's detailed breakdown: events, remaining ml, badges
func SendStats(api *tgbotapi.BotAPI, chatID int64, state domain.LedgerState, goalMl int, pct float64) error {
	var sb strings.Builder
	sb.WriteString("📊 *Today*\n\n")
	sb.WriteString(fmt.Sprintf("%s %.0f%%\n", progressBar(pct), pct))
	sb.WriteString(fmt.Sprintf("🥛 %d / %d ml\n", state.TodayTotalMl, goalMl))

	remaining := goalMl - state.TodayTotalMl
	if remaining > 0 {
		sb.WriteString(fmt.Sprintf("🚰 %d ml to go\n", remaining))
	} else {
		sb.WriteString("✅ Goal reached!\n")
	}
	sb.WriteString(fmt.Sprintf("🔥 Streak: %d day(s)\n", state.StreakDays))

	if len(state.TodayEvents) > 0 {
		sb.WriteString("\n*Drinks:*\n")
		for _, e := range state.TodayEvents {
			sb.WriteString(fmt.Sprintf("🕒 %s — %s %d ml (%d ml counted)\n",
				e.DisplayTime, beverageLabel(e.Beverage), e.RawAmountMl, e.EffectiveAmountMl))
		}
	}

	if badges := unlockedBadges(state); len(badges) > 0 {
		sb.WriteString("\n*Badges:* " + strings.Join(badges, ", ") + "\n")
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.BackToMainMenu()
	_, err := api.Send(msg)
	return err
}

// SendHistory sends the rolling week of archived days
func SendHistory(api *tgbotapi.BotAPI, chatID int64, state domain.LedgerState) error {
	var sb strings.Builder
	sb.WriteString("🗓 *Past week*\n\n")
	if len(state.History) == 0 {
		sb.WriteString("No closed days yet. Come back tomorrow!\n")
	} else {
		for _, rec := range state.History {
			sb.WriteString(fmt.Sprintf("%s — %d ml\n", rec.Date, rec.TotalEffectiveMl))
		}
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.BackToMainMenu()
	_, err := api.Send(msg)
	return err
}

// SendSettingsMenu sends the settings overview
func SendSettingsMenu(api *tgbotapi.BotAPI, chatID int64, cfg domain.UserConfig, goalMl int) error {
	goalMode := "manual"
	if cfg.UseSmartGoal {
		goalMode = "smart (weight & activity)"
	}
	name := cfg.DisplayName
	if name == "" {
		name = "—"
	}
	phone := cfg.PhoneNumber
	if phone == "" {
		phone = "—"
	}

	text := fmt.Sprintf(`⚙️ *Settings*

👤 Name: %s
⚖️ Weight: %.1f kg
🏃 Activity: %s
📱 Phone: %s
🎯 Goal mode: %s
✏️ Manual goal: %d ml
🥅 Effective goal: %d ml`,
		name,
		cfg.WeightKg,
		cfg.ActivityLevel,
		phone,
		goalMode,
		cfg.ManualGoalMl,
		goalMl,
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.SettingsMenu(cfg.UseSmartGoal)
	_, err := api.Send(msg)
	return err
}

// progressBar renders the widget's progress circle as a ten-segment bar
func progressBar(pct float64) string {
	filled := int(pct / 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("🟦", filled) + strings.Repeat("⬜", 10-filled)
}

func beverageLabel(kind domain.BeverageKind) string {
	switch kind {
	case domain.BeverageWater:
		return "Water"
	case domain.BeverageCoffee:
		return "Coffee"
	case domain.BeverageTea:
		return "Tea"
	case domain.BeverageSoda:
		return "Soda"
	case domain.BeverageJuice:
		return "Juice"
	}
	return string(kind)
}

// BadgeLabel maps an achievement id to its display name
func BadgeLabel(id string) string {
	switch id {
	case domain.AchievementStreak3:
		return "🥉 3-day streak"
	case domain.AchievementStreak7:
		return "🏆 7-day streak"
	case domain.AchievementHighVolume:
		return "🌊 4-liter day"
	}
	return id
}

func unlockedBadges(state domain.LedgerState) []string {
	var badges []string
	for _, id := range []string{domain.AchievementStreak3, domain.AchievementStreak7, domain.AchievementHighVolume} {
		if state.Unlocked[id] {
			badges = append(badges, BadgeLabel(id))
		}
	}
	return badges
}
