package reminder

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jalsahq/hydration-helper/internal/interfaces"
	"github.com/jalsahq/hydration-helper/internal/logger"
)

// checkEvery is how often the watcher wakes up to look at the ledger
const checkEvery = 10 * time.Minute

// Watcher periodically checks how long ago the last drink was recorded and
// nudges the owner chat when the gap exceeds the configured interval. It
// only reads the ledger, never mutates it.
type Watcher struct {
	api       *tgbotapi.BotAPI
	chatID    func() int64
	ledger    interfaces.LedgerServiceInterface
	interval  time.Duration
	lastNudge time.Time
}

// New creates a reminder watcher. chatID is resolved on every tick because
// the owner chat may only become known after the first message.
func New(api *tgbotapi.BotAPI, chatID func() int64, ledger interfaces.LedgerServiceInterface, interval time.Duration) *Watcher {
	return &Watcher{
		api:      api,
		chatID:   chatID,
		ledger:   ledger,
		interval: interval,
	}
}

// Start runs the watcher until the context is cancelled
func (w *Watcher) Start(ctx context.Context) {
	logger.Infof("Reminder watcher running, nudging after %s of inactivity", w.interval)

	ticker := time.NewTicker(checkEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder watcher stopped")
			return
		case now := <-ticker.C:
			w.check(now)
		}
	}
}

func (w *Watcher) check(now time.Time) {
	chatID := w.chatID()
	if chatID == 0 {
		return
	}

	// No nagging at night
	if now.Hour() < 8 || now.Hour() >= 22 {
		return
	}

	state := w.ledger.State()
	if state.GoalMetToday {
		return
	}

	last, ok := w.ledger.LastEventAt()
	if ok && now.Sub(last) < w.interval {
		return
	}
	if now.Sub(w.lastNudge) < w.interval {
		return
	}

	remaining := w.ledger.Goal() - state.TodayTotalMl
	text := "💧 Time for a drink!"
	if remaining > 0 {
		text = fmt.Sprintf("💧 Time for a drink! %d ml to go today.", remaining)
	}

	if _, err := w.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		logger.Warningf("Failed to send reminder: %v", err)
		return
	}
	w.lastNudge = now
}
