package storage

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/jalsahq/hydration-helper/internal/domain"
	apperrors "github.com/jalsahq/hydration-helper/internal/errors"
	"github.com/jalsahq/hydration-helper/internal/logger"
)

// Persisted key layout. The store holds opaque strings; this file owns the
// mapping between those keys and the ledger state.
const (
	KeyDate     = "date"      // current day identifier
	KeyIntake   = "intake"    // today's cumulative effective ml
	KeyEvents   = "history"   // serialized list of today's intake events
	KeySettings = "settings"  // serialized user config
	KeyLastGoal = "last_goal" // goal in effect as of last save
	KeyStreak   = "streak"    // consecutive goal-met days
	KeyStats    = "stats"     // serialized rolling window of day records
	KeyBadges   = "badges"    // serialized unlocked achievement ids
)

// LoadState reads the persisted ledger state. Absent or malformed values
// fall back to defaults, so a corrupted store degrades to a first run
// instead of failing.
func LoadState(store Store) *domain.LedgerState {
	state := domain.NewLedgerState()

	if raw, ok := loadKey(store, KeySettings); ok {
		var cfg domain.UserConfig
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			logger.Warningf("Malformed settings in store, using defaults: %v", err)
		} else {
			state.Config = cfg
		}
	}

	day, ok := loadKey(store, KeyDate)
	if !ok || day == "" {
		// First run ever: nothing else to restore.
		return state
	}
	state.CurrentDay = day

	if raw, ok := loadKey(store, KeyIntake); ok {
		if n, err := strconv.Atoi(raw); err != nil {
			logger.Warningf("Malformed intake total in store: %v", err)
		} else if n >= 0 {
			state.TodayTotalMl = n
		}
	}

	if raw, ok := loadKey(store, KeyEvents); ok {
		var events []domain.IntakeEvent
		if err := json.Unmarshal([]byte(raw), &events); err != nil {
			logger.Warningf("Malformed event log in store, discarding: %v", err)
		} else {
			state.TodayEvents = events
		}
	}

	// The running total must equal the sum of today's events. If the two
	// keys disagree (partial write, manual edit), the event log wins.
	if len(state.TodayEvents) > 0 {
		sum := 0
		for _, e := range state.TodayEvents {
			sum += e.EffectiveAmountMl
		}
		if sum != state.TodayTotalMl {
			logger.Warningf("Intake total %d disagrees with event log sum %d, repairing", state.TodayTotalMl, sum)
			state.TodayTotalMl = sum
		}
	}

	if raw, ok := loadKey(store, KeyStreak); ok {
		if n, err := strconv.Atoi(raw); err != nil {
			logger.Warningf("Malformed streak in store: %v", err)
		} else if n >= 0 {
			state.StreakDays = n
		}
	}

	if raw, ok := loadKey(store, KeyStats); ok {
		var history []domain.DayRecord
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			logger.Warningf("Malformed day history in store, discarding: %v", err)
		} else {
			if len(history) > domain.HistoryLimit {
				history = history[len(history)-domain.HistoryLimit:]
			}
			state.History = history
		}
	}

	if raw, ok := loadKey(store, KeyBadges); ok {
		var badges []string
		if err := json.Unmarshal([]byte(raw), &badges); err != nil {
			logger.Warningf("Malformed badges in store, discarding: %v", err)
		} else {
			for _, id := range badges {
				state.Unlocked[id] = true
			}
		}
	}

	// goalMetToday has no key of its own; re-derive it from the goal in
	// effect at last save. It stays monotonic for the rest of the session.
	if raw, ok := loadKey(store, KeyLastGoal); ok {
		if lastGoal, err := strconv.Atoi(raw); err == nil && lastGoal > 0 {
			state.GoalMetToday = state.TodayTotalMl >= lastGoal
		}
	}

	return state
}

// SaveState writes the full ledger state back to the store. Every key is
// attempted even if an earlier one fails; the first failure is returned.
func SaveState(store Store, state *domain.LedgerState, goalMl int) error {
	var firstErr error
	save := func(key, value string) {
		if err := store.Save(key, value); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	save(KeyDate, state.CurrentDay)
	save(KeyIntake, strconv.Itoa(state.TodayTotalMl))
	save(KeyEvents, marshalOrEmpty(state.TodayEvents, "[]"))
	save(KeySettings, marshalOrEmpty(state.Config, "{}"))
	save(KeyLastGoal, strconv.Itoa(goalMl))
	save(KeyStreak, strconv.Itoa(state.StreakDays))
	save(KeyStats, marshalOrEmpty(state.History, "[]"))
	save(KeyBadges, marshalOrEmpty(unlockedIDs(state), "[]"))

	if firstErr != nil {
		return apperrors.NewStorageError(firstErr)
	}
	return nil
}

func loadKey(store Store, key string) (string, bool) {
	value, ok, err := store.Load(key)
	if err != nil {
		logger.Warningf("Failed to load key %q: %v", key, err)
		return "", false
	}
	return value, ok
}

func marshalOrEmpty(v interface{}, fallback string) string {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Errorf("Failed to marshal state value: %v", err)
		return fallback
	}
	return string(data)
}

func unlockedIDs(state *domain.LedgerState) []string {
	ids := make([]string, 0, len(state.Unlocked))
	for id, unlocked := range state.Unlocked {
		if unlocked {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
