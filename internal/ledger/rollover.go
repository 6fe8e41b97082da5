package ledger

import (
	"github.com/jalsahq/hydration-helper/internal/domain"
	"github.com/jalsahq/hydration-helper/internal/logger"
)

// ProcessRollover advances the ledger across a day boundary. It handles
// exactly one boundary per invocation: the open day is scored against the
// goal in effect right now, archived into the rolling history, and today's
// counters are reset. Same-day calls are a no-op. Returns true when the
// state changed.
func ProcessRollover(state *domain.LedgerState, today string) bool {
	if state.CurrentDay == "" {
		// First run ever: there is no yesterday to score.
		state.CurrentDay = today
		state.TodayTotalMl = 0
		state.TodayEvents = nil
		state.GoalMetToday = false
		return true
	}

	// Day keys compare lexicographically. Same day is a no-op, and a host
	// clock stepping backwards must not regress the open day or produce a
	// duplicate archive entry.
	if today <= state.CurrentDay {
		return false
	}

	goal, err := ComputeGoal(state.Config)
	if err != nil {
		logger.Warningf("Goal could not be computed at rollover, streak resets: %v", err)
		goal = 0
	}
	if err == nil && goal > 0 && state.TodayTotalMl >= goal {
		state.StreakDays++
	} else {
		state.StreakDays = 0
	}

	state.History = append(state.History, domain.DayRecord{
		Date:             state.CurrentDay,
		TotalEffectiveMl: state.TodayTotalMl,
	})
	if len(state.History) > domain.HistoryLimit {
		state.History = state.History[len(state.History)-domain.HistoryLimit:]
	}

	state.TodayTotalMl = 0
	state.TodayEvents = nil
	state.GoalMetToday = false
	state.CurrentDay = today
	return true
}
