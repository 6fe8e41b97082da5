package ledger

import (
	"github.com/jalsahq/hydration-helper/internal/domain"
)

// EvaluateAchievements unlocks any achievements whose threshold the state
// has newly crossed and returns their ids. Unlocks are monotonic: an
// already-unlocked id is never re-reported and never removed. Must run
// after every mutation that can change the streak or today's total.
func EvaluateAchievements(state *domain.LedgerState) []string {
	var newly []string
	unlock := func(id string, reached bool) {
		if reached && !state.Unlocked[id] {
			state.Unlocked[id] = true
			newly = append(newly, id)
		}
	}

	unlock(domain.AchievementStreak3, state.StreakDays >= 3)
	unlock(domain.AchievementStreak7, state.StreakDays >= 7)
	unlock(domain.AchievementHighVolume, state.TodayTotalMl >= domain.HighVolumeThresholdMl)

	return newly
}
