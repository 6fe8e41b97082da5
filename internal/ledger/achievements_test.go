package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jalsahq/hydration-helper/internal/domain"
)

func TestEvaluateAchievementsThresholds(t *testing.T) {
	tests := []struct {
		name         string
		streakDays   int
		todayTotalMl int
		want         []string
	}{
		{name: "nothing unlocked below thresholds", streakDays: 2, todayTotalMl: 3999, want: nil},
		{name: "three day streak", streakDays: 3, todayTotalMl: 0, want: []string{domain.AchievementStreak3}},
		{name: "seven day streak implies both", streakDays: 7, todayTotalMl: 0, want: []string{domain.AchievementStreak3, domain.AchievementStreak7}},
		{name: "high volume at exactly 4000", streakDays: 0, todayTotalMl: 4000, want: []string{domain.AchievementHighVolume}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := domain.NewLedgerState()
			state.StreakDays = tt.streakDays
			state.TodayTotalMl = tt.todayTotalMl

			newly := EvaluateAchievements(state)
			assert.Equal(t, tt.want, newly)
		})
	}
}

func TestEvaluateAchievementsIdempotent(t *testing.T) {
	state := domain.NewLedgerState()
	state.StreakDays = 3
	state.TodayTotalMl = 4200

	first := EvaluateAchievements(state)
	assert.Len(t, first, 2)
	unlockedAfterFirst := len(state.Unlocked)

	second := EvaluateAchievements(state)
	assert.Empty(t, second)
	assert.Len(t, state.Unlocked, unlockedAfterFirst)
}

func TestEvaluateAchievementsMonotonic(t *testing.T) {
	state := domain.NewLedgerState()
	state.TodayTotalMl = 4000
	EvaluateAchievements(state)

	// Dropping back below the threshold never revokes the badge
	state.TodayTotalMl = 0
	newly := EvaluateAchievements(state)
	assert.Empty(t, newly)
	assert.True(t, state.Unlocked[domain.AchievementHighVolume])
}
