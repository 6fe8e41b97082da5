package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalsahq/hydration-helper/internal/domain"
	apperrors "github.com/jalsahq/hydration-helper/internal/errors"
)

func testState(manualGoalMl int) *domain.LedgerState {
	state := domain.NewLedgerState()
	state.CurrentDay = "2026-08-28"
	state.Config.ManualGoalMl = manualGoalMl
	return state
}

func TestRecordIntakeTotalsMatchEventLog(t *testing.T) {
	state := testState(3000)
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)

	amounts := []int{250, 500, 330, 125}
	for _, amount := range amounts {
		_, err := RecordIntake(state, amount, domain.BeverageWater, now)
		require.NoError(t, err)
	}

	assert.Len(t, state.TodayEvents, len(amounts))
	sum := 0
	for _, e := range state.TodayEvents {
		sum += e.EffectiveAmountMl
	}
	assert.Equal(t, sum, state.TodayTotalMl)
	assert.Equal(t, 1205, state.TodayTotalMl)
}

func TestRecordIntakeHydrationWeighting(t *testing.T) {
	tests := []struct {
		name          string
		kind          domain.BeverageKind
		rawAmountMl   int
		wantEffective int
	}{
		{name: "water counts in full", kind: domain.BeverageWater, rawAmountMl: 250, wantEffective: 250},
		{name: "coffee rounds to nearest", kind: domain.BeverageCoffee, rawAmountMl: 250, wantEffective: 213},
		{name: "tea", kind: domain.BeverageTea, rawAmountMl: 200, wantEffective: 180},
		{name: "soda", kind: domain.BeverageSoda, rawAmountMl: 330, wantEffective: 198},
		{name: "juice", kind: domain.BeverageJuice, rawAmountMl: 200, wantEffective: 190},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := testState(3000)
			result, err := RecordIntake(state, tt.rawAmountMl, tt.kind, time.Now())
			require.NoError(t, err)
			assert.Equal(t, tt.wantEffective, result.Event.EffectiveAmountMl)
			assert.Equal(t, tt.wantEffective, state.TodayTotalMl)
			assert.Equal(t, tt.rawAmountMl, result.Event.RawAmountMl)
		})
	}
}

func TestRecordIntakeNewestFirst(t *testing.T) {
	state := testState(3000)

	_, err := RecordIntake(state, 100, domain.BeverageWater, time.Now())
	require.NoError(t, err)
	_, err = RecordIntake(state, 200, domain.BeverageTea, time.Now())
	require.NoError(t, err)

	require.Len(t, state.TodayEvents, 2)
	assert.Equal(t, 200, state.TodayEvents[0].RawAmountMl)
	assert.Equal(t, 100, state.TodayEvents[1].RawAmountMl)
	assert.NotEqual(t, state.TodayEvents[0].ID, state.TodayEvents[1].ID)
}

func TestRecordIntakeRejectsNonPositiveAmount(t *testing.T) {
	state := testState(3000)

	for _, amount := range []int{0, -250} {
		_, err := RecordIntake(state, amount, domain.BeverageWater, time.Now())
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidAmount))
	}

	// Rejected input leaves the state untouched
	assert.Zero(t, state.TodayTotalMl)
	assert.Empty(t, state.TodayEvents)
}

func TestRecordIntakeRejectsUnknownBeverage(t *testing.T) {
	state := testState(3000)

	_, err := RecordIntake(state, 250, domain.BeverageKind("mead"), time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnknownBeverage))
	assert.Zero(t, state.TodayTotalMl)
	assert.Empty(t, state.TodayEvents)
}

func TestRecordIntakeGoalCrossing(t *testing.T) {
	state := testState(3000)
	state.TodayTotalMl = 2900

	result, err := RecordIntake(state, 250, domain.BeverageWater, time.Now())
	require.NoError(t, err)
	assert.True(t, result.GoalJustCrossed)
	assert.True(t, state.GoalMetToday)

	// Already over goal: the signal fires exactly once
	result, err = RecordIntake(state, 250, domain.BeverageWater, time.Now())
	require.NoError(t, err)
	assert.False(t, result.GoalJustCrossed)
	assert.True(t, state.GoalMetToday)
}

func TestRecordIntakeBelowGoalDoesNotCross(t *testing.T) {
	state := testState(3000)

	result, err := RecordIntake(state, 250, domain.BeverageWater, time.Now())
	require.NoError(t, err)
	assert.False(t, result.GoalJustCrossed)
	assert.False(t, state.GoalMetToday)
}

func TestRecordIntakeDisplayTime(t *testing.T) {
	state := testState(3000)
	now := time.Date(2026, 8, 28, 14, 5, 0, 0, time.Local)

	result, err := RecordIntake(state, 250, domain.BeverageWater, now)
	require.NoError(t, err)
	assert.Equal(t, "14:05", result.Event.DisplayTime)
	assert.Equal(t, now, result.Event.OccurredAt)
}
