package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalsahq/hydration-helper/internal/domain"
	apperrors "github.com/jalsahq/hydration-helper/internal/errors"
	"github.com/jalsahq/hydration-helper/internal/storage"
)

func TestServiceStatePersistsAcrossRestart(t *testing.T) {
	store := storage.NewMemoryStore()

	svc := NewService(store)
	_, err := svc.AddDrink(250, domain.BeverageWater)
	require.NoError(t, err)
	_, err = svc.AddDrink(250, domain.BeverageCoffee)
	require.NoError(t, err)

	// A second service over the same store sees the same ledger
	restarted := NewService(store)
	state := restarted.State()
	assert.Equal(t, 463, state.TodayTotalMl) // 250 + 213
	assert.Len(t, state.TodayEvents, 2)
	assert.Equal(t, domain.BeverageCoffee, state.TodayEvents[0].Beverage)
}

func TestServiceGoalMetLatchSurvivesRestart(t *testing.T) {
	store := storage.NewMemoryStore()

	svc := NewService(store)
	result, err := svc.AddDrink(3000, domain.BeverageWater)
	require.NoError(t, err)
	assert.True(t, result.GoalJustCrossed)
	assert.True(t, svc.State().GoalMetToday)

	restarted := NewService(store)
	assert.True(t, restarted.State().GoalMetToday)
}

func TestServiceRolloverOnDayChange(t *testing.T) {
	store := storage.NewMemoryStore()
	now := time.Date(2026, 8, 28, 20, 0, 0, 0, time.Local)

	svc := newService(store, func() time.Time { return now })
	_, err := svc.AddDrink(3200, domain.BeverageWater)
	require.NoError(t, err)

	now = now.Add(24 * time.Hour)
	state := svc.State()
	assert.Equal(t, "2026-08-29", state.CurrentDay)
	assert.Zero(t, state.TodayTotalMl)
	assert.Equal(t, 1, state.StreakDays)
	require.Len(t, state.History, 1)
	assert.Equal(t, domain.DayRecord{Date: "2026-08-28", TotalEffectiveMl: 3200}, state.History[0])
}

func TestServiceResetTodayPreservesCrossDayState(t *testing.T) {
	store := storage.NewMemoryStore()

	svc := NewService(store)
	result, err := svc.AddDrink(4000, domain.BeverageWater)
	require.NoError(t, err)
	assert.Contains(t, result.NewlyUnlocked, domain.AchievementHighVolume)

	svc.ResetToday()
	state := svc.State()
	assert.Zero(t, state.TodayTotalMl)
	assert.Empty(t, state.TodayEvents)
	assert.False(t, state.GoalMetToday)
	// Cross-day achievement state survives a today-only reset
	assert.True(t, state.Unlocked[domain.AchievementHighVolume])
}

func TestServiceResetAllClearsEverything(t *testing.T) {
	store := storage.NewMemoryStore()

	svc := NewService(store)
	_, err := svc.AddDrink(4000, domain.BeverageWater)
	require.NoError(t, err)
	name := "Sam"
	_, err = svc.UpdateConfig(domain.ConfigUpdate{DisplayName: &name})
	require.NoError(t, err)

	svc.ResetAll()
	state := svc.State()
	assert.Zero(t, state.TodayTotalMl)
	assert.Empty(t, state.TodayEvents)
	assert.False(t, state.Unlocked[domain.AchievementHighVolume])
	assert.Equal(t, domain.DefaultConfig(), state.Config)

	restarted := NewService(store)
	assert.False(t, restarted.State().Unlocked[domain.AchievementHighVolume])
}

func TestServiceUpdateConfigPartial(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store)

	name := "Sam"
	_, err := svc.UpdateConfig(domain.ConfigUpdate{DisplayName: &name})
	require.NoError(t, err)

	weight := 80.0
	cfg, err := svc.UpdateConfig(domain.ConfigUpdate{WeightKg: &weight})
	require.NoError(t, err)
	assert.Equal(t, "Sam", cfg.DisplayName)
	assert.Equal(t, 80.0, cfg.WeightKg)
}

func TestServiceUpdateConfigRejectsInvalid(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store)
	before := svc.State().Config

	badWeight := -1.0
	_, err := svc.UpdateConfig(domain.ConfigUpdate{WeightKg: &badWeight})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidConfiguration))

	badGoal := 0
	_, err = svc.UpdateConfig(domain.ConfigUpdate{ManualGoalMl: &badGoal})
	require.Error(t, err)

	badLevel := domain.ActivityLevel("extreme")
	_, err = svc.UpdateConfig(domain.ConfigUpdate{ActivityLevel: &badLevel})
	require.Error(t, err)

	// Rejected edits leave the config untouched
	assert.Equal(t, before, svc.State().Config)
}

func TestServiceSmartGoalSwitch(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store)

	weight := 70.0
	level := domain.ActivityHigh
	useSmart := true
	_, err := svc.UpdateConfig(domain.ConfigUpdate{WeightKg: &weight, ActivityLevel: &level, UseSmartGoal: &useSmart})
	require.NoError(t, err)
	assert.Equal(t, 3500, svc.Goal())
}

func TestServiceProgressPercentCapped(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store)

	_, err := svc.AddDrink(1500, domain.BeverageWater)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, svc.ProgressPercent(), 0.01)

	_, err = svc.AddDrink(5000, domain.BeverageWater)
	require.NoError(t, err)
	assert.Equal(t, 100.0, svc.ProgressPercent())
}

func TestServiceLastEventAt(t *testing.T) {
	store := storage.NewMemoryStore()
	now := time.Date(2026, 8, 28, 9, 30, 0, 0, time.Local)
	svc := newService(store, func() time.Time { return now })

	_, ok := svc.LastEventAt()
	assert.False(t, ok)

	_, err := svc.AddDrink(250, domain.BeverageWater)
	require.NoError(t, err)
	last, ok := svc.LastEventAt()
	assert.True(t, ok)
	assert.Equal(t, now, last)
}

// brokenStore fails every operation, simulating an unavailable database
type brokenStore struct{}

func (brokenStore) Load(string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}
func (brokenStore) Save(string, string) error { return errors.New("disk on fire") }
func (brokenStore) Reset() error              { return errors.New("disk on fire") }

func TestServiceDegradesWhenStoreUnavailable(t *testing.T) {
	svc := NewService(brokenStore{})

	// The session stays fully usable in-memory
	result, err := svc.AddDrink(250, domain.BeverageWater)
	require.NoError(t, err)
	assert.Equal(t, 250, result.TodayTotalMl)
	assert.Equal(t, 250, svc.State().TodayTotalMl)
}
