package domain

import (
	"time"
)

// BeverageKind identifies a drink type from the hydration catalog
type BeverageKind string

const (
	BeverageWater  BeverageKind = "water"
	BeverageCoffee BeverageKind = "coffee"
	BeverageTea    BeverageKind = "tea"
	BeverageSoda   BeverageKind = "soda"
	BeverageJuice  BeverageKind = "juice"
)

// hydrationFactors maps each beverage to its water-equivalence multiplier.
// Unknown kinds are rejected, never defaulted.
var hydrationFactors = map[BeverageKind]float64{
	BeverageWater:  1.00,
	BeverageCoffee: 0.85,
	BeverageTea:    0.90,
	BeverageSoda:   0.60,
	BeverageJuice:  0.95,
}

// HydrationFactor returns the water-equivalence factor for a beverage kind
func HydrationFactor(kind BeverageKind) (float64, bool) {
	factor, ok := hydrationFactors[kind]
	return factor, ok
}

// BeverageKinds lists the catalog in menu order
func BeverageKinds() []BeverageKind {
	return []BeverageKind{BeverageWater, BeverageCoffee, BeverageTea, BeverageSoda, BeverageJuice}
}

// ActivityLevel represents how physically active the user is
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

// ValidActivityLevel reports whether the given level is one of the known values
func ValidActivityLevel(level ActivityLevel) bool {
	switch level {
	case ActivityLow, ActivityModerate, ActivityHigh:
		return true
	}
	return false
}

// Achievement identifiers
const (
	AchievementStreak3    = "streak_3"
	AchievementStreak7    = "streak_7"
	AchievementHighVolume = "high_vol"
)

// HighVolumeThresholdMl is the single-day total that unlocks high_vol
const HighVolumeThresholdMl = 4000

// HistoryLimit bounds the rolling window of archived days
const HistoryLimit = 7

// IntakeEvent is a single recorded drink. Immutable once created.
type IntakeEvent struct {
	ID                string       `json:"id"`
	RawAmountMl       int          `json:"raw_amount_ml"`
	Beverage          BeverageKind `json:"beverage"`
	EffectiveAmountMl int          `json:"effective_amount_ml"`
	OccurredAt        time.Time    `json:"occurred_at"`
	DisplayTime       string       `json:"display_time"` // "HH:MM"
}

// DayRecord archives one closed calendar day
type DayRecord struct {
	Date             string `json:"date"` // "YYYY-MM-DD"
	TotalEffectiveMl int    `json:"total_effective_ml"`
}

// UserConfig holds the user's profile and goal settings
type UserConfig struct {
	DisplayName   string        `json:"display_name"`
	WeightKg      float64       `json:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	ManualGoalMl  int           `json:"manual_goal_ml"`
	UseSmartGoal  bool          `json:"use_smart_goal"`
	PhoneNumber   string        `json:"phone_number,omitempty"`
}

// DefaultConfig mirrors the stock widget: fixed 3000 ml manual goal
func DefaultConfig() UserConfig {
	return UserConfig{
		WeightKg:      70,
		ActivityLevel: ActivityModerate,
		ManualGoalMl:  3000,
		UseSmartGoal:  false,
	}
}

// ConfigUpdate carries a partial config edit; nil fields are left unchanged
type ConfigUpdate struct {
	DisplayName   *string
	WeightKg      *float64
	ActivityLevel *ActivityLevel
	ManualGoalMl  *int
	UseSmartGoal  *bool
	PhoneNumber   *string
}

// LedgerState is the aggregate root of the hydration ledger
type LedgerState struct {
	CurrentDay   string          // "YYYY-MM-DD", empty until the first rollover check
	TodayTotalMl int             // sum of effective amounts of TodayEvents
	TodayEvents  []IntakeEvent   // newest first
	History      []DayRecord     // chronological, at most HistoryLimit entries
	StreakDays   int             // consecutive closed days at or above goal
	Unlocked     map[string]bool // achievement id -> unlocked
	Config       UserConfig
	GoalMetToday bool // latched true once today's total has reached the goal
}

// NewLedgerState returns a zeroed state with default configuration
func NewLedgerState() *LedgerState {
	return &LedgerState{
		Unlocked: make(map[string]bool),
		Config:   DefaultConfig(),
	}
}

// Clone returns a deep copy, safe to hand to the presentation layer
func (s *LedgerState) Clone() LedgerState {
	out := *s
	out.TodayEvents = append([]IntakeEvent(nil), s.TodayEvents...)
	out.History = append([]DayRecord(nil), s.History...)
	out.Unlocked = make(map[string]bool, len(s.Unlocked))
	for id, v := range s.Unlocked {
		out.Unlocked[id] = v
	}
	return out
}

// AddDrinkResult reports the outcome of a recorded drink for the caller
// to present; the ledger itself has no presentation side effects.
type AddDrinkResult struct {
	Event           IntakeEvent
	NewlyUnlocked   []string
	GoalJustCrossed bool
	TodayTotalMl    int
	GoalMl          int
}
