package ledger

import (
	"sync"
	"time"

	"github.com/jalsahq/hydration-helper/internal/domain"
	apperrors "github.com/jalsahq/hydration-helper/internal/errors"
	"github.com/jalsahq/hydration-helper/internal/logger"
	"github.com/jalsahq/hydration-helper/internal/storage"
	"github.com/jalsahq/hydration-helper/internal/utils"
)

// Service owns the ledger state and serializes access to it. Every public
// operation completes its persistence write before returning; store
// failures are logged and the session continues in-memory.
type Service struct {
	mu    sync.Mutex
	state *domain.LedgerState
	store storage.Store
	now   func() time.Time
}

// NewService loads persisted state (or defaults) and runs the load-time
// rollover check before any other read.
func NewService(store storage.Store) *Service {
	return newService(store, time.Now)
}

func newService(store storage.Store, now func() time.Time) *Service {
	s := &Service{
		state: storage.LoadState(store),
		store: store,
		now:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkRollover()
	s.persist()
	return s
}

// State returns a read-only snapshot of the ledger
func (s *Service) State() domain.LedgerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkRollover() {
		s.persist()
	}
	return s.state.Clone()
}

// Goal returns the effective daily goal in ml
func (s *Service) Goal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goalLocked()
}

// ProgressPercent returns today's progress toward the goal, capped at 100
func (s *Service) ProgressPercent() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	goal := s.goalLocked()
	if goal <= 0 {
		return 0
	}
	pct := float64(s.state.TodayTotalMl) / float64(goal) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// AddDrink records an intake event and reports goal crossing and newly
// unlocked achievements for the presentation layer to react to.
func (s *Service) AddDrink(rawAmountMl int, kind domain.BeverageKind) (domain.AddDrinkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkRollover()

	result, err := RecordIntake(s.state, rawAmountMl, kind, s.now())
	if err != nil {
		return domain.AddDrinkResult{}, err
	}

	s.persist()
	return result, nil
}

// UpdateConfig applies a partial configuration edit. The whole edit is
// rejected if any supplied field is invalid.
func (s *Service) UpdateConfig(update domain.ConfigUpdate) (domain.UserConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkRollover()

	cfg := s.state.Config
	if update.DisplayName != nil {
		cfg.DisplayName = *update.DisplayName
	}
	if update.WeightKg != nil {
		if *update.WeightKg <= 0 {
			return cfg, invalidConfig("Body weight must be positive").WithContext("weight_kg", *update.WeightKg)
		}
		cfg.WeightKg = *update.WeightKg
	}
	if update.ActivityLevel != nil {
		if !domain.ValidActivityLevel(*update.ActivityLevel) {
			return cfg, invalidConfig("Unknown activity level").WithContext("activity_level", string(*update.ActivityLevel))
		}
		cfg.ActivityLevel = *update.ActivityLevel
	}
	if update.ManualGoalMl != nil {
		if *update.ManualGoalMl <= 0 {
			return cfg, invalidConfig("Manual goal must be positive").WithContext("manual_goal_ml", *update.ManualGoalMl)
		}
		cfg.ManualGoalMl = *update.ManualGoalMl
	}
	if update.UseSmartGoal != nil {
		cfg.UseSmartGoal = *update.UseSmartGoal
	}
	if update.PhoneNumber != nil {
		cfg.PhoneNumber = *update.PhoneNumber
	}
	if cfg.UseSmartGoal && cfg.WeightKg <= 0 {
		return s.state.Config, invalidConfig("Smart goal requires a positive body weight")
	}

	s.state.Config = cfg

	// A lowered goal never revokes an already-earned flag, but a goal met
	// under the new configuration is latched right away.
	if goal, err := ComputeGoal(cfg); err == nil && goal > 0 && s.state.TodayTotalMl >= goal {
		s.state.GoalMetToday = true
	}

	s.persist()
	return cfg, nil
}

// ResetToday clears today's counters and event log. Streak, history and
// achievements are cross-day state and survive.
func (s *Service) ResetToday() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkRollover()

	s.state.TodayTotalMl = 0
	s.state.TodayEvents = nil
	s.state.GoalMetToday = false
	s.persist()
}

// ResetAll wipes the store and reinitializes to defaults. Destructive and
// irreversible; callers must confirm with the user first.
func (s *Service) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Reset(); err != nil {
		logger.Errorf("Failed to clear store on full reset: %v", err)
	}
	s.state = domain.NewLedgerState()
	s.state.CurrentDay = utils.DayKey(s.now())
	s.persist()
}

// LastEventAt returns the timestamp of today's most recent drink
func (s *Service) LastEventAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.state.TodayEvents) == 0 {
		return time.Time{}, false
	}
	return s.state.TodayEvents[0].OccurredAt, true
}

// checkRollover advances the ledger when the calendar day has changed.
// Achievements are re-evaluated after every rollover because the streak
// may have crossed a threshold.
func (s *Service) checkRollover() bool {
	if !ProcessRollover(s.state, utils.DayKey(s.now())) {
		return false
	}
	if newly := EvaluateAchievements(s.state); len(newly) > 0 {
		logger.Infof("Achievements unlocked at rollover: %v", newly)
	}
	return true
}

func (s *Service) goalLocked() int {
	goal, err := ComputeGoal(s.state.Config)
	if err != nil {
		logger.Warningf("Goal could not be computed: %v", err)
		return 0
	}
	return goal
}

// persist writes the state back after a mutation. Failures degrade to
// in-memory operation for the rest of the session, never to the caller.
func (s *Service) persist() {
	if err := storage.SaveState(s.store, s.state, s.goalLocked()); err != nil {
		logger.Errorf("State not persisted, continuing in-memory: %v", err)
	}
}

func invalidConfig(message string) *apperrors.AppError {
	return apperrors.New(apperrors.ErrorTypeValidation, "INVALID_CONFIG", message)
}
