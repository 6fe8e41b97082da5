package ledger

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jalsahq/hydration-helper/internal/domain"
	apperrors "github.com/jalsahq/hydration-helper/internal/errors"
	"github.com/jalsahq/hydration-helper/internal/utils"
)

// RecordIntake validates and appends a new intake event, updates the
// running total and evaluates goal crossing and achievements. The state is
// left untouched when the input is rejected.
func RecordIntake(state *domain.LedgerState, rawAmountMl int, kind domain.BeverageKind, now time.Time) (domain.AddDrinkResult, error) {
	if rawAmountMl <= 0 {
		err := apperrors.New(apperrors.ErrorTypeValidation, "INVALID_AMOUNT", "Intake amount must be a positive number of milliliters")
		return domain.AddDrinkResult{}, err.WithContext("raw_amount_ml", rawAmountMl)
	}

	factor, ok := domain.HydrationFactor(kind)
	if !ok {
		err := apperrors.New(apperrors.ErrorTypeValidation, "UNKNOWN_BEVERAGE", "Unrecognized beverage kind")
		return domain.AddDrinkResult{}, err.WithContext("beverage", string(kind))
	}

	event := domain.IntakeEvent{
		ID:                uuid.NewString(),
		RawAmountMl:       rawAmountMl,
		Beverage:          kind,
		EffectiveAmountMl: int(math.Round(float64(rawAmountMl) * factor)),
		OccurredAt:        now,
		DisplayTime:       utils.FormatClock(now),
	}

	previousTotal := state.TodayTotalMl
	state.TodayEvents = append([]domain.IntakeEvent{event}, state.TodayEvents...)
	state.TodayTotalMl += event.EffectiveAmountMl

	goal, gerr := ComputeGoal(state.Config)
	crossed := false
	if gerr == nil && goal > 0 {
		crossed = previousTotal < goal && state.TodayTotalMl >= goal
		if crossed {
			state.GoalMetToday = true
		}
	}

	return domain.AddDrinkResult{
		Event:           event,
		NewlyUnlocked:   EvaluateAchievements(state),
		GoalJustCrossed: crossed,
		TodayTotalMl:    state.TodayTotalMl,
		GoalMl:          goal,
	}, nil
}
