package ledger

import (
	"math"

	"github.com/jalsahq/hydration-helper/internal/domain"
	apperrors "github.com/jalsahq/hydration-helper/internal/errors"
)

const (
	mlPerKg         = 35
	moderateBonusMl = 500
	highBonusMl     = 1000
)

// ComputeGoal maps the user configuration to the effective daily goal in ml.
// Manual mode returns the configured goal unchanged. Smart mode derives the
// goal from body weight and activity level, rounded half-up to the nearest
// 100 ml. Pure, no side effects.
func ComputeGoal(cfg domain.UserConfig) (int, error) {
	if !cfg.UseSmartGoal {
		return cfg.ManualGoalMl, nil
	}

	if cfg.WeightKg <= 0 {
		err := apperrors.New(apperrors.ErrorTypeValidation, "INVALID_CONFIG", "Smart goal requires a positive body weight")
		return 0, err.WithContext("weight_kg", cfg.WeightKg)
	}

	base := cfg.WeightKg * mlPerKg
	switch cfg.ActivityLevel {
	case domain.ActivityModerate:
		base += moderateBonusMl
	case domain.ActivityHigh:
		base += highBonusMl
	}

	goal := int(math.Floor(base/100+0.5)) * 100
	if goal <= 0 {
		goal = 100
	}
	return goal, nil
}
