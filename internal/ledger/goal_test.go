package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalsahq/hydration-helper/internal/domain"
	apperrors "github.com/jalsahq/hydration-helper/internal/errors"
)

func TestComputeGoalManual(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.UserConfig
		want int
	}{
		{
			name: "manual goal returned unchanged",
			cfg:  domain.UserConfig{ManualGoalMl: 2750, UseSmartGoal: false},
			want: 2750,
		},
		{
			name: "weight and activity ignored in manual mode",
			cfg:  domain.UserConfig{ManualGoalMl: 1234, WeightKg: 120, ActivityLevel: domain.ActivityHigh, UseSmartGoal: false},
			want: 1234,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeGoal(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeGoalSmart(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		activity domain.ActivityLevel
		want     int
	}{
		{name: "70kg moderate", weightKg: 70, activity: domain.ActivityModerate, want: 3000},
		{name: "70kg high", weightKg: 70, activity: domain.ActivityHigh, want: 3500},
		{name: "70kg low", weightKg: 70, activity: domain.ActivityLow, want: 2500},
		{name: "rounds down below half", weightKg: 67, activity: domain.ActivityLow, want: 2300},  // 2345 -> 2300
		{name: "rounds up from half and above", weightKg: 68, activity: domain.ActivityLow, want: 2400}, // 2380 -> 2400
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeGoal(domain.UserConfig{
				WeightKg:      tt.weightKg,
				ActivityLevel: tt.activity,
				UseSmartGoal:  true,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeGoalRejectsNonPositiveWeight(t *testing.T) {
	for _, weight := range []float64{0, -5} {
		_, err := ComputeGoal(domain.UserConfig{WeightKg: weight, UseSmartGoal: true})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidConfiguration))
	}
}
