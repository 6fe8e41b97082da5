package interfaces

import (
	"time"

	"github.com/jalsahq/hydration-helper/internal/domain"
)

// LedgerServiceInterface defines the contract for the hydration ledger
// exposed to the presentation layer and the reminder watcher.
type LedgerServiceInterface interface {
	State() domain.LedgerState
	Goal() int
	ProgressPercent() float64
	AddDrink(rawAmountMl int, kind domain.BeverageKind) (domain.AddDrinkResult, error)
	UpdateConfig(update domain.ConfigUpdate) (domain.UserConfig, error)
	ResetToday()
	ResetAll()
	LastEventAt() (time.Time, bool)
}
