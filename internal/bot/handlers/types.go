package handlers

import (
	"github.com/jalsahq/hydration-helper/internal/interfaces"
)

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	Ledger interfaces.LedgerServiceInterface
}
