package status

import (
	"time"

	"stratagem/internal/domain/decision"
)

// EngineReport is the operator-facing view of loop state.
type EngineReport struct {
	Enabled      bool       `json:"enabled"`
	Model        string     `json:"model"`
	CycleSeconds float64    `json:"cycle_seconds"`
	LastCycleAt  *time.Time `json:"last_cycle_at,omitempty"`
}

type JournalResponse struct {
	Records []decision.CycleRecord `json:"records"`
}
