package ports

import (
	"context"

	"stratagem/internal/domain/decision"
)

// DecisionJournal persists completed cycle records for operator review.
type DecisionJournal interface {
	Append(ctx context.Context, record decision.CycleRecord) error
	ListRecent(ctx context.Context, limit int) ([]decision.CycleRecord, error)
}
