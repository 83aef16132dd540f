package status

import (
	"context"
	"time"

	"stratagem/internal/app/ports"
	"stratagem/internal/domain/decision"
)

const DefaultJournalLimit = 50

// EngineControl is the slice of the decision loop the operator surface
// needs: toggling, inspection, and a forced out-of-band cycle.
type EngineControl interface {
	Enable()
	Disable()
	Enabled() bool
	Model() string
	CycleInterval() time.Duration
	LastCycleAt() time.Time
	RunCycle(ctx context.Context) (decision.CycleRecord, error)
}

type UseCase struct {
	Engine  EngineControl
	Journal ports.DecisionJournal
	Metrics ports.KPISource
}

func (u UseCase) Enable()  { u.Engine.Enable() }
func (u UseCase) Disable() { u.Engine.Disable() }

func (u UseCase) Report() EngineReport {
	report := EngineReport{
		Enabled:      u.Engine.Enabled(),
		Model:        u.Engine.Model(),
		CycleSeconds: u.Engine.CycleInterval().Seconds(),
	}
	if last := u.Engine.LastCycleAt(); !last.IsZero() {
		report.LastCycleAt = &last
	}
	return report
}

// ForceCycle runs one decision cycle immediately, outside the ticker. The
// cadence guard still applies, so a forced cycle right after a scheduled one
// defers rather than double-consulting the oracle.
func (u UseCase) ForceCycle(ctx context.Context) (decision.CycleRecord, error) {
	return u.Engine.RunCycle(ctx)
}

func (u UseCase) RecentDecisions(ctx context.Context, limit int) (JournalResponse, error) {
	if limit <= 0 {
		limit = DefaultJournalLimit
	}
	records, err := u.Journal.ListRecent(ctx, limit)
	if err != nil {
		return JournalResponse{}, err
	}
	return JournalResponse{Records: records}, nil
}

func (u UseCase) KPI() ports.KPIReport {
	return u.Metrics.KPI()
}
