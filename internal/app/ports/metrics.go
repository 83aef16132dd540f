package ports

import "stratagem/internal/domain/decision"

type CycleMetrics interface {
	RecordDeferred(reason string)
	RecordConsulted()
	RecordOutcome(status decision.OutcomeStatus)
}

// KPIReport is a point-in-time read of the cycle counters.
type KPIReport struct {
	Deferred  map[string]int64 `json:"deferred"`
	Consulted int64            `json:"consulted"`
	Outcomes  map[string]int64 `json:"outcomes"`
}

// KPISource exposes the counters a CycleMetrics implementation accumulates.
type KPISource interface {
	KPI() KPIReport
}
