package inmemory

import (
	"testing"

	"stratagem/internal/domain/decision"
)

func TestRecorderKPI(t *testing.T) {
	r := NewRecorder()
	r.RecordDeferred("no_trigger")
	r.RecordDeferred("no_trigger")
	r.RecordDeferred("protected_activity")
	r.RecordConsulted()
	r.RecordOutcome(decision.StatusDispatched)
	r.RecordOutcome(decision.StatusRejected)

	kpi := r.KPI()
	if kpi.Consulted != 1 {
		t.Fatalf("consulted = %d", kpi.Consulted)
	}
	if kpi.Deferred["no_trigger"] != 2 || kpi.Deferred["protected_activity"] != 1 {
		t.Fatalf("deferred = %v", kpi.Deferred)
	}
	if kpi.Outcomes["DISPATCHED"] != 1 || kpi.Outcomes["REJECTED"] != 1 {
		t.Fatalf("outcomes = %v", kpi.Outcomes)
	}
}

func TestRecorderKPIIsACopy(t *testing.T) {
	r := NewRecorder()
	r.RecordDeferred("no_trigger")
	kpi := r.KPI()
	kpi.Deferred["no_trigger"] = 99
	if got := r.KPI().Deferred["no_trigger"]; got != 1 {
		t.Fatalf("internal counter mutated through the report copy: %d", got)
	}
}
