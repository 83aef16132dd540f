package inmemory

import (
	"sync"

	"stratagem/internal/app/ports"
	"stratagem/internal/domain/decision"
)

// Recorder accumulates per-process cycle counters. It implements both the
// write side (ports.CycleMetrics) and the read side (ports.KPISource).
type Recorder struct {
	mu        sync.Mutex
	deferred  map[string]int64
	consulted int64
	outcomes  map[string]int64
}

func NewRecorder() *Recorder {
	return &Recorder{
		deferred: map[string]int64{},
		outcomes: map[string]int64{},
	}
}

func (r *Recorder) RecordDeferred(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deferred[reason]++
}

func (r *Recorder) RecordConsulted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.consulted++
}

func (r *Recorder) RecordOutcome(status decision.OutcomeStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes[string(status)]++
}

func (r *Recorder) KPI() ports.KPIReport {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := ports.KPIReport{
		Consulted: r.consulted,
		Deferred:  make(map[string]int64, len(r.deferred)),
		Outcomes:  make(map[string]int64, len(r.outcomes)),
	}
	for k, v := range r.deferred {
		out.Deferred[k] = v
	}
	for k, v := range r.outcomes {
		out.Outcomes[k] = v
	}
	return out
}
