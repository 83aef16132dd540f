package engine

import (
	"context"
	"math"
	"sync"
	"time"

	"stratagem/internal/app/dispatch"
	"stratagem/internal/app/gating"
	"stratagem/internal/app/ports"
	"stratagem/internal/app/prompt"
	"stratagem/internal/app/snapshot"
	"stratagem/internal/domain/decision"
	"stratagem/internal/domain/realm"

	"go.uber.org/zap"
)

const DefaultCycleInterval = 3 * time.Second

// Defer reasons recorded on cycles that never reach the oracle.
const (
	DeferProtectedActivity = "protected_activity"
	DeferCycleCadence      = "cycle_cadence"
	DeferNoTrigger         = "no_trigger"
	DeferWorldUnavailable  = "world_unavailable"
)

type Config struct {
	Model         string
	CycleInterval time.Duration
	Gating        gating.Config
	Prompt        prompt.Policy
}

func (c Config) withDefaults() Config {
	if c.CycleInterval <= 0 {
		c.CycleInterval = DefaultCycleInterval
	}
	if c.Gating == (gating.Config{}) {
		c.Gating = gating.DefaultConfig()
	}
	if c.Prompt == (prompt.Policy{}) {
		c.Prompt = prompt.DefaultPolicy()
	}
	return c
}

type Deps struct {
	Game     ports.GameStateProvider
	Oracle   ports.OracleClient
	Builder  snapshot.Builder
	Dispatch dispatch.UseCase
	Journal  ports.DecisionJournal
	Metrics  ports.CycleMetrics
	Log      *zap.Logger
	Now      func() time.Time
}

// Engine runs the decision loop: every cycle it checks whether the oracle
// should be consulted, and when a trigger fires it builds a snapshot, asks
// the oracle, and dispatches whatever tool calls come back. Cycles that
// defer cost a few cheap state reads and nothing else.
type Engine struct {
	cfg  Config
	deps Deps

	mu          sync.Mutex
	enabled     bool
	lastCycleAt time.Time
}

func New(cfg Config, deps Deps) *Engine {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Engine{cfg: cfg.withDefaults(), deps: deps}
}

func (e *Engine) Enable() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = true
}

func (e *Engine) Disable() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = false
}

func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

func (e *Engine) LastCycleAt() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastCycleAt
}

func (e *Engine) Model() string { return e.cfg.Model }

func (e *Engine) CycleInterval() time.Duration { return e.cfg.CycleInterval }

// Run drives RunCycle on a fixed ticker until the context is canceled. A
// cycle that deferred or failed never stops the loop.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.CycleInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := e.RunCycle(ctx); err != nil && err != ports.ErrEngineDisabled {
				e.deps.Log.Warn("decision cycle failed", zap.Error(err))
			}
		}
	}
}

// RunCycle executes one decision cycle and returns its record. It returns
// ports.ErrEngineDisabled without touching the world when the engine is off.
//
// The completed-cycle timestamp advances on every finished cycle except a
// cadence skip; a skipped cycle must not push the next one further away.
func (e *Engine) RunCycle(ctx context.Context) (decision.CycleRecord, error) {
	if !e.Enabled() {
		return decision.CycleRecord{}, ports.ErrEngineDisabled
	}
	start := e.deps.Now()

	activity, err := e.deps.Game.CurrentActivity(ctx)
	if err != nil {
		return e.finishDeferred(ctx, start, DeferWorldUnavailable, true)
	}
	if activity.Protected() {
		return e.finishDeferred(ctx, start, DeferProtectedActivity, true)
	}

	e.mu.Lock()
	tooSoon := !e.lastCycleAt.IsZero() && start.Sub(e.lastCycleAt) < e.cfg.CycleInterval
	e.mu.Unlock()
	if tooSoon {
		return e.finishDeferred(ctx, start, DeferCycleCadence, false)
	}

	view, err := e.gatingView(ctx)
	if err != nil {
		return e.finishDeferred(ctx, start, DeferWorldUnavailable, true)
	}
	fire, trigger := gating.Evaluate(view, activity, e.cfg.Gating)
	if !fire {
		return e.finishDeferred(ctx, start, DeferNoTrigger, true)
	}

	snap := e.deps.Builder.Build(ctx)
	instructions, situation := prompt.Assemble(snap, e.cfg.Prompt)
	dec, err := e.deps.Oracle.RequestDecision(ctx, instructions, situation)
	if err != nil {
		e.deps.Log.Warn("oracle request failed", zap.Error(err))
		dec = nil
	}

	record := decision.CycleRecord{
		StartedAt:    start,
		State:        decision.CycleConsulting,
		GateTrigger:  string(trigger),
		OracleCalled: true,
	}
	if dec != nil {
		record.Outcomes = e.deps.Dispatch.ExecuteAll(ctx, snap, dec.ToolCalls)
	}
	e.deps.Metrics.RecordConsulted()
	for _, outcome := range record.Outcomes {
		e.deps.Metrics.RecordOutcome(outcome.Status)
	}
	return e.finish(ctx, record, true)
}

func (e *Engine) finishDeferred(ctx context.Context, start time.Time, reason string, advance bool) (decision.CycleRecord, error) {
	e.deps.Metrics.RecordDeferred(reason)
	record := decision.CycleRecord{
		StartedAt:   start,
		State:       decision.CycleDeferred,
		DeferReason: reason,
	}
	return e.finish(ctx, record, advance)
}

func (e *Engine) finish(ctx context.Context, record decision.CycleRecord, advance bool) (decision.CycleRecord, error) {
	record.DurationMS = e.deps.Now().Sub(record.StartedAt).Milliseconds()
	if advance {
		e.mu.Lock()
		e.lastCycleAt = record.StartedAt
		e.mu.Unlock()
	}
	if err := e.deps.Journal.Append(ctx, record); err != nil {
		e.deps.Log.Warn("journal append failed", zap.Error(err))
	}
	e.deps.Log.Info("decision cycle finished",
		zap.String("state", string(record.State)),
		zap.String("defer_reason", record.DeferReason),
		zap.String("trigger", record.GateTrigger),
		zap.Int("outcomes", len(record.Outcomes)),
		zap.Int64("duration_ms", record.DurationMS))
	return record, nil
}

// gatingView reads just enough live state for the trigger heuristics. The
// full snapshot is only built after a trigger fires.
func (e *Engine) gatingView(ctx context.Context) (gating.View, error) {
	actor, err := e.deps.Game.Actor(ctx)
	if err != nil {
		return gating.View{}, err
	}
	view := gating.View{
		HealthPct: realm.Percent(actor.Vitals.Health, actor.Vitals.HealthMax),
		WeightPct: realm.Percent(actor.CarryWeight, actor.CarryCapacity),
	}

	set, err := e.deps.Game.Entities(ctx)
	if err != nil {
		return gating.View{}, err
	}
	radius := e.deps.Builder.Cfg.HostileRadius
	if radius <= 0 {
		radius = snapshot.DefaultHostileRadius
	}
	for _, h := range set.Hostiles {
		if h.Defeated {
			continue
		}
		dx := float64(h.Position.X - actor.Position.X)
		dy := float64(h.Position.Y - actor.Position.Y)
		if math.Hypot(dx, dy) <= radius {
			view.NearbyHostiles++
		}
	}

	objectives, err := e.deps.Game.Objectives(ctx)
	if err != nil {
		return gating.View{}, err
	}
	for _, o := range objectives {
		if o.Active {
			view.ActiveQuests++
		}
	}
	return view, nil
}
