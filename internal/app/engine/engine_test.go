package engine

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"stratagem/internal/app/dispatch"
	"stratagem/internal/app/ports"
	"stratagem/internal/app/snapshot"
	"stratagem/internal/domain/decision"
	"stratagem/internal/domain/realm"
)

type stubGame struct {
	actor      realm.Actor
	hostiles   []realm.Entity
	objectives []realm.Objective
	activity   realm.Activity
	actorCalls int
}

func (s *stubGame) Actor(context.Context) (realm.Actor, error) {
	s.actorCalls++
	return s.actor, nil
}
func (s *stubGame) Entities(context.Context) (ports.EntitySet, error) {
	return ports.EntitySet{Hostiles: s.hostiles}, nil
}
func (s *stubGame) Objectives(context.Context) ([]realm.Objective, error) {
	return s.objectives, nil
}
func (s *stubGame) Inventory(context.Context) ([]realm.Item, error)    { return nil, nil }
func (s *stubGame) Abilities(context.Context) ([]realm.Ability, error) { return nil, nil }
func (s *stubGame) CurrentActivity(context.Context) (realm.Activity, error) {
	return s.activity, nil
}
func (s *stubGame) IsWalkable(context.Context, realm.Position) (bool, error) { return true, nil }

type stubOracle struct {
	decision *decision.Decision
	calls    int
}

func (s *stubOracle) RequestDecision(context.Context, string, string) (*decision.Decision, error) {
	s.calls++
	return s.decision, nil
}

type stubExecutor struct {
	engaged []string
}

func (s *stubExecutor) Engage(_ context.Context, targetID string) error {
	s.engaged = append(s.engaged, targetID)
	return nil
}
func (s *stubExecutor) MoveTo(context.Context, int, int) error                 { return nil }
func (s *stubExecutor) RouteToMap(context.Context, string) error               { return nil }
func (s *stubExecutor) UseAbility(context.Context, string, int, string) error  { return nil }
func (s *stubExecutor) UseItem(context.Context, string) error                  { return nil }
func (s *stubExecutor) Interact(context.Context, string, []string) error       { return nil }
func (s *stubExecutor) SetPosture(context.Context, realm.Posture) error        { return nil }
func (s *stubExecutor) Teleport(context.Context, string) error                 { return nil }
func (s *stubExecutor) StorageOp(context.Context, string, string, int) error   { return nil }
func (s *stubExecutor) TradeOp(context.Context, string, string, int) error     { return nil }
func (s *stubExecutor) IssuePlainCommand(context.Context, string) error        { return nil }

type stubJournal struct {
	records []decision.CycleRecord
}

func (s *stubJournal) Append(_ context.Context, record decision.CycleRecord) error {
	s.records = append(s.records, record)
	return nil
}
func (s *stubJournal) ListRecent(context.Context, int) ([]decision.CycleRecord, error) {
	return s.records, nil
}

type stubMetrics struct {
	deferred  map[string]int
	consulted int
	outcomes  map[decision.OutcomeStatus]int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{
		deferred: map[string]int{},
		outcomes: map[decision.OutcomeStatus]int{},
	}
}

func (s *stubMetrics) RecordDeferred(reason string) { s.deferred[reason]++ }
func (s *stubMetrics) RecordConsulted()             { s.consulted++ }
func (s *stubMetrics) RecordOutcome(status decision.OutcomeStatus) {
	s.outcomes[status]++
}

type fixture struct {
	engine  *Engine
	game    *stubGame
	oracle  *stubOracle
	exec    *stubExecutor
	journal *stubJournal
	metrics *stubMetrics
	clock   *time.Time
}

func newFixture(game *stubGame, oracle *stubOracle) *fixture {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	exec := &stubExecutor{}
	journal := &stubJournal{}
	metrics := newStubMetrics()
	eng := New(Config{Model: "gpt-4o-mini"}, Deps{
		Game:     game,
		Oracle:   oracle,
		Builder:  snapshot.Builder{Game: game, Cfg: snapshot.DefaultConfig()},
		Dispatch: dispatch.UseCase{Game: game, Executor: exec},
		Journal:  journal,
		Metrics:  metrics,
		Now:      func() time.Time { return now },
	})
	return &fixture{engine: eng, game: game, oracle: oracle, exec: exec,
		journal: journal, metrics: metrics, clock: &now}
}

func healthyActor() realm.Actor {
	return realm.Actor{
		Name:   "Brandt",
		Level:  25,
		Vitals: realm.Vitals{Health: 90, HealthMax: 100, Mana: 50, ManaMax: 50},
		CarryWeight: 10, CarryCapacity: 100,
	}
}

func nearbyHostile(id string) realm.Entity {
	return realm.Entity{ID: id, Name: "cave rat", Kind: realm.EntityHostile,
		Level: 24, Position: realm.Position{X: 3, Y: 4}}
}

func TestRunCycleDisabledEngine(t *testing.T) {
	f := newFixture(&stubGame{actor: healthyActor()}, &stubOracle{})
	if _, err := f.engine.RunCycle(context.Background()); err != ports.ErrEngineDisabled {
		t.Fatalf("err = %v, want ErrEngineDisabled", err)
	}
	if f.game.actorCalls != 0 {
		t.Fatalf("disabled engine read world state %d times", f.game.actorCalls)
	}
}

func TestRunCycleProtectedActivityVetoes(t *testing.T) {
	game := &stubGame{actor: realm.Actor{Vitals: realm.Vitals{Health: 5, HealthMax: 100}},
		activity: realm.ActivityAttacking}
	f := newFixture(game, &stubOracle{})
	f.engine.Enable()

	record, err := f.engine.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if record.State != decision.CycleDeferred || record.DeferReason != DeferProtectedActivity {
		t.Fatalf("record = %+v", record)
	}
	if f.oracle.calls != 0 {
		t.Fatalf("oracle consulted during a protected activity")
	}
	if f.metrics.deferred[DeferProtectedActivity] != 1 {
		t.Fatalf("deferred metrics = %v", f.metrics.deferred)
	}
}

func TestRunCycleCadenceSkip(t *testing.T) {
	game := &stubGame{actor: healthyActor(), activity: realm.ActivityGathering,
		hostiles: []realm.Entity{nearbyHostile("mob-1")}}
	f := newFixture(game, &stubOracle{})
	f.engine.Enable()

	// First cycle completes (no trigger fires) and stamps the cadence clock.
	record, _ := f.engine.RunCycle(context.Background())
	if record.DeferReason != DeferNoTrigger {
		t.Fatalf("first record = %+v", record)
	}

	// One second later is inside the interval: the cycle is skipped and the
	// stamp does not advance.
	*f.clock = f.clock.Add(time.Second)
	record, _ = f.engine.RunCycle(context.Background())
	if record.DeferReason != DeferCycleCadence {
		t.Fatalf("second record = %+v", record)
	}

	// Three seconds after the first completed cycle the engine runs again.
	*f.clock = f.clock.Add(2 * time.Second)
	record, _ = f.engine.RunCycle(context.Background())
	if record.DeferReason != DeferNoTrigger {
		t.Fatalf("third record = %+v", record)
	}
	if f.oracle.calls != 0 {
		t.Fatalf("oracle calls = %d, want 0", f.oracle.calls)
	}
}

func TestRunCycleLowHealthConsultsAndDispatches(t *testing.T) {
	actor := healthyActor()
	actor.Vitals.Health = 15
	game := &stubGame{actor: actor, hostiles: []realm.Entity{nearbyHostile("mob-1")}}
	oracle := &stubOracle{decision: &decision.Decision{ToolCalls: []decision.ToolCall{{
		ID: "call-1", Name: "engage_target",
		Arguments: json.RawMessage(`{"target_id":"mob-1"}`),
	}}}}
	f := newFixture(game, oracle)
	f.engine.Enable()

	record, err := f.engine.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if record.State != decision.CycleConsulting || record.GateTrigger != "low_health" {
		t.Fatalf("record = %+v", record)
	}
	if !record.OracleCalled || oracle.calls != 1 {
		t.Fatalf("oracle calls = %d", oracle.calls)
	}
	if len(record.Outcomes) != 1 || record.Outcomes[0].Status != decision.StatusDispatched {
		t.Fatalf("outcomes = %+v", record.Outcomes)
	}
	if len(f.exec.engaged) != 1 || f.exec.engaged[0] != "mob-1" {
		t.Fatalf("engaged = %v", f.exec.engaged)
	}
	if f.metrics.consulted != 1 || f.metrics.outcomes[decision.StatusDispatched] != 1 {
		t.Fatalf("metrics = %+v", f.metrics)
	}
	if len(f.journal.records) != 1 {
		t.Fatalf("journal records = %d", len(f.journal.records))
	}
}

func TestRunCycleOracleSilenceMeansNoAction(t *testing.T) {
	game := &stubGame{actor: healthyActor()}
	f := newFixture(game, &stubOracle{decision: nil})
	f.engine.Enable()

	// No hostiles around, so the no-hostiles trigger fires.
	record, _ := f.engine.RunCycle(context.Background())
	if record.State != decision.CycleConsulting || record.GateTrigger != "no_hostiles" {
		t.Fatalf("record = %+v", record)
	}
	if len(record.Outcomes) != 0 {
		t.Fatalf("outcomes = %+v, want none", record.Outcomes)
	}
	if len(f.exec.engaged) != 0 {
		t.Fatalf("executor acted on a nil decision")
	}
}

func TestRunCycleAdvancesTimestamp(t *testing.T) {
	game := &stubGame{actor: healthyActor(), activity: realm.ActivityGathering,
		hostiles: []realm.Entity{nearbyHostile("mob-1")}}
	f := newFixture(game, &stubOracle{})
	f.engine.Enable()

	if !f.engine.LastCycleAt().IsZero() {
		t.Fatalf("timestamp set before any cycle")
	}
	f.engine.RunCycle(context.Background())
	if got := f.engine.LastCycleAt(); !got.Equal(*f.clock) {
		t.Fatalf("LastCycleAt = %v, want %v", got, *f.clock)
	}
}
