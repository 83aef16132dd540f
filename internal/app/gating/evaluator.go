package gating

import "stratagem/internal/domain/realm"

const (
	DefaultCriticalHealthPct = 20
	DefaultHeavyLoadPct      = 70
)

type Config struct {
	CriticalHealthPct int
	HeavyLoadPct      int
}

func DefaultConfig() Config {
	return Config{
		CriticalHealthPct: DefaultCriticalHealthPct,
		HeavyLoadPct:      DefaultHeavyLoadPct,
	}
}

// Trigger names which heuristic fired; empty when the cycle defers.
type Trigger string

const (
	TriggerNone         Trigger = ""
	TriggerLowHealth    Trigger = "low_health"
	TriggerHeavyLoad    Trigger = "heavy_load"
	TriggerNoHostiles   Trigger = "no_hostiles"
	TriggerHasObjective Trigger = "has_objective"
	TriggerIdle         Trigger = "idle"
)

// View is the cheap snapshot-lite input the evaluator needs; building a full
// snapshot is deferred until a trigger actually fires.
type View struct {
	HealthPct      int
	WeightPct      int
	NearbyHostiles int
	ActiveQuests   int
}

// Evaluate decides whether the oracle must be consulted this cycle. It is a
// pure function: no side effects, no memory across calls beyond cfg.
//
// A protected in-progress activity vetoes everything. Otherwise the five
// heuristics run in priority order as a short-circuit OR; the first match
// wins and later triggers are never consulted.
func Evaluate(view View, activity realm.Activity, cfg Config) (bool, Trigger) {
	if activity.Protected() {
		return false, TriggerNone
	}
	if view.HealthPct < cfg.CriticalHealthPct {
		return true, TriggerLowHealth
	}
	if view.WeightPct > cfg.HeavyLoadPct {
		return true, TriggerHeavyLoad
	}
	if view.NearbyHostiles == 0 {
		return true, TriggerNoHostiles
	}
	if view.ActiveQuests > 0 {
		return true, TriggerHasObjective
	}
	if activity.Idle() {
		return true, TriggerIdle
	}
	return false, TriggerNone
}
