package prompt

import (
	"fmt"
	"strings"

	"stratagem/internal/domain/realm"
)

const DefaultMaxEngageLevelDiff = 10

// Policy parameterizes the fixed-structure instruction statement.
type Policy struct {
	MaxEngageLevelDiff int
}

func DefaultPolicy() Policy {
	return Policy{MaxEngageLevelDiff: DefaultMaxEngageLevelDiff}
}

// Assemble renders a snapshot into the (instructions, situation) pair sent
// to the oracle. Deterministic: the same snapshot and policy always produce
// the same strings, and every section renders even when its list is empty so
// the oracle sees a stable-shaped input.
func Assemble(snap realm.Snapshot, policy Policy) (instructions, situation string) {
	return buildInstructions(snap, policy), buildSituation(snap)
}

func buildInstructions(snap realm.Snapshot, policy Policy) string {
	actor := snap.Actor
	var b strings.Builder
	fmt.Fprintf(&b, "You are the tactical advisor for %s, a level %d %s at (%d,%d) on map %s.\n",
		orUnknown(actor.Name), actor.Level, orUnknown(actor.Class),
		actor.Position.X, actor.Position.Y, orUnknown(actor.MapName))
	fmt.Fprintf(&b, "Vitals: health %d/%d (%d%%), mana %d/%d (%d%%), carried weight %d%%.\n",
		actor.Health, actor.HealthMax, actor.HealthPct,
		actor.Mana, actor.ManaMax, actor.ManaPct, actor.WeightPct)
	b.WriteString("Decide one course of action using the provided tools.\n")
	b.WriteString("Priorities, highest first: survival, inventory management, resupply, progression, objectives.\n")
	fmt.Fprintf(&b, "Never engage a hostile more than %d levels above the character.\n", policy.MaxEngageLevelDiff)
	b.WriteString("Prefer wait over a risky action when the situation is ambiguous.")
	return b.String()
}

// Section order is fixed: hostiles, objectives, interactive entities,
// inventory, trailing decision prompt.
func buildSituation(snap realm.Snapshot) string {
	var b strings.Builder

	b.WriteString("Nearby hostiles:\n")
	if len(snap.Hostiles) == 0 {
		b.WriteString("- none\n")
	}
	for _, h := range snap.Hostiles {
		fmt.Fprintf(&b, "- %s [%s] level %d at (%d,%d), distance %.1f\n",
			orUnknown(h.Name), h.ID, h.Level, h.Position.X, h.Position.Y, h.Distance)
	}

	b.WriteString("Active objectives:\n")
	if len(snap.Objectives) == 0 {
		b.WriteString("- none\n")
	}
	for _, o := range snap.Objectives {
		if o.Kind == realm.ObjectivePursuit {
			fmt.Fprintf(&b, "- %s: hunt %s (%d/%d)\n", o.Name, o.TargetKind, o.Progress, o.Goal)
			continue
		}
		fmt.Fprintf(&b, "- %s\n", o.Name)
	}

	b.WriteString("Interactive entities:\n")
	if len(snap.Interactives) == 0 {
		b.WriteString("- none\n")
	}
	for _, e := range snap.Interactives {
		fmt.Fprintf(&b, "- %s [%s] at (%d,%d), distance %.1f\n",
			orUnknown(e.Name), e.ID, e.Position.X, e.Position.Y, e.Distance)
	}

	fmt.Fprintf(&b, "Inventory: %d items total, %d healing supplies.\n",
		snap.Inventory.TotalItems, snap.Inventory.HealingItems)

	b.WriteString("What should the character do right now?")
	return b.String()
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
