package snapshot

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"stratagem/internal/app/ports"
	"stratagem/internal/domain/realm"
)

const (
	DefaultHostileRadius     = 20.0
	DefaultInteractiveRadius = 15.0
	DefaultHostileCap        = 5
	DefaultInteractiveCap    = 4
	DefaultPeerCap           = 4
)

var DefaultHealingKeywords = []string{"potion", "elixir", "bandage", "herb"}

type Config struct {
	HostileRadius     float64
	InteractiveRadius float64
	HostileCap        int
	InteractiveCap    int
	PeerCap           int
	HealingKeywords   []string
}

func DefaultConfig() Config {
	return Config{
		HostileRadius:     DefaultHostileRadius,
		InteractiveRadius: DefaultInteractiveRadius,
		HostileCap:        DefaultHostileCap,
		InteractiveCap:    DefaultInteractiveCap,
		PeerCap:           DefaultPeerCap,
		HealingKeywords:   DefaultHealingKeywords,
	}
}

type Builder struct {
	Game ports.GameStateProvider
	Cfg  Config
	Now  func() time.Time
}

// Build captures a bounded, ranked view of world state. It never fails:
// missing upstream data (no actor, no entity lists) yields a snapshot with
// empty or zeroed fields rather than an error.
func (b Builder) Build(ctx context.Context) realm.Snapshot {
	nowFn := b.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	snap := realm.Snapshot{
		TakenAt:      nowFn(),
		Hostiles:     []realm.EntityView{},
		Interactives: []realm.EntityView{},
		Peers:        []realm.EntityView{},
		Objectives:   []realm.ObjectiveView{},
	}

	actor, err := b.Game.Actor(ctx)
	if err != nil {
		return snap
	}
	snap.Actor = actorView(actor)

	if set, err := b.Game.Entities(ctx); err == nil {
		snap.Hostiles = rankEntities(set.Hostiles, actor.Position, b.Cfg.HostileRadius, b.Cfg.HostileCap, true)
		snap.Interactives = rankEntities(set.Interactives, actor.Position, b.Cfg.InteractiveRadius, b.Cfg.InteractiveCap, false)
		snap.Peers = rankEntities(set.Peers, actor.Position, b.Cfg.InteractiveRadius, b.Cfg.PeerCap, false)
	}

	if objectives, err := b.Game.Objectives(ctx); err == nil {
		snap.Objectives = classifyObjectives(objectives)
	}

	if items, err := b.Game.Inventory(ctx); err == nil {
		snap.Inventory = digestInventory(items, b.Cfg.HealingKeywords)
	}

	return snap
}

func actorView(actor realm.Actor) realm.ActorView {
	return realm.ActorView{
		Name:      actor.Name,
		Class:     actor.Class,
		Level:     actor.Level,
		MapName:   actor.MapName,
		Position:  actor.Position,
		Health:    actor.Vitals.Health,
		HealthMax: actor.Vitals.HealthMax,
		HealthPct: realm.Percent(actor.Vitals.Health, actor.Vitals.HealthMax),
		Mana:      actor.Vitals.Mana,
		ManaMax:   actor.Vitals.ManaMax,
		ManaPct:   realm.Percent(actor.Vitals.Mana, actor.Vitals.ManaMax),
		WeightPct: realm.Percent(actor.CarryWeight, actor.CarryCapacity),
	}
}

// rankEntities computes each entity's distance once, filters to the radius,
// sorts ascending by distance (ties keep input order), and truncates to cap.
func rankEntities(entities []realm.Entity, center realm.Position, radius float64, limit int, skipDefeated bool) []realm.EntityView {
	views := make([]realm.EntityView, 0, len(entities))
	for _, e := range entities {
		if skipDefeated && e.Defeated {
			continue
		}
		dist := distance(center, e.Position)
		if dist > radius {
			continue
		}
		views = append(views, realm.EntityView{
			ID:       e.ID,
			Name:     e.Name,
			Level:    e.Level,
			Position: e.Position,
			Distance: dist,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Distance < views[j].Distance
	})
	if len(views) > limit {
		views = views[:limit]
	}
	return views
}

func distance(a, b realm.Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// classifyObjectives keeps active objectives only. An objective is "pursuit"
// when it declares a target entity kind together with a progress/goal pair;
// the first matching sub-target found wins. Everything else is "general".
func classifyObjectives(objectives []realm.Objective) []realm.ObjectiveView {
	views := make([]realm.ObjectiveView, 0, len(objectives))
	for _, o := range objectives {
		if !o.Active {
			continue
		}
		view := realm.ObjectiveView{Name: o.Name, Kind: realm.ObjectiveGeneral}
		for _, target := range o.Targets {
			if target.EntityKind == "" || target.Goal <= 0 {
				continue
			}
			view.Kind = realm.ObjectivePursuit
			view.TargetKind = target.EntityKind
			view.Progress = target.Progress
			view.Goal = target.Goal
			break
		}
		views = append(views, view)
	}
	return views
}

// digestInventory is a single linear pass: total entry count plus summed
// quantities of items whose display name contains a healing keyword
// (case-insensitive substring, not exact match).
func digestInventory(items []realm.Item, keywords []string) realm.InventoryDigest {
	digest := realm.InventoryDigest{}
	for _, item := range items {
		digest.TotalItems++
		name := strings.ToLower(item.Name)
		for _, kw := range keywords {
			if strings.Contains(name, strings.ToLower(kw)) {
				qty := item.Quantity
				if qty <= 0 {
					qty = 1
				}
				digest.HealingItems += qty
				break
			}
		}
	}
	return digest
}
