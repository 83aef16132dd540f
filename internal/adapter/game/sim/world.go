package sim

import (
	"context"
	"fmt"
	"sync"

	"stratagem/internal/app/ports"
	"stratagem/internal/domain/realm"

	"go.uber.org/zap"
)

// World is a self-contained simulated game host. It implements both the
// read surface (ports.GameStateProvider) and the write surface
// (ports.CommandExecutor), so the server can run end to end without a real
// game connection. Command effects resolve immediately; there is no combat
// or travel duration.
type World struct {
	mu         sync.Mutex
	actor      realm.Actor
	entities   ports.EntitySet
	objectives []realm.Objective
	inventory  []realm.Item
	abilities  []realm.Ability
	activity   realm.Activity
	blocked    map[realm.Position]bool
	log        *zap.Logger
}

func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		actor: realm.Actor{
			Name:          "Brandt",
			Class:         "ranger",
			Level:         25,
			Vitals:        realm.Vitals{Health: 80, HealthMax: 100, Mana: 40, ManaMax: 60},
			CarryWeight:   30,
			CarryCapacity: 100,
			Position:      realm.Position{X: 50, Y: 50},
			MapName:       "sunken_crypts",
			Posture:       realm.PostureStanding,
		},
		entities: ports.EntitySet{
			Hostiles: []realm.Entity{
				{ID: "mob-101", Name: "crypt spider", Kind: realm.EntityHostile, Level: 23,
					Position: realm.Position{X: 56, Y: 52}},
				{ID: "mob-102", Name: "bone warden", Kind: realm.EntityHostile, Level: 27,
					Position: realm.Position{X: 44, Y: 61}},
			},
			Interactives: []realm.Entity{
				{ID: "npc-201", Name: "wandering merchant", Kind: realm.EntityInteractive, Level: 1,
					Position: realm.Position{X: 48, Y: 47}},
			},
		},
		objectives: []realm.Objective{
			{Name: "Clear the crypt spiders", Active: true,
				Targets: []realm.ObjectiveTarget{{EntityKind: "crypt spider", Progress: 3, Goal: 10}}},
		},
		inventory: []realm.Item{
			{Ref: "item-1", Name: "Minor Healing Potion", Quantity: 5},
			{Ref: "item-2", Name: "Iron Ore", Quantity: 12},
		},
		abilities: []realm.Ability{
			{Name: "Double Strafe", Level: 8},
			{Name: "First Aid", Level: 3},
		},
		blocked: map[realm.Position]bool{},
		log:     log,
	}
}

func (w *World) Actor(context.Context) (realm.Actor, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.actor, nil
}

func (w *World) Entities(context.Context) (ports.EntitySet, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := ports.EntitySet{
		Hostiles:     append([]realm.Entity(nil), w.entities.Hostiles...),
		Interactives: append([]realm.Entity(nil), w.entities.Interactives...),
		Peers:        append([]realm.Entity(nil), w.entities.Peers...),
	}
	return out, nil
}

func (w *World) Objectives(context.Context) ([]realm.Objective, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]realm.Objective(nil), w.objectives...), nil
}

func (w *World) Inventory(context.Context) ([]realm.Item, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]realm.Item(nil), w.inventory...), nil
}

func (w *World) Abilities(context.Context) ([]realm.Ability, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]realm.Ability(nil), w.abilities...), nil
}

func (w *World) CurrentActivity(context.Context) (realm.Activity, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.activity, nil
}

func (w *World) IsWalkable(_ context.Context, pos realm.Position) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.blocked[pos], nil
}

// Engage resolves combat instantly: the target dies, the actor takes a
// scratch, and objective progress advances when the target kind matches.
func (w *World) Engage(_ context.Context, targetID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.entities.Hostiles {
		h := &w.entities.Hostiles[i]
		if h.ID != targetID || h.Defeated {
			continue
		}
		h.Defeated = true
		w.actor.Vitals.Health -= 5
		if w.actor.Vitals.Health < 1 {
			w.actor.Vitals.Health = 1
		}
		for j := range w.objectives {
			for k := range w.objectives[j].Targets {
				target := &w.objectives[j].Targets[k]
				if target.EntityKind == h.Name && target.Progress < target.Goal {
					target.Progress++
				}
			}
		}
		w.log.Info("simulated kill", zap.String("target", targetID))
		return nil
	}
	return fmt.Errorf("no such hostile: %s", targetID)
}

func (w *World) MoveTo(_ context.Context, x, y int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.actor.Position = realm.Position{X: x, Y: y}
	return nil
}

func (w *World) RouteToMap(_ context.Context, name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.actor.MapName = name
	w.actor.Position = realm.Position{X: 0, Y: 0}
	return nil
}

func (w *World) UseAbility(_ context.Context, name string, level int, targetID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	cost := 5 * level
	if w.actor.Vitals.Mana < cost {
		return fmt.Errorf("not enough mana for %s", name)
	}
	w.actor.Vitals.Mana -= cost
	return nil
}

func (w *World) UseItem(_ context.Context, itemRef string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.inventory {
		item := &w.inventory[i]
		if item.Ref != itemRef {
			continue
		}
		item.Quantity--
		if item.Quantity <= 0 {
			w.inventory = append(w.inventory[:i], w.inventory[i+1:]...)
		}
		w.actor.Vitals.Health += 30
		if w.actor.Vitals.Health > w.actor.Vitals.HealthMax {
			w.actor.Vitals.Health = w.actor.Vitals.HealthMax
		}
		return nil
	}
	return fmt.Errorf("no such item: %s", itemRef)
}

func (w *World) Interact(_ context.Context, targetID string, dialog []string) error {
	w.log.Info("simulated interaction", zap.String("target", targetID), zap.Strings("dialog", dialog))
	return nil
}

func (w *World) SetPosture(_ context.Context, posture realm.Posture) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.actor.Posture = posture
	if posture == realm.PostureSitting {
		w.actor.Vitals.Health = w.actor.Vitals.HealthMax
		w.actor.Vitals.Mana = w.actor.Vitals.ManaMax
	}
	return nil
}

func (w *World) Teleport(_ context.Context, kind string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.actor.MapName = "hearthome"
	if kind == "town" {
		w.actor.MapName = "crossroads_town"
	}
	w.actor.Position = realm.Position{X: 10, Y: 10}
	return nil
}

func (w *World) StorageOp(_ context.Context, action, item string, amount int) error {
	w.log.Info("simulated storage op", zap.String("action", action),
		zap.String("item", item), zap.Int("amount", amount))
	return nil
}

func (w *World) TradeOp(_ context.Context, op, item string, amount int) error {
	w.log.Info("simulated trade", zap.String("op", op),
		zap.String("item", item), zap.Int("amount", amount))
	return nil
}

func (w *World) IssuePlainCommand(_ context.Context, command string) error {
	w.log.Info("simulated raw command", zap.String("command", command))
	return nil
}

// Block marks a tile as unwalkable; tests use it to exercise movement
// rejections.
func (w *World) Block(pos realm.Position) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.blocked[pos] = true
}
