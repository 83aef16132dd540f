package ports

import (
	"context"

	"stratagem/internal/domain/realm"
)

// EntitySet is the raw per-kind entity listing read from the host game.
type EntitySet struct {
	Hostiles     []realm.Entity
	Interactives []realm.Entity
	Peers        []realm.Entity
}

// GameStateProvider is the read-only surface of the host game. Every method
// reflects live state at call time; the snapshot builder captures it once
// per cycle.
type GameStateProvider interface {
	Actor(ctx context.Context) (realm.Actor, error)
	Entities(ctx context.Context) (EntitySet, error)
	Objectives(ctx context.Context) ([]realm.Objective, error)
	Inventory(ctx context.Context) ([]realm.Item, error)
	Abilities(ctx context.Context) ([]realm.Ability, error)
	CurrentActivity(ctx context.Context) (realm.Activity, error)
	IsWalkable(ctx context.Context, pos realm.Position) (bool, error)
}

// CommandExecutor is the write surface of the host game. Each dispatcher
// success translates to exactly one call here.
type CommandExecutor interface {
	Engage(ctx context.Context, targetID string) error
	MoveTo(ctx context.Context, x, y int) error
	RouteToMap(ctx context.Context, name string) error
	UseAbility(ctx context.Context, name string, level int, targetID string) error
	UseItem(ctx context.Context, itemRef string) error
	Interact(ctx context.Context, targetID string, dialog []string) error
	SetPosture(ctx context.Context, posture realm.Posture) error
	Teleport(ctx context.Context, kind string) error
	StorageOp(ctx context.Context, action, item string, amount int) error
	TradeOp(ctx context.Context, op, item string, amount int) error
	IssuePlainCommand(ctx context.Context, command string) error
}
