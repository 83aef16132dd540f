package mock

import (
	"context"

	"stratagem/internal/app/ports"
	"stratagem/internal/domain/realm"
)

// Provider serves a fixed world fixture. Zero-value fields read back as-is,
// so tests and dry runs can shape exactly the state they need.
type Provider struct {
	ActorState realm.Actor
	EntitySet  ports.EntitySet
	Quests     []realm.Objective
	Items      []realm.Item
	Skills     []realm.Ability
	Activity   realm.Activity
	Walkable   func(realm.Position) bool
}

func (p Provider) Actor(context.Context) (realm.Actor, error)           { return p.ActorState, nil }
func (p Provider) Entities(context.Context) (ports.EntitySet, error)    { return p.EntitySet, nil }
func (p Provider) Objectives(context.Context) ([]realm.Objective, error) { return p.Quests, nil }
func (p Provider) Inventory(context.Context) ([]realm.Item, error)      { return p.Items, nil }
func (p Provider) Abilities(context.Context) ([]realm.Ability, error)   { return p.Skills, nil }
func (p Provider) CurrentActivity(context.Context) (realm.Activity, error) {
	return p.Activity, nil
}

func (p Provider) IsWalkable(_ context.Context, pos realm.Position) (bool, error) {
	if p.Walkable == nil {
		return true, nil
	}
	return p.Walkable(pos), nil
}
