package snapshot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"stratagem/internal/app/ports"
	"stratagem/internal/domain/realm"
)

type stubGame struct {
	actor      realm.Actor
	actorErr   error
	entities   ports.EntitySet
	objectives []realm.Objective
	inventory  []realm.Item
}

func (s stubGame) Actor(context.Context) (realm.Actor, error) {
	return s.actor, s.actorErr
}
func (s stubGame) Entities(context.Context) (ports.EntitySet, error) {
	return s.entities, nil
}
func (s stubGame) Objectives(context.Context) ([]realm.Objective, error) {
	return s.objectives, nil
}
func (s stubGame) Inventory(context.Context) ([]realm.Item, error) {
	return s.inventory, nil
}
func (s stubGame) Abilities(context.Context) ([]realm.Ability, error) {
	return nil, nil
}
func (s stubGame) CurrentActivity(context.Context) (realm.Activity, error) {
	return realm.ActivityIdle, nil
}
func (s stubGame) IsWalkable(context.Context, realm.Position) (bool, error) {
	return true, nil
}

func fixedNow() time.Time { return time.Unix(1700000000, 0) }

func TestBuild_NoActorYieldsEmptySnapshot(t *testing.T) {
	b := Builder{Game: stubGame{actorErr: errors.New("no actor")}, Cfg: DefaultConfig(), Now: fixedNow}
	snap := b.Build(context.Background())

	if snap.Actor.HealthPct != 0 || snap.Actor.Name != "" {
		t.Fatalf("expected zeroed actor view, got %+v", snap.Actor)
	}
	if len(snap.Hostiles) != 0 || len(snap.Interactives) != 0 || len(snap.Peers) != 0 {
		t.Fatalf("expected empty entity lists")
	}
	if snap.TakenAt != fixedNow() {
		t.Fatalf("expected TakenAt from Now func")
	}
}

func TestBuild_PercentagesClampedUnderMalformedMax(t *testing.T) {
	cases := []struct {
		cur, max int
		want     int
	}{
		{50, 100, 50},
		{150, 100, 100},
		{-5, 100, 0},
		{50, 0, 100},  // zero max substituted with 1, then clamped
		{0, 0, 0},
		{7, -3, 100},
	}
	for _, tc := range cases {
		got := realm.Percent(tc.cur, tc.max)
		if got != tc.want {
			t.Fatalf("Percent(%d,%d)=%d want %d", tc.cur, tc.max, got, tc.want)
		}
		if got < 0 || got > 100 {
			t.Fatalf("Percent(%d,%d)=%d out of [0,100]", tc.cur, tc.max, got)
		}
	}
}

func TestBuild_PercentTruncatesTowardZero(t *testing.T) {
	b := Builder{Game: stubGame{actor: realm.Actor{
		Vitals:        realm.Vitals{Health: 199, HealthMax: 200, Mana: 1, ManaMax: 3},
		CarryWeight:   2,
		CarryCapacity: 3,
	}}, Cfg: DefaultConfig(), Now: fixedNow}
	snap := b.Build(context.Background())

	if snap.Actor.HealthPct != 99 {
		t.Fatalf("health pct=%d want 99 (truncated)", snap.Actor.HealthPct)
	}
	if snap.Actor.ManaPct != 33 {
		t.Fatalf("mana pct=%d want 33", snap.Actor.ManaPct)
	}
	if snap.Actor.WeightPct != 66 {
		t.Fatalf("weight pct=%d want 66", snap.Actor.WeightPct)
	}
}

func TestBuild_HostilesFilteredSortedCapped(t *testing.T) {
	hostiles := make([]realm.Entity, 0, 10)
	// Eight in range at descending distance, one defeated, one out of range.
	for i := 0; i < 8; i++ {
		hostiles = append(hostiles, realm.Entity{
			ID:       fmt.Sprintf("mob-%d", i),
			Kind:     realm.EntityHostile,
			Position: realm.Position{X: 10 - i, Y: 0},
		})
	}
	hostiles = append(hostiles,
		realm.Entity{ID: "dead", Kind: realm.EntityHostile, Defeated: true, Position: realm.Position{X: 1, Y: 0}},
		realm.Entity{ID: "far", Kind: realm.EntityHostile, Position: realm.Position{X: 100, Y: 0}},
	)

	b := Builder{Game: stubGame{
		actor:    realm.Actor{Vitals: realm.Vitals{Health: 1, HealthMax: 1}},
		entities: ports.EntitySet{Hostiles: hostiles},
	}, Cfg: DefaultConfig(), Now: fixedNow}
	snap := b.Build(context.Background())

	if len(snap.Hostiles) != DefaultHostileCap {
		t.Fatalf("hostile count=%d want %d", len(snap.Hostiles), DefaultHostileCap)
	}
	for i := 1; i < len(snap.Hostiles); i++ {
		if snap.Hostiles[i].Distance < snap.Hostiles[i-1].Distance {
			t.Fatalf("hostiles not sorted ascending by distance: %+v", snap.Hostiles)
		}
	}
	if snap.Hostiles[0].ID != "mob-7" {
		t.Fatalf("nearest hostile=%q want mob-7", snap.Hostiles[0].ID)
	}
	for _, h := range snap.Hostiles {
		if h.ID == "dead" {
			t.Fatalf("defeated hostile must be excluded")
		}
		if h.ID == "far" {
			t.Fatalf("out-of-radius hostile must be excluded")
		}
	}
}

func TestBuild_DistanceTiesKeepInputOrder(t *testing.T) {
	entities := ports.EntitySet{Interactives: []realm.Entity{
		{ID: "npc-a", Kind: realm.EntityInteractive, Position: realm.Position{X: 3, Y: 0}},
		{ID: "npc-b", Kind: realm.EntityInteractive, Position: realm.Position{X: 0, Y: 3}},
		{ID: "npc-c", Kind: realm.EntityInteractive, Position: realm.Position{X: -3, Y: 0}},
	}}
	b := Builder{Game: stubGame{actor: realm.Actor{}, entities: entities}, Cfg: DefaultConfig(), Now: fixedNow}
	snap := b.Build(context.Background())

	if len(snap.Interactives) != 3 {
		t.Fatalf("interactive count=%d want 3", len(snap.Interactives))
	}
	for i, want := range []string{"npc-a", "npc-b", "npc-c"} {
		if snap.Interactives[i].ID != want {
			t.Fatalf("tie order broken at %d: got %q want %q", i, snap.Interactives[i].ID, want)
		}
	}
}

func TestBuild_InteractiveAndPeerCaps(t *testing.T) {
	set := ports.EntitySet{}
	for i := 0; i < 6; i++ {
		set.Interactives = append(set.Interactives, realm.Entity{
			ID: fmt.Sprintf("npc-%d", i), Kind: realm.EntityInteractive, Position: realm.Position{X: i + 1},
		})
		set.Peers = append(set.Peers, realm.Entity{
			ID: fmt.Sprintf("peer-%d", i), Kind: realm.EntityPeer, Position: realm.Position{X: i + 1},
		})
	}
	b := Builder{Game: stubGame{actor: realm.Actor{}, entities: set}, Cfg: DefaultConfig(), Now: fixedNow}
	snap := b.Build(context.Background())

	if len(snap.Interactives) != DefaultInteractiveCap {
		t.Fatalf("interactive count=%d want %d", len(snap.Interactives), DefaultInteractiveCap)
	}
	if len(snap.Peers) != DefaultPeerCap {
		t.Fatalf("peer count=%d want %d", len(snap.Peers), DefaultPeerCap)
	}
}

func TestBuild_ObjectiveClassificationFirstTargetWins(t *testing.T) {
	objectives := []realm.Objective{
		{Name: "cull the warrens", Active: true, Targets: []realm.ObjectiveTarget{
			{EntityKind: "", Goal: 0},
			{EntityKind: "cave_rat", Progress: 3, Goal: 10},
			{EntityKind: "sewer_rat", Progress: 1, Goal: 5},
		}},
		{Name: "visit the oracle", Active: true},
		{Name: "abandoned", Active: false, Targets: []realm.ObjectiveTarget{
			{EntityKind: "ogre", Progress: 0, Goal: 2},
		}},
	}
	b := Builder{Game: stubGame{actor: realm.Actor{}, objectives: objectives}, Cfg: DefaultConfig(), Now: fixedNow}
	snap := b.Build(context.Background())

	if len(snap.Objectives) != 2 {
		t.Fatalf("objective count=%d want 2 (inactive excluded)", len(snap.Objectives))
	}
	pursuit := snap.Objectives[0]
	if pursuit.Kind != realm.ObjectivePursuit || pursuit.TargetKind != "cave_rat" || pursuit.Progress != 3 || pursuit.Goal != 10 {
		t.Fatalf("expected first matching sub-target to win, got %+v", pursuit)
	}
	if snap.Objectives[1].Kind != realm.ObjectiveGeneral {
		t.Fatalf("objective without targets must classify general, got %+v", snap.Objectives[1])
	}
}

func TestBuild_InventoryDigestKeywordMatch(t *testing.T) {
	items := []realm.Item{
		{Name: "Strong Health Potion", Quantity: 12},
		{Name: "LINEN BANDAGE", Quantity: 3},
		{Name: "rusty sword", Quantity: 1},
		{Name: "gold coin", Quantity: 250},
	}
	b := Builder{Game: stubGame{actor: realm.Actor{}, inventory: items}, Cfg: DefaultConfig(), Now: fixedNow}
	snap := b.Build(context.Background())

	if snap.Inventory.TotalItems != 4 {
		t.Fatalf("total items=%d want 4", snap.Inventory.TotalItems)
	}
	if snap.Inventory.HealingItems != 15 {
		t.Fatalf("healing items=%d want 15", snap.Inventory.HealingItems)
	}
}
