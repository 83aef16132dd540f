package realm

import "time"

// Snapshot is a bounded, ranked, read-only capture of world state at one
// instant. It is created fresh each decision cycle and never mutated.
type Snapshot struct {
	TakenAt      time.Time       `json:"taken_at"`
	Actor        ActorView       `json:"actor"`
	Hostiles     []EntityView    `json:"hostiles"`
	Interactives []EntityView    `json:"interactives"`
	Peers        []EntityView    `json:"peers"`
	Objectives   []ObjectiveView `json:"objectives"`
	Inventory    InventoryDigest `json:"inventory"`
}

type ActorView struct {
	Name      string   `json:"name"`
	Class     string   `json:"class"`
	Level     int      `json:"level"`
	MapName   string   `json:"map_name"`
	Position  Position `json:"position"`
	Health    int      `json:"health"`
	HealthMax int      `json:"health_max"`
	HealthPct int      `json:"health_pct"`
	Mana      int      `json:"mana"`
	ManaMax   int      `json:"mana_max"`
	ManaPct   int      `json:"mana_pct"`
	WeightPct int      `json:"weight_pct"`
}

type EntityView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Level    int      `json:"level"`
	Position Position `json:"position"`
	Distance float64  `json:"distance"`
}

type ObjectiveKind string

const (
	ObjectivePursuit ObjectiveKind = "pursuit"
	ObjectiveGeneral ObjectiveKind = "general"
)

type ObjectiveView struct {
	Name       string        `json:"name"`
	Kind       ObjectiveKind `json:"kind"`
	TargetKind string        `json:"target_kind,omitempty"`
	Progress   int           `json:"progress,omitempty"`
	Goal       int           `json:"goal,omitempty"`
}

type InventoryDigest struct {
	TotalItems   int `json:"total_items"`
	HealingItems int `json:"healing_items"`
}

// Percent computes cur/max*100 truncated toward zero, clamped to [0,100].
// A zero or negative max is substituted with 1; this is a deliberate
// degenerate-but-safe default, not a correctness guarantee.
func Percent(cur, max int) int {
	if max <= 0 {
		max = 1
	}
	if cur < 0 {
		cur = 0
	}
	pct := cur * 100 / max
	if pct > 100 {
		return 100
	}
	return pct
}

// HasHostile reports whether the snapshot still carries the given hostile id.
func (s Snapshot) HasHostile(id string) bool {
	return hasEntity(s.Hostiles, id)
}

// HasInteractive reports whether the snapshot still carries the given
// interactive entity id.
func (s Snapshot) HasInteractive(id string) bool {
	return hasEntity(s.Interactives, id)
}

func hasEntity(views []EntityView, id string) bool {
	for _, v := range views {
		if v.ID == id {
			return true
		}
	}
	return false
}
