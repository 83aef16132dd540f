package realm

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Vitals struct {
	Health    int `json:"health"`
	HealthMax int `json:"health_max"`
	Mana      int `json:"mana"`
	ManaMax   int `json:"mana_max"`
}

type Posture string

const (
	PostureStanding Posture = "standing"
	PostureSitting  Posture = "sitting"
)

type Actor struct {
	Name          string   `json:"name"`
	Class         string   `json:"class"`
	Level         int      `json:"level"`
	Vitals        Vitals   `json:"vitals"`
	CarryWeight   int      `json:"carry_weight"`
	CarryCapacity int      `json:"carry_capacity"`
	Position      Position `json:"position"`
	MapName       string   `json:"map_name"`
	Posture       Posture  `json:"posture"`
	Engaged       bool     `json:"engaged"`
}

type Activity string

const (
	ActivityIdle        Activity = ""
	ActivityAttacking   Activity = "attacking"
	ActivityRouting     Activity = "routing"
	ActivityTrading     Activity = "trading"
	ActivityAutoStorage Activity = "auto_storage"
	ActivityAutoSell    Activity = "auto_sell"
	ActivityAutoBuy     Activity = "auto_buy"
	ActivityGathering   Activity = "gathering"
)

// ProtectedActivities are in-progress automated behaviors that a new
// decision must never interrupt.
var ProtectedActivities = map[Activity]bool{
	ActivityAttacking:   true,
	ActivityRouting:     true,
	ActivityTrading:     true,
	ActivityAutoStorage: true,
	ActivityAutoSell:    true,
	ActivityAutoBuy:     true,
}

func (a Activity) Protected() bool {
	return ProtectedActivities[a]
}

func (a Activity) Idle() bool {
	return a == ActivityIdle
}

type EntityKind string

const (
	EntityHostile     EntityKind = "hostile"
	EntityInteractive EntityKind = "interactive"
	EntityPeer        EntityKind = "peer"
)

type Entity struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Kind     EntityKind `json:"kind"`
	Level    int        `json:"level"`
	Position Position   `json:"position"`
	Defeated bool       `json:"defeated"`
}

type ObjectiveTarget struct {
	EntityKind string `json:"entity_kind"`
	Progress   int    `json:"progress"`
	Goal       int    `json:"goal"`
}

type Objective struct {
	Name    string            `json:"name"`
	Active  bool              `json:"active"`
	Targets []ObjectiveTarget `json:"targets,omitempty"`
}

type Item struct {
	Ref      string `json:"ref"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Ability struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}
