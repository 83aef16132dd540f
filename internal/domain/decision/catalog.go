package decision

// ToolKind enumerates every action kind the oracle may request. The
// dispatcher switches exhaustively over these, so adding a kind is a
// compile-time-checked change.
type ToolKind string

const (
	ToolEngageTarget   ToolKind = "engage_target"
	ToolMoveToPoint    ToolKind = "move_to_point"
	ToolRelocateToZone ToolKind = "relocate_to_zone"
	ToolUseAbility     ToolKind = "use_ability"
	ToolUseItem        ToolKind = "use_item"
	ToolInteract       ToolKind = "interact_with_entity"
	ToolStashItems     ToolKind = "stash_items"
	ToolTradeItems     ToolKind = "trade_items"
	ToolTeleport       ToolKind = "teleport"
	ToolRest           ToolKind = "rest"
	ToolStand          ToolKind = "stand"
	ToolWait           ToolKind = "wait"
)

// CatalogVersion identifies the tool schema generation sent to the oracle.
const CatalogVersion = "2026-03"

type ToolDef struct {
	Kind        ToolKind
	Description string
	Parameters  map[string]any
}

// Catalog returns the static, versioned enumeration of available action
// kinds. Immutable for the process lifetime; callers must not mutate it.
func Catalog() []ToolDef {
	return []ToolDef{
		{
			Kind:        ToolEngageTarget,
			Description: "Attack a nearby hostile creature by its entity id.",
			Parameters: objectSchema(map[string]any{
				"target_id": stringProp("Entity id of the hostile to attack."),
			}, "target_id"),
		},
		{
			Kind:        ToolMoveToPoint,
			Description: "Walk to a coordinate on the current map.",
			Parameters: objectSchema(map[string]any{
				"x": intProp("Destination x coordinate."),
				"y": intProp("Destination y coordinate."),
			}, "x", "y"),
		},
		{
			Kind:        ToolRelocateToZone,
			Description: "Travel to the leveling zone appropriate for a character level and risk preference.",
			Parameters: objectSchema(map[string]any{
				"level": intProp("Character level to pick the zone for. Defaults to the actor's current level."),
				"preference": enumProp("Risk preference tier.",
					"cautious", "balanced", "aggressive"),
			}, "preference"),
		},
		{
			Kind:        ToolUseAbility,
			Description: "Cast a known ability or spell, optionally on a target.",
			Parameters: objectSchema(map[string]any{
				"name":      stringProp("Display name of the ability to use."),
				"level":     intProp("Ability rank to cast at. Defaults to the highest known rank."),
				"target_id": stringProp("Optional entity id the ability targets."),
			}, "name"),
		},
		{
			Kind:        ToolUseItem,
			Description: "Use an item currently held in the inventory, matched by name.",
			Parameters: objectSchema(map[string]any{
				"item": stringProp("Item name; case-insensitive substring match."),
			}, "item"),
		},
		{
			Kind:        ToolInteract,
			Description: "Talk to or interact with a nearby NPC or usable object.",
			Parameters: objectSchema(map[string]any{
				"target_id": stringProp("Entity id of the interactive entity."),
				"dialog":    stringArrayProp("Optional dialog keywords in order."),
			}, "target_id"),
		},
		{
			Kind:        ToolStashItems,
			Description: "Deposit items into storage or withdraw them back.",
			Parameters: objectSchema(map[string]any{
				"action": enumProp("Storage operation.", "deposit", "withdraw"),
				"item":   stringProp("Optional item name; default handles the whole junk list."),
				"amount": intProp("Optional amount; defaults to the entire stack."),
			}, "action"),
		},
		{
			Kind:        ToolTradeItems,
			Description: "Buy or sell items with the nearby merchant.",
			Parameters: objectSchema(map[string]any{
				"op":     enumProp("Trade operation.", "buy", "sell"),
				"item":   stringProp("Item name to trade."),
				"amount": intProp("Optional amount; defaults to 1."),
			}, "op", "item"),
		},
		{
			Kind:        ToolTeleport,
			Description: "Use a teleport to a well-known destination.",
			Parameters: objectSchema(map[string]any{
				"kind": enumProp("Teleport destination kind.", "home", "town"),
			}, "kind"),
		},
		{
			Kind:        ToolRest,
			Description: "Sit down to recover health and mana.",
			Parameters:  objectSchema(map[string]any{}),
		},
		{
			Kind:        ToolStand,
			Description: "Stand up from resting.",
			Parameters:  objectSchema(map[string]any{}),
		},
		{
			Kind:        ToolWait,
			Description: "Do nothing this cycle; use when no physical action is warranted.",
			Parameters:  objectSchema(map[string]any{}),
		},
	}
}

// KindByName resolves a tool name from the wire to its kind.
func KindByName(name string) (ToolKind, bool) {
	for _, def := range Catalog() {
		if string(def.Kind) == name {
			return def.Kind, true
		}
	}
	return "", false
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func intProp(desc string) map[string]any {
	return map[string]any{"type": "integer", "description": desc}
}

func enumProp(desc string, values ...string) map[string]any {
	return map[string]any{"type": "string", "description": desc, "enum": values}
}

func stringArrayProp(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": desc,
		"items":       map[string]any{"type": "string"},
	}
}
