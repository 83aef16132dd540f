package decision

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrBadArguments = errors.New("bad arguments")

type EngageArgs struct {
	TargetID string `json:"target_id"`
}

type MoveArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type RelocateArgs struct {
	Level      int    `json:"level,omitempty"`
	Preference string `json:"preference"`
}

type AbilityArgs struct {
	Name     string `json:"name"`
	Level    int    `json:"level,omitempty"`
	TargetID string `json:"target_id,omitempty"`
}

type ItemArgs struct {
	Item string `json:"item"`
}

type InteractArgs struct {
	TargetID string   `json:"target_id"`
	Dialog   []string `json:"dialog,omitempty"`
}

type StashArgs struct {
	Action string `json:"action"`
	Item   string `json:"item,omitempty"`
	Amount int    `json:"amount,omitempty"`
}

type TradeArgs struct {
	Op     string `json:"op"`
	Item   string `json:"item"`
	Amount int    `json:"amount,omitempty"`
}

type TeleportArgs struct {
	Kind string `json:"kind"`
}

func decodeInto(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return ErrBadArguments
	}
	return nil
}

// DecodeEngage parses and validates engage_target arguments.
func DecodeEngage(raw json.RawMessage) (EngageArgs, error) {
	var args EngageArgs
	if err := decodeInto(raw, &args); err != nil {
		return EngageArgs{}, err
	}
	args.TargetID = strings.TrimSpace(args.TargetID)
	if args.TargetID == "" {
		return EngageArgs{}, ErrBadArguments
	}
	return args, nil
}

func DecodeMove(raw json.RawMessage) (MoveArgs, error) {
	var args MoveArgs
	if err := decodeInto(raw, &args); err != nil {
		return MoveArgs{}, err
	}
	return args, nil
}

func DecodeRelocate(raw json.RawMessage) (RelocateArgs, error) {
	var args RelocateArgs
	if err := decodeInto(raw, &args); err != nil {
		return RelocateArgs{}, err
	}
	args.Preference = strings.ToLower(strings.TrimSpace(args.Preference))
	switch args.Preference {
	case "cautious", "balanced", "aggressive":
	default:
		return RelocateArgs{}, ErrBadArguments
	}
	if args.Level < 0 {
		return RelocateArgs{}, ErrBadArguments
	}
	return args, nil
}

func DecodeAbility(raw json.RawMessage) (AbilityArgs, error) {
	var args AbilityArgs
	if err := decodeInto(raw, &args); err != nil {
		return AbilityArgs{}, err
	}
	args.Name = strings.TrimSpace(args.Name)
	if args.Name == "" {
		return AbilityArgs{}, ErrBadArguments
	}
	return args, nil
}

func DecodeItem(raw json.RawMessage) (ItemArgs, error) {
	var args ItemArgs
	if err := decodeInto(raw, &args); err != nil {
		return ItemArgs{}, err
	}
	args.Item = strings.TrimSpace(args.Item)
	if args.Item == "" {
		return ItemArgs{}, ErrBadArguments
	}
	return args, nil
}

func DecodeInteract(raw json.RawMessage) (InteractArgs, error) {
	var args InteractArgs
	if err := decodeInto(raw, &args); err != nil {
		return InteractArgs{}, err
	}
	args.TargetID = strings.TrimSpace(args.TargetID)
	if args.TargetID == "" {
		return InteractArgs{}, ErrBadArguments
	}
	return args, nil
}

func DecodeStash(raw json.RawMessage) (StashArgs, error) {
	var args StashArgs
	if err := decodeInto(raw, &args); err != nil {
		return StashArgs{}, err
	}
	args.Action = strings.ToLower(strings.TrimSpace(args.Action))
	if args.Action != "deposit" && args.Action != "withdraw" {
		return StashArgs{}, ErrBadArguments
	}
	if args.Amount < 0 {
		return StashArgs{}, ErrBadArguments
	}
	args.Item = strings.TrimSpace(args.Item)
	return args, nil
}

func DecodeTrade(raw json.RawMessage) (TradeArgs, error) {
	var args TradeArgs
	if err := decodeInto(raw, &args); err != nil {
		return TradeArgs{}, err
	}
	args.Op = strings.ToLower(strings.TrimSpace(args.Op))
	if args.Op != "buy" && args.Op != "sell" {
		return TradeArgs{}, ErrBadArguments
	}
	args.Item = strings.TrimSpace(args.Item)
	if args.Item == "" {
		return TradeArgs{}, ErrBadArguments
	}
	if args.Amount < 0 {
		return TradeArgs{}, ErrBadArguments
	}
	if args.Amount == 0 {
		args.Amount = 1
	}
	return args, nil
}

func DecodeTeleport(raw json.RawMessage) (TeleportArgs, error) {
	var args TeleportArgs
	if err := decodeInto(raw, &args); err != nil {
		return TeleportArgs{}, err
	}
	args.Kind = strings.ToLower(strings.TrimSpace(args.Kind))
	if args.Kind != "home" && args.Kind != "town" {
		return TeleportArgs{}, ErrBadArguments
	}
	return args, nil
}
