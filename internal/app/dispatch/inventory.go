package dispatch

import (
	"context"
	"strings"

	"stratagem/internal/domain/decision"
	"stratagem/internal/domain/realm"
)

// useItem matches the requested name against live inventory by
// case-insensitive substring and dispatches the matched item's ref. Stale
// snapshot inventory is never consulted; the item must be held right now.
func (u UseCase) useItem(ctx context.Context, call decision.ToolCall) decision.Outcome {
	args, err := decision.DecodeItem(call.Arguments)
	if err != nil {
		return decision.Rejected(call.Name, ReasonBadArguments)
	}
	item, ok := u.findHeldItem(ctx, args.Item)
	if !ok {
		return decision.Rejected(call.Name, ReasonItemNotHeld)
	}
	return u.dispatched(call, u.Executor.UseItem(ctx, item.Ref))
}

func (u UseCase) stashItems(ctx context.Context, call decision.ToolCall) decision.Outcome {
	args, err := decision.DecodeStash(call.Arguments)
	if err != nil {
		return decision.Rejected(call.Name, ReasonBadArguments)
	}
	if args.Action == "deposit" {
		if args.Item != "" {
			if _, ok := u.findHeldItem(ctx, args.Item); !ok {
				return decision.Rejected(call.Name, ReasonItemNotHeld)
			}
		} else if held, err := u.Game.Inventory(ctx); err != nil || len(held) == 0 {
			return decision.Rejected(call.Name, ReasonNothingToStash)
		}
	}
	return u.dispatched(call, u.Executor.StorageOp(ctx, args.Action, args.Item, args.Amount))
}

func (u UseCase) tradeItems(ctx context.Context, call decision.ToolCall) decision.Outcome {
	args, err := decision.DecodeTrade(call.Arguments)
	if err != nil {
		return decision.Rejected(call.Name, ReasonBadArguments)
	}
	if args.Op == "sell" {
		if _, ok := u.findHeldItem(ctx, args.Item); !ok {
			return decision.Rejected(call.Name, ReasonItemNotHeld)
		}
	}
	return u.dispatched(call, u.Executor.TradeOp(ctx, args.Op, args.Item, args.Amount))
}

func (u UseCase) findHeldItem(ctx context.Context, name string) (realm.Item, bool) {
	held, err := u.Game.Inventory(ctx)
	if err != nil {
		return realm.Item{}, false
	}
	needle := strings.ToLower(name)
	for _, item := range held {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			return item, true
		}
	}
	return realm.Item{}, false
}
