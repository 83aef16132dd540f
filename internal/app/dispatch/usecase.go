package dispatch

import (
	"context"

	"stratagem/internal/app/ports"
	"stratagem/internal/domain/decision"
	"stratagem/internal/domain/realm"

	"go.uber.org/zap"
)

const (
	ReasonUnknownTool      = "unknown tool"
	ReasonBadArguments     = "bad arguments"
	ReasonTargetGone       = "target not present"
	ReasonAlreadyEngaged   = "already engaged"
	ReasonNotWalkable      = "destination not walkable"
	ReasonUnknownAbility   = "ability not known"
	ReasonItemNotHeld      = "item not in inventory"
	ReasonNothingToStash   = "nothing to stash"
	ReasonCommandFailed    = "command failed"
	ReasonActorUnavailable = "actor unavailable"
)

// UseCase validates each oracle tool call against the snapshot that produced
// it plus live liveness preconditions, then translates it into exactly one
// executor command. Side effects happen only after validation passes.
type UseCase struct {
	Game     ports.GameStateProvider
	Executor ports.CommandExecutor
	Log      *zap.Logger
}

func (u UseCase) logger() *zap.Logger {
	if u.Log == nil {
		return zap.NewNop()
	}
	return u.Log
}

// ExecuteAll dispatches the calls sequentially in response order. Calls are
// independent: one failure never aborts its siblings, and every call yields
// an observable outcome.
func (u UseCase) ExecuteAll(ctx context.Context, snap realm.Snapshot, calls []decision.ToolCall) []decision.Outcome {
	outcomes := make([]decision.Outcome, 0, len(calls))
	for _, call := range calls {
		outcomes = append(outcomes, u.Execute(ctx, snap, call))
	}
	return outcomes
}

// Execute handles one tool call. Target references (entity ids) are checked
// against the snapshot that produced the request, not a fresh one; liveness
// preconditions (engagement, posture, current inventory) are re-checked live.
func (u UseCase) Execute(ctx context.Context, snap realm.Snapshot, call decision.ToolCall) decision.Outcome {
	kind, ok := decision.KindByName(call.Name)
	if !ok {
		u.logger().Warn("oracle requested unknown tool", zap.String("tool", call.Name))
		return decision.Rejected(call.Name, ReasonUnknownTool)
	}

	var outcome decision.Outcome
	switch kind {
	case decision.ToolEngageTarget:
		outcome = u.engageTarget(ctx, snap, call)
	case decision.ToolMoveToPoint:
		outcome = u.moveToPoint(ctx, call)
	case decision.ToolRelocateToZone:
		outcome = u.relocateToZone(ctx, snap, call)
	case decision.ToolUseAbility:
		outcome = u.useAbility(ctx, call)
	case decision.ToolUseItem:
		outcome = u.useItem(ctx, call)
	case decision.ToolInteract:
		outcome = u.interact(ctx, snap, call)
	case decision.ToolStashItems:
		outcome = u.stashItems(ctx, call)
	case decision.ToolTradeItems:
		outcome = u.tradeItems(ctx, call)
	case decision.ToolTeleport:
		outcome = u.teleport(ctx, call)
	case decision.ToolRest:
		outcome = u.setPosture(ctx, call, realm.PostureSitting)
	case decision.ToolStand:
		outcome = u.setPosture(ctx, call, realm.PostureStanding)
	case decision.ToolWait:
		outcome = decision.NoOp(call.Name)
	default:
		outcome = decision.Rejected(call.Name, ReasonUnknownTool)
	}

	u.logger().Info("tool call settled",
		zap.String("tool", call.Name),
		zap.String("status", string(outcome.Status)),
		zap.String("reason", outcome.Reason))
	return outcome
}

func (u UseCase) dispatched(call decision.ToolCall, err error) decision.Outcome {
	if err != nil {
		u.logger().Warn("executor command failed",
			zap.String("tool", call.Name), zap.Error(err))
		return decision.Rejected(call.Name, ReasonCommandFailed)
	}
	return decision.Dispatched(call.Name)
}
