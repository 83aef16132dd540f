package dispatch

import (
	"context"

	"stratagem/internal/domain/decision"
	"stratagem/internal/domain/realm"
)

func (u UseCase) interact(ctx context.Context, snap realm.Snapshot, call decision.ToolCall) decision.Outcome {
	args, err := decision.DecodeInteract(call.Arguments)
	if err != nil {
		return decision.Rejected(call.Name, ReasonBadArguments)
	}
	if !snap.HasInteractive(args.TargetID) {
		return decision.Rejected(call.Name, ReasonTargetGone)
	}
	return u.dispatched(call, u.Executor.Interact(ctx, args.TargetID, args.Dialog))
}

// setPosture is idempotent: asking for the posture the actor already holds
// is a no-op, not an error.
func (u UseCase) setPosture(ctx context.Context, call decision.ToolCall, want realm.Posture) decision.Outcome {
	actor, err := u.Game.Actor(ctx)
	if err != nil {
		return decision.Rejected(call.Name, ReasonActorUnavailable)
	}
	if actor.Posture == want {
		return decision.NoOp(call.Name)
	}
	return u.dispatched(call, u.Executor.SetPosture(ctx, want))
}
