package dispatch

import (
	"context"
	"strings"

	"stratagem/internal/domain/decision"
	"stratagem/internal/domain/realm"
)

// engageTarget requires the target to still be present in the snapshot that
// prompted the decision and the actor to be disengaged right now.
func (u UseCase) engageTarget(ctx context.Context, snap realm.Snapshot, call decision.ToolCall) decision.Outcome {
	args, err := decision.DecodeEngage(call.Arguments)
	if err != nil {
		return decision.Rejected(call.Name, ReasonBadArguments)
	}
	if !snap.HasHostile(args.TargetID) {
		return decision.Rejected(call.Name, ReasonTargetGone)
	}
	actor, err := u.Game.Actor(ctx)
	if err != nil {
		return decision.Rejected(call.Name, ReasonActorUnavailable)
	}
	if actor.Engaged {
		return decision.Rejected(call.Name, ReasonAlreadyEngaged)
	}
	return u.dispatched(call, u.Executor.Engage(ctx, args.TargetID))
}

func (u UseCase) useAbility(ctx context.Context, call decision.ToolCall) decision.Outcome {
	args, err := decision.DecodeAbility(call.Arguments)
	if err != nil {
		return decision.Rejected(call.Name, ReasonBadArguments)
	}
	known, err := u.Game.Abilities(ctx)
	if err != nil {
		return decision.Rejected(call.Name, ReasonActorUnavailable)
	}
	var match *realm.Ability
	for i := range known {
		if strings.EqualFold(known[i].Name, args.Name) {
			match = &known[i]
			break
		}
	}
	if match == nil {
		return decision.Rejected(call.Name, ReasonUnknownAbility)
	}
	level := args.Level
	if level <= 0 || level > match.Level {
		level = match.Level
	}
	return u.dispatched(call, u.Executor.UseAbility(ctx, match.Name, level, args.TargetID))
}
