package dispatch

import (
	"context"

	"stratagem/internal/domain/decision"
	"stratagem/internal/domain/realm"
)

func (u UseCase) moveToPoint(ctx context.Context, call decision.ToolCall) decision.Outcome {
	args, err := decision.DecodeMove(call.Arguments)
	if err != nil {
		return decision.Rejected(call.Name, ReasonBadArguments)
	}
	walkable, err := u.Game.IsWalkable(ctx, realm.Position{X: args.X, Y: args.Y})
	if err != nil {
		return decision.Rejected(call.Name, ReasonCommandFailed)
	}
	if !walkable {
		return decision.Rejected(call.Name, ReasonNotWalkable)
	}
	return u.dispatched(call, u.Executor.MoveTo(ctx, args.X, args.Y))
}

// relocateToZone resolves the leveling zone for the requested level and risk
// preference. A missing level defaults to the actor level captured in the
// snapshot.
func (u UseCase) relocateToZone(ctx context.Context, snap realm.Snapshot, call decision.ToolCall) decision.Outcome {
	args, err := decision.DecodeRelocate(call.Arguments)
	if err != nil {
		return decision.Rejected(call.Name, ReasonBadArguments)
	}
	level := args.Level
	if level == 0 {
		level = snap.Actor.Level
	}
	zone := realm.ZoneForLevel(level, realm.ZonePreference(args.Preference))
	return u.dispatched(call, u.Executor.RouteToMap(ctx, zone))
}

func (u UseCase) teleport(ctx context.Context, call decision.ToolCall) decision.Outcome {
	args, err := decision.DecodeTeleport(call.Arguments)
	if err != nil {
		return decision.Rejected(call.Name, ReasonBadArguments)
	}
	return u.dispatched(call, u.Executor.Teleport(ctx, args.Kind))
}
