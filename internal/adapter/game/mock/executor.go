package mock

import (
	"context"
	"fmt"
	"sync"

	"stratagem/internal/domain/realm"
)

// Executor records every command it receives and optionally fails them all
// with Err.
type Executor struct {
	mu       sync.Mutex
	Err      error
	Commands []string
}

func (e *Executor) record(format string, args ...any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = append(e.Commands, fmt.Sprintf(format, args...))
	return e.Err
}

func (e *Executor) Engage(_ context.Context, targetID string) error {
	return e.record("engage %s", targetID)
}

func (e *Executor) MoveTo(_ context.Context, x, y int) error {
	return e.record("move %d,%d", x, y)
}

func (e *Executor) RouteToMap(_ context.Context, name string) error {
	return e.record("route %s", name)
}

func (e *Executor) UseAbility(_ context.Context, name string, level int, targetID string) error {
	return e.record("ability %s@%d->%s", name, level, targetID)
}

func (e *Executor) UseItem(_ context.Context, itemRef string) error {
	return e.record("item %s", itemRef)
}

func (e *Executor) Interact(_ context.Context, targetID string, dialog []string) error {
	return e.record("interact %s %v", targetID, dialog)
}

func (e *Executor) SetPosture(_ context.Context, posture realm.Posture) error {
	return e.record("posture %s", posture)
}

func (e *Executor) Teleport(_ context.Context, kind string) error {
	return e.record("teleport %s", kind)
}

func (e *Executor) StorageOp(_ context.Context, action, item string, amount int) error {
	return e.record("storage %s %s x%d", action, item, amount)
}

func (e *Executor) TradeOp(_ context.Context, op, item string, amount int) error {
	return e.record("trade %s %s x%d", op, item, amount)
}

func (e *Executor) IssuePlainCommand(_ context.Context, command string) error {
	return e.record("plain %s", command)
}
