package decision

import (
	"encoding/json"
	"time"
)

// ToolCall is one action the oracle chose. Arguments carry the raw JSON
// payload exactly as received; it is untrusted until decoded and validated.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Decision is the oracle's structured answer for one cycle.
type Decision struct {
	Content   string     `json:"content,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls"`
}

type OutcomeStatus string

const (
	StatusDispatched OutcomeStatus = "DISPATCHED"
	StatusRejected   OutcomeStatus = "REJECTED"
	StatusNoOp       OutcomeStatus = "NOOP"
)

// Outcome is the result of attempting to dispatch one tool call. It is
// always returned to the caller, never silently dropped.
type Outcome struct {
	Tool   string        `json:"tool"`
	Status OutcomeStatus `json:"status"`
	Reason string        `json:"reason,omitempty"`
}

func Dispatched(tool string) Outcome {
	return Outcome{Tool: tool, Status: StatusDispatched}
}

func Rejected(tool, reason string) Outcome {
	return Outcome{Tool: tool, Status: StatusRejected, Reason: reason}
}

func NoOp(tool string) Outcome {
	return Outcome{Tool: tool, Status: StatusNoOp}
}

type CycleState string

const (
	CycleDeferred   CycleState = "deferred"
	CycleConsulting CycleState = "consulting"
)

// CycleRecord summarizes one completed decision cycle for the journal.
type CycleRecord struct {
	StartedAt    time.Time  `json:"started_at"`
	State        CycleState `json:"state"`
	DeferReason  string     `json:"defer_reason,omitempty"`
	GateTrigger  string     `json:"gate_trigger,omitempty"`
	OracleCalled bool       `json:"oracle_called"`
	Outcomes     []Outcome  `json:"outcomes,omitempty"`
	DurationMS   int64      `json:"duration_ms"`
}
