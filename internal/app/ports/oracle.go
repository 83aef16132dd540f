package ports

import (
	"context"

	"stratagem/internal/domain/decision"
)

// OracleClient is the transport to the external tool-calling reasoning
// service. A nil decision with a nil error means "no decision this cycle":
// rate-limit skip, transport or protocol failure, or a plain-text answer.
// The caller must treat all of these as "defer to automation".
type OracleClient interface {
	RequestDecision(ctx context.Context, instructions, situation string) (*decision.Decision, error)
}
