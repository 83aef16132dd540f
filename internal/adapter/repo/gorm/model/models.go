package model

import "time"

// DecisionCycle is the persisted form of one decision cycle. Outcomes are
// stored as a JSON document; they are read back whole, never queried into.
type DecisionCycle struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	StartedAt    time.Time `gorm:"index;not null"`
	State        string    `gorm:"size:16;not null"`
	DeferReason  string    `gorm:"size:64"`
	GateTrigger  string    `gorm:"size:64"`
	OracleCalled bool
	Outcomes     []byte `gorm:"type:jsonb"`
	DurationMS   int64
	CreatedAt    time.Time
}
