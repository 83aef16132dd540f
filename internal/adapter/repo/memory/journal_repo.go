package memory

import (
	"context"
	"sync"

	"stratagem/internal/domain/decision"
)

// JournalRepo keeps cycle records in memory, newest retained up to cap.
// It backs deployments that run without a database.
type JournalRepo struct {
	mu      sync.Mutex
	cap     int
	records []decision.CycleRecord
}

const defaultCap = 1000

func NewJournalRepo(size int) *JournalRepo {
	if size <= 0 {
		size = defaultCap
	}
	return &JournalRepo{cap: size}
}

func (r *JournalRepo) Append(_ context.Context, record decision.CycleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	if len(r.records) > r.cap {
		r.records = r.records[len(r.records)-r.cap:]
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
func (r *JournalRepo) ListRecent(_ context.Context, limit int) ([]decision.CycleRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]decision.CycleRecord, 0, limit)
	for i := len(r.records) - 1; i >= len(r.records)-limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}
