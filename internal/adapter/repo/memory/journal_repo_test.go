package memory

import (
	"context"
	"testing"
	"time"

	"stratagem/internal/domain/decision"
)

func TestJournalRepoNewestFirst(t *testing.T) {
	repo := NewJournalRepo(0)
	base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := repo.Append(context.Background(), decision.CycleRecord{
			StartedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	records, err := repo.ListRecent(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	if !records[0].StartedAt.After(records[1].StartedAt) {
		t.Fatalf("records not newest first: %v then %v", records[0].StartedAt, records[1].StartedAt)
	}
}

func TestJournalRepoEvictsOldest(t *testing.T) {
	repo := NewJournalRepo(2)
	base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		repo.Append(context.Background(), decision.CycleRecord{
			StartedAt: base.Add(time.Duration(i) * time.Second),
		})
	}
	records, _ := repo.ListRecent(context.Background(), 10)
	if len(records) != 2 {
		t.Fatalf("got %d records, want cap of 2", len(records))
	}
	if !records[0].StartedAt.Equal(base.Add(4 * time.Second)) {
		t.Fatalf("newest record = %v", records[0].StartedAt)
	}
}
