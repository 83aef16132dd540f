package main

import (
	"testing"

	memrepo "stratagem/internal/adapter/repo/memory"

	"go.uber.org/zap"
)

func TestIntEnv(t *testing.T) {
	t.Setenv("STRATAGEM_TEST_INT", "")
	if got := intEnv("STRATAGEM_TEST_INT", 7); got != 7 {
		t.Fatalf("intEnv on empty = %d, want fallback", got)
	}
	t.Setenv("STRATAGEM_TEST_INT", "42")
	if got := intEnv("STRATAGEM_TEST_INT", 7); got != 42 {
		t.Fatalf("intEnv = %d, want 42", got)
	}
	t.Setenv("STRATAGEM_TEST_INT", "not-a-number")
	if got := intEnv("STRATAGEM_TEST_INT", 7); got != 7 {
		t.Fatalf("intEnv on garbage = %d, want fallback", got)
	}
}

func TestBuildJournalDefaultsToMemory(t *testing.T) {
	t.Setenv("STRATAGEM_DB_DSN", "")
	journal := buildJournal(zap.NewNop())
	if _, ok := journal.(*memrepo.JournalRepo); !ok {
		t.Fatalf("journal without DSN = %T, want in-memory repo", journal)
	}
}
