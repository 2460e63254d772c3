package journal_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"promptvault/internal/journal"
)

func openStore(t *testing.T) *journal.Store {
	t.Helper()
	store, err := journal.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	urls := []string{"promptvault://a", "promptvault://b", "promptvault://c"}
	for _, url := range urls {
		if err := store.Record(ctx, uuid.NewString(), url, "forward"); err != nil {
			t.Fatalf("record %s: %v", url, err)
		}
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	for _, entry := range entries {
		if entry.Source != "forward" {
			t.Fatalf("source = %q", entry.Source)
		}
		if entry.DeliveredAt.IsZero() {
			t.Fatal("delivered_at not parsed")
		}
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

func TestRecentOnEmptyJournal(t *testing.T) {
	store := openStore(t)
	entries, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %d, want 0", len(entries))
	}
}
