package deeplink_test

import (
	"context"
	"sync"
	"testing"

	"promptvault/internal/deeplink"
	"promptvault/internal/logging"
)

type recordingJournal struct {
	mu      sync.Mutex
	entries []struct{ id, url, source string }
}

func (j *recordingJournal) Record(_ context.Context, id, url, source string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, struct{ id, url, source string }{id, url, source})
	return nil
}

func TestReadyDrainsOnce(t *testing.T) {
	store := deeplink.NewPendingStore()
	journal := &recordingJournal{}
	store.Set("promptvault://open?id=42")

	url, ok := deeplink.Ready(context.Background(), store, journal, logging.NewNop())
	if !ok || url != "promptvault://open?id=42" {
		t.Fatalf("first ready = %q, %v", url, ok)
	}
	if len(journal.entries) != 1 || journal.entries[0].source != deeplink.SourceColdStart {
		t.Fatalf("journal entries = %+v", journal.entries)
	}

	if url, ok := deeplink.Ready(context.Background(), store, journal, logging.NewNop()); ok {
		t.Fatalf("second ready should be empty, got %q", url)
	}
	if len(journal.entries) != 1 {
		t.Fatalf("empty handshake should not journal, entries = %d", len(journal.entries))
	}
}

func TestReadyWithoutJournal(t *testing.T) {
	store := deeplink.NewPendingStore()
	store.Set("promptvault://x")
	if url, ok := deeplink.Ready(context.Background(), store, nil, logging.NewNop()); !ok || url != "promptvault://x" {
		t.Fatalf("ready = %q, %v", url, ok)
	}
}
