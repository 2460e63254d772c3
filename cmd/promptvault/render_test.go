package main

import (
	"strings"
	"testing"
	"time"

	"promptvault/internal/ipc"
	"promptvault/internal/journal"
)

func TestRenderStatus(t *testing.T) {
	out := renderStatus(&ipc.StatusResponse{
		Running:     true,
		PID:         4242,
		LockPath:    "/state/promptvault.lock",
		SocketPath:  "/state/promptvault.sock",
		EventAddr:   "127.0.0.1:7517",
		JournalPath: "/state/journal.db",
		Activations: 3,
	})
	for _, want := range []string{"yes", "4242", "/state/promptvault.sock", "journal.db", "3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("status output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderStatusWithoutJournal(t *testing.T) {
	out := renderStatus(&ipc.StatusResponse{Running: true, PID: 1})
	if strings.Contains(out, "Journal") {
		t.Fatalf("journal rows should be omitted:\n%s", out)
	}
}

func TestRenderHistory(t *testing.T) {
	entries := []journal.Entry{
		{ID: "a", URL: "promptvault://open?id=1", Source: "forward", DeliveredAt: time.Now()},
		{ID: "b", URL: "promptvault://open?id=2", Source: "cold_start"},
	}
	out := renderHistory(entries)
	for _, want := range []string{"promptvault://open?id=1", "forward", "cold_start"} {
		if !strings.Contains(out, want) {
			t.Fatalf("history output missing %q:\n%s", want, out)
		}
	}
}
