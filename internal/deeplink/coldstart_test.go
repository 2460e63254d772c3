package deeplink_test

import (
	"testing"

	"promptvault/internal/deeplink"
	"promptvault/internal/logging"
)

func TestInspectColdStart(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantURL   string
		wantFound bool
	}{
		{
			name: "no arguments",
			args: []string{"promptvault"},
		},
		{
			name: "non-scheme argument",
			args: []string{"promptvault", "notascheme://x"},
		},
		{
			name: "plain file argument",
			args: []string{"promptvault", "/tmp/somefile"},
		},
		{
			name:      "matching scheme",
			args:      []string{"promptvault", "promptvault://open?id=7"},
			wantURL:   "promptvault://open?id=7",
			wantFound: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := deeplink.NewPendingStore()
			deeplink.InspectColdStart(tc.args, store, logging.NewNop())

			url, ok := store.Take()
			if ok != tc.wantFound {
				t.Fatalf("store populated = %v, want %v", ok, tc.wantFound)
			}
			if url != tc.wantURL {
				t.Fatalf("stored url = %q, want %q", url, tc.wantURL)
			}
		})
	}
}

func TestCandidateFromArgs(t *testing.T) {
	if _, ok := deeplink.CandidateFromArgs(nil); ok {
		t.Fatal("nil args should yield no candidate")
	}
	if _, ok := deeplink.CandidateFromArgs([]string{"prog"}); ok {
		t.Fatal("single arg should yield no candidate")
	}
	url, ok := deeplink.CandidateFromArgs([]string{"prog", "promptvault://x", "extra"})
	if !ok || url != "promptvault://x" {
		t.Fatalf("candidate = %q, %v", url, ok)
	}
}
