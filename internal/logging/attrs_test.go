package logging_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"promptvault/internal/logging"
)

func TestFieldKeysAreDistinct(t *testing.T) {
	keys := []string{
		logging.FieldComponent,
		logging.FieldEventType,
		logging.FieldURL,
		logging.FieldSource,
		logging.FieldActivationID,
		logging.FieldDelay,
	}
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key == "" {
			t.Fatal("field key must not be empty")
		}
		if _, dup := seen[key]; dup {
			t.Fatalf("field key %q declared more than once", key)
		}
		seen[key] = struct{}{}
	}
}

func TestAttrHelpers(t *testing.T) {
	cases := []struct {
		name  string
		attr  logging.Attr
		key   string
		value string
	}{
		{"string", logging.String("url", "promptvault://x"), "url", "promptvault://x"},
		{"int", logging.Int("pid", 42), "pid", "42"},
		{"int64", logging.Int64("activations", 7), "activations", "7"},
		{"bool", logging.Bool("matched", true), "matched", "true"},
		{"duration", logging.Duration("delay", 500*time.Millisecond), "delay", "500ms"},
		{"any", logging.Any("payload", "raw"), "payload", "raw"},
		{"error", logging.Error(errors.New("boom")), "error", "boom"},
		{"nil error", logging.Error(nil), "error", "<nil>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.attr.Key != tc.key {
				t.Fatalf("expected key %q, got %q", tc.key, tc.attr.Key)
			}
			if got := tc.attr.Value.String(); got != tc.value {
				t.Fatalf("expected value %q, got %q", tc.value, got)
			}
		})
	}
}

func TestArgsPreservesOrder(t *testing.T) {
	args := logging.Args(
		logging.String("first", "a"),
		logging.Int("second", 2),
	)
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
	if attr, ok := args[0].(logging.Attr); !ok || attr.Key != "first" {
		t.Fatalf("expected first attr, got %v", args[0])
	}
	if attr, ok := args[1].(logging.Attr); !ok || attr.Key != "second" {
		t.Fatalf("expected second attr, got %v", args[1])
	}
}

func TestNewComponentLoggerTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	logger := logging.NewComponentLogger(base, "deeplink")
	logger.Info("activation received")

	line := buf.String()
	if !strings.Contains(line, `"component":"deeplink"`) {
		t.Fatalf("expected component attribute in output, got %q", line)
	}
}

func TestNewComponentLoggerNilBase(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "ipc")
	if logger == nil {
		t.Fatal("expected a usable logger")
	}
	logger.Info("should be discarded")
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger must not enable any level")
	}
}
