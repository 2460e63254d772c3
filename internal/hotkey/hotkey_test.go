package hotkey_test

import (
	"runtime"
	"testing"

	"promptvault/internal/hotkey"
)

func TestDefaultBinding(t *testing.T) {
	binding := hotkey.DefaultBinding()
	if binding.Key != "P" {
		t.Fatalf("key = %q, want P", binding.Key)
	}
	want := "ctrl+shift+P"
	if runtime.GOOS == "darwin" {
		want = "cmd+shift+P"
	}
	if binding.String() != want {
		t.Fatalf("binding = %q, want %q", binding.String(), want)
	}
}

func TestNullBackendRegisters(t *testing.T) {
	reg, err := hotkey.NullBackend{}.Register(hotkey.DefaultBinding())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	select {
	case <-reg.Triggered():
		t.Fatal("null backend must never fire")
	default:
	}
	if err := reg.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := reg.Close(); err != nil {
		t.Fatalf("double close: %v", err)
	}
}
