package hotkey

import (
	"runtime"
	"strings"
	"sync"
)

// Binding is a modifier+key combination, fixed at build time.
type Binding struct {
	Modifiers []string
	Key       string
}

// String renders the binding in the conventional plus-joined form.
func (b Binding) String() string {
	parts := append(append([]string(nil), b.Modifiers...), b.Key)
	return strings.Join(parts, "+")
}

// DefaultBinding returns the window-toggle shortcut for the current platform:
// Cmd+Shift+P on macOS, Ctrl+Shift+P elsewhere.
func DefaultBinding() Binding {
	primary := "ctrl"
	if runtime.GOOS == "darwin" {
		primary = "cmd"
	}
	return Binding{Modifiers: []string{primary, "shift"}, Key: "P"}
}

// Backend registers global shortcuts with the OS. Platform integrations
// implement it; tests substitute fakes.
type Backend interface {
	// Register installs the binding and returns a handle delivering
	// trigger events. A failed registration should be treated as fatal by
	// the caller.
	Register(binding Binding) (Registration, error)
}

// Registration is a live shortcut handle.
type Registration interface {
	// Triggered delivers one value per shortcut press. The channel closes
	// when the registration is closed.
	Triggered() <-chan struct{}
	Close() error
}

// NullBackend registers successfully but never fires. It stands in when no
// platform hotkey integration is attached.
type NullBackend struct{}

func (NullBackend) Register(Binding) (Registration, error) {
	return &nullRegistration{ch: make(chan struct{})}, nil
}

type nullRegistration struct {
	once sync.Once
	ch   chan struct{}
}

func (r *nullRegistration) Triggered() <-chan struct{} { return r.ch }

func (r *nullRegistration) Close() error {
	r.once.Do(func() { close(r.ch) })
	return nil
}
