package window_test

import (
	"errors"
	"testing"

	"promptvault/internal/logging"
	"promptvault/internal/window"
)

type fakeManager struct {
	visible    bool
	visibleErr error

	shows, hides, focuses int
}

func (m *fakeManager) IsVisible() (bool, error) { return m.visible, m.visibleErr }

func (m *fakeManager) Show() error {
	m.shows++
	m.visible = true
	return nil
}

func (m *fakeManager) Hide() error {
	m.hides++
	m.visible = false
	return nil
}

func (m *fakeManager) Focus() error {
	m.focuses++
	return nil
}

func TestToggleHidesVisibleWindow(t *testing.T) {
	m := &fakeManager{visible: true}
	window.Toggle(m, logging.NewNop())
	if m.hides != 1 || m.shows != 0 {
		t.Fatalf("hides=%d shows=%d, want 1/0", m.hides, m.shows)
	}
}

func TestToggleShowsHiddenWindow(t *testing.T) {
	m := &fakeManager{visible: false}
	window.Toggle(m, logging.NewNop())
	if m.shows != 1 || m.focuses != 1 || m.hides != 0 {
		t.Fatalf("shows=%d focuses=%d hides=%d, want 1/1/0", m.shows, m.focuses, m.hides)
	}
}

func TestToggleAlternates(t *testing.T) {
	m := &fakeManager{visible: false}
	window.Toggle(m, logging.NewNop())
	window.Toggle(m, logging.NewNop())
	window.Toggle(m, logging.NewNop())
	if m.shows != 2 || m.hides != 1 {
		t.Fatalf("shows=%d hides=%d, want 2/1", m.shows, m.hides)
	}
}

func TestToggleFailedQueryBiasesTowardShow(t *testing.T) {
	m := &fakeManager{visible: true, visibleErr: errors.New("window handle lost")}
	window.Toggle(m, logging.NewNop())
	if m.shows != 1 || m.hides != 0 {
		t.Fatalf("shows=%d hides=%d, want 1/0 on failed query", m.shows, m.hides)
	}
}

func TestRaiseShowsAndFocuses(t *testing.T) {
	m := &fakeManager{}
	window.Raise(m, logging.NewNop())
	if m.shows != 1 || m.focuses != 1 {
		t.Fatalf("shows=%d focuses=%d, want 1/1", m.shows, m.focuses)
	}
}
