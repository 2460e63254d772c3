package deeplink

import "sync"

// PendingStore buffers at most one activation URL between process startup and
// the UI's readiness handshake. A new Set overwrites any unread value; Take
// drains the store exactly once. Construct one per process and pass it to
// every component that needs it.
type PendingStore struct {
	mu  sync.Mutex
	url string
	set bool
}

// NewPendingStore returns an empty store.
func NewPendingStore() *PendingStore {
	return &PendingStore{}
}

// Set replaces any stored value unconditionally. Last write wins.
func (s *PendingStore) Set(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.url = url
	s.set = true
}

// Take atomically reads and clears the stored value. The second return value
// reports whether a value was present.
func (s *PendingStore) Take() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", false
	}
	url := s.url
	s.url = ""
	s.set = false
	return url, true
}
