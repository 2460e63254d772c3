package ipc

// ReadyRequest is the UI's readiness handshake.
type ReadyRequest struct{}

// ReadyResponse carries a buffered cold-start URL, when one exists.
type ReadyResponse struct {
	URL     string `json:"url"`
	Pending bool   `json:"pending"`
}

// ForwardRequest carries a second launch's arguments to the running
// instance. WorkingDir is recorded for parity with the OS callback shape but
// is otherwise unused.
type ForwardRequest struct {
	Args       []string `json:"args"`
	WorkingDir string   `json:"working_dir"`
}

// ForwardResponse reports whether the arguments carried an activation URL.
type ForwardResponse struct {
	Matched bool `json:"matched"`
}

// OpenURLRequest delivers platform open-URL callback payloads.
type OpenURLRequest struct {
	URLs []string `json:"urls"`
}

// OpenURLResponse acknowledges an open-URL delivery.
type OpenURLResponse struct{}

// ShowRequest asks the running instance to raise its window.
type ShowRequest struct{}

// ShowResponse acknowledges a window raise.
type ShowResponse struct{}

// StatusRequest fetches instance status.
type StatusRequest struct{}

// StatusResponse represents running-instance status information.
type StatusResponse struct {
	Running     bool   `json:"running"`
	PID         int    `json:"pid"`
	LockPath    string `json:"lock_path"`
	SocketPath  string `json:"socket_path"`
	EventAddr   string `json:"event_addr"`
	Subscribers int    `json:"subscribers"`
	JournalPath string `json:"journal_path"`
	Activations int64  `json:"activations"`
}
