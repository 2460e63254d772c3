package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"promptvault/internal/logging"
)

// Message is the wire form of a published event.
type Message struct {
	Event   string `json:"event"`
	Payload string `json:"payload"`
}

var upgrader = websocket.Upgrader{
	// The hub only ever binds to loopback; the webview origin varies by
	// platform, so origin checking buys nothing here.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub is the process-wide event channel the UI subscribes to.
type Hub struct {
	logger *slog.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}

	listener net.Listener
	server   *http.Server
}

// NewHub constructs an idle hub. Call Start to begin accepting subscribers.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logging.NewComponentLogger(logger, "events"),
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

// Start listens on bind and serves the /events subscription endpoint.
func (h *Hub) Start(bind string) error {
	listener, err := net.Listen("tcp", bind)
	if err != nil {
		return fmt.Errorf("event hub listen: %w", err)
	}
	h.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc("/events", h.handleSubscribe)
	h.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error("event hub server error", logging.Error(err))
		}
	}()

	h.logger.Debug("event hub listening", logging.String("bind", h.Addr()))
	return nil
}

// Addr returns the bound address, or empty before Start.
func (h *Hub) Addr() string {
	if h.listener == nil {
		return ""
	}
	return h.listener.Addr().String()
}

// Close disconnects all subscribers and stops the listener.
func (h *Hub) Close() {
	h.mu.Lock()
	for conn := range h.conns {
		_ = conn.Close()
	}
	h.conns = make(map[*websocket.Conn]struct{})
	h.mu.Unlock()

	if h.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = h.server.Shutdown(ctx)
	}
}

// Emit broadcasts an event to every connected subscriber. Write failures
// evict the subscriber and are logged; a hub with no subscribers is not an
// error, the emission is simply dropped.
func (h *Hub) Emit(event, payload string) error {
	msg := Message{Event: event, Payload: payload}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Warn("dropping event subscriber", logging.Error(err))
			_ = conn.Close()
			delete(h.conns, conn)
		}
	}
	return nil
}

// Subscribers returns the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", logging.Error(err))
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	count := len(h.conns)
	h.mu.Unlock()
	h.logger.Debug("event subscriber attached", logging.Int("subscribers", count))

	// Reader loop exists only to notice disconnects; subscribers never
	// send application data.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.conns, conn)
				h.mu.Unlock()
				_ = conn.Close()
				return
			}
		}
	}()
}
