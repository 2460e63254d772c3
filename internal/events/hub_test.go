package events_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"promptvault/internal/events"
	"promptvault/internal/logging"
)

func startHub(t *testing.T) *events.Hub {
	t.Helper()
	hub := events.NewHub(logging.NewNop())
	if err := hub.Start("127.0.0.1:0"); err != nil {
		t.Fatalf("hub start: %v", err)
	}
	t.Cleanup(hub.Close)
	return hub
}

func subscribe(t *testing.T, hub *events.Hub) *websocket.Conn {
	t.Helper()
	url := fmt.Sprintf("ws://%s/events", hub.Addr())
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial hub: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForSubscribers(t *testing.T, hub *events.Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.Subscribers() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("subscribers = %d, want %d", hub.Subscribers(), want)
}

func TestHubBroadcast(t *testing.T) {
	hub := startHub(t)
	conn := subscribe(t, hub)
	waitForSubscribers(t, hub, 1)

	if err := hub.Emit("deep-link", "promptvault://open?id=3"); err != nil {
		t.Fatalf("emit: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg events.Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read message: %v", err)
	}
	if msg.Event != "deep-link" || msg.Payload != "promptvault://open?id=3" {
		t.Fatalf("message = %+v", msg)
	}
}

func TestHubEmitWithoutSubscribers(t *testing.T) {
	hub := startHub(t)
	if err := hub.Emit("deep-link", "promptvault://dropped"); err != nil {
		t.Fatalf("emit to empty hub should not fail: %v", err)
	}
}

func TestHubDuplicateDelivery(t *testing.T) {
	hub := startHub(t)
	conn := subscribe(t, hub)
	waitForSubscribers(t, hub, 1)

	for i := 0; i < 3; i++ {
		if err := hub.Emit("deep-link", "promptvault://same"); err != nil {
			t.Fatalf("emit %d: %v", i, err)
		}
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for i := 0; i < 3; i++ {
		var msg events.Message
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if msg.Payload != "promptvault://same" {
			t.Fatalf("read %d payload = %q", i, msg.Payload)
		}
	}
}
