package instance

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"promptvault/internal/ipc"
	"promptvault/internal/logging"
)

// DialTimeout bounds how long a second launch waits for the primary's
// control socket before giving up.
const DialTimeout = 3 * time.Second

// ForwardToPrimary delivers this process's launch arguments to the running
// instance over the control socket. The primary decides whether the
// arguments carry an activation URL; either way it raises its window.
func ForwardToPrimary(socketPath string, args []string, logger *slog.Logger) error {
	log := logging.NewComponentLogger(logger, "instance")

	client, err := waitForClient(socketPath, DialTimeout)
	if err != nil {
		return fmt.Errorf("reach running instance: %w", err)
	}
	defer client.Close()

	cwd, _ := os.Getwd()
	resp, err := client.Forward(ipc.ForwardRequest{Args: args, WorkingDir: cwd})
	if err != nil {
		return fmt.Errorf("forward launch arguments: %w", err)
	}

	log.Info("forwarded launch to running instance",
		logging.Bool("matched", resp.Matched))
	return nil
}

func waitForClient(socketPath string, timeout time.Duration) (*ipc.Client, error) {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		client, err := ipc.Dial(socketPath)
		if err == nil {
			return client, nil
		}
		lastErr = err
		time.Sleep(100 * time.Millisecond)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("timeout waiting for running instance")
	}
	return nil, lastErr
}
