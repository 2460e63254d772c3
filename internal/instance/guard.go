package instance

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"promptvault/internal/logging"
)

// Guard owns the single-instance lock and pid files.
type Guard struct {
	lockPath string
	pidPath  string
	lock     *flock.Flock
	logger   *slog.Logger
}

// NewGuard prepares a guard rooted in stateDir.
func NewGuard(stateDir string, logger *slog.Logger) *Guard {
	lockPath := filepath.Join(stateDir, "promptvault.lock")
	return &Guard{
		lockPath: lockPath,
		pidPath:  filepath.Join(stateDir, "promptvault.pid"),
		lock:     flock.New(lockPath),
		logger:   logging.NewComponentLogger(logger, "instance"),
	}
}

// LockPath returns the lock file location.
func (g *Guard) LockPath() string { return g.lockPath }

// PIDPath returns the pid file location.
func (g *Guard) PIDPath() string { return g.pidPath }

// TryAcquire attempts to become the primary instance. It returns true when
// the lock was taken; false means another instance holds it and this process
// should forward and exit.
func (g *Guard) TryAcquire() (bool, error) {
	if err := os.MkdirAll(filepath.Dir(g.lockPath), 0o755); err != nil {
		return false, fmt.Errorf("ensure state directory: %w", err)
	}

	ok, err := g.lock.TryLock()
	if err != nil {
		return false, fmt.Errorf("acquire instance lock: %w", err)
	}
	if !ok {
		return false, nil
	}

	pid := os.Getpid()
	if err := os.WriteFile(g.pidPath, []byte(strconv.Itoa(pid)), 0o644); err != nil {
		g.logger.Warn("failed to write pid file", logging.Error(err))
	}
	g.logger.Info("instance lock acquired",
		logging.String("lock", g.lockPath),
		logging.Int("pid", pid))
	return true, nil
}

// Release drops the lock and removes the pid file.
func (g *Guard) Release() {
	if err := g.lock.Unlock(); err != nil {
		g.logger.Warn("failed to release instance lock", logging.Error(err))
	}
	if err := os.Remove(g.pidPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		g.logger.Warn("failed to remove pid file", logging.Error(err))
	}
}

// PrimaryPID reads the recorded primary pid, or 0 when unavailable.
func (g *Guard) PrimaryPID() int {
	data, err := os.ReadFile(g.pidPath)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0
	}
	return pid
}

// Alive reports whether a process with the given pid exists.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	if err == nil {
		return true
	}
	// EPERM means the process exists but belongs to another user.
	return errors.Is(err, unix.EPERM)
}
