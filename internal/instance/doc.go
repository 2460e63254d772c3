// Package instance enforces single-instance execution and handles the
// second-launch path.
//
// The primary process holds a flock-backed lock file for its lifetime and
// writes a pid file next to it. A second launch fails to acquire the lock,
// forwards its arguments to the primary over the control socket, and exits.
// Stale locks left by a crashed primary are detected with a signal-0
// liveness probe against the recorded pid.
package instance
