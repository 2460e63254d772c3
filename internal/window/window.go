package window

import (
	"log/slog"

	"promptvault/internal/logging"
)

// Manager is the window-control capability supplied by the host windowing
// integration. Implementations talk to the real OS window; tests substitute
// fakes.
type Manager interface {
	IsVisible() (bool, error)
	Show() error
	Hide() error
	Focus() error
}

// Toggle flips main-window visibility: visible windows hide, hidden windows
// show and take focus. A failed visibility query biases toward showing, since
// making the window appear is the recoverable direction.
func Toggle(m Manager, logger *slog.Logger) {
	log := logging.NewComponentLogger(logger, "window")

	visible, err := m.IsVisible()
	if err != nil {
		log.Warn("visibility query failed, assuming hidden", logging.Error(err))
		visible = false
	}

	if visible {
		if err := m.Hide(); err != nil {
			log.Warn("window hide failed", logging.Error(err))
		}
		return
	}
	if err := m.Show(); err != nil {
		log.Warn("window show failed", logging.Error(err))
	}
	if err := m.Focus(); err != nil {
		log.Warn("window focus failed", logging.Error(err))
	}
}

// Raise brings the window to the foreground. Failures are cosmetic: they are
// logged and swallowed so activation forwarding still counts as successful.
func Raise(m Manager, logger *slog.Logger) {
	log := logging.NewComponentLogger(logger, "window")

	if err := m.Show(); err != nil {
		log.Warn("window show failed", logging.Error(err))
	}
	if err := m.Focus(); err != nil {
		log.Warn("window focus failed", logging.Error(err))
	}
}

// NopManager satisfies Manager when no windowing integration is attached
// (headless runs, tests). It reports the window as hidden.
type NopManager struct{}

func (NopManager) IsVisible() (bool, error) { return false, nil }

func (NopManager) Show() error { return nil }

func (NopManager) Hide() error { return nil }

func (NopManager) Focus() error { return nil }
