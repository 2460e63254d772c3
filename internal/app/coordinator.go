package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"promptvault/internal/config"
	"promptvault/internal/deeplink"
	"promptvault/internal/events"
	"promptvault/internal/hotkey"
	"promptvault/internal/journal"
	"promptvault/internal/logging"
	"promptvault/internal/window"
)

// SchemeRegistrar registers the promptvault:// protocol handler with the OS.
// Platform integrations implement it; registration failure is non-fatal.
type SchemeRegistrar interface {
	RegisterAll() error
	Register(scheme string) error
}

// Options collects the Coordinator's collaborators. Nil capability fields
// fall back to inert implementations.
type Options struct {
	Config    *config.Config
	Logger    *slog.Logger
	Window    window.Manager
	Hotkey    hotkey.Backend
	Registrar SchemeRegistrar
	Scheduler deeplink.Scheduler
	Journal   *journal.Store
	LockPath  string
}

// Coordinator owns the activation pipeline and process-wide integrations.
type Coordinator struct {
	cfg    *config.Config
	logger *slog.Logger

	store     *deeplink.PendingStore
	hub       *events.Hub
	forwarder *deeplink.Forwarder

	windowMgr window.Manager
	backend   hotkey.Backend
	registrar SchemeRegistrar
	journal   *journal.Store
	lockPath  string

	registration hotkey.Registration
	running      atomic.Bool
	cancel       context.CancelFunc
}

// Status reports runtime information for the status command.
type Status struct {
	Running     bool
	PID         int
	LockPath    string
	SocketPath  string
	EventAddr   string
	Subscribers int
	JournalPath string
	Activations int64
}

// New constructs a Coordinator. The pending store, event hub, and forwarder
// are built here so every component shares the same instances.
func New(opts Options) (*Coordinator, error) {
	if opts.Config == nil {
		return nil, errors.New("coordinator requires config")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	windowMgr := opts.Window
	if windowMgr == nil {
		windowMgr = window.NopManager{}
	}
	backend := opts.Hotkey
	if backend == nil {
		backend = hotkey.NullBackend{}
	}

	store := deeplink.NewPendingStore()
	hub := events.NewHub(logger)

	var recorder deeplink.Recorder
	if opts.Journal != nil {
		recorder = opts.Journal
	}

	delays := make([]time.Duration, 0, len(opts.Config.RetryDelaysMS))
	for _, ms := range opts.Config.RetryDelaysMS {
		delays = append(delays, time.Duration(ms)*time.Millisecond)
	}

	c := &Coordinator{
		cfg:       opts.Config,
		logger:    logging.NewComponentLogger(logger, "app"),
		store:     store,
		hub:       hub,
		windowMgr: windowMgr,
		backend:   backend,
		registrar: opts.Registrar,
		journal:   opts.Journal,
		lockPath:  opts.LockPath,
	}
	c.forwarder = deeplink.NewForwarder(hub, raiser{m: windowMgr, logger: logger}, opts.Scheduler, recorder, delays, logger)
	return c, nil
}

// Start brings the process online: scheme registration, cold-start argument
// inspection, the event hub, and the global shortcut. Shortcut registration
// is the one failure allowed to abort startup.
func (c *Coordinator) Start(ctx context.Context, args []string) error {
	if c.running.Load() {
		return errors.New("coordinator already running")
	}

	c.registerScheme()

	// Buffer a cold-start URL before anything can subscribe; the UI pulls
	// it later through the readiness handshake.
	deeplink.InspectColdStart(args, c.store, c.logger)

	if err := c.hub.Start(c.cfg.EventBind); err != nil {
		return err
	}

	binding := hotkey.DefaultBinding()
	registration, err := c.backend.Register(binding)
	if err != nil {
		c.hub.Close()
		return fmt.Errorf("register global shortcut %s: %w", binding, err)
	}
	c.registration = registration

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	go c.toggleLoop(runCtx, registration)

	c.running.Store(true)
	c.logger.Info("promptvault coordinator started",
		logging.String("shortcut", binding.String()),
		logging.String("events", c.hub.Addr()))
	return nil
}

// Stop tears down the shortcut, event hub, and toggle loop.
func (c *Coordinator) Stop() {
	if !c.running.Load() {
		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.registration != nil {
		_ = c.registration.Close()
		c.registration = nil
	}
	c.hub.Close()
	c.running.Store(false)
	c.logger.Info("promptvault coordinator stopped")
}

// Ready is the UI's readiness handshake: it drains the pending store.
func (c *Coordinator) Ready(ctx context.Context) (string, bool) {
	return deeplink.Ready(ctx, c.store, c.recorder(), c.logger)
}

// ForwardSecondInstance handles arguments delivered by a second launch.
func (c *Coordinator) ForwardSecondInstance(ctx context.Context, args []string) bool {
	return c.forwarder.HandleSecondInstance(ctx, args)
}

// HandleOpenURL handles platform open-URL callbacks.
func (c *Coordinator) HandleOpenURL(ctx context.Context, urls []string) {
	c.forwarder.HandleOpenURL(ctx, urls)
}

// RaiseWindow brings the main window to the foreground.
func (c *Coordinator) RaiseWindow() {
	window.Raise(c.windowMgr, c.logger)
}

// Status reports coordinator runtime information.
func (c *Coordinator) Status(ctx context.Context) Status {
	status := Status{
		Running:     c.running.Load(),
		PID:         os.Getpid(),
		LockPath:    c.lockPath,
		SocketPath:  c.cfg.SocketPath,
		EventAddr:   c.hub.Addr(),
		Subscribers: c.hub.Subscribers(),
	}
	if c.journal != nil {
		status.JournalPath = c.journal.Path()
		if count, err := c.journal.Count(ctx); err == nil {
			status.Activations = count
		}
	}
	return status
}

func (c *Coordinator) recorder() deeplink.Recorder {
	if c.journal == nil {
		return nil
	}
	return c.journal
}

func (c *Coordinator) registerScheme() {
	if c.registrar == nil {
		return
	}
	if err := c.registrar.RegisterAll(); err != nil {
		c.logger.Warn("scheme registration failed", logging.Error(err))
	} else {
		c.logger.Info("scheme handler registered")
	}
	if c.cfg.Development {
		if err := c.registrar.Register("promptvault"); err != nil {
			c.logger.Warn("development scheme registration failed", logging.Error(err))
		}
	}
}

func (c *Coordinator) toggleLoop(ctx context.Context, registration hotkey.Registration) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-registration.Triggered():
			if !ok {
				return
			}
			window.Toggle(c.windowMgr, c.logger)
		}
	}
}

// raiser adapts a window.Manager to the forwarder's WindowRaiser.
type raiser struct {
	m      window.Manager
	logger *slog.Logger
}

func (r raiser) Raise() {
	window.Raise(r.m, r.logger)
}
