package deeplink

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"promptvault/internal/logging"
)

// Emitter publishes a named event with a string payload to the UI layer.
// Delivery is fire-and-forget: there is no acknowledgement and no queryable
// listener-attached state.
type Emitter interface {
	Emit(event, payload string) error
}

// WindowRaiser brings the main window to the foreground.
type WindowRaiser interface {
	Raise()
}

// Recorder appends delivered activations to the diagnostics journal.
type Recorder interface {
	Record(ctx context.Context, id, url, source string) error
}

// Activation sources recorded in the journal and logs.
const (
	SourceColdStart = "cold_start"
	SourceForward   = "forward"
	SourceOpenURL   = "open_url"
)

// Forwarder handles activations that reach an already-running instance:
// arguments forwarded by a second launch and URLs pushed by the platform's
// open-URL callback.
type Forwarder struct {
	emitter Emitter
	window  WindowRaiser
	sched   Scheduler
	journal Recorder
	delays  []time.Duration
	logger  *slog.Logger
}

// NewForwarder wires the forwarder's collaborators. window, sched, and
// journal may be nil; delays defaults to the 500ms/1000ms stagger when empty.
func NewForwarder(emitter Emitter, window WindowRaiser, sched Scheduler, journal Recorder, delays []time.Duration, logger *slog.Logger) *Forwarder {
	if sched == nil {
		sched = TimerScheduler{}
	}
	if len(delays) == 0 {
		delays = []time.Duration{500 * time.Millisecond, 1000 * time.Millisecond}
	}
	return &Forwarder{
		emitter: emitter,
		window:  window,
		sched:   sched,
		journal: journal,
		delays:  append([]time.Duration(nil), delays...),
		logger:  logging.NewComponentLogger(logger, "deeplink"),
	}
}

// HandleSecondInstance processes the launch arguments of a second process
// invocation. On a scheme match it emits the deep-link event immediately and
// schedules redundant re-emissions; regardless of match it raises the main
// window so the user sees the running instance respond. Returns whether the
// arguments carried an activation URL.
//
// The delayed re-emissions run on detached timers and are not cancellable:
// the running instance's UI may still be initializing when the immediate emit
// fires, and over-delivery is the accepted trade for a lost activation.
func (f *Forwarder) HandleSecondInstance(ctx context.Context, args []string) bool {
	matched := false
	url, ok := CandidateFromArgs(args)
	switch {
	case !ok:
		f.logger.Info("second instance carried no arguments")
	case !MatchesScheme(url):
		f.logger.Info("ignoring non-activation argument from second instance",
			logging.String("arg", url))
	default:
		matched = true
		f.deliver(ctx, url, SourceForward)
	}

	if f.window != nil {
		f.window.Raise()
	}
	return matched
}

// HandleOpenURL processes URLs pushed by the platform while the app is
// already foregrounded. The first recognized URL is emitted once; there is no
// buffering on this path because the UI is live when the callback fires.
func (f *Forwarder) HandleOpenURL(ctx context.Context, urls []string) {
	if len(urls) == 0 {
		return
	}
	url := urls[0]
	if !MatchesScheme(url) {
		f.logger.Info("ignoring non-activation open-url callback",
			logging.String("arg", url))
		return
	}

	id := uuid.NewString()
	f.logger.Info("open-url activation",
		logging.String(logging.FieldEventType, "open_url"),
		logging.String(logging.FieldActivationID, id),
		logging.String(logging.FieldSource, SourceOpenURL),
		logging.String(logging.FieldURL, url))
	f.emit(url)
	f.record(ctx, id, url, SourceOpenURL)
}

func (f *Forwarder) deliver(ctx context.Context, url, source string) {
	id := uuid.NewString()
	f.logger.Info("forwarding activation url",
		logging.String(logging.FieldEventType, "forward"),
		logging.String(logging.FieldActivationID, id),
		logging.String(logging.FieldSource, source),
		logging.String(logging.FieldURL, url))

	f.emit(url)

	cumulative := time.Duration(0)
	for _, delay := range f.delays {
		cumulative += delay
		offset := cumulative
		f.sched.AfterFunc(offset, func() {
			f.logger.Info("re-emitting activation url",
				logging.String(logging.FieldActivationID, id),
				logging.Duration(logging.FieldDelay, offset))
			f.emit(url)
		})
	}

	f.record(ctx, id, url, source)
}

func (f *Forwarder) emit(url string) {
	if f.emitter == nil {
		return
	}
	if err := f.emitter.Emit(EventName, url); err != nil {
		f.logger.Warn("activation emit failed", logging.Error(err))
	}
}

func (f *Forwarder) record(ctx context.Context, id, url, source string) {
	if f.journal == nil {
		return
	}
	if err := f.journal.Record(ctx, id, url, source); err != nil {
		f.logger.Warn("journal record failed", logging.Error(err))
	}
}
