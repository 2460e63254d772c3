package deeplink

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"promptvault/internal/logging"
)

// Ready implements the readiness handshake: the UI calls it exactly once
// after its own initialization, and it drains the pending store. A second
// call in the same process returns empty, which is correct; the UI must not
// re-process the same cold-start URL twice.
func Ready(ctx context.Context, store *PendingStore, journal Recorder, logger *slog.Logger) (string, bool) {
	log := logging.NewComponentLogger(logger, "deeplink")
	log.Info("readiness handshake received")

	url, ok := store.Take()
	if !ok {
		log.Info("no pending activation url")
		return "", false
	}

	id := uuid.NewString()
	log.Info("returning pending activation url",
		logging.String(logging.FieldEventType, "handshake_drained"),
		logging.String(logging.FieldActivationID, id),
		logging.String(logging.FieldSource, SourceColdStart),
		logging.String(logging.FieldURL, url))
	if journal != nil {
		if err := journal.Record(ctx, id, url, SourceColdStart); err != nil {
			log.Warn("journal record failed", logging.Error(err))
		}
	}
	return url, true
}
