package deeplink

import (
	"log/slog"

	"promptvault/internal/logging"
)

// InspectColdStart runs once during application setup, before the UI is
// guaranteed ready. When args[1] is a recognized activation URL it seeds the
// pending store for later retrieval through the readiness handshake. There is
// no emission on this path: nothing can be listening yet.
func InspectColdStart(args []string, store *PendingStore, logger *slog.Logger) {
	log := logging.NewComponentLogger(logger, "deeplink")

	url, ok := CandidateFromArgs(args)
	if !ok {
		log.Debug("no launch argument to inspect")
		return
	}
	if !MatchesScheme(url) {
		log.Debug("ignoring non-activation launch argument", logging.String("arg", url))
		return
	}

	store.Set(url)
	log.Info("stored pending activation url",
		logging.String(logging.FieldEventType, "cold_start_buffered"),
		logging.String(logging.FieldURL, url))
}
