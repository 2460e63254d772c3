package deeplink

import "strings"

// Scheme is the custom URL scheme registered with the OS. Only URLs carrying
// this prefix are treated as activations; everything else is ignored at every
// entry point.
const Scheme = "promptvault://"

// EventName identifies every activation publish on the event bus. The UI
// subscribes to exactly this name.
const EventName = "deep-link"

// MatchesScheme reports whether raw is a recognized activation URL.
func MatchesScheme(raw string) bool {
	return strings.HasPrefix(raw, Scheme)
}

// CandidateFromArgs extracts the candidate URL from launch arguments.
// args[0] is the executable path; only args[1] is inspected.
func CandidateFromArgs(args []string) (string, bool) {
	if len(args) < 2 {
		return "", false
	}
	return args[1], true
}
