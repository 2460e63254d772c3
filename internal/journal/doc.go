// Package journal records delivered activations in a local SQLite database.
//
// The journal is diagnostics only: the status and history commands read it,
// nothing in the activation pipeline ever does, and pending URLs are never
// persisted. Write failures are reported to callers who log and move on.
package journal
