// Package ipc exposes the running PromptVault instance over JSON-RPC Unix
// sockets and ships the matching client.
//
// Two callers use it: second launches forward their arguments through
// Forward, and the UI process issues Ready once after initialization to drain
// any buffered cold-start URL. The server embeds the coordinator; the client
// decorates dialing with a short timeout so second launches fail fast when no
// instance is running.
package ipc
