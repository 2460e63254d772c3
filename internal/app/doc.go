// Package app coordinates the PromptVault process: activation pipeline,
// event hub, window control, and the global shortcut.
//
// The Coordinator owns the pending-URL store and wires the capability
// interfaces (window manager, hotkey backend, platform scheme registrar)
// into the deep-link components. Setup order matters: cold-start inspection
// runs before the event hub accepts subscribers, which is exactly why the
// readiness handshake exists. Keep orchestration here; pipeline behavior
// lives in the deeplink package.
package app
