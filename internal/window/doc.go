// Package window abstracts main-window visibility control.
//
// The Manager interface is the capability surface the host windowing
// integration provides; the toggle and raise helpers implement the behavior
// the activation pipeline and global shortcut need on top of it. Visibility
// is never cached: it is queried live on every toggle.
package window
