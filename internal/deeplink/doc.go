// Package deeplink implements the activation pipeline for promptvault://
// URLs.
//
// A URL reaches the app three ways: as a launch argument at cold start, as a
// forwarded argument when a second launch finds an instance already running,
// or through the platform's open-URL callback while the app is foregrounded.
// Cold-start URLs are buffered in a PendingStore until the UI drains them via
// the readiness handshake; the other two paths emit the deep-link event
// directly, with a forward adding two redundant delayed re-emissions to cover
// a UI that has not attached its listener yet.
//
// Every failure in this pipeline is logged and swallowed. The worst case is a
// missed or duplicated activation, never a crash; consumers must treat
// repeated identical events as re-deliveries.
package deeplink
