// Package events delivers named events to the UI layer over a local
// WebSocket channel.
//
// The hub listens on a loopback address; the webview frontend connects to
// /events and receives every published event as a small JSON message.
// Publishing is fire-and-forget broadcast: no acknowledgement, no buffering
// for absent subscribers, and duplicate deliveries are expected consumers'
// responsibility to tolerate.
package events
