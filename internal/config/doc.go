// Package config loads, normalizes, and validates PromptVault configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the PROMPTVAULT_CONFIG environment
// fallback. The Config type centralizes every knob the app process and CLI
// need: state and log directories, the control socket, the event bus bind
// address, and activation retry timing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
