// Package logging builds the slog loggers used across PromptVault and
// standardizes structured field names.
//
// It offers console and JSON handlers selected by config, multi-destination
// output (stdout plus a log file under the configured log directory), Attr
// helper re-exports, and a no-op logger for tests and optional dependencies.
package logging
