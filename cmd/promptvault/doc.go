// Command promptvault is the PromptVault desktop application entry point.
//
// Invoked with no subcommand it launches the app, passing an optional
// promptvault:// URL as the first positional argument; when an instance is
// already running the launch forwards its arguments to it and exits.
// Subcommands cover diagnostics (status, history), explicit forwarding
// (open), and configuration management (config show/init).
package main
