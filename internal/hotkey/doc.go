// Package hotkey abstracts global keyboard shortcut registration.
//
// Backend is the capability surface a platform integration provides; the
// package also fixes the single binding PromptVault registers (primary
// modifier + Shift + P, with the primary modifier depending on the platform).
// Registration failure is the one fatal error in the app's setup path.
package hotkey
