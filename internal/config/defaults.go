package config

const (
	defaultStateDir   = "~/.local/share/promptvault"
	defaultLogDir     = "~/.local/share/promptvault/logs"
	defaultSocketName = "promptvault.sock"
	defaultEventBind  = "127.0.0.1:7517"
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
)

// defaultRetryDelaysMS staggers the redundant deep-link re-emissions after a
// forward: the first retry fires 500ms after the immediate emit, the second
// another 1000ms later.
var defaultRetryDelaysMS = []int{500, 1000}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		StateDir:       defaultStateDir,
		LogDir:         defaultLogDir,
		EventBind:      defaultEventBind,
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
		RetryDelaysMS:  append([]int(nil), defaultRetryDelaysMS...),
		JournalEnabled: true,
	}
}
