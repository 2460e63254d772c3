package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeRetryDelays()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.StateDir) == "" {
		c.StateDir = defaultStateDir
	}
	if c.StateDir, err = expandPath(c.StateDir); err != nil {
		return fmt.Errorf("state_dir: %w", err)
	}
	if strings.TrimSpace(c.LogDir) == "" {
		c.LogDir = defaultLogDir
	}
	if c.LogDir, err = expandPath(c.LogDir); err != nil {
		return fmt.Errorf("log_dir: %w", err)
	}
	if strings.TrimSpace(c.SocketPath) == "" {
		c.SocketPath = filepath.Join(c.StateDir, defaultSocketName)
	} else if c.SocketPath, err = expandPath(c.SocketPath); err != nil {
		return fmt.Errorf("socket_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}
}

func (c *Config) normalizeRetryDelays() {
	if len(c.RetryDelaysMS) == 0 {
		c.RetryDelaysMS = append([]int(nil), defaultRetryDelaysMS...)
	}
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return filepath.Clean(trimmed), nil
}
