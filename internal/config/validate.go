package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateEventBind(); err != nil {
		return err
	}
	if err := c.validateRetryDelays(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.StateDir) == "" {
		return errors.New("state_dir must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unsupported value %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	return nil
}

func (c *Config) validateEventBind() error {
	bind := strings.TrimSpace(c.EventBind)
	if bind == "" {
		return errors.New("event_bind must be set")
	}
	if _, _, err := net.SplitHostPort(bind); err != nil {
		return fmt.Errorf("event_bind: %w", err)
	}
	return nil
}

func (c *Config) validateRetryDelays() error {
	for i, d := range c.RetryDelaysMS {
		if d <= 0 {
			return fmt.Errorf("retry_delays_ms[%d] must be positive, got %d", i, d)
		}
	}
	return nil
}
