package main

import (
	"fmt"

	"promptvault/internal/config"
)

// commandContext shares flag values and lazily-loaded config between
// commands.
type commandContext struct {
	configFlag *string
	socketFlag *string

	cfg     *config.Config
	cfgPath string
}

func newCommandContext(configFlag, socketFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, socketFlag: socketFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, path, _, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg
	c.cfgPath = path
	return cfg, nil
}

// socketPath resolves the control socket, honoring the --socket override.
func (c *commandContext) socketPath() (string, error) {
	if *c.socketFlag != "" {
		return *c.socketFlag, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.SocketPath, nil
}
