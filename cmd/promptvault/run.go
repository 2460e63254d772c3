package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"promptvault/internal/app"
	"promptvault/internal/instance"
	"promptvault/internal/ipc"
	"promptvault/internal/journal"
	"promptvault/internal/logging"
)

// runApp launches the application or, when an instance already holds the
// lock, forwards the launch arguments to it and returns.
func runApp(cmdCtx context.Context, cc *commandContext, launchArgs []string) error {
	cfg, err := cc.ensureConfig()
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	socketPath, err := cc.socketPath()
	if err != nil {
		return err
	}

	guard := instance.NewGuard(cfg.StateDir, logger)
	acquired, err := guard.TryAcquire()
	if err != nil {
		return err
	}
	if !acquired {
		if pid := guard.PrimaryPID(); pid > 0 && !instance.Alive(pid) {
			logger.Warn("lock holder looks dead but still holds the lock",
				logging.Int("pid", pid))
		}
		return instance.ForwardToPrimary(socketPath, launchArgs, logger)
	}
	defer guard.Release()

	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var store *journal.Store
	if cfg.JournalEnabled {
		store, err = journal.Open(cfg.StateDir)
		if err != nil {
			logger.Warn("journal unavailable", logging.Error(err))
		} else {
			defer store.Close()
		}
	}

	coord, err := app.New(app.Options{
		Config:   cfg,
		Logger:   logger,
		Journal:  store,
		LockPath: guard.LockPath(),
	})
	if err != nil {
		return err
	}
	if err := coord.Start(signalCtx, launchArgs); err != nil {
		return err
	}
	defer coord.Stop()

	ipcServer, err := ipc.NewServer(signalCtx, socketPath, coord, logger)
	if err != nil {
		return fmt.Errorf("start IPC server: %w", err)
	}
	defer ipcServer.Close()
	ipcServer.Serve()

	<-signalCtx.Done()
	logger.Info("shutdown signal received")
	return nil
}
