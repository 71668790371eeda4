// Package main implements the th interactive task tracker.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/amonks/treehouse/internal/config"
	"github.com/amonks/treehouse/internal/logging"
	"github.com/amonks/treehouse/internal/paths"
	"github.com/amonks/treehouse/internal/ui"
	"github.com/amonks/treehouse/task"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "th: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := paths.WorkingDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	logger, closeLog := openLogger(cfg)
	defer closeLog()

	store := task.Open(cfg.DataFile())
	tasks, err := store.Load()
	if err != nil {
		logger.Error("load tasks", "err", err)
		return err
	}

	logger.Info("session started", "file", store.Path(), "tasks", len(tasks))

	loop := newLoop(os.Stdin, os.Stdout, store, tasks, logger, ui.Width(cfg.UI.Width))
	if err := loop.run(); err != nil {
		logger.Error("session failed", "err", err)
		return err
	}

	logger.Info("session ended", "tasks", len(loop.tasks))
	return nil
}

func openLogger(cfg *config.Config) (*log.Logger, func()) {
	path, ok := cfg.LogFile()
	if !ok {
		return logging.Discard(), func() {}
	}
	return logging.Open(path, logging.ParseLevel(cfg.LogLevel()))
}
