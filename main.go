// Copyright (c) 2025-2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/ffutop/bff/internal/buffer"
	"github.com/ffutop/bff/internal/buffer/persistence"
	"github.com/ffutop/bff/internal/command"
	"github.com/ffutop/bff/internal/config"
	"github.com/ffutop/bff/internal/editor"
)

const version = "technical-preview03"

func main() {
	os.Exit(run())
}

func run() int {
	configFile := pflag.StringP("config", "c", "", "Configuration file path.")
	bufferName := pflag.StringP("buffer", "b", "", "Buffer name to operate on.")
	pflag.String("snapshot_dir", "/tmp/bff_buffers", "Snapshot directory.")
	pflag.String("snapshot_type", "file", "Snapshot storage type (file, mmap, memory).")
	pflag.StringP("log_level", "v", "info", "Log verbosity level (debug, info, warn, error).")
	pflag.StringP("log_file", "L", "", "Log file name (empty for STDERR).")
	pflag.Usage = func() {
		command.Usage(os.Stderr, version)
	}
	pflag.Parse()

	cfg, err := config.LoadConfig(*configFile, pflag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	setupLogger(cfg.Log)

	cmd, err := command.Parse(*bufferName, pflag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		command.Usage(os.Stderr, version)
		return 1
	}

	storage, err := newStorage(cfg.Snapshot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	store := buffer.NewStore(afero.NewOsFs(), storage)
	defer store.Flush()

	ed := editor.NewEditor(store, os.Stdout, os.Stderr)
	exec := command.NewExecutor(store, ed, os.Stdout, os.Stderr)

	return exec.Execute(cmd)
}

func newStorage(cfg config.SnapshotConfig) (persistence.Storage, error) {
	switch cfg.Type {
	case "memory":
		return persistence.NewMemoryStorage(), nil
	case "mmap":
		return persistence.NewMmapStorage(cfg.Dir)
	default:
		return persistence.NewFileStorage(afero.NewOsFs(), cfg.Dir)
	}
}

func setupLogger(cfg config.LogConfig) {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	switch cfg.Level {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.File != "" && cfg.File != "-" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file, falling back to stderr: %v\n", err)
			handler = slog.NewTextHandler(os.Stderr, opts)
		} else {
			handler = slog.NewTextHandler(f, opts)
		}
	} else {
		// Logs go to stderr so stdout stays clean for command output.
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
