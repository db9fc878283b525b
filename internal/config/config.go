// Copyright (c) 2025-2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config defines the global configuration structure
type Config struct {
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	Log      LogConfig      `mapstructure:"log"`
}

// SnapshotConfig defines where and how buffer snapshots are persisted
type SnapshotConfig struct {
	Dir  string `mapstructure:"dir"`  // Snapshot directory, created on first use
	Type string `mapstructure:"type"` // "file", "mmap", "memory"
}

// LogConfig defines logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
	File  string `mapstructure:"file"`  // Log file path, empty for stderr
}

// LoadConfig loads configuration from flags and an optional config file.
// Flag values take precedence over file values, file values over defaults.
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("snapshot.dir", "/tmp/bff_buffers")
	v.SetDefault("snapshot.type", "file")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	if flags != nil {
		if err := v.BindPFlag("snapshot.dir", flags.Lookup("snapshot_dir")); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
		if err := v.BindPFlag("snapshot.type", flags.Lookup("snapshot_type")); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
		if err := v.BindPFlag("log.level", flags.Lookup("log_level")); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
		if err := v.BindPFlag("log.file", flags.Lookup("log_file")); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/bff/")
		v.AddConfigPath("$HOME/.bff")
		v.AddConfigPath(".")
	}

	// A missing config file is fine, everything has a default.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	switch config.Snapshot.Type {
	case "file", "mmap", "memory":
	default:
		return nil, fmt.Errorf("unknown snapshot type: %s", config.Snapshot.Type)
	}

	return &config, nil
}
