// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

// DefaultBaseDir is the shared cache base directory used when no override
// is configured. It is expected to live on a filesystem shared between CI
// jobs of the same runner pool.
const DefaultBaseDir = "/var/cache/dircache"

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir,
		Log:     DefaultLogConfig(),
		Rsync:   DefaultRsyncConfig(),
	}
}

// DefaultLogConfig returns default logging configuration.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:      "info",
		MaxSizeMB:  100,
		MaxBackups: 10,
		Compress:   true,
	}
}

// DefaultRsyncConfig returns default rsync tuning configuration.
func DefaultRsyncConfig() RsyncConfig {
	return RsyncConfig{
		Binary: "rsync",
	}
}

// applyDefaults fills zero values with defaults after a file load.
func applyDefaults(cfg *Config) {
	if cfg.BaseDir == "" {
		cfg.BaseDir = DefaultBaseDir
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 100
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 10
	}
	if cfg.Rsync.Binary == "" {
		cfg.Rsync.Binary = "rsync"
	}
}
