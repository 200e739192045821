// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for dircache.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Config file: ./.dircache.yaml (or --config path)
// 3. Environment Variables: DIRCACHE_*
// 4. Command-line flags
package config

import (
	"path/filepath"
)

// Config represents the complete application configuration.
type Config struct {
	// BaseDir is the shared cache base directory. The effective cache root
	// is BaseDir/Namespace.
	BaseDir string `yaml:"base_dir"`

	// Namespace scopes the cache root per repository. When empty the root
	// falls back to BaseDir itself and the cache is globally shared.
	Namespace string `yaml:"namespace"`

	Log   LogConfig   `yaml:"log"`
	Rsync RsyncConfig `yaml:"rsync"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // optional log file, rotated; empty = stdout

	MaxSizeMB  int  `yaml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups"`
	Compress   bool `yaml:"compress"`
}

// RsyncConfig contains tuning knobs for the mirror subprocess. The values
// are passed through to rsync unmodified; the cache core does not interpret
// them.
type RsyncConfig struct {
	Binary    string   `yaml:"binary"`
	Compress  bool     `yaml:"compress"`
	BWLimit   string   `yaml:"bwlimit"`
	ExtraArgs []string `yaml:"extra_args,omitempty"`
}

// Root returns the effective cache root directory for this configuration.
func (c *Config) Root() string {
	if c.Namespace == "" {
		return c.BaseDir
	}
	return filepath.Join(c.BaseDir, c.Namespace)
}
