// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all dircache environment variables.
const envPrefix = "dircache"

// ApplyEnv overlays DIRCACHE_* environment variables onto cfg. This is the
// only place ambient environment is read; the cache core receives the
// resolved configuration explicitly.
//
//	DIRCACHE_REPO       repository slug used as the cache root namespace
//	DIRCACHE_ROOT       overrides the cache base directory
//	DIRCACHE_LOG_LEVEL  overrides the log level
func ApplyEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if repo := v.GetString("repo"); repo != "" {
		cfg.Namespace = repo
	}
	if root := v.GetString("root"); root != "" {
		cfg.BaseDir = root
	}
	if level := v.GetString("log_level"); level != "" {
		cfg.Log.Level = level
	}
}
