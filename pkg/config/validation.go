// Package config handles configuration loading and validation
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate validates the configuration
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}

	if c.BaseDir == "" {
		return fmt.Errorf("base_dir is required")
	}
	if !filepath.IsAbs(c.BaseDir) {
		return fmt.Errorf("base_dir must be an absolute path: %s", c.BaseDir)
	}

	// The namespace becomes a single path segment under base_dir.
	if strings.ContainsAny(c.Namespace, "/\\") {
		return fmt.Errorf("namespace must not contain path separators: %s", c.Namespace)
	}

	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log config: %w", err)
	}

	if err := c.Rsync.Validate(); err != nil {
		return fmt.Errorf("rsync config: %w", err)
	}

	return nil
}

// Validate validates the logging configuration
func (l *LogConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(l.Level)] {
		return fmt.Errorf("invalid level: %s (must be debug, info, warn, or error)", l.Level)
	}

	if l.MaxSizeMB < 0 {
		return fmt.Errorf("max_size_mb must be non-negative")
	}
	if l.MaxBackups < 0 {
		return fmt.Errorf("max_backups must be non-negative")
	}

	return nil
}

// Validate validates the rsync tuning configuration
func (r *RsyncConfig) Validate() error {
	if r.Binary == "" {
		return fmt.Errorf("binary is required")
	}

	// bwlimit is passed through to rsync; only reject obvious flag injection.
	if strings.HasPrefix(r.BWLimit, "-") {
		return fmt.Errorf("invalid bwlimit: %s", r.BWLimit)
	}

	return nil
}
