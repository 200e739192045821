// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// MetadataFile is the manifest name written next to (not inside) the
// sanitized-path subdirectory, so that it is never mirrored back into the
// workspace.
const MetadataFile = "metadata.yaml"

// Metadata describes one saved cache entry.
type Metadata struct {
	Key           string    `yaml:"key"`
	SourcePath    string    `yaml:"source_path"`
	SanitizedPath string    `yaml:"sanitized_path"`
	SaveID        string    `yaml:"save_id"`
	CreatedAt     time.Time `yaml:"created_at"`
}

// WriteMetadata writes the entry manifest into entryDir.
func WriteMetadata(entryDir string, md Metadata) error {
	data, err := yaml.Marshal(&md)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(entryDir, MetadataFile), data, 0o644)
}

// ReadMetadata reads the entry manifest from entryDir. Entries saved
// before the manifest existed have none; callers treat absence as
// non-fatal.
func ReadMetadata(entryDir string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(entryDir, MetadataFile))
	if err != nil {
		return nil, err
	}

	var md Metadata
	if err := yaml.Unmarshal(data, &md); err != nil {
		return nil, err
	}
	return &md, nil
}
