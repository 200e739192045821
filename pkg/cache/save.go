// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache

import (
	"context"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// SaveRequest defines the input for a save.
type SaveRequest struct {
	// Paths to persist. Only Paths[0] is synchronized.
	Paths []string

	// Key names the cache entry.
	Key string
}

// SaveResult defines the outcome of a save.
type SaveResult struct {
	// ID is an opaque identifier for this save, fresh per invocation.
	ID string

	// Entry is the name of the entry the save wrote to.
	Entry string
}

// Save mirrors the first path into a key-named cache entry. The entry is
// never checked for prior contents: repeated saves under one key overwrite
// via the destructive mirror, and concurrent saves to the same key race
// with no serialization guarantee.
func (c *Cache) Save(ctx context.Context, req SaveRequest) (*SaveResult, error) {
	if err := ValidatePaths(req.Paths); err != nil {
		return nil, err
	}
	if err := ValidateKey(req.Key); err != nil {
		return nil, err
	}

	entryDir := filepath.Join(c.root, req.Key)
	if err := c.syncer.EnsureDir(ctx, entryDir); err != nil {
		return nil, err
	}

	sanitized := SanitizePath(req.Paths[0])
	dst := filepath.Join(entryDir, sanitized)

	if err := c.syncer.Mirror(ctx, req.Paths[0], dst); err != nil {
		return nil, err
	}

	id := c.newSaveID()

	md := Metadata{
		Key:           req.Key,
		SourcePath:    req.Paths[0],
		SanitizedPath: sanitized,
		SaveID:        id,
		CreatedAt:     time.Now().UTC(),
	}
	if err := WriteMetadata(entryDir, md); err != nil {
		// The manifest is advisory; a save with mirrored contents but no
		// manifest is still restorable.
		c.log.WithField("entry", req.Key).WithError(err).Warn("failed to write entry metadata")
	}

	c.log.WithFields(logrus.Fields{
		"key":     req.Key,
		"save_id": id,
	}).Info("cache saved")

	return &SaveResult{ID: id, Entry: req.Key}, nil
}
