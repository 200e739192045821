// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache

import (
	"context"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cicd-cache/dircache/pkg/errors"
)

// RestoreRequest defines the input for a restore.
type RestoreRequest struct {
	// Paths to restore into. Only Paths[0] is synchronized.
	Paths []string

	// PrimaryKey is the preferred lookup key. It is the sole candidate
	// when RestoreKeys is empty.
	PrimaryKey string

	// RestoreKeys are fallback lookup keys, tried in order. When present
	// they replace the primary key as the candidate list.
	RestoreKeys []string
}

// RestoreResult defines the outcome of a restore. Hit distinguishes a
// cache miss from a successful match explicitly.
type RestoreResult struct {
	Hit        bool
	MatchedKey string
	Entry      string
}

// Restore looks up the best cache entry for the requested keys and mirrors
// it into the first path. A miss returns Hit=false and a nil error; every
// failure after validation propagates from the collaborator unwrapped, with
// no retries.
func (c *Cache) Restore(ctx context.Context, req RestoreRequest) (*RestoreResult, error) {
	if err := ValidateKey(req.PrimaryKey); err != nil {
		return nil, err
	}
	for _, key := range req.RestoreKeys {
		if err := ValidateKey(key); err != nil {
			return nil, err
		}
	}
	if err := ValidatePaths(req.Paths); err != nil {
		return nil, err
	}

	if err := c.syncer.EnsureDir(ctx, c.root); err != nil {
		return nil, err
	}

	entries, err := c.lister.List(c.root)
	if err != nil {
		return nil, errors.ListingError("failed to list cache root", err)
	}

	candidates := req.RestoreKeys
	if len(candidates) == 0 {
		candidates = []string{req.PrimaryKey}
	}

	match, ok := Locate(candidates, entries)
	if !ok {
		c.log.WithField("key", req.PrimaryKey).Info("cache miss")
		return &RestoreResult{Hit: false}, nil
	}

	entryDir := filepath.Join(c.root, match.Entry)
	src := filepath.Join(entryDir, SanitizePath(req.Paths[0]))

	log := c.log.WithFields(logrus.Fields{
		"key":   match.Key,
		"entry": match.Entry,
	})

	if md, err := ReadMetadata(entryDir); err == nil {
		log = log.WithField("entry_age", time.Since(md.CreatedAt).Round(time.Second).String())
	}

	if err := c.syncer.Mirror(ctx, src, req.Paths[0]); err != nil {
		return nil, err
	}

	log.Info("cache restored")

	return &RestoreResult{
		Hit:        true,
		MatchedKey: match.Key,
		Entry:      match.Entry,
	}, nil
}
