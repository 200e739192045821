// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package cache implements the content-key-addressed directory cache.
//
// A cache lives under a shared root directory. Each entry is a
// subdirectory named from a cache key, holding a mirrored copy of a source
// path under a sanitized subdirectory:
//
//	<root>/<key>/<sanitized-path>/...
//
// Restore matches a requested key list against existing entry names and
// mirrors the best match back into the workspace; Save mirrors the
// workspace into a key-named entry. Both flows run strictly sequentially
// and perform no locking: concurrent writers to the same key race at the
// filesystem level.
package cache

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Syncer is the injected synchronization capability. Implementations
// perform destructive mirrors (destination made to match source, extra
// destination files deleted) and idempotent directory creation.
type Syncer interface {
	Mirror(ctx context.Context, src, dst string) error
	EnsureDir(ctx context.Context, path string) error
}

// Lister returns the immediate entry names of a directory, files and
// subdirectories indistinguishably. It fails if the directory does not
// exist.
type Lister interface {
	List(dir string) ([]string, error)
}

// Cache is a directory cache rooted at a shared filesystem path.
type Cache struct {
	root   string
	syncer Syncer
	lister Lister
	log    *logrus.Entry

	newSaveID func() string
}

// Option configures a Cache.
type Option func(*Cache)

// WithLister overrides the directory listing implementation.
func WithLister(l Lister) Option {
	return func(c *Cache) {
		c.lister = l
	}
}

// WithLogger sets the logger used for flow milestones.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Cache) {
		c.log = logger.WithField("component", "cache")
	}
}

// WithSaveIDGenerator overrides save identifier generation. The default
// generates a fresh UUID per save.
func WithSaveIDGenerator(gen func() string) Option {
	return func(c *Cache) {
		c.newSaveID = gen
	}
}

// New creates a cache rooted at root, using syncer for all mirror and
// directory-creation operations.
func New(root string, syncer Syncer, opts ...Option) *Cache {
	c := &Cache{
		root:      root,
		syncer:    syncer,
		lister:    dirLister{},
		newSaveID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = logrus.NewEntry(logrus.StandardLogger()).WithField("component", "cache")
	}

	return c
}

// Root returns the cache root directory.
func (c *Cache) Root() string {
	return c.root
}

// dirLister lists directories via the local filesystem.
type dirLister struct{}

func (dirLister) List(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		names = append(names, e.Name())
	}
	return names, nil
}
