// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/cicd-cache/dircache/pkg/cache"
)

// fakeSyncer records calls and returns configured errors. It performs no
// filesystem work, which lets flow tests assert exactly which mirror and
// directory operations a flow issued.
type fakeSyncer struct {
	mu        sync.Mutex
	ensured   []string
	mirrored  [][2]string
	mirrorErr error
	ensureErr error
}

func (f *fakeSyncer) EnsureDir(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ensureErr != nil {
		return f.ensureErr
	}
	f.ensured = append(f.ensured, path)
	return nil
}

func (f *fakeSyncer) Mirror(_ context.Context, src, dst string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mirrorErr != nil {
		return f.mirrorErr
	}
	f.mirrored = append(f.mirrored, [2]string{src, dst})
	return nil
}

func (f *fakeSyncer) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ensured) + len(f.mirrored)
}

// fakeLister serves a fixed listing.
type fakeLister struct {
	entries []string
	err     error
	called  int
}

func (f *fakeLister) List(string) ([]string, error) {
	f.called++
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

// copySyncer is a real but in-process syncer: a destructive tree copy.
// Round-trip tests use it so no rsync binary is required.
type copySyncer struct{}

func (copySyncer) EnsureDir(_ context.Context, path string) error {
	return os.MkdirAll(path, 0o755)
}

func (copySyncer) Mirror(_ context.Context, src, dst string) error {
	if err := os.RemoveAll(dst); err != nil {
		return err
	}
	return copyTree(src, dst)
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}

// newTestCache builds a cache with a silent logger.
func newTestCache(root string, syncer cache.Syncer, opts ...cache.Option) *cache.Cache {
	logger, _ := test.NewNullLogger()
	opts = append([]cache.Option{cache.WithLogger(logger)}, opts...)
	return cache.New(root, syncer, opts...)
}
