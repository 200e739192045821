// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package mirror synchronizes directory trees by shelling out to rsync.
//
// A mirror is destructive: the destination is made to match the source
// exactly, including deleting files present only at the destination. A
// failure mid-transfer leaves a partially-mirrored destination; callers
// get the error and no recovery is attempted.
package mirror

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cicd-cache/dircache/pkg/config"
	cacheerrors "github.com/cicd-cache/dircache/pkg/errors"
)

// Errors
var (
	ErrBinaryNotFound    = errors.New("mirror binary not found in PATH")
	ErrProcessAlreadyRun = errors.New("process has already been started")
)

// Rsync mirrors directories via an rsync subprocess, streaming its output
// through the configured logger.
type Rsync struct {
	binary    string
	compress  bool
	bwlimit   string
	extraArgs []string
	log       *logrus.Entry
}

// NewRsync creates an rsync-backed syncer from the tuning configuration.
func NewRsync(cfg config.RsyncConfig, logger *logrus.Logger) *Rsync {
	return &Rsync{
		binary:    cfg.Binary,
		compress:  cfg.Compress,
		bwlimit:   cfg.BWLimit,
		extraArgs: cfg.ExtraArgs,
		log:       logger.WithField("component", "mirror"),
	}
}

// Mirror makes dst match src exactly. Both are directories; dst is created
// if absent, and files present only under dst are deleted.
func (r *Rsync) Mirror(ctx context.Context, src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return cacheerrors.SyncError("failed to create mirror destination", err)
	}

	args := r.args(src, dst)

	r.log.WithFields(logrus.Fields{
		"src": src,
		"dst": dst,
	}).Debug("starting mirror")

	p := newProcess(r.binary, args, r.log)
	if err := p.Start(ctx); err != nil {
		return cacheerrors.SyncError("failed to start mirror", err)
	}
	if err := p.Wait(ctx); err != nil {
		return cacheerrors.SyncError("mirror failed", err)
	}
	return nil
}

// EnsureDir idempotently creates a directory and its parents.
func (r *Rsync) EnsureDir(ctx context.Context, path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return cacheerrors.SyncError("failed to create directory", err)
	}
	return nil
}

// args builds the rsync argument list for one mirror invocation. The
// trailing slash on src makes rsync copy the directory's contents rather
// than the directory itself.
func (r *Rsync) args(src, dst string) []string {
	args := []string{"--archive", "--delete"}
	if r.compress {
		args = append(args, "--compress")
	}
	if r.bwlimit != "" {
		args = append(args, "--bwlimit="+r.bwlimit)
	}
	args = append(args, r.extraArgs...)
	args = append(args, ensureTrailingSlash(src), ensureTrailingSlash(dst))
	return args
}

func ensureTrailingSlash(path string) string {
	if strings.HasSuffix(path, "/") {
		return path
	}
	return path + "/"
}
