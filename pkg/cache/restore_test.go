// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache_test

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cicd-cache/dircache/pkg/cache"
	"github.com/cicd-cache/dircache/pkg/errors"
)

func TestRestoreValidationHappensBeforeIO(t *testing.T) {
	syncer := &fakeSyncer{}
	lister := &fakeLister{}
	c := newTestCache("/cache", syncer, cache.WithLister(lister))

	tests := []struct {
		name string
		req  cache.RestoreRequest
	}{
		{"key too long", cache.RestoreRequest{
			Paths:      []string{"/work/out"},
			PrimaryKey: strings.Repeat("k", cache.MaxKeyLength+1),
		}},
		{"key with comma", cache.RestoreRequest{
			Paths:      []string{"/work/out"},
			PrimaryKey: "a,b",
		}},
		{"restore key with comma", cache.RestoreRequest{
			Paths:       []string{"/work/out"},
			PrimaryKey:  "k",
			RestoreKeys: []string{"a,b"},
		}},
		{"empty paths", cache.RestoreRequest{
			PrimaryKey: "k",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Restore(context.Background(), tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.IsValidation(err) {
				t.Errorf("expected validation error type, got %v", err)
			}
			if syncer.calls() != 0 || lister.called != 0 {
				t.Error("validation failure must not trigger any I/O")
			}
		})
	}
}

func TestRestoreMissIsNotAnError(t *testing.T) {
	syncer := &fakeSyncer{}
	lister := &fakeLister{entries: []string{"other_entry"}}
	c := newTestCache("/cache", syncer, cache.WithLister(lister))

	result, err := c.Restore(context.Background(), cache.RestoreRequest{
		Paths:      []string{"/work/out"},
		PrimaryKey: "missing",
	})
	if err != nil {
		t.Fatalf("miss must not be an error, got %v", err)
	}
	if result.Hit {
		t.Error("expected a miss")
	}
	if len(syncer.mirrored) != 0 {
		t.Error("a miss must not mirror anything")
	}
}

func TestRestoreHitMirrorsSanitizedSubdir(t *testing.T) {
	syncer := &fakeSyncer{}
	lister := &fakeLister{entries: []string{"deps-v1"}}
	c := newTestCache("/cache", syncer, cache.WithLister(lister))

	result, err := c.Restore(context.Background(), cache.RestoreRequest{
		Paths:      []string{"/work/out"},
		PrimaryKey: "deps-v1",
	})
	if err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if !result.Hit {
		t.Fatal("expected a hit")
	}
	if result.MatchedKey != "deps-v1" {
		t.Errorf("expected matched key deps-v1, got %s", result.MatchedKey)
	}

	// Root is created idempotently before the listing.
	if len(syncer.ensured) != 1 || syncer.ensured[0] != "/cache" {
		t.Errorf("expected cache root creation, got %v", syncer.ensured)
	}

	wantSrc := filepath.Join("/cache", "deps-v1", "_work_out")
	if len(syncer.mirrored) != 1 {
		t.Fatalf("expected one mirror, got %d", len(syncer.mirrored))
	}
	if got := syncer.mirrored[0]; got[0] != wantSrc || got[1] != "/work/out" {
		t.Errorf("mirror = %v, want src %s dst /work/out", got, wantSrc)
	}
}

func TestRestoreFallbackKeyPrecedence(t *testing.T) {
	syncer := &fakeSyncer{}
	lister := &fakeLister{entries: []string{"a_x", "b_y"}}
	c := newTestCache("/cache", syncer, cache.WithLister(lister))

	result, err := c.Restore(context.Background(), cache.RestoreRequest{
		Paths:       []string{"/work/out"},
		PrimaryKey:  "unrelated",
		RestoreKeys: []string{"b", "a"},
	})
	if err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if !result.Hit || result.Entry != "b_y" || result.MatchedKey != "b" {
		t.Errorf("expected b_y via key b, got %+v", result)
	}
}

func TestRestoreListingFailurePropagates(t *testing.T) {
	listErr := stderrors.New("permission denied")
	syncer := &fakeSyncer{}
	lister := &fakeLister{err: listErr}
	c := newTestCache("/cache", syncer, cache.WithLister(lister))

	_, err := c.Restore(context.Background(), cache.RestoreRequest{
		Paths:      []string{"/work/out"},
		PrimaryKey: "k",
	})
	if err == nil {
		t.Fatal("expected listing error")
	}
	if !stderrors.Is(err, listErr) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
	if !errors.IsType(err, errors.ErrListing) {
		t.Errorf("expected listing error type, got %v", err)
	}
}

func TestRestoreMirrorFailurePropagates(t *testing.T) {
	mirrorErr := errors.SyncError("mirror failed", stderrors.New("exit code 23"))
	syncer := &fakeSyncer{mirrorErr: mirrorErr}
	lister := &fakeLister{entries: []string{"k"}}
	c := newTestCache("/cache", syncer, cache.WithLister(lister))

	_, err := c.Restore(context.Background(), cache.RestoreRequest{
		Paths:      []string{"/work/out"},
		PrimaryKey: "k",
	})
	if !stderrors.Is(err, mirrorErr) {
		t.Errorf("expected mirror error to propagate unmodified, got %v", err)
	}
}
