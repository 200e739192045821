// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache_test

import (
	"testing"

	"github.com/cicd-cache/dircache/pkg/cache"
)

func TestLocateKeyOrderPrecedence(t *testing.T) {
	// Key order dominates entry listing order: "b" is tried against every
	// entry before "a" is considered at all.
	match, ok := cache.Locate([]string{"b", "a"}, []string{"a_x", "b_y"})
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Entry != "b_y" {
		t.Errorf("expected entry b_y, got %s", match.Entry)
	}
	if match.Key != "b" {
		t.Errorf("expected key b, got %s", match.Key)
	}
}

func TestLocateListingOrderWithinKey(t *testing.T) {
	match, ok := cache.Locate([]string{"k"}, []string{"k_first", "k_second"})
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Entry != "k_first" {
		t.Errorf("expected first listed entry to win, got %s", match.Entry)
	}
}

func TestLocateMiss(t *testing.T) {
	if _, ok := cache.Locate([]string{"missing"}, []string{"a_x", "b_y"}); ok {
		t.Error("expected a miss")
	}
}

func TestLocateEmptyEntries(t *testing.T) {
	if _, ok := cache.Locate([]string{"k"}, nil); ok {
		t.Error("expected a miss for empty entries")
	}
}

// Substring containment is the matching policy: an entry name that merely
// contains the key anywhere matches, including across unrelated keys. This
// is compatibility behavior callers depend on, not a bug.
func TestLocateSubstringContainment(t *testing.T) {
	match, ok := cache.Locate([]string{"deps-v1"}, []string{"deps-v1_work_out"})
	if !ok || match.Entry != "deps-v1_work_out" {
		t.Fatalf("expected entry embedding the key to match, got %+v ok=%v", match, ok)
	}

	// False positive: "v1" is a substring of an unrelated entry.
	match, ok = cache.Locate([]string{"v1"}, []string{"deps-v12_work_out"})
	if !ok || match.Entry != "deps-v12_work_out" {
		t.Fatalf("expected permissive substring match, got %+v ok=%v", match, ok)
	}
}
