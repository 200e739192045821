// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache

import (
	"fmt"
	"strings"

	"github.com/cicd-cache/dircache/pkg/errors"
)

// MaxKeyLength is the maximum allowed length of a cache key.
const MaxKeyLength = 512

// fillerRune replaces every non-alphanumeric character when a path is
// sanitized into an entry-safe name.
const fillerRune = '_'

// ValidateKey rejects malformed cache keys before any I/O happens. Keys
// travel as comma-joined lists on the CLI surface, so commas are
// structurally forbidden.
func ValidateKey(key string) error {
	if len(key) > MaxKeyLength {
		return errors.ValidationError(
			fmt.Sprintf("key exceeds maximum length of %d characters", MaxKeyLength), nil)
	}
	if strings.Contains(key, ",") {
		return errors.ValidationError("key must not contain a comma", nil)
	}
	return nil
}

// ValidatePaths rejects an empty or absent path list before any I/O
// happens. Only the first path takes part in synchronization; the rest are
// validated for shape only.
func ValidatePaths(paths []string) error {
	if len(paths) == 0 {
		return errors.ValidationError("at least one path is required", nil)
	}
	for i, p := range paths {
		if p == "" {
			return errors.ValidationError(fmt.Sprintf("paths[%d] is empty", i), nil)
		}
	}
	return nil
}

// SanitizePath maps a path string to an entry-safe name by replacing every
// character that is not an ASCII letter or digit with a filler. The mapping
// is not injective: distinct paths can collide to the same name.
func SanitizePath(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	for _, r := range path {
		if isAlphanumeric(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(fillerRune)
	}
	return b.String()
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
