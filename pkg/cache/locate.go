// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache

import "strings"

// Match is a successful lookup: the entry name that matched and the
// candidate key it matched on.
type Match struct {
	Entry string
	Key   string
}

// Locate picks the best existing entry for an ordered candidate key list.
//
// Matching policy: substring containment. A key matches any entry whose
// name contains it anywhere, which lets entry names embed both the key and
// a path fragment while staying matchable by key alone. The policy is
// deliberately permissive; a key that happens to be a substring of an
// unrelated entry name will match it, and callers depend on that.
//
// Precedence is two-level: candidate key order dominates, then entry
// listing order within one key. The second return value is false when no
// key matches any entry; a miss is a normal outcome, not an error.
func Locate(candidateKeys, existingEntries []string) (Match, bool) {
	for _, key := range candidateKeys {
		for _, entry := range existingEntries {
			if strings.Contains(entry, key) {
				return Match{Entry: entry, Key: key}, true
			}
		}
	}
	return Match{}, false
}
