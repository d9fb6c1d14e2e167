// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"github.com/relctl/relctl/internal/log"
)

// Pair holds the two sides of an entity whose identity appears in both sets
// but whose content differs.
type Pair[T any] struct {
	Old T
	New T
}

// Classification is the four-way, disjoint result of reconciling two sets.
// Added, Changed, and Unchanged preserve the relative order of the new set;
// Removed preserves the relative order of the old set. The same inputs always
// yield the same output.
type Classification[T any] struct {
	Added     []T
	Removed   []T
	Changed   []Pair[T]
	Unchanged []T
}

// Clean reports whether the reconciliation found no differences at all.
func (c Classification[T]) Clean() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Changed) == 0
}

// Reconcile classifies old against new. key extracts the identity key; equal
// decides content equality and is only called for entities sharing a key.
//
// Duplicate keys within one input set should not occur, but when they do the
// last occurrence wins and the duplicate is flagged; reconciliation never
// fails on them.
func Reconcile[T any, K comparable](old, new []T, key func(T) K, equal func(old, new T) bool) Classification[T] {
	oldByKey := index(old, key)
	newByKey := index(new, key)

	var out Classification[T]

	seen := make(map[K]bool, len(new))
	for _, e := range new {
		k := key(e)
		if seen[k] {
			continue
		}
		seen[k] = true

		newEntity := newByKey[k]
		oldEntity, inOld := oldByKey[k]
		switch {
		case !inOld:
			out.Added = append(out.Added, newEntity)
		case equal(oldEntity, newEntity):
			out.Unchanged = append(out.Unchanged, newEntity)
		default:
			out.Changed = append(out.Changed, Pair[T]{Old: oldEntity, New: newEntity})
		}
	}

	seen = make(map[K]bool, len(old))
	for _, e := range old {
		k := key(e)
		if seen[k] {
			continue
		}
		seen[k] = true

		if _, inNew := newByKey[k]; !inNew {
			out.Removed = append(out.Removed, oldByKey[k])
		}
	}

	return out
}

// index builds the key lookup for one side, last occurrence winning.
func index[T any, K comparable](entities []T, key func(T) K) map[K]T {
	byKey := make(map[K]T, len(entities))
	for _, e := range entities {
		k := key(e)
		if _, dup := byKey[k]; dup {
			log.Warnf("duplicate identity key %v within one snapshot, keeping the last occurrence", k)
		}
		byKey[k] = e
	}
	return byKey
}
