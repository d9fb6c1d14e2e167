// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entity struct {
	id   string
	body string
}

func key(e entity) string               { return e.id }
func equal(old, new entity) bool        { return old.body == new.body }
func e(id, body string) entity          { return entity{id: id, body: body} }
func ids(entities []entity) (out []string) {
	for _, e := range entities {
		out = append(out, e.id)
	}
	return out
}

func TestReconcile_Partition(t *testing.T) {
	old := []entity{e("a", "1"), e("b", "1"), e("c", "1")}
	new := []entity{e("b", "2"), e("c", "1"), e("d", "1")}

	got := Reconcile(old, new, key, equal)

	assert.Equal(t, []string{"d"}, ids(got.Added))
	assert.Equal(t, []string{"a"}, ids(got.Removed))
	require.Len(t, got.Changed, 1)
	assert.Equal(t, "b", got.Changed[0].Old.id)
	assert.Equal(t, "1", got.Changed[0].Old.body)
	assert.Equal(t, "2", got.Changed[0].New.body)
	assert.Equal(t, []string{"c"}, ids(got.Unchanged))
	assert.False(t, got.Clean())
}

func TestReconcile_IdenticalSetsAreClean(t *testing.T) {
	set := []entity{e("a", "1"), e("b", "2")}

	got := Reconcile(set, set, key, equal)

	assert.Empty(t, got.Added)
	assert.Empty(t, got.Removed)
	assert.Empty(t, got.Changed)
	assert.Equal(t, []string{"a", "b"}, ids(got.Unchanged))
	assert.True(t, got.Clean())
}

func TestReconcile_EmptySides(t *testing.T) {
	set := []entity{e("a", "1")}

	got := Reconcile(nil, set, key, equal)
	assert.Equal(t, []string{"a"}, ids(got.Added))
	assert.Empty(t, got.Removed)

	got = Reconcile(set, nil, key, equal)
	assert.Empty(t, got.Added)
	assert.Equal(t, []string{"a"}, ids(got.Removed))

	got = Reconcile(nil, nil, key, equal)
	assert.True(t, got.Clean())
	assert.Empty(t, got.Unchanged)
}

func TestReconcile_Ordering(t *testing.T) {
	// Added/Changed/Unchanged follow new-set order, Removed follows old-set
	// order, regardless of how the sides interleave.
	old := []entity{e("z", "1"), e("m", "1"), e("a", "1"), e("q", "1")}
	new := []entity{e("q", "2"), e("n", "1"), e("a", "1"), e("b", "1")}

	got := Reconcile(old, new, key, equal)

	assert.Equal(t, []string{"n", "b"}, ids(got.Added))
	assert.Equal(t, []string{"z", "m"}, ids(got.Removed))
	require.Len(t, got.Changed, 1)
	assert.Equal(t, "q", got.Changed[0].New.id)
	assert.Equal(t, []string{"a"}, ids(got.Unchanged))
}

func TestReconcile_Symmetry(t *testing.T) {
	// Reversing the sides swaps Added and Removed; the Changed and Unchanged
	// identity sets are invariant.
	old := []entity{e("a", "1"), e("b", "1"), e("c", "1"), e("d", "1")}
	new := []entity{e("b", "2"), e("c", "1"), e("x", "1")}

	fwd := Reconcile(old, new, key, equal)
	rev := Reconcile(new, old, key, equal)

	assert.ElementsMatch(t, ids(fwd.Added), ids(rev.Removed))
	assert.ElementsMatch(t, ids(fwd.Removed), ids(rev.Added))
	assert.ElementsMatch(t, changedIDs(fwd.Changed), changedIDs(rev.Changed))
	assert.ElementsMatch(t, ids(fwd.Unchanged), ids(rev.Unchanged))
}

func changedIDs(pairs []Pair[entity]) (out []string) {
	for _, p := range pairs {
		out = append(out, p.New.id)
	}
	return out
}

func TestReconcile_Deterministic(t *testing.T) {
	old := []entity{e("a", "1"), e("b", "1"), e("c", "2")}
	new := []entity{e("c", "3"), e("d", "1"), e("a", "1")}

	first := Reconcile(old, new, key, equal)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Reconcile(old, new, key, equal))
	}
}

func TestReconcile_DuplicateKeysLastWins(t *testing.T) {
	old := []entity{e("a", "1")}
	new := []entity{e("a", "1"), e("a", "2")}

	got := Reconcile(old, new, key, equal)

	// The duplicate collapses to its last occurrence, so "a" counts once, as
	// changed from "1" to "2".
	assert.Empty(t, got.Added)
	assert.Empty(t, got.Removed)
	assert.Empty(t, got.Unchanged)
	require.Len(t, got.Changed, 1)
	assert.Equal(t, "2", got.Changed[0].New.body)
}

func TestReconcile_DuplicateKeysInOldSet(t *testing.T) {
	old := []entity{e("a", "1"), e("a", "2"), e("b", "1")}
	new := []entity{e("a", "2")}

	got := Reconcile(old, new, key, equal)

	assert.Equal(t, []string{"a"}, ids(got.Unchanged))
	assert.Equal(t, []string{"b"}, ids(got.Removed))
}
