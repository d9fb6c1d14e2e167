// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relctl/relctl/internal/snapshot"
)

func v(name, value string, scope map[string][]string) snapshot.Variable {
	return snapshot.Variable{
		Name:  name,
		Scope: snapshot.NewScopeSignature(scope),
		Value: value,
	}
}

func TestVariables_ValueChange(t *testing.T) {
	old := []snapshot.Variable{v("Timeout", "30", nil)}
	new := []snapshot.Variable{v("Timeout", "60", nil)}

	got := Variables(old, new)

	require.Len(t, got.Changed, 1)
	assert.Equal(t, "30", got.Changed[0].Old.Value)
	assert.Equal(t, "60", got.Changed[0].New.Value)
	assert.Empty(t, got.Added)
	assert.Empty(t, got.Removed)
	assert.Empty(t, got.ScopeChanged)
}

func TestVariables_SameNameDifferentScopeAreDistinct(t *testing.T) {
	prod := map[string][]string{"Environment": {"Prod"}}
	dev := map[string][]string{"Environment": {"Dev"}}

	old := []snapshot.Variable{
		v("ConnectionString", "prod-db", prod),
		v("ConnectionString", "dev-db", dev),
	}
	new := []snapshot.Variable{
		v("ConnectionString", "prod-db", prod),
		v("ConnectionString", "dev-db-2", dev),
	}

	got := Variables(old, new)

	require.Len(t, got.Changed, 1)
	assert.Equal(t, "dev-db-2", got.Changed[0].New.Value)
	require.Len(t, got.Unchanged, 1)
	assert.Equal(t, "prod-db", got.Unchanged[0].Value)
	assert.Empty(t, got.ScopeChanged)
}

func TestVariables_ScopeChanged(t *testing.T) {
	old := []snapshot.Variable{
		v("LogLevel", "Info", map[string][]string{"Environment": {"Prod"}}),
	}
	new := []snapshot.Variable{
		v("LogLevel", "Info", map[string][]string{"Environment": {"Prod", "Staging"}}),
	}

	got := Variables(old, new)

	// No common scope signature, but the name exists on both sides: reported
	// as re-scoped, not as an unrelated add/remove pair.
	assert.Empty(t, got.Added)
	assert.Empty(t, got.Removed)
	require.Len(t, got.ScopeChanged, 1)
	sc := got.ScopeChanged[0]
	assert.Equal(t, "LogLevel", sc.Name)
	require.Len(t, sc.Old, 1)
	require.Len(t, sc.New, 1)
	assert.Equal(t, "Environment=Prod", sc.Old[0].Scope.String())
	assert.Equal(t, "Environment=Prod,Staging", sc.New[0].Scope.String())
}

func TestVariables_ScopeChangeGroupsAllSignatures(t *testing.T) {
	old := []snapshot.Variable{
		v("Feature", "on", map[string][]string{"Environment": {"Dev"}}),
		v("Feature", "off", map[string][]string{"Environment": {"Prod"}}),
	}
	new := []snapshot.Variable{
		v("Feature", "on", map[string][]string{"Role": {"Web"}}),
	}

	got := Variables(old, new)

	require.Len(t, got.ScopeChanged, 1)
	sc := got.ScopeChanged[0]
	assert.Len(t, sc.Old, 2)
	assert.Len(t, sc.New, 1)
	assert.Empty(t, got.Added)
	assert.Empty(t, got.Removed)
}

func TestVariables_PlainAddRemoveUnaffected(t *testing.T) {
	old := []snapshot.Variable{
		v("Obsolete", "x", nil),
		v("Kept", "y", nil),
	}
	new := []snapshot.Variable{
		v("Kept", "y", nil),
		v("Fresh", "z", map[string][]string{"Environment": {"Prod"}}),
	}

	got := Variables(old, new)

	require.Len(t, got.Added, 1)
	assert.Equal(t, "Fresh", got.Added[0].Name)
	require.Len(t, got.Removed, 1)
	assert.Equal(t, "Obsolete", got.Removed[0].Name)
	require.Len(t, got.Unchanged, 1)
	assert.Equal(t, "Kept", got.Unchanged[0].Name)
	assert.Empty(t, got.ScopeChanged)
}

func TestVariables_UnscopedVsScopedSameName(t *testing.T) {
	// An unscoped variable gaining a scope is a re-scope of the same name.
	old := []snapshot.Variable{v("Timeout", "30", nil)}
	new := []snapshot.Variable{
		v("Timeout", "30", map[string][]string{"Environment": {"Prod"}}),
	}

	got := Variables(old, new)

	assert.Empty(t, got.Added)
	assert.Empty(t, got.Removed)
	require.Len(t, got.ScopeChanged, 1)
	assert.Equal(t, "Timeout", got.ScopeChanged[0].Name)
}
