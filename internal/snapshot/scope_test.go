// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScopeSignature_OrderIndependent(t *testing.T) {
	a := NewScopeSignature(map[string][]string{
		"Environment": {"Prod", "Dev"},
		"Role":        {"Web"},
	})
	b := NewScopeSignature(map[string][]string{
		"Role":        {"Web"},
		"Environment": {"Dev", "Prod"},
	})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, "Environment=Dev,Prod;Role=Web", a.String())
}

func TestNewScopeSignature_DropsEmptyDimensions(t *testing.T) {
	sig := NewScopeSignature(map[string][]string{
		"Environment": {},
		"Role":        {""},
		"Machine":     nil,
	})

	assert.True(t, sig.Empty())
	assert.Equal(t, "", sig.String())
}

func TestNewScopeSignature_DeduplicatesValues(t *testing.T) {
	sig := NewScopeSignature(map[string][]string{
		"Environment": {"Dev", "Dev", "Prod", "Dev"},
	})

	assert.Equal(t, "Environment=Dev,Prod", sig.String())
}

func TestNewScopeSignature_NilIsEmpty(t *testing.T) {
	sig := NewScopeSignature(nil)

	assert.True(t, sig.Empty())
	assert.True(t, sig.Equal(ScopeSignature{}))
}

func TestScopeSignature_Dimensions(t *testing.T) {
	sig := NewScopeSignature(map[string][]string{
		"Environment": {"Prod", "Dev"},
	})

	dims := sig.Dimensions()
	assert.Equal(t, map[string][]string{"Environment": {"Dev", "Prod"}}, dims)

	// A caller mutating the returned map must not affect the signature.
	dims["Environment"][0] = "Hacked"
	assert.Equal(t, "Environment=Dev,Prod", sig.String())
}

func TestVariableIdentity(t *testing.T) {
	unscoped := Variable{Name: "ConnectionString"}
	assert.Equal(t, "ConnectionString", unscoped.Identity())

	scoped := Variable{
		Name:  "ConnectionString",
		Scope: NewScopeSignature(map[string][]string{"Environment": {"Prod"}}),
	}
	assert.Equal(t, "ConnectionString{Environment=Prod}", scoped.Identity())

	// Same name, different scope: distinct identity keys.
	assert.NotEqual(t, unscoped.Key(), scoped.Key())
}

func TestFileEntrySameContent(t *testing.T) {
	a := FileEntry{Path: "app/web.config", Hash: "abc"}
	b := FileEntry{Path: "app/web.config", Hash: "abc", Content: "ignored when hashed"}
	assert.True(t, a.SameContent(b))

	// Hash missing on one side falls back to content comparison.
	c := FileEntry{Path: "app/web.config", Content: "x"}
	d := FileEntry{Path: "app/web.config", Hash: "abc", Content: "x"}
	assert.True(t, c.SameContent(d))
	d.Content = "y"
	assert.False(t, c.SameContent(d))
}
