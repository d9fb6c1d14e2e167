// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relctl/relctl/internal/snapshot"
)

func scoped(name, value string, scope map[string][]string) snapshot.Variable {
	return snapshot.Variable{
		Name:  name,
		Scope: snapshot.NewScopeSignature(scope),
		Value: value,
	}
}

func TestValueDelta_PlainStrings(t *testing.T) {
	out := ValueDelta(
		scoped("Timeout", "30", nil),
		scoped("Timeout", "60", nil),
	)

	var d map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "Timeout", d["name"])
	assert.Equal(t, "30", d["old"])
	assert.Equal(t, "60", d["new"])
	assert.Nil(t, d["delta"])
	assert.Nil(t, d["scope"])
}

func TestValueDelta_ScopedVariable(t *testing.T) {
	scope := map[string][]string{"Environment": {"Prod"}}
	out := ValueDelta(
		scoped("ConnectionString", "a", scope),
		scoped("ConnectionString", "b", scope),
	)

	var d map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "Environment=Prod", d["scope"])
}

func TestValueDelta_JSONValuesGetSemanticDelta(t *testing.T) {
	out := ValueDelta(
		scoped("Settings", `{"retries": 3, "endpoint": "api.example.com"}`, nil),
		scoped("Settings", `{"retries": 5, "endpoint": "api.example.com"}`, nil),
	)

	var d map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	delta, _ := d["delta"].(string)
	require.NotEmpty(t, delta)
	assert.Contains(t, delta, "retries")
	// Unchanged keys are context, not part of the delta's +/- lines.
	assert.NotContains(t, delta, "- \"endpoint\"")
}

func TestValueDelta_NonJSONValuesSkipDelta(t *testing.T) {
	out := ValueDelta(
		scoped("Motd", "hello", nil),
		scoped("Motd", "goodbye", nil),
	)

	var d map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Nil(t, d["delta"])
}

func TestScopeDelta(t *testing.T) {
	old := []snapshot.Variable{
		scoped("LogLevel", "Info", map[string][]string{"Environment": {"Prod"}}),
	}
	new := []snapshot.Variable{
		scoped("LogLevel", "Info", map[string][]string{"Environment": {"Prod", "Staging"}}),
	}

	out := ScopeDelta("LogLevel", old, new)

	var d scopeDelta
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "LogLevel", d.Name)
	assert.Equal(t, []string{"Environment=Prod"}, d.Old)
	assert.Equal(t, []string{"Environment=Prod,Staging"}, d.New)
}
