// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupTestConfig sets RELCTL_CFG_FILE to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	configPath := filepath.Join("testdata", testdataFile)
	absPath, err := filepath.Abs(configPath)
	assert.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("RELCTL_CFG_FILE", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		Config = Type{}
	}
}

func TestLoad(t *testing.T) {
	cleanup := setupTestConfig(t, "basic.yaml")
	defer cleanup()

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotEmpty(t, cfg.Source)
	assert.Equal(t, "https://octopus.example.com", cfg.Data["server"])
	assert.Equal(t, "Default", cfg.Data["space"])
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("RELCTL_CFG_FILE", "/nonexistent/path/relctl.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_CfgFileIsDirectory(t *testing.T) {
	t.Setenv("RELCTL_CFG_FILE", "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		namespace    string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{
			name:     "simple value",
			testFile: "basic.yaml",
			key:      "server",
			want:     "https://octopus.example.com",
		},
		{
			name:      "namespaced value preferred",
			testFile:  "namespaced.yaml",
			namespace: "rd",
			key:       "space",
			want:      "Ops",
		},
		{
			name:      "falls back to unnamespaced",
			testFile:  "namespaced.yaml",
			namespace: "rd",
			key:       "server",
			want:      "https://octopus.example.com",
		},
		{
			name:      "different namespace different value",
			testFile:  "namespaced.yaml",
			namespace: "vq",
			key:       "space",
			want:      "Sandbox",
		},
		{
			name:         "missing key with default",
			testFile:     "basic.yaml",
			key:          "missing",
			defaultValue: []string{"fallback"},
			want:         "fallback",
		},
		{
			name:     "missing key without default",
			testFile: "basic.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-string value",
			testFile: "mixed-types.yaml",
			key:      "version",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			_, _ = Load()
			Config.Namespace = tt.namespace

			got, err := GetString(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	cleanup := setupTestConfig(t, "namespaced.yaml")
	defer cleanup()

	_, _ = Load()
	Config.Namespace = "rd"

	got, err := GetInt("context")
	assert.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = GetInt("missing", 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = GetInt("missing")
	assert.Error(t, err)
}

func TestGetInt_FloatValue(t *testing.T) {
	cleanup := setupTestConfig(t, "mixed-types.yaml")
	defer cleanup()

	_, _ = Load()

	got, err := GetInt("timeout")
	assert.NoError(t, err)
	assert.Equal(t, 30, got)
}

func TestGetStringSlice(t *testing.T) {
	cleanup := setupTestConfig(t, "namespaced.yaml")
	defer cleanup()

	_, _ = Load()
	Config.Namespace = ""

	got, err := GetStringSlice("rd.defaults")
	assert.NoError(t, err)
	assert.Equal(t, []string{"--output text", "--setvars"}, got)

	got, err = GetStringSlice("missing", []string{"x"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"x"}, got)
}
