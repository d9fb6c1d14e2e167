// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compare

import "github.com/relctl/relctl/internal/differ"

// Comparison is the complete delta between two releases across the four
// dimensions. Field order and list order are deterministic: same inputs,
// same result.
type Comparison struct {
	OldRelease string        `json:"oldRelease" yaml:"oldRelease"`
	NewRelease string        `json:"newRelease" yaml:"newRelease"`
	Packages   PackageDelta  `json:"packages" yaml:"packages"`
	Steps      StepDelta     `json:"steps" yaml:"steps"`
	Variables  VariableDelta `json:"variables" yaml:"variables"`
}

// PackageDelta classifies the package references of the two releases.
type PackageDelta struct {
	Added     []PackageRef    `json:"added" yaml:"added"`
	Removed   []PackageRef    `json:"removed" yaml:"removed"`
	Changed   []PackageChange `json:"changed" yaml:"changed"`
	Unchanged []PackageRef    `json:"unchanged" yaml:"unchanged"`
}

// PackageRef names one package version on one side of the comparison.
type PackageRef struct {
	ID      string `json:"id" yaml:"id"`
	Version string `json:"version" yaml:"version"`
	Size    int64  `json:"size,omitempty" yaml:"size,omitempty"`
}

// PackageChange is a package present in both releases with different content.
// Files is always populated, even when every file is unchanged; an empty
// category means "compared, nothing there", which is not the same as "not
// compared".
type PackageChange struct {
	ID         string    `json:"id" yaml:"id"`
	OldVersion string    `json:"oldVersion" yaml:"oldVersion"`
	NewVersion string    `json:"newVersion" yaml:"newVersion"`
	Size       int64     `json:"size,omitempty" yaml:"size,omitempty"`
	Files      FileDelta `json:"files" yaml:"files"`
}

// FileDelta classifies the file listings of one package across two versions.
type FileDelta struct {
	Added     []string     `json:"added" yaml:"added"`
	Removed   []string     `json:"removed" yaml:"removed"`
	Changed   []FileChange `json:"changed" yaml:"changed"`
	Unchanged []string     `json:"unchanged" yaml:"unchanged"`
}

// FileChange is one changed file with its rendered diff.
type FileChange struct {
	Path string        `json:"path" yaml:"path"`
	Diff differ.Result `json:"diff" yaml:"diff"`
}

// StepDelta classifies the deployment steps and carries both per-step diffs
// and the diff across the whole canonicalized step sequence.
type StepDelta struct {
	Added     []string      `json:"added" yaml:"added"`
	Removed   []string      `json:"removed" yaml:"removed"`
	Changed   []StepChange  `json:"changed" yaml:"changed"`
	Unchanged []string      `json:"unchanged" yaml:"unchanged"`
	Diff      differ.Result `json:"diff" yaml:"diff"`
}

// StepChange is one changed step with its rendered body diff.
type StepChange struct {
	Name string        `json:"name" yaml:"name"`
	Diff differ.Result `json:"diff" yaml:"diff"`
}

// VariableDelta classifies the scoped variables, including the scope-changed
// category extracted from residual add/remove pairs.
type VariableDelta struct {
	Added        []VariableRef         `json:"added" yaml:"added"`
	Removed      []VariableRef         `json:"removed" yaml:"removed"`
	Changed      []VariableChange      `json:"changed" yaml:"changed"`
	ScopeChanged []VariableScopeChange `json:"scopeChanged" yaml:"scopeChanged"`
	Unchanged    []VariableRef         `json:"unchanged" yaml:"unchanged"`
}

// VariableRef names one variable identity on one side of the comparison.
type VariableRef struct {
	Name     string `json:"name" yaml:"name"`
	Scope    string `json:"scope,omitempty" yaml:"scope,omitempty"`
	Identity string `json:"identity" yaml:"identity"`
}

// VariableChange is one variable whose value changed under an identical
// identity. Delta is the serialized before/after document.
type VariableChange struct {
	Name     string `json:"name" yaml:"name"`
	Scope    string `json:"scope,omitempty" yaml:"scope,omitempty"`
	Identity string `json:"identity" yaml:"identity"`
	OldValue string `json:"oldValue" yaml:"oldValue"`
	NewValue string `json:"newValue" yaml:"newValue"`
	Delta    string `json:"delta,omitempty" yaml:"delta,omitempty"`
}

// VariableScopeChange is one variable name that was re-scoped between the
// releases. Delta is the serialized before/after scope document.
type VariableScopeChange struct {
	Name      string   `json:"name" yaml:"name"`
	OldScopes []string `json:"oldScopes" yaml:"oldScopes"`
	NewScopes []string `json:"newScopes" yaml:"newScopes"`
	Delta     string   `json:"delta,omitempty" yaml:"delta,omitempty"`
}
