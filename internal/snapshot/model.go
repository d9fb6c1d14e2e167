// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package snapshot

import "time"

// Release is one deployed, numbered version of a project. Packages and Steps
// keep the order the server reported them in; Variables keep variable-set
// order. None of the fields may be mutated after construction.
type Release struct {
	ID        string
	Version   string
	Assembled time.Time
	Packages  []Package
	Steps     []Step
	Variables []Variable
}

// Package is a named, versioned artifact referenced by a release. Identity is
// the package id (the logical reference name within the deployment process),
// never the archive filename.
type Package struct {
	ID       string
	Version  string
	FeedID   string
	BuiltIn  bool
	Size     int64
	Files    []FileEntry
}

// Key returns the identity key for cross-release package matching.
func (p Package) Key() string { return p.ID }

// FileEntry is one file inside an extracted package archive. Paths are
// normalized to forward slashes and compared case-sensitively.
type FileEntry struct {
	Path    string
	Hash    string
	Binary  bool
	Content string
}

// Key returns the identity key for cross-package file matching.
func (f FileEntry) Key() string { return f.Path }

// SameContent reports whether two entries with the same path carry the same
// bytes. Hashes are preferred; full content comparison is the fallback when a
// hash is missing on either side.
func (f FileEntry) SameContent(o FileEntry) bool {
	if f.Hash != "" && o.Hash != "" {
		return f.Hash == o.Hash
	}
	return f.Content == o.Content
}

// Step is one stage of the deployment process. Body is the canonicalized
// serialization of the step's action list, so formatting-only differences in
// the source payload never register as changes.
type Step struct {
	Name string
	Body string
}

// Key returns the identity key for cross-release step matching.
func (s Step) Key() string { return s.Name }

// SameContent reports whether two steps with the same name have the same
// canonical body.
func (s Step) SameContent(o Step) bool { return s.Body == o.Body }

// Variable is a named, scoped configuration value. A variable with the same
// name but a different scope signature is a different logical entity, not a
// changed variant of another.
type Variable struct {
	Name      string
	Scope     ScopeSignature
	Value     string
	Sensitive bool
}

// Key is the (name, scope-signature) identity pair rendered as one string.
type VariableKey struct {
	Name  string
	Scope string
}

// Key returns the identity key for cross-release variable matching.
func (v Variable) Key() VariableKey {
	return VariableKey{Name: v.Name, Scope: v.Scope.String()}
}

// Identity renders the variable identity for output lists: the bare name for
// unscoped variables, otherwise the name qualified by the canonical scope.
func (v Variable) Identity() string {
	if v.Scope.Empty() {
		return v.Name
	}
	return v.Name + "{" + v.Scope.String() + "}"
}

// SameContent reports whether two variables with the same identity carry the
// same value.
func (v Variable) SameContent(o Variable) bool { return v.Value == o.Value }
