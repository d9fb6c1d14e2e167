// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"strings"

	"github.com/relctl/relctl/internal/differ"
	"github.com/relctl/relctl/internal/log"
	"github.com/relctl/relctl/internal/reconcile"
	"github.com/relctl/relctl/internal/snapshot"
)

// Options tunes the comparison. The zero value is usable.
type Options struct {
	// Context is the number of context lines in unified diffs.
	Context int
}

// Releases computes the full delta between two release snapshots. The
// computation is pure and in-memory: both snapshots are only read, and the
// same pair always produces the same Comparison.
func Releases(old, new snapshot.Release, opts Options) Comparison {
	log.Debugf("comparing release %s against %s", new.Version, old.Version)

	return Comparison{
		OldRelease: old.Version,
		NewRelease: new.Version,
		Packages:   packages(old, new, opts),
		Steps:      steps(old, new, opts),
		Variables:  variables(old, new),
	}
}

func packages(old, new snapshot.Release, opts Options) PackageDelta {
	c := reconcile.Reconcile(old.Packages, new.Packages,
		snapshot.Package.Key,
		func(o, n snapshot.Package) bool {
			return o.Version == n.Version && files(o, n, opts).clean
		},
	)

	delta := PackageDelta{
		Added:     packageRefs(c.Added),
		Removed:   packageRefs(c.Removed),
		Changed:   make([]PackageChange, 0, len(c.Changed)),
		Unchanged: packageRefs(c.Unchanged),
	}
	for _, pair := range c.Changed {
		f := files(pair.Old, pair.New, opts)
		delta.Changed = append(delta.Changed, PackageChange{
			ID:         pair.New.ID,
			OldVersion: pair.Old.Version,
			NewVersion: pair.New.Version,
			Size:       pair.New.Size,
			Files:      f.delta,
		})
	}
	return delta
}

// fileResult carries one nested file reconciliation. clean is tracked
// separately so package content equality can reuse the reconciliation
// without rendering diffs twice.
type fileResult struct {
	delta FileDelta
	clean bool
}

func files(old, new snapshot.Package, opts Options) fileResult {
	c := reconcile.Reconcile(old.Files, new.Files,
		snapshot.FileEntry.Key,
		snapshot.FileEntry.SameContent,
	)

	delta := FileDelta{
		Added:     paths(c.Added),
		Removed:   paths(c.Removed),
		Changed:   make([]FileChange, 0, len(c.Changed)),
		Unchanged: paths(c.Unchanged),
	}
	for _, pair := range c.Changed {
		delta.Changed = append(delta.Changed, FileChange{
			Path: pair.New.Path,
			Diff: differ.File(pair.Old, pair.New, opts.Context),
		})
	}
	return fileResult{delta: delta, clean: c.Clean()}
}

func steps(old, new snapshot.Release, opts Options) StepDelta {
	c := reconcile.Reconcile(old.Steps, new.Steps,
		snapshot.Step.Key,
		snapshot.Step.SameContent,
	)

	delta := StepDelta{
		Added:     stepNames(c.Added),
		Removed:   stepNames(c.Removed),
		Changed:   make([]StepChange, 0, len(c.Changed)),
		Unchanged: stepNames(c.Unchanged),
		Diff: differ.Text(
			"Steps@"+old.Version, "Steps@"+new.Version,
			stepsDocument(old.Steps), stepsDocument(new.Steps),
			opts.Context,
		),
	}
	for _, pair := range c.Changed {
		delta.Changed = append(delta.Changed, StepChange{
			Name: pair.New.Name,
			Diff: differ.Step(pair.Old, pair.New, opts.Context),
		})
	}
	return delta
}

// stepsDocument renders the whole step sequence as one canonical text so the
// sequence-level diff reflects reordering as well as body edits. Because the
// bodies are already canonical, a formatting-only change upstream leaves the
// document untouched.
func stepsDocument(steps []snapshot.Step) string {
	var b strings.Builder
	for _, s := range steps {
		b.WriteString("# ")
		b.WriteString(s.Name)
		b.WriteString("\n")
		b.WriteString(s.Body)
		b.WriteString("\n")
	}
	return b.String()
}

func variables(old, new snapshot.Release) VariableDelta {
	c := reconcile.Variables(old.Variables, new.Variables)

	delta := VariableDelta{
		Added:        variableRefs(c.Added),
		Removed:      variableRefs(c.Removed),
		Changed:      make([]VariableChange, 0, len(c.Changed)),
		ScopeChanged: make([]VariableScopeChange, 0, len(c.ScopeChanged)),
		Unchanged:    variableRefs(c.Unchanged),
	}
	for _, pair := range c.Changed {
		delta.Changed = append(delta.Changed, VariableChange{
			Name:     pair.New.Name,
			Scope:    pair.New.Scope.String(),
			Identity: pair.New.Identity(),
			OldValue: pair.Old.Value,
			NewValue: pair.New.Value,
			Delta:    differ.ValueDelta(pair.Old, pair.New),
		})
	}
	for _, sc := range c.ScopeChanged {
		delta.ScopeChanged = append(delta.ScopeChanged, VariableScopeChange{
			Name:      sc.Name,
			OldScopes: scopeStrings(sc.Old),
			NewScopes: scopeStrings(sc.New),
			Delta:     differ.ScopeDelta(sc.Name, sc.Old, sc.New),
		})
	}
	return delta
}

func packageRefs(pkgs []snapshot.Package) []PackageRef {
	out := make([]PackageRef, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, PackageRef{ID: p.ID, Version: p.Version, Size: p.Size})
	}
	return out
}

func paths(entries []snapshot.FileEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Path)
	}
	return out
}

func stepNames(steps []snapshot.Step) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.Name)
	}
	return out
}

func variableRefs(vars []snapshot.Variable) []VariableRef {
	out := make([]VariableRef, 0, len(vars))
	for _, v := range vars {
		out = append(out, VariableRef{Name: v.Name, Scope: v.Scope.String(), Identity: v.Identity()})
	}
	return out
}

func scopeStrings(vars []snapshot.Variable) []string {
	out := make([]string, 0, len(vars))
	for _, v := range vars {
		out = append(out, v.Scope.String())
	}
	return out
}
