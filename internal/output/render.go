// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"io"
	"strings"

	"github.com/relctl/relctl/internal/compare"
	"github.com/relctl/relctl/internal/differ"
)

// binarySentinel stands in for a diff body when content on either side could
// not be decoded as text. The entity still counts as changed.
const binarySentinel = "(binary content changed, no line diff available)"

// Variables emits the full output-variable rendering of a comparison. Every
// category key is always written; an empty category renders as an empty
// string, never an absent key, so consumers can distinguish "nothing changed"
// from "not compared".
func Variables(w io.Writer, c compare.Comparison) {
	SetVariable(w, "Packages.Added", strings.Join(packageIDs(c.Packages.Added), ","))
	SetVariable(w, "Packages.Removed", strings.Join(packageIDs(c.Packages.Removed), ","))

	for _, pkg := range c.Packages.Changed {
		SetVariable(w, "Files["+pkg.ID+"].Added", strings.Join(pkg.Files.Added, ","))
		SetVariable(w, "Files["+pkg.ID+"].Removed", strings.Join(pkg.Files.Removed, ","))
		SetVariable(w, "Files["+pkg.ID+"].Changed", strings.Join(changedPaths(pkg.Files.Changed), ","))
		for _, f := range pkg.Files.Changed {
			SetVariable(w, "FileDiff["+pkg.ID+"].Files["+f.Path+"].Diff", diffBody(f.Diff))
		}
	}

	SetVariable(w, "Variables.Added", strings.Join(identities(c.Variables.Added), ","))
	SetVariable(w, "Variables.Removed", strings.Join(identities(c.Variables.Removed), ","))
	SetVariable(w, "Variables.Changed", strings.Join(changedIdentities(c.Variables.Changed), ","))
	SetVariable(w, "Variables.ScopeChanged", strings.Join(scopeChangedNames(c.Variables.ScopeChanged), ","))

	for _, v := range c.Variables.Changed {
		SetVariable(w, "Variables["+v.Identity+"].Changed", v.Delta)
	}
	for _, v := range c.Variables.ScopeChanged {
		SetVariable(w, "Variables["+v.Name+"].ScopeChanged", v.Delta)
	}

	SetVariable(w, "Steps.Diff", diffBody(c.Steps.Diff))
}

// diffBody renders a diff result as output-variable content, substituting the
// binary sentinel where no line diff exists.
func diffBody(d differ.Result) string {
	if d.Binary {
		return binarySentinel
	}
	return d.Text
}

func packageIDs(refs []compare.PackageRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.ID)
	}
	return out
}

func changedPaths(changes []compare.FileChange) []string {
	out := make([]string, 0, len(changes))
	for _, c := range changes {
		out = append(out, c.Path)
	}
	return out
}

func identities(refs []compare.VariableRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Identity)
	}
	return out
}

func changedIdentities(changes []compare.VariableChange) []string {
	out := make([]string, 0, len(changes))
	for _, c := range changes {
		out = append(out, c.Identity)
	}
	return out
}

func scopeChangedNames(changes []compare.VariableScopeChange) []string {
	out := make([]string, 0, len(changes))
	for _, c := range changes {
		out = append(out, c.Name)
	}
	return out
}
