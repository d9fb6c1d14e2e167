// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"github.com/relctl/relctl/internal/snapshot"
)

// ScopeChange groups the add/remove pairs of one variable name that was
// re-scoped between releases: the name exists on both sides but under no
// common scope signature. Old and New keep the order the variables had in
// their respective releases.
type ScopeChange struct {
	Name string
	Old  []snapshot.Variable
	New  []snapshot.Variable
}

// VariableClassification extends the generic classification with the
// scope-changed category. A name never appears in both ScopeChanged and the
// Added/Removed lists.
type VariableClassification struct {
	Classification[snapshot.Variable]
	ScopeChanged []ScopeChange
}

// Variables reconciles two variable sets. Identity is the (name, scope
// signature) pair and content equality is value equality. A second pass then
// folds residual add/remove pairs that share a bare name into ScopeChanged,
// so an intentional re-scope is not misreported as one variable vanishing and
// an unrelated one appearing.
func Variables(old, new []snapshot.Variable) VariableClassification {
	base := Reconcile(old, new,
		snapshot.Variable.Key,
		snapshot.Variable.SameContent,
	)

	result := VariableClassification{Classification: base}

	addedNames := namesOf(base.Added)
	removedNames := namesOf(base.Removed)

	var added, removed []snapshot.Variable
	emitted := map[string]bool{}

	for _, v := range base.Added {
		if !removedNames[v.Name] {
			added = append(added, v)
			continue
		}
		if emitted[v.Name] {
			continue
		}
		emitted[v.Name] = true
		result.ScopeChanged = append(result.ScopeChanged, ScopeChange{
			Name: v.Name,
			Old:  withName(base.Removed, v.Name),
			New:  withName(base.Added, v.Name),
		})
	}
	for _, v := range base.Removed {
		if !addedNames[v.Name] {
			removed = append(removed, v)
		}
	}

	result.Added = added
	result.Removed = removed
	return result
}

func namesOf(vars []snapshot.Variable) map[string]bool {
	names := make(map[string]bool, len(vars))
	for _, v := range vars {
		names[v.Name] = true
	}
	return names
}

func withName(vars []snapshot.Variable, name string) []snapshot.Variable {
	var out []snapshot.Variable
	for _, v := range vars {
		if v.Name == name {
			out = append(out, v)
		}
	}
	return out
}
