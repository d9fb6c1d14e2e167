// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/relctl/relctl/internal/snapshot"
)

// DefaultContext is the number of context lines around each hunk.
const DefaultContext = 3

// Result is one computed diff. Binary marks content that could not be
// decoded as text: the entities still count as changed, there is just no
// line-level rendering for them.
type Result struct {
	Binary bool   `json:"binary,omitempty" yaml:"binary,omitempty"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Empty reports whether the diff found no differences.
func (r Result) Empty() bool { return !r.Binary && r.Text == "" }

// Text produces a unified line diff between two texts. Identical inputs
// yield an empty result.
func Text(oldLabel, newLabel, old, new string, context int) Result {
	if old == new {
		return Result{}
	}
	if context <= 0 {
		context = DefaultContext
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(old),
		B:        difflib.SplitLines(new),
		FromFile: oldLabel,
		ToFile:   newLabel,
		Context:  context,
	}
	// GetUnifiedDiffString only errors on writer failure, which a string
	// builder never produces.
	text, _ := difflib.GetUnifiedDiffString(ud)
	return Result{Text: text}
}

// File diffs one changed file across two package versions. Binary content on
// either side degrades to the binary sentinel rather than failing.
func File(old, new snapshot.FileEntry, context int) Result {
	if old.Binary || new.Binary {
		return Result{Binary: true}
	}
	return Text(old.Path, new.Path, old.Content, new.Content, context)
}

// Step diffs one changed step's canonical body. Purely for reporting; the
// changed classification itself already used canonical-body equality.
func Step(old, new snapshot.Step, context int) Result {
	return Text(old.Name, new.Name, old.Body, new.Body, context)
}
