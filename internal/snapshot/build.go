// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/relctl/relctl/internal/log"
	"github.com/relctl/relctl/internal/octopus"
)

// ArchiveFetcher returns the raw archive bytes for one package version.
// Typically backed by a feed.Feed.
type ArchiveFetcher func(ctx context.Context, id, version string) ([]byte, error)

// BuildInput carries everything needed to materialize one release snapshot.
// Fetch may be nil, in which case packages carry no file listings (enough for
// release and variable queries, not for a content comparison).
type BuildInput struct {
	Release       octopus.Release
	Process       *octopus.DeploymentProcess
	Variables     *octopus.VariableSet
	BuiltInFeedID string
	Fetch         ArchiveFetcher
}

// Build maps the dynamic API documents of one release onto the typed,
// immutable snapshot model. All validation and defaulting happens here, so
// the comparison core never sees untyped data.
func Build(ctx context.Context, in BuildInput) (Release, error) {
	if in.Release.Version == "" {
		return Release{}, fmt.Errorf("release %s has no version", in.Release.ID)
	}
	if in.Process == nil {
		return Release{}, fmt.Errorf("release %s: missing deployment process snapshot", in.Release.Version)
	}
	if in.Variables == nil {
		return Release{}, fmt.Errorf("release %s: missing variable set snapshot", in.Release.Version)
	}

	rel := Release{
		ID:        in.Release.ID,
		Version:   in.Release.Version,
		Assembled: in.Release.Assembled,
	}

	for _, sp := range in.Release.SelectedPackages {
		if sp.PackageReferenceName == "" {
			return Release{}, fmt.Errorf("release %s: package reference without a name in step %q", rel.Version, sp.StepName)
		}

		pkg := Package{
			ID:      sp.PackageReferenceName,
			Version: sp.Version,
		}
		pkg.FeedID, pkg.BuiltIn = packageFeed(in.Process, sp, in.BuiltInFeedID)

		if pkg.BuiltIn && in.Fetch != nil {
			data, err := in.Fetch(ctx, pkg.ID, pkg.Version)
			if err != nil {
				return Release{}, fmt.Errorf("release %s: package %s: %w", rel.Version, pkg.ID, err)
			}
			pkg.Size = int64(len(data))
			files, err := ListArchive(data)
			if err != nil {
				// Treat an unreadable archive like binary content: the
				// package still participates in the comparison, just with no
				// file-level detail.
				log.WithError(err).Warnf("failed to extract %s.%s", pkg.ID, pkg.Version)
			}
			pkg.Files = files
		}

		rel.Packages = append(rel.Packages, pkg)
	}

	for i, step := range in.Process.Steps {
		if step.Name == "" {
			return Release{}, fmt.Errorf("release %s: step %d has no name", rel.Version, i)
		}
		body, err := canonicalBody(step.Actions)
		if err != nil {
			return Release{}, fmt.Errorf("release %s: step %q: %w", rel.Version, step.Name, err)
		}
		rel.Steps = append(rel.Steps, Step{Name: step.Name, Body: body})
	}

	for i, v := range in.Variables.Variables {
		if v.Name == "" {
			return Release{}, fmt.Errorf("release %s: variable %d has no name", rel.Version, i)
		}
		rel.Variables = append(rel.Variables, Variable{
			Name:      v.Name,
			Scope:     NewScopeSignature(v.Scope),
			Value:     v.Value,
			Sensitive: v.IsSensitive,
		})
	}

	return rel, nil
}

// packageFeed looks up the feed a selected package is sourced from by walking
// the snapshotted process to the action that references it. Action payloads
// are schemaless, so the walk drills the raw JSON.
func packageFeed(proc *octopus.DeploymentProcess, sp octopus.SelectedPackage, builtInID string) (string, bool) {
	for _, step := range proc.Steps {
		if step.Name != sp.StepName {
			continue
		}
		for _, action := range step.Actions {
			if gjson.GetBytes(action, "Name").String() != sp.ActionName {
				continue
			}
			feed := gjson.GetBytes(action, `Packages.#(Name=="`+sp.PackageReferenceName+`").FeedId`)
			if feed.Exists() {
				return feed.String(), builtInID != "" && feed.String() == builtInID
			}
		}
	}
	return "", false
}

// canonicalBody renders a step's action list in a stable form: each raw
// payload is decoded and re-marshaled with indentation, which sorts object
// keys and normalizes whitespace. Formatting-only differences in the source
// document disappear here.
func canonicalBody(actions []json.RawMessage) (string, error) {
	decoded := make([]any, 0, len(actions))
	for _, raw := range actions {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return "", fmt.Errorf("unparseable action payload: %w", err)
		}
		decoded = append(decoded, v)
	}
	out, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
