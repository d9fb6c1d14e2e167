// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	yaml "gopkg.in/yaml.v2"

	"github.com/relctl/relctl/internal/config"
	"github.com/relctl/relctl/internal/filters"
	"github.com/relctl/relctl/internal/log"
	"github.com/relctl/relctl/internal/meta"
	"github.com/relctl/relctl/internal/octopus"
	"github.com/relctl/relctl/internal/snapshot"
)

// variableRow is one line of vq output. Scope is rendered in canonical form
// so identical scopes always compare and sort the same way.
type variableRow struct {
	Name      string `json:"name" yaml:"name"`
	Scope     string `json:"scope" yaml:"scope"`
	Value     string `json:"value" yaml:"value"`
	Sensitive bool   `json:"sensitive" yaml:"sensitive"`
}

// vqCommandAction is the action handler for the "vq" subcommand. It dumps the
// variable set frozen with one release, canonical scopes included, and emits
// results per common flags.
func vqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "vq"

	client, err := NewClientFromFlags(cmd)
	if err != nil {
		return err
	}

	spaceID, projectID, err := ResolveSpaceProject(ctx, client, cmd)
	if err != nil {
		return err
	}

	releases, err := client.Releases(ctx, spaceID, projectID)
	if err != nil {
		return err
	}

	rel, err := pickRelease(releases, cmd.String("release"))
	if err != nil {
		return err
	}

	vars, err := client.VariableSet(ctx, spaceID, rel.ProjectVariableSetSnapshotID)
	if err != nil {
		return err
	}

	rows := make([]variableRow, 0, len(vars.Variables))
	for _, v := range vars.Variables {
		value := v.Value
		if v.IsSensitive {
			value = "********"
		}
		rows = append(rows, variableRow{
			Name:      v.Name,
			Scope:     snapshot.NewScopeSignature(v.Scope).String(),
			Value:     value,
			Sensitive: v.IsSensitive,
		})
	}
	rows = filters.Keep(rows, cmd.String("filter"))

	switch cmd.String("output") {
	case "", "text":
		fmt.Fprintf(os.Stdout, "Variables of release %s:\n", rel.Version)
		for _, row := range rows {
			scope := row.Scope
			if scope == "" {
				scope = "(unscoped)"
			}
			fmt.Fprintf(os.Stdout, "%s {%s} = %s\n", row.Name, scope, row.Value)
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return err
		}
	case "yaml":
		buf, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, string(buf))
	default:
		return fmt.Errorf("unsupported output format %q", cmd.String("output"))
	}

	return nil
}

// pickRelease selects the release matching version, or the most recent one
// when version is empty.
func pickRelease(releases []octopus.Release, version string) (octopus.Release, error) {
	if len(releases) == 0 {
		return octopus.Release{}, fmt.Errorf("the project has no releases")
	}
	if version == "" {
		return releases[0], nil
	}
	for _, r := range releases {
		if r.Version == version {
			return r, nil
		}
	}
	return octopus.Release{}, fmt.Errorf("the release called %q could not be found", version)
}

// vqCommandBuilder constructs the cli.Command for "vq", wiring metadata,
// flags, and action handlers.
func vqCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "vq",
		Usage:     "variable query",
		UsageText: "relctl vq [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "release",
				Aliases: []string{"r"},
				Usage:   "release version to inspect (default: most recent)",
			},
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "filters to apply to the results",
			},
			NewServerFlag("vq"),
			NewAPIKeyFlag(),
			NewSpaceFlag("vq"),
			NewProjectFlag("vq"),
		}, NewGlobalFlags()...),
		Action: vqCommandAction,
	}
}
