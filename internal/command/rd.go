// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/relctl/relctl/internal/compare"
	"github.com/relctl/relctl/internal/config"
	"github.com/relctl/relctl/internal/differ"
	"github.com/relctl/relctl/internal/feed"
	"github.com/relctl/relctl/internal/log"
	"github.com/relctl/relctl/internal/meta"
	"github.com/relctl/relctl/internal/octopus"
	"github.com/relctl/relctl/internal/output"
	"github.com/relctl/relctl/internal/snapshot"
)

// rdCommandAction is the action handler for the "rd" subcommand. It resolves
// the two releases, materializes their snapshots, runs the comparison, and
// emits the report plus (optionally) the Octopus output variables.
func rdCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "rd"

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

	var oldRel, newRel octopus.Release
	if cmd.Bool("pick") {
		selected := differ.SelectReleases(releases)
		if len(selected) != 2 {
			log.Debug("picker dismissed, nothing to compare")
			return nil
		}
		oldRel, newRel = selected[0], selected[1]
	} else {
		oldRel, newRel, err = octopus.SelectPair(releases, cmd.String("old"), cmd.String("new"))
		if err != nil {
			return err
		}
	}

	// Packages outside the built-in feed cannot be downloaded, so a missing
	// built-in feed only degrades the comparison to reference level.
	builtInID, err := client.BuiltInFeedID(ctx, spaceID)
	if err != nil {
		log.WithError(err).Warnf("file-level comparison disabled")
	}

	f, err := feed.New(ctx, cmd.String("mirror"), client, spaceID)
	if err != nil {
		return err
	}

	oldSnap, err := buildSnapshot(ctx, client, spaceID, oldRel, builtInID, f)
	if err != nil {
		return err
	}
	newSnap, err := buildSnapshot(ctx, client, spaceID, newRel, builtInID, f)
	if err != nil {
		return err
	}

	comparison := compare.Releases(oldSnap, newSnap, compare.Options{
		Context: int(cmd.Int("context")),
	})

	if err := output.Spit(os.Stdout, comparison, cmd.String("output"), cmd.Bool("color")); err != nil {
		return err
	}

	if cmd.Bool("setvars") {
		output.Variables(os.Stdout, comparison)
	}

	return nil
}

// buildSnapshot fetches the process and variable snapshots frozen with a
// release and materializes the typed model, including package file listings
// from the feed.
func buildSnapshot(ctx context.Context, client *octopus.Client, spaceID string, rel octopus.Release, builtInID string, f feed.Feed) (snapshot.Release, error) {
	proc, err := client.DeploymentProcess(ctx, spaceID, rel.ProjectDeploymentProcessSnapshotID)
	if err != nil {
		return snapshot.Release{}, err
	}
	vars, err := client.VariableSet(ctx, spaceID, rel.ProjectVariableSetSnapshotID)
	if err != nil {
		return snapshot.Release{}, err
	}

	return snapshot.Build(ctx, snapshot.BuildInput{
		Release:       rel,
		Process:       proc,
		Variables:     vars,
		BuiltInFeedID: builtInID,
		Fetch:         f.Fetch,
	})
}

// rdCommandBuilder constructs the cli.Command for "rd", wiring metadata,
// flags, and action handlers.
// insideOctopus reports whether the process appears to be running as an
// Octopus step. Output variables default on only there; interactive runs get
// the report alone unless --setvars is passed.
func insideOctopus() bool {
	return os.Getenv("RELCTL_OCTOPUS") == "1"
}

func rdCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "rd",
		Usage:     "release diff",
		UsageText: "relctl rd [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "old",
				Usage: "the previous release to compare (default: second most recent)",
			},
			&cli.StringFlag{
				Name:  "new",
				Usage: "the new release to compare (default: most recent)",
			},
			&cli.BoolFlag{
				Name:  "pick",
				Usage: "pick the two releases interactively",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "mirror",
				Usage: "package mirror (s3://bucket/prefix or a directory) instead of the built-in feed",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("RELCTL_MIRROR"),
				),
			},
			&cli.IntFlag{
				Name:  "context",
				Usage: "context lines in unified diffs",
				Value: differ.DefaultContext,
			},
			&cli.BoolFlag{
				Name:  "setvars",
				Usage: "emit Octopus output variables",
				Value: insideOctopus(),
			},
			NewServerFlag("rd"),
			NewAPIKeyFlag(),
			NewSpaceFlag("rd"),
			NewProjectFlag("rd"),
		}, NewGlobalFlags()...),
		Action: rdCommandAction,
	}
}
