// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	yaml "gopkg.in/yaml.v2"

	"github.com/relctl/relctl/internal/config"
	"github.com/relctl/relctl/internal/filters"
	"github.com/relctl/relctl/internal/log"
	"github.com/relctl/relctl/internal/meta"
)

// releaseRow is one line of rq output.
type releaseRow struct {
	Version   string `json:"version" yaml:"version"`
	Assembled string `json:"assembled" yaml:"assembled"`
	ID        string `json:"id" yaml:"id"`
}

// rqCommandAction is the action handler for the "rq" subcommand. It lists the
// releases of one project, newest first, and emits them per common flags.
func rqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "rq"

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

	limit := int(cmd.Int("limit"))
	if limit > 0 && limit < len(releases) {
		releases = releases[:limit]
	}

	rows := make([]releaseRow, 0, len(releases))
	for _, r := range releases {
		rows = append(rows, releaseRow{
			Version:   r.Version,
			Assembled: humanize.Time(r.Assembled),
			ID:        r.ID,
		})
	}
	rows = filters.Keep(rows, cmd.String("filter"))

	switch cmd.String("output") {
	case "", "text":
		for _, row := range rows {
			fmt.Fprintf(os.Stdout, "%-20s %-20s %s\n", row.Version, row.Assembled, row.ID)
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

// rqCommandBuilder constructs the cli.Command for "rq", wiring metadata,
// flags, and action handlers.
func rqCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "rq",
		Usage:     "release query",
		UsageText: "relctl rq [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "limit releases returned",
				Value:   99999,
			},
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "filters to apply to the results",
			},
			NewServerFlag("rq"),
			NewAPIKeyFlag(),
			NewSpaceFlag("rq"),
			NewProjectFlag("rq"),
		}, NewGlobalFlags()...),
		Action: rqCommandAction,
	}
}
