// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/relctl/relctl/internal/log"
	"github.com/relctl/relctl/internal/meta"
	"github.com/relctl/relctl/internal/octopus"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewClientFromFlags builds the API client from the resolved server and
// api-key flags, prompting for the key when neither flag nor environment
// provided one and stdin is a terminal.
func NewClientFromFlags(cmd *cli.Command) (*octopus.Client, error) {
	server := cmd.String("server")
	if server == "" {
		return nil, fmt.Errorf("no Octopus server URL provided (--server, RELCTL_SERVER, or config file)")
	}

	apiKey := cmd.String("api-key")
	if apiKey == "" {
		var err error
		apiKey, err = promptAPIKey()
		if err != nil {
			return nil, err
		}
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no Octopus API key provided (--api-key or RELCTL_API_KEY)")
	}

	return octopus.NewClient(server, apiKey), nil
}

// ResolveSpaceProject turns the space and project name flags into server ids.
func ResolveSpaceProject(ctx context.Context, client *octopus.Client, cmd *cli.Command) (string, string, error) {
	space := cmd.String("space")
	if space == "" {
		return "", "", fmt.Errorf("no Octopus space provided (--space or RELCTL_SPACE)")
	}
	project := cmd.String("project")
	if project == "" {
		return "", "", fmt.Errorf("no project provided (--project or RELCTL_PROJECT)")
	}

	spaceID, err := client.SpaceID(ctx, space)
	if err != nil {
		return "", "", err
	}
	log.Debugf("space %q resolved to %s", space, spaceID)

	projectID, err := client.ProjectID(ctx, spaceID, project)
	if err != nil {
		return "", "", err
	}
	log.Debugf("project %q resolved to %s", project, projectID)

	return spaceID, projectID, nil
}

// promptAPIKey reads the API key interactively without echoing it. Outside a
// terminal it returns empty so the caller can fail with a usable message.
func promptAPIKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}

	fmt.Fprint(os.Stderr, "Enter API key: ")
	key, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	return string(key), nil
}
