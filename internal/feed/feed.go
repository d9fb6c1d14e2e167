// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package feed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/relctl/relctl/internal/octopus"
)

// Feed fetches the raw archive for one package version.
type Feed interface {
	Fetch(ctx context.Context, id, version string) ([]byte, error)
}

// New resolves a mirror spec to a Feed. An empty spec means the Octopus
// built-in feed; "s3://bucket/prefix" means an S3 mirror; anything else must
// be an existing directory of archives.
func New(ctx context.Context, spec string, client *octopus.Client, spaceID string) (Feed, error) {
	switch {
	case spec == "":
		return &builtinFeed{client: client, spaceID: spaceID}, nil

	case strings.HasPrefix(spec, "s3://"):
		return newS3Feed(ctx, spec)

	default:
		info, err := os.Stat(spec)
		if err != nil {
			return nil, fmt.Errorf("mirror %s is not usable: %w", spec, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("mirror %s is not a directory", spec)
		}
		return &localFeed{dir: spec}, nil
	}
}

// archiveName is the conventional archive filename for a package version.
func archiveName(id, version string) string {
	return id + "." + version + ".zip"
}
