// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package feed

import (
	"context"

	"github.com/relctl/relctl/internal/octopus"
)

// builtinFeed pulls archives from the space's built-in feed through the API
// client, which handles retries and caching.
type builtinFeed struct {
	client  *octopus.Client
	spaceID string
}

func (f *builtinFeed) Fetch(ctx context.Context, id, version string) ([]byte, error) {
	return f.client.DownloadPackage(ctx, f.spaceID, id, version)
}
