// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package feed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// localFeed reads archives from a directory, for offline comparisons and
// tests.
type localFeed struct {
	dir string
}

func (f *localFeed) Fetch(ctx context.Context, id, version string) ([]byte, error) {
	p := filepath.Join(f.dir, archiveName(id, version))
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive %s: %w", p, err)
	}
	return data, nil
}
