// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/relctl/relctl/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI
// arguments, loaded configuration, and the context the process was started
// with.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
}
