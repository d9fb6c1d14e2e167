// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package compare drives the per-kind reconciliations and content diffs over
// two release snapshots and assembles them into one ordered Comparison.
package compare
