// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package octopus is a thin client for the parts of the Octopus Deploy REST
// API the comparison needs: space and project resolution, release listings,
// deployment-process and variable-set snapshots, feeds, and built-in-feed
// package downloads.
package octopus
