// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package snapshot holds the immutable in-memory model of one release: its
// packages, the files inside those packages, its deployment steps, and its
// scoped variables. Snapshots are built once at the acquisition boundary and
// only read afterwards.
package snapshot
