// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package reconcile classifies two same-kind entity sets into added, removed,
// changed, and unchanged relative to an identity key and a content-equality
// predicate. The classifier is generic; the variable-specific scope-change
// pass is layered on top of it.
package reconcile
