// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller navigates the JSON form of query rows with a lenient,
// case-insensitive dot path.
package driller
