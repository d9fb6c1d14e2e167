// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders a comparison result: as Octopus output variables for
// the surrounding pipeline, as a human-readable report, or as a json/yaml
// document.
package output
