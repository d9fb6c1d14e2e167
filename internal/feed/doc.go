// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package feed abstracts where package archives come from: the Octopus
// built-in feed, an S3 mirror, or a local directory of archives.
package feed
