// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters narrows query results by key-operator-target expressions
// evaluated against the JSON form of each row.
//
// Filters are combined with a configurable delimiter (default: comma) and a
// row must match all of them to be kept.
//
// Operators include:
//
//   - = : exact match (supports negation with !=)
//   - ~ : case-insensitive match (supports negation with !~)
//   - ^ : prefix match (supports negation with !^)
//   - < : less than (numeric or lexical comparison)
//   - > : greater than (numeric or lexical comparison)
//   - @ : contains (substring, or membership for lists and maps)
//   - / : regex match (supports negation with !/)
//
// Examples:
//
//   - "version^1.2." : releases whose version starts with "1.2."
//   - "name!@test"   : rows whose name does not contain "test"
//   - "sensitive=true" : variables flagged sensitive
//   - "scope/Environment=Prod" : scopes matching the regex
package filters
