// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Driller resolves a filter key against the JSON form of a query row. Each
// dot-separated segment is matched case-insensitively, so "--filter name=web"
// finds a field serialized as "Name". Missing keys and empty segments resolve
// to the zero Result.
func Driller(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return gjson.Result{}
		}
		current = field(current, segment)
		if !current.Exists() {
			return gjson.Result{}
		}
	}
	return current
}

// field looks up one object key, preferring an exact match over a
// case-insensitive one.
func field(doc gjson.Result, key string) gjson.Result {
	if v := doc.Get(key); v.Exists() {
		return v
	}
	var match gjson.Result
	doc.ForEach(func(k, v gjson.Result) bool {
		if strings.EqualFold(k.String(), key) {
			match = v
			return false
		}
		return true
	})
	return match
}
