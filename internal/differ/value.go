// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/relctl/relctl/internal/log"
	"github.com/relctl/relctl/internal/snapshot"
)

// valueDelta is the serialized before/after record for one changed variable.
type valueDelta struct {
	Name  string `json:"name"`
	Scope string `json:"scope,omitempty"`
	Old   string `json:"old"`
	New   string `json:"new"`
	Delta string `json:"delta,omitempty"`
}

// scopeDelta is the serialized before/after record for one re-scoped
// variable name.
type scopeDelta struct {
	Name string   `json:"name"`
	Old  []string `json:"old"`
	New  []string `json:"new"`
}

// ValueDelta renders the before/after of one changed variable value as a JSON
// document. When both values are themselves JSON documents a semantic delta
// is included alongside the raw values.
func ValueDelta(old, new snapshot.Variable) string {
	d := valueDelta{
		Name:  new.Name,
		Scope: new.Scope.String(),
		Old:   old.Value,
		New:   new.Value,
		Delta: jsonDelta(old.Value, new.Value),
	}
	out, err := json.Marshal(d)
	if err != nil {
		// Marshaling a struct of strings cannot fail; keep the comparison
		// alive regardless.
		log.WithError(err).Warnf("failed to render value delta for %s", new.Name)
		return ""
	}
	return string(out)
}

// ScopeDelta renders the before/after scope signatures of one re-scoped
// variable name as a JSON document.
func ScopeDelta(name string, old, new []snapshot.Variable) string {
	d := scopeDelta{Name: name, Old: scopes(old), New: scopes(new)}
	out, err := json.Marshal(d)
	if err != nil {
		log.WithError(err).Warnf("failed to render scope delta for %s", name)
		return ""
	}
	return string(out)
}

// jsonDelta produces a semantic diff of two JSON object values, or "" when
// either side is not a JSON object.
func jsonDelta(old, new string) string {
	if !gjson.Valid(old) || !gjson.Valid(new) {
		return ""
	}
	if !gjson.Parse(old).IsObject() || !gjson.Parse(new).IsObject() {
		return ""
	}

	delta, err := gojsondiff.New().Compare([]byte(old), []byte(new))
	if err != nil || !delta.Modified() {
		return ""
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(old), &doc); err != nil {
		return ""
	}

	text, err := formatter.NewAsciiFormatter(doc, formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       false,
	}).Format(delta)
	if err != nil {
		return ""
	}
	return text
}

func scopes(vars []snapshot.Variable) []string {
	out := make([]string, 0, len(vars))
	for _, v := range vars {
		out = append(out, v.Scope.String())
	}
	return out
}
