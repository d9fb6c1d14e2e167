// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"sort"
	"strings"
)

// ScopeSignature is the canonicalized, order-independent set of scope
// dimension assignments (environment, role, machine, ...) that qualifies
// where a variable's value applies. Two signatures built from the same
// assignments in any order render identically.
type ScopeSignature struct {
	dims []scopeDim
}

type scopeDim struct {
	name   string
	values []string
}

// NewScopeSignature canonicalizes a raw dimension->values mapping as returned
// by the variable-set API. Empty dimensions are dropped, dimension names are
// sorted, and value sets are sorted and de-duplicated.
func NewScopeSignature(raw map[string][]string) ScopeSignature {
	var sig ScopeSignature
	for name, values := range raw {
		if len(values) == 0 {
			continue
		}
		seen := map[string]bool{}
		vs := make([]string, 0, len(values))
		for _, v := range values {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			vs = append(vs, v)
		}
		if len(vs) == 0 {
			continue
		}
		sort.Strings(vs)
		sig.dims = append(sig.dims, scopeDim{name: name, values: vs})
	}
	sort.Slice(sig.dims, func(i, j int) bool {
		return sig.dims[i].name < sig.dims[j].name
	})
	return sig
}

// Empty reports whether the variable is unscoped.
func (s ScopeSignature) Empty() bool { return len(s.dims) == 0 }

// String renders the canonical form, e.g. "Environment=Dev,Prod;Role=Web".
// The empty signature renders as "".
func (s ScopeSignature) String() string {
	parts := make([]string, 0, len(s.dims))
	for _, d := range s.dims {
		parts = append(parts, d.name+"="+strings.Join(d.values, ","))
	}
	return strings.Join(parts, ";")
}

// Equal reports whether two signatures cover the same assignments.
func (s ScopeSignature) Equal(o ScopeSignature) bool {
	return s.String() == o.String()
}

// Dimensions returns the canonical dimension->values mapping, rebuilt on
// every call so callers cannot reach the signature's internals.
func (s ScopeSignature) Dimensions() map[string][]string {
	out := make(map[string][]string, len(s.dims))
	for _, d := range s.dims {
		out[d.name] = append([]string(nil), d.values...)
	}
	return out
}
