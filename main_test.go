// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"relctl", "rd"},
			expected: []string{"relctl", "rd"},
		},
		{
			name:     "no duplicates",
			args:     []string{"relctl", "rd", "--output", "text", "--pick"},
			expected: []string{"relctl", "rd", "--output", "text", "--pick"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"relctl", "rd", "--output", "json", "--pick", "--output", "text"},
			expected: []string{"relctl", "rd", "--pick", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"relctl", "rd", "--pick", "--setvars", "--pick"},
			expected: []string{"relctl", "rd", "--setvars", "--pick"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"relctl", "rd", "--output=json", "--pick", "--output=text"},
			expected: []string{"relctl", "rd", "--pick", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"relctl", "rd", "--output=json", "--output", "text"},
			expected: []string{"relctl", "rd", "--output", "text"},
		},
		{
			name:     "multiple different flags with duplicates",
			args:     []string{"relctl", "rd", "--space", "Default", "--project", "foo", "--space", "Ops", "--project", "bar"},
			expected: []string{"relctl", "rd", "--space", "Ops", "--project", "bar"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"relctl", "completion", "bash", "--output", "json", "--output", "text"},
			expected: []string{"relctl", "completion", "bash", "--output", "text"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"relctl", "rq", "-o", "json", "-o", "text"},
			expected: []string{"relctl", "rq", "-o", "text"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"relctl", "rd", "--old", "1.0.1", "--new", "1.0.2"},
			expected: []string{"relctl", "rd", "--old", "1.0.1", "--new", "1.0.2"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"relctl", "rd", "--context", "1", "--context", "5", "--context", "9"},
			expected: []string{"relctl", "rd", "--context", "9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deduplicateFlags(tt.args)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("deduplicateFlags(%v) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no command appends help",
			args:     []string{"relctl"},
			expected: []string{"relctl", "--help"},
		},
		{
			name:     "command present untouched",
			args:     []string{"relctl", "rd"},
			expected: []string{"relctl", "rd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}
