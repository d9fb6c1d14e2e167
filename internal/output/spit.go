// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/relctl/relctl/internal/compare"
)

// Spit writes a comparison in the requested format. "text" produces the
// human report; "json" and "yaml" produce the structured result document.
func Spit(w io.Writer, c compare.Comparison, format string, color bool) error {
	switch format {
	case "", "text":
		Report(w, c, color)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("failed to marshal comparison: %w", err)
		}
		return nil
	case "yaml":
		out, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal comparison: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
