// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/base64"
	"fmt"
	"io"
)

// SetVariable writes one Octopus service message assigning an output
// variable. Name and value are base64-encoded per the service-message
// protocol, so arbitrary content (diff text, JSON) round-trips safely.
func SetVariable(w io.Writer, name, value string) {
	fmt.Fprintf(w, "##octopus[setVariable name='%s' value='%s']\n",
		base64.StdEncoding.EncodeToString([]byte(name)),
		base64.StdEncoding.EncodeToString([]byte(value)))
}
