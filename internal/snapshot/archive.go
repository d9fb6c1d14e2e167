// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strings"
)

// binaryProbeLen is how many leading bytes are inspected when deciding
// whether a file is binary. Matches the common "NUL byte in the head of the
// file" heuristic.
const binaryProbeLen = 8000

// ListArchive reads a zip archive held in memory and returns one FileEntry
// per regular file, with normalized forward-slash paths, content hashes, and
// a binary flag. Entries are returned in path order so listings are stable
// regardless of how the archive was produced.
func ListArchive(data []byte) ([]FileEntry, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	var entries []FileEntry
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open archive entry %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read archive entry %s: %w", f.Name, err)
		}

		sum := sha256.Sum256(content)
		entry := FileEntry{
			Path:   normalizePath(f.Name),
			Hash:   hex.EncodeToString(sum[:]),
			Binary: looksBinary(content),
		}
		if !entry.Binary {
			entry.Content = string(content)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// normalizePath flattens separators to forward slashes and strips any leading
// "./" the archiver may have left behind. Comparison stays case-sensitive.
func normalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.TrimPrefix(p, "./")
	return p
}

// looksBinary reports whether content appears to be undecodable as text. A
// NUL byte in the probe window is the signal; UTF-8 text never contains one.
func looksBinary(content []byte) bool {
	probe := content
	if len(probe) > binaryProbeLen {
		probe = probe[:binaryProbeLen]
	}
	return bytes.IndexByte(probe, 0) != -1
}
