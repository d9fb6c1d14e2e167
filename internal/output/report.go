// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/relctl/relctl/internal/compare"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("12"))

var bannerRule = strings.Repeat("=", 87)

// Report writes the human-readable change inventory: the package, step, and
// variable sections with narrative lines and unified diffs.
func Report(w io.Writer, c compare.Comparison, color bool) {
	fmt.Fprintf(w, "Inventory of changes in release %s compared to release %s.\n", c.NewRelease, c.OldRelease)

	banner(w, "Added and removed packages and changes to package content", color)
	reportPackages(w, c)

	banner(w, "Changes between the steps", color)
	reportSteps(w, c)

	banner(w, "Added and removed variables, changes to variable values, and changes to variable scopes", color)
	reportVariables(w, c)
}

func banner(w io.Writer, title string, color bool) {
	if color {
		title = bannerStyle.Render(title)
	}
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", bannerRule, title, bannerRule)
}

func reportPackages(w io.Writer, c compare.Comparison) {
	for _, p := range c.Packages.Added {
		fmt.Fprintf(w, "Release %s added the package: %s\n", c.NewRelease, p.ID)
	}
	for _, p := range c.Packages.Removed {
		fmt.Fprintf(w, "Release %s removed the package: %s\n", c.NewRelease, p.ID)
	}

	for _, pkg := range c.Packages.Changed {
		fmt.Fprintf(w, "Package %s changed from version %s to %s (%s)\n",
			pkg.ID, pkg.OldVersion, pkg.NewVersion, archiveSize(pkg.Size))

		if len(pkg.Files.Added) > 0 {
			fmt.Fprintf(w, "Release %s added the following files in %s.%s compared to release %s with package %s.%s:\n\t%s\n",
				c.NewRelease, pkg.ID, pkg.NewVersion, c.OldRelease, pkg.ID, pkg.OldVersion,
				strings.Join(pkg.Files.Added, "\n\t"))
		}
		if len(pkg.Files.Removed) > 0 {
			fmt.Fprintf(w, "Release %s removed the following files from %s.%s compared to release %s with package %s.%s:\n\t%s\n",
				c.NewRelease, pkg.ID, pkg.NewVersion, c.OldRelease, pkg.ID, pkg.OldVersion,
				strings.Join(pkg.Files.Removed, "\n\t"))
		}
		if len(pkg.Files.Changed) > 0 {
			names := make([]string, 0, len(pkg.Files.Changed))
			for _, f := range pkg.Files.Changed {
				names = append(names, f.Path)
			}
			fmt.Fprintf(w, "Release %s changed the following files in package %s.%s compared to release %s with package %s.%s:\n\t%s\n\n",
				c.NewRelease, pkg.ID, pkg.NewVersion, c.OldRelease, pkg.ID, pkg.OldVersion,
				strings.Join(names, "\n\t"))

			for _, f := range pkg.Files.Changed {
				fmt.Fprintf(w, "Diff of %s:\n%s\n", f.Path, diffBody(f.Diff))
			}
		}
	}
}

func reportSteps(w io.Writer, c compare.Comparison) {
	for _, name := range c.Steps.Added {
		fmt.Fprintf(w, "Release %s added the step: %s\n", c.NewRelease, name)
	}
	for _, name := range c.Steps.Removed {
		fmt.Fprintf(w, "Release %s removed the step: %s\n", c.NewRelease, name)
	}
	for _, s := range c.Steps.Changed {
		fmt.Fprintf(w, "Release %s changed the step %q:\n%s\n", c.NewRelease, s.Name, diffBody(s.Diff))
	}
	if !c.Steps.Diff.Empty() {
		fmt.Fprintf(w, "Diff of the step sequence:\n%s\n", diffBody(c.Steps.Diff))
	}
}

func reportVariables(w io.Writer, c compare.Comparison) {
	for _, v := range c.Variables.Added {
		fmt.Fprintf(w, "Release %s added the variable: %s\n", c.NewRelease, v.Identity)
	}
	for _, v := range c.Variables.Removed {
		fmt.Fprintf(w, "Release %s removed the variable: %s\n", c.NewRelease, v.Identity)
	}
	for _, v := range c.Variables.Changed {
		fmt.Fprintf(w, "Release %s changed the value of the variable %q from %q to %q\n",
			c.NewRelease, v.Identity, v.OldValue, v.NewValue)
	}
	for _, v := range c.Variables.ScopeChanged {
		fmt.Fprintf(w, "Release %s changed the scope of the variable %q (%s -> %s)\n",
			c.NewRelease, v.Name,
			strings.Join(v.OldScopes, " | "), strings.Join(v.NewScopes, " | "))
	}
}

// archiveSize humanizes a package archive size, with a fallback for packages
// that were never downloaded.
func archiveSize(size int64) string {
	if size <= 0 {
		return "not downloaded"
	}
	return humanize.Bytes(uint64(size))
}
