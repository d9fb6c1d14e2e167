// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/relctl/relctl/internal/octopus"
)

// SelectReleases runs an interactive picker over a release listing and
// returns the two selections, oldest first. A nil result means the user
// backed out.
func SelectReleases(items []octopus.Release) []octopus.Release {
	p := tea.NewProgram(model{items: items})
	m, _ := p.Run()

	selected := m.(model).selected
	if len(selected) == 2 && selected[0].Assembled.After(selected[1].Assembled) {
		selected[0], selected[1] = selected[1], selected[0]
	}
	return selected
}

type model struct {
	items    []octopus.Release
	cursor   int
	selected []octopus.Release
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "w":
			return m, tea.WindowSize()
		case "q", "esc":
			m.selected = nil
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ":
			if contains(m.selected, m.items[m.cursor]) {
				// Remove item from selected
				for i, v := range m.selected {
					if v.ID == m.items[m.cursor].ID {
						m.selected = append(m.selected[:i], m.selected[i+1:]...)
						break
					}
				}
			} else if len(m.selected) < 2 {
				m.selected = append(m.selected, m.items[m.cursor])
			}
		case "enter":
			if len(m.selected) == 2 {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	s := "Select two releases to compare:\n\n"
	for i, rel := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if contains(m.selected, rel) {
			mark = "x"
		}

		s += fmt.Sprintf("%s [%s] %-20s %s %s\n", cursor, mark, rel.Version, rel.Assembled.Format("2006-01-02T15:04:05Z"), rel.ID)
	}
	return s + "\nSPACE: toggle, ENTER: go, Q/ESCAPE: quit\n"
}

func contains(releases []octopus.Release, release octopus.Release) bool {
	for _, r := range releases {
		if r.ID == release.ID {
			return true
		}
	}
	return false
}
