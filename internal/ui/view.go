/*
MIT License

Copyright (c) 2025 Yuval Adar <adary@adary.org>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package ui

import (
	"fmt"
	"strings"

	"github.com/adaryorg/dispctl/internal/hypr"
)

func (m Model) View() string {
	var b strings.Builder

	switch m.currentMode {
	case modeMonitors:
		m.renderMonitors(&b)
	case modeModes, modeSearch:
		m.renderModes(&b)
	case modeHelp:
		m.renderHelp(&b)
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusIsErr {
			b.WriteString(m.styles.Error.Render(m.status))
		} else {
			b.WriteString(m.styles.Status.Render(m.status))
		}
		b.WriteString("\n")
	}

	return m.styles.Frame.Render(b.String())
}

func (m Model) renderMonitors(b *strings.Builder) {
	b.WriteString(m.styles.Title.Render("Display Settings"))
	b.WriteString("\n\n")

	if len(m.monitors) == 0 {
		b.WriteString(m.styles.Muted.Render("No monitors detected."))
		b.WriteString("\n")
	}

	for i, mon := range m.monitors {
		line := fmt.Sprintf("%s  %s  scale %s",
			mon.Name, modeLabel(mon.Current), hypr.FormatScale(mon.Scale))
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Label.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Section.Render("Laptop"))
	b.WriteString("\n")
	if m.brightnessOK {
		b.WriteString(m.styles.Label.Render("  Brightness: "))
		b.WriteString(m.styles.Value.Render(fmt.Sprintf("%d%%", m.brightness)))
	} else {
		b.WriteString(m.styles.Muted.Render("  Brightness: unavailable"))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Label.Render("  Night light: "))
	if m.nightOn {
		b.WriteString(m.styles.Value.Render(fmt.Sprintf("on, %dK", m.temperature)))
	} else {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("off (%dK)", m.temperature)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.footer(
		"enter", "modes",
		"t", "rotate",
		"+/-", "brightness",
		"n", "night light",
		"?", "help",
		"q", "quit",
	))
}

func (m Model) renderModes(b *strings.Builder) {
	mon := m.monitors[m.selected]
	b.WriteString(m.styles.Title.Render("Modes: " + mon.Name))
	b.WriteString("\n\n")

	if m.currentMode == modeSearch || m.searchQuery != "" {
		b.WriteString(m.styles.Label.Render("Search: "))
		b.WriteString(m.styles.Value.Render(m.searchQuery))
		if m.currentMode == modeSearch {
			b.WriteString(m.styles.Value.Render("_"))
		}
		b.WriteString("\n\n")
	}

	if len(m.filteredModes) == 0 {
		b.WriteString(m.styles.Muted.Render("No matching modes."))
		b.WriteString("\n")
	}

	for i, dm := range m.filteredModes {
		line := modeLabel(dm)
		if dm == mon.Current {
			line += "  (current)"
		}
		if i == m.modeCursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Label.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer(
		"enter", "apply",
		"/", "search",
		"esc", "back",
	))
}

func (m Model) renderHelp(b *strings.Builder) {
	b.WriteString(m.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"j/k, arrows", "move selection"},
		{"enter", "choose monitor / apply mode"},
		{"/", "fuzzy search modes"},
		{"t", "cycle rotation"},
		{"+/-", "adjust brightness"},
		{"n", "toggle night light"},
		{"</>", "night light temperature"},
		{"r", "refresh monitor list"},
		{"q, esc", "back / quit"},
	}
	for _, row := range rows {
		b.WriteString(m.styles.FooterKey.Render(fmt.Sprintf("  %-14s", row[0])))
		b.WriteString(m.styles.Label.Render(row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.footer("esc", "back"))
}

// footer renders alternating key/description pairs.
func (m Model) footer(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts,
			m.styles.FooterKey.Render(pairs[i])+" "+m.styles.Muted.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}
