package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/adaryorg/dispctl/internal/theme"
)

// Styles holds the lipgloss styles for every part of the interface,
// derived from the active theme palette.
type Styles struct {
	Title     lipgloss.Style
	Section   lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Selected  lipgloss.Style
	Muted     lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Frame     lipgloss.Style
	FooterKey lipgloss.Style
}

// NewStyles builds styles from a theme color map. Missing roles fall back
// to the built-in palette so the interface is always fully styled.
func NewStyles(colors theme.Colors) Styles {
	fallback := theme.FallbackColors()
	get := func(key string) lipgloss.Color {
		if v, ok := colors[key]; ok && v != "" {
			return lipgloss.Color(v)
		}
		return lipgloss.Color(fallback[key])
	}

	fg := get("foreground")
	primary := get("primary")
	accent := get("accent")
	border := get("border")

	return Styles{
		Title:     lipgloss.NewStyle().Foreground(primary).Bold(true),
		Section:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(fg),
		Value:     lipgloss.NewStyle().Foreground(primary),
		Selected:  lipgloss.NewStyle().Foreground(get("background")).Background(primary).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(border),
		Status:    lipgloss.NewStyle().Foreground(accent),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Frame:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		FooterKey: lipgloss.NewStyle().Foreground(accent),
	}
}
