package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adaryorg/dispctl/internal/config"
	"github.com/adaryorg/dispctl/internal/hypr"
	"github.com/adaryorg/dispctl/internal/logging"
	"github.com/adaryorg/dispctl/internal/theme"
	"github.com/adaryorg/dispctl/internal/ui"
)

func startTUI(client *hypr.Client, sunset *hypr.Sunset, cfg *config.Config) {
	model := ui.NewModel(client, sunset, cfg.NightLight.Temperature)

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Restyle the running UI whenever the theme file changes on disk.
	watcher := theme.NewWatcher()
	watcher.Start(func() {
		p.Send(ui.ThemeReloadedMsg{})
	})
	if !watcher.Active() {
		logging.Debug("No theme file to watch, live reload disabled")
	}
	defer watcher.Stop()

	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
