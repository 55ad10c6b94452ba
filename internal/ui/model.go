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

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/adaryorg/dispctl/internal/hypr"
	"github.com/adaryorg/dispctl/internal/theme"
)

type mode int

const (
	modeMonitors mode = iota
	modeModes
	modeSearch
	modeHelp
)

// brightnessStep is how far one keypress moves the backlight.
const brightnessStep = 5

// tempStep is how far one keypress moves the night light temperature.
const tempStep = 250

// ThemeReloadedMsg is sent from the theme watcher when the color file
// changed on disk.
type ThemeReloadedMsg struct{}

type monitorsMsg []hypr.MonitorInfo

type Model struct {
	client *hypr.Client
	sunset *hypr.Sunset

	monitors   []hypr.MonitorInfo
	cursor     int
	selected   int // index into monitors while choosing a mode
	modeCursor int

	searchQuery   string
	filteredModes []hypr.DisplayMode

	brightness   int
	brightnessOK bool
	nightOn      bool
	temperature  int
	transformIdx int

	currentMode mode
	status      string
	statusIsErr bool

	styles Styles
	width  int
	height int
}

func NewModel(client *hypr.Client, sunset *hypr.Sunset, temperature int) Model {
	brightness, ok := client.Brightness()

	return Model{
		client:       client,
		sunset:       sunset,
		brightness:   brightness,
		brightnessOK: ok,
		temperature:  hypr.ClampTemp(temperature),
		currentMode:  modeMonitors,
		styles:       NewStyles(theme.LoadColors()),
	}
}

func (m Model) Init() tea.Cmd {
	return m.queryMonitors
}

// queryMonitors runs the blocking hyprctl query off the update loop.
func (m Model) queryMonitors() tea.Msg {
	return monitorsMsg(m.client.QueryMonitors())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case monitorsMsg:
		m.monitors = msg
		if m.cursor >= len(m.monitors) {
			m.cursor = 0
		}
		// A refresh can land while the mode list is open. The selection
		// must track the new slice or the mode views would index a
		// monitor that no longer exists.
		if m.selected >= len(m.monitors) {
			m.selected = 0
			if m.currentMode == modeModes || m.currentMode == modeSearch {
				m.currentMode = modeMonitors
			}
		} else if m.currentMode == modeModes || m.currentMode == modeSearch {
			m.filterModes()
		}
		if len(m.monitors) == 0 {
			m.setError("No monitors found (is Hyprland running?)")
		}
		return m, nil

	case ThemeReloadedMsg:
		m.styles = NewStyles(theme.LoadColors())
		m.setStatus("Theme reloaded")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.sunset.Disable()
		return m, tea.Quit
	}

	switch m.currentMode {
	case modeMonitors:
		return m.handleMonitorsKey(msg)
	case modeModes:
		return m.handleModesKey(msg)
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeHelp:
		switch msg.String() {
		case "q", "esc", "?":
			m.currentMode = modeMonitors
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleMonitorsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.sunset.Disable()
		return m, tea.Quit

	case "?":
		m.currentMode = modeHelp

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.monitors)-1 {
			m.cursor++
		}

	case "enter":
		if len(m.monitors) == 0 {
			break
		}
		m.selected = m.cursor
		m.modeCursor = 0
		m.searchQuery = ""
		m.filteredModes = m.monitors[m.selected].Modes
		m.currentMode = modeModes

	case "r":
		return m, m.queryMonitors

	case "t":
		return m.cycleTransform()

	case "+", "=":
		return m.adjustBrightness(brightnessStep)

	case "-":
		return m.adjustBrightness(-brightnessStep)

	case "n":
		return m.toggleNightLight()

	case "<":
		return m.adjustTemperature(-tempStep)

	case ">":
		return m.adjustTemperature(tempStep)
	}

	return m, nil
}

func (m Model) handleModesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.currentMode = modeMonitors

	case "/":
		m.currentMode = modeSearch

	case "up", "k":
		if m.modeCursor > 0 {
			m.modeCursor--
		}

	case "down", "j":
		if m.modeCursor < len(m.filteredModes)-1 {
			m.modeCursor++
		}

	case "enter":
		return m.applySelectedMode()
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchQuery = ""
		m.filteredModes = m.monitors[m.selected].Modes
		m.currentMode = modeModes

	case "enter":
		m.currentMode = modeModes

	case "backspace":
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			m.filterModes()
		}

	default:
		if len(msg.Runes) == 1 {
			m.searchQuery += string(msg.Runes)
			m.filterModes()
		}
	}

	return m, nil
}

// filterModes fuzzy-matches the search query against mode labels like
// "1920x1080 @ 144 Hz".
func (m *Model) filterModes() {
	all := m.monitors[m.selected].Modes
	if m.searchQuery == "" {
		m.filteredModes = all
		m.modeCursor = 0
		return
	}

	targets := make([]string, len(all))
	for i, mode := range all {
		targets[i] = modeLabel(mode)
	}

	matches := fuzzy.Find(m.searchQuery, targets)
	filtered := make([]hypr.DisplayMode, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, all[match.Index])
	}

	m.filteredModes = filtered
	m.modeCursor = 0
}

func (m Model) applySelectedMode() (tea.Model, tea.Cmd) {
	if m.modeCursor < 0 || m.modeCursor >= len(m.filteredModes) {
		return m, nil
	}
	mon := m.monitors[m.selected]
	selected := m.filteredModes[m.modeCursor]

	err := m.client.ApplyMonitor(mon.Name,
		selected.Width, selected.Height, selected.RefreshRate,
		mon.X, mon.Y, mon.Scale)
	if err != nil {
		m.setError(fmt.Sprintf("Failed to apply %s: %v", modeLabel(selected), err))
		return m, nil
	}

	m.setStatus(fmt.Sprintf("Applied %s to %s", modeLabel(selected), mon.Name))
	m.currentMode = modeMonitors
	// The current mode changed; refresh so the list reflects reality.
	return m, m.queryMonitors
}

// transforms cycled by the rotate key, in the order the buttons appeared.
var transforms = []int{
	hypr.TransformNormal,
	hypr.TransformLeft,
	hypr.TransformInverted,
	hypr.TransformRight,
}

var transformNames = []string{"normal", "left", "inverted", "right"}

func (m Model) cycleTransform() (tea.Model, tea.Cmd) {
	next := (m.transformIdx + 1) % len(transforms)
	if err := m.client.SetTransform(transforms[next]); err != nil {
		m.setError(fmt.Sprintf("Failed to rotate: %v", err))
		return m, nil
	}
	m.transformIdx = next
	m.setStatus(fmt.Sprintf("Rotation: %s", transformNames[next]))
	return m, nil
}

func (m Model) adjustBrightness(delta int) (tea.Model, tea.Cmd) {
	if !m.brightnessOK {
		m.setError("brightnessctl is not available")
		return m, nil
	}

	target := m.brightness + delta
	if target < 1 {
		target = 1
	}
	if target > 100 {
		target = 100
	}
	if target == m.brightness {
		return m, nil
	}

	if err := m.client.SetBrightness(target); err != nil {
		m.setError(fmt.Sprintf("Failed to set brightness: %v", err))
		return m, nil
	}
	m.brightness = target
	m.setStatus(fmt.Sprintf("Brightness: %d%%", target))
	return m, nil
}

func (m Model) toggleNightLight() (tea.Model, tea.Cmd) {
	if m.nightOn {
		m.sunset.Disable()
		m.nightOn = false
		m.setStatus("Night light off")
		return m, nil
	}

	if err := m.sunset.Enable(m.temperature); err != nil {
		m.setError(fmt.Sprintf("Failed to start night light: %v", err))
		return m, nil
	}
	m.nightOn = true
	m.setStatus(fmt.Sprintf("Night light on at %dK", m.temperature))
	return m, nil
}

func (m Model) adjustTemperature(delta int) (tea.Model, tea.Cmd) {
	target := hypr.ClampTemp(m.temperature + delta)
	if target == m.temperature {
		return m, nil
	}
	m.temperature = target

	if m.nightOn {
		if err := m.sunset.Fade(target); err != nil {
			m.setError(fmt.Sprintf("Failed to adjust night light: %v", err))
			return m, nil
		}
	}
	m.setStatus(fmt.Sprintf("Night light temperature: %dK", target))
	return m, nil
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusIsErr = false
}

func (m *Model) setError(text string) {
	m.status = text
	m.statusIsErr = true
}

func modeLabel(mode hypr.DisplayMode) string {
	return fmt.Sprintf("%s @ %s", mode.Resolution(), mode.Refresh())
}
