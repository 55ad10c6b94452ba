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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adaryorg/dispctl/internal/hypr"
)

// fakeRunner answers brightnessctl reads with a canned percentage and
// accepts everything else, recording every invocation.
type fakeRunner struct {
	brightness string
	calls      [][]string
}

func (f *fakeRunner) Run(name string, args ...string) (hypr.RunResult, error) {
	call := append([]string{name}, args...)
	f.calls = append(f.calls, call)

	if name == "brightnessctl" && len(args) > 0 && args[0] == "g" {
		return hypr.RunResult{Stdout: f.brightness}, nil
	}
	return hypr.RunResult{}, nil
}

func (f *fakeRunner) lastCall() []string {
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

type fakeProcess struct{}

func (fakeProcess) Kill() error { return nil }
func (fakeProcess) Wait() error { return nil }

type fakeStarter struct {
	calls [][]string
}

func (f *fakeStarter) Start(name string, args ...string) (hypr.Process, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return fakeProcess{}, nil
}

func testMonitors() []hypr.MonitorInfo {
	return []hypr.MonitorInfo{
		{
			Name:    "eDP-1",
			Scale:   1,
			Current: hypr.DisplayMode{Width: 1920, Height: 1080, RefreshRate: 60},
			Modes: []hypr.DisplayMode{
				{Width: 1920, Height: 1080, RefreshRate: 144},
				{Width: 1920, Height: 1080, RefreshRate: 60},
				{Width: 1280, Height: 720, RefreshRate: 60},
			},
		},
		{
			Name:    "DP-2",
			X:       1920,
			Scale:   1.25,
			Current: hypr.DisplayMode{Width: 2560, Height: 1440, RefreshRate: 165},
			Modes: []hypr.DisplayMode{
				{Width: 2560, Height: 1440, RefreshRate: 165},
			},
		},
	}
}

func newTestModel(t *testing.T) (Model, *fakeRunner, *fakeStarter) {
	t.Helper()
	runner := &fakeRunner{brightness: "50%\n"}
	starter := &fakeStarter{}
	client := hypr.NewClientWithRunner(runner)
	sunset := hypr.NewSunsetWithStarter(starter)

	m := NewModel(client, sunset, 4500)
	updated, _ := m.Update(monitorsMsg(testMonitors()))
	return updated.(Model), runner, starter
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

func TestModelReadsInitialBrightness(t *testing.T) {
	m, _, _ := newTestModel(t)

	if !m.brightnessOK {
		t.Fatal("expected brightness to be available")
	}
	if m.brightness != 50 {
		t.Errorf("expected brightness 50, got %d", m.brightness)
	}
}

func TestMonitorNavigation(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "j")
	if m.cursor != 1 {
		t.Errorf("expected cursor 1 after j, got %d", m.cursor)
	}

	// Cursor does not run past the last monitor.
	m = press(t, m, "j", "j")
	if m.cursor != 1 {
		t.Errorf("expected cursor to stay at 1, got %d", m.cursor)
	}

	m = press(t, m, "k")
	if m.cursor != 0 {
		t.Errorf("expected cursor 0 after k, got %d", m.cursor)
	}
}

func TestEnterOpensModeList(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "enter")
	if m.currentMode != modeModes {
		t.Fatalf("expected mode list after enter, got mode %d", m.currentMode)
	}
	if len(m.filteredModes) != 3 {
		t.Errorf("expected 3 modes for eDP-1, got %d", len(m.filteredModes))
	}

	m = press(t, m, "esc")
	if m.currentMode != modeMonitors {
		t.Errorf("expected to return to monitor list, got mode %d", m.currentMode)
	}
}

func TestSearchFiltersModes(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "enter", "/", "7", "2", "0")
	if m.currentMode != modeSearch {
		t.Fatalf("expected search mode, got %d", m.currentMode)
	}
	if len(m.filteredModes) != 1 {
		t.Fatalf("expected 1 match for '720', got %d", len(m.filteredModes))
	}
	if m.filteredModes[0].Height != 720 {
		t.Errorf("expected the 720p mode, got %v", m.filteredModes[0])
	}

	// Clearing the query restores the full list.
	m = press(t, m, "backspace", "backspace", "backspace")
	if len(m.filteredModes) != 3 {
		t.Errorf("expected full mode list after clearing search, got %d", len(m.filteredModes))
	}
}

func TestApplySelectedMode(t *testing.T) {
	m, runner, _ := newTestModel(t)

	m = press(t, m, "enter", "enter")

	var keyword []string
	for _, call := range runner.calls {
		if call[0] == "hyprctl" && len(call) > 1 && call[1] == "keyword" {
			keyword = call
		}
	}
	if keyword == nil {
		t.Fatal("expected a hyprctl keyword call")
	}
	want := "eDP-1,1920x1080@144,0x0,1"
	if keyword[3] != want {
		t.Errorf("expected monitor token %q, got %q", want, keyword[3])
	}
	if m.currentMode != modeMonitors {
		t.Errorf("expected return to monitor list after apply, got mode %d", m.currentMode)
	}
	if m.statusIsErr {
		t.Errorf("expected success status, got error %q", m.status)
	}
}

func TestCycleTransform(t *testing.T) {
	m, runner, _ := newTestModel(t)

	m = press(t, m, "t")
	last := runner.lastCall()
	if len(last) != 4 || last[3] != ",transform,1" {
		t.Errorf("expected transform token ,transform,1, got %v", last)
	}

	m = press(t, m, "t", "t", "t")
	last = runner.lastCall()
	if last[3] != ",transform,0" {
		t.Errorf("expected transform to wrap back to ,transform,0, got %v", last)
	}
}

func TestBrightnessAdjustment(t *testing.T) {
	m, runner, _ := newTestModel(t)

	m = press(t, m, "+")
	if m.brightness != 55 {
		t.Errorf("expected brightness 55, got %d", m.brightness)
	}
	last := runner.lastCall()
	want := []string{"brightnessctl", "s", "55%", "-q"}
	if strings.Join(last, " ") != strings.Join(want, " ") {
		t.Errorf("expected %v, got %v", want, last)
	}

	m = press(t, m, "-")
	if m.brightness != 50 {
		t.Errorf("expected brightness back at 50, got %d", m.brightness)
	}
}

func TestNightLightToggle(t *testing.T) {
	m, _, starter := newTestModel(t)

	m = press(t, m, "n")
	if !m.nightOn {
		t.Fatal("expected night light on after n")
	}
	if len(starter.calls) != 1 {
		t.Fatalf("expected 1 hyprsunset start, got %d", len(starter.calls))
	}
	got := strings.Join(starter.calls[0], " ")
	if got != "hyprsunset -t 4500" {
		t.Errorf("expected hyprsunset -t 4500, got %q", got)
	}

	m = press(t, m, "n")
	if m.nightOn {
		t.Error("expected night light off after second n")
	}
}

func TestTemperatureClampsAtBounds(t *testing.T) {
	m, _, _ := newTestModel(t)

	for i := 0; i < 20; i++ {
		m = press(t, m, ">")
	}
	if m.temperature != hypr.MaxTemp {
		t.Errorf("expected temperature clamped at %d, got %d", hypr.MaxTemp, m.temperature)
	}

	for i := 0; i < 40; i++ {
		m = press(t, m, "<")
	}
	if m.temperature != hypr.MinTemp {
		t.Errorf("expected temperature clamped at %d, got %d", hypr.MinTemp, m.temperature)
	}
}

func TestThemeReloadRefreshesStyles(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, _ := m.Update(ThemeReloadedMsg{})
	m = updated.(Model)
	if m.status != "Theme reloaded" {
		t.Errorf("expected theme reload status, got %q", m.status)
	}
	if m.statusIsErr {
		t.Error("theme reload should not be an error status")
	}
}

func TestViewShowsMonitorsAndStatus(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.setStatus("ready")

	out := m.View()
	for _, want := range []string{"eDP-1", "DP-2", "1920x1080", "ready"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestRefreshWhileModeListOpenTracksNewMonitors(t *testing.T) {
	m, _, _ := newTestModel(t)

	// Open the mode list for the second monitor, then have a refresh come
	// back with every monitor gone (e.g. the compositor restarted).
	m = press(t, m, "j", "enter")
	updated, _ := m.Update(monitorsMsg(nil))
	m = updated.(Model)

	if m.currentMode != modeMonitors {
		t.Errorf("expected fall back to the monitor list, got mode %d", m.currentMode)
	}
	// Rendering after the refresh must not index the stale selection.
	out := m.View()
	if !strings.Contains(out, "No monitors") {
		t.Errorf("expected empty-list message in view, got %q", out)
	}
}

func TestRefreshShrinksMonitorListPastSelection(t *testing.T) {
	m, _, _ := newTestModel(t)

	// Mode list open for index 1, then the refresh only reports one monitor.
	m = press(t, m, "j", "enter")
	updated, _ := m.Update(monitorsMsg(testMonitors()[:1]))
	m = updated.(Model)

	if m.currentMode != modeMonitors {
		t.Errorf("expected fall back to the monitor list, got mode %d", m.currentMode)
	}
	if m.selected != 0 {
		t.Errorf("expected selection reset to 0, got %d", m.selected)
	}
	m.View()

	// Escaping out of a stale search must not panic either.
	m = press(t, m, "enter", "/", "esc")
	if m.currentMode != modeModes {
		t.Errorf("expected mode list after esc from search, got %d", m.currentMode)
	}
}

func TestRefreshWhileModeListOpenKeepsValidSelection(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "enter")
	updated, _ := m.Update(monitorsMsg(testMonitors()))
	m = updated.(Model)

	if m.currentMode != modeModes {
		t.Errorf("expected to stay in the mode list, got mode %d", m.currentMode)
	}
	if len(m.filteredModes) != 3 {
		t.Errorf("expected mode list rebuilt from the refresh, got %d entries", len(m.filteredModes))
	}
}

func TestEmptyMonitorListIsAnError(t *testing.T) {
	runner := &fakeRunner{brightness: "50%\n"}
	client := hypr.NewClientWithRunner(runner)
	sunset := hypr.NewSunsetWithStarter(&fakeStarter{})

	m := NewModel(client, sunset, 4500)
	updated, _ := m.Update(monitorsMsg(nil))
	m = updated.(Model)

	if !m.statusIsErr {
		t.Error("expected an error status for an empty monitor list")
	}
	// Enter must not panic or switch modes with nothing to select.
	m = press(t, m, "enter")
	if m.currentMode != modeMonitors {
		t.Errorf("expected to stay on the monitor list, got mode %d", m.currentMode)
	}
}
