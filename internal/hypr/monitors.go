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

package hypr

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adaryorg/dispctl/internal/logging"
)

// DisplayMode is one resolution/refresh combination an output supports.
type DisplayMode struct {
	Width       int
	Height      int
	RefreshRate int
}

// Resolution formats the mode as "WIDTHxHEIGHT".
func (m DisplayMode) Resolution() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// Refresh formats the refresh rate for display.
func (m DisplayMode) Refresh() string {
	return fmt.Sprintf("%d Hz", m.RefreshRate)
}

// MonitorInfo describes one physical output as reported by hyprctl.
type MonitorInfo struct {
	Name    string
	X       int
	Y       int
	Scale   float64
	Current DisplayMode
	Modes   []DisplayMode
}

// Client talks to the compositor and related display tools through a Runner.
type Client struct {
	runner        Runner
	hyprctl       string
	brightnessctl string
}

// NewClient returns a Client using the default tool names and a real
// process runner. Pass a fake Runner from tests via NewClientWithRunner.
func NewClient() *Client {
	return NewClientWithRunner(ExecRunner{})
}

// NewClientWithRunner returns a Client that executes commands through the
// given Runner.
func NewClientWithRunner(runner Runner) *Client {
	return &Client{
		runner:        runner,
		hyprctl:       "hyprctl",
		brightnessctl: "brightnessctl",
	}
}

// SetTools overrides the tool binary names (from config).
func (c *Client) SetTools(hyprctl, brightnessctl string) {
	if hyprctl != "" {
		c.hyprctl = hyprctl
	}
	if brightnessctl != "" {
		c.brightnessctl = brightnessctl
	}
}

// refreshRateKeys lists the field names hyprctl has used for refresh rate,
// newest spelling first.
var refreshRateKeys = []string{"refreshRate", "refresh_rate"}

// QueryMonitors runs `hyprctl monitors -j` and parses the result. It never
// fails the caller: any spawn error, nonzero exit, empty output or malformed
// JSON yields an empty slice, and individual monitor entries that cannot be
// parsed are skipped.
func (c *Client) QueryMonitors() []MonitorInfo {
	result, err := c.runner.Run(c.hyprctl, "monitors", "-j")
	if err != nil {
		logging.Warn("hyprctl not available: %v", err)
		return nil
	}
	if result.ExitCode != 0 || strings.TrimSpace(result.Stdout) == "" {
		logging.Warn("hyprctl monitors failed with exit code %d", result.ExitCode)
		return nil
	}

	// The root must be an array; anything else means the output format
	// changed underneath us and we back off rather than guess.
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(result.Stdout), &entries); err != nil {
		logging.Warn("unexpected hyprctl monitors output: %v", err)
		return nil
	}

	monitors := make([]MonitorInfo, 0, len(entries))
	for _, entry := range entries {
		var raw map[string]interface{}
		if err := json.Unmarshal(entry, &raw); err != nil {
			continue
		}
		if info, ok := parseMonitor(raw); ok {
			monitors = append(monitors, info)
		}
	}

	return monitors
}

// parseMonitor extracts one MonitorInfo from a decoded hyprctl JSON object.
// Only the name is mandatory; every other field has a usable default so the
// parser keeps working across hyprctl schema changes.
func parseMonitor(raw map[string]interface{}) (MonitorInfo, bool) {
	name, ok := stringField(raw, "name")
	if !ok || name == "" {
		return MonitorInfo{}, false
	}

	info := MonitorInfo{
		Name:  name,
		X:     intField(raw, []string{"x"}, 0),
		Y:     intField(raw, []string{"y"}, 0),
		Scale: floatField(raw, []string{"scale"}, 1.0),
		Current: DisplayMode{
			Width:       intField(raw, []string{"width"}, 0),
			Height:      intField(raw, []string{"height"}, 0),
			RefreshRate: intField(raw, refreshRateKeys, 60),
		},
	}

	if modes, ok := raw["modes"].([]interface{}); ok {
		for _, m := range modes {
			entry, ok := m.(map[string]interface{})
			if !ok {
				continue
			}
			mode := DisplayMode{
				Width:       intField(entry, []string{"width"}, 0),
				Height:      intField(entry, []string{"height"}, 0),
				RefreshRate: intField(entry, refreshRateKeys, 60),
			}
			if mode.Width > 0 && mode.Height > 0 && mode.RefreshRate > 0 {
				info.Modes = append(info.Modes, mode)
			}
		}
	}

	// A monitor must never present as selectable with zero choices when a
	// usable current state is known.
	if len(info.Modes) == 0 &&
		info.Current.Width > 0 && info.Current.Height > 0 && info.Current.RefreshRate > 0 {
		info.Modes = append(info.Modes, info.Current)
	}

	return info, true
}

func stringField(raw map[string]interface{}, key string) (string, bool) {
	v, ok := raw[key].(string)
	return v, ok
}

// floatField returns the first present numeric value among keys, or def.
func floatField(raw map[string]interface{}, keys []string, def float64) float64 {
	for _, key := range keys {
		if v, ok := raw[key].(float64); ok {
			return v
		}
	}
	return def
}

// intField is floatField truncated to an integer, matching how hyprctl
// reports fractional refresh rates like 59.997.
func intField(raw map[string]interface{}, keys []string, def int) int {
	return int(floatField(raw, keys, float64(def)))
}
