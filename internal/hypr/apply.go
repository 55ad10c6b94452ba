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
	"fmt"
	"strconv"
	"strings"

	"github.com/adaryorg/dispctl/internal/logging"
)

// Transform values accepted by the compositor's monitor keyword.
const (
	TransformNormal   = 0
	TransformLeft     = 1
	TransformInverted = 2
	TransformRight    = 3
)

// ApplyMonitor reconfigures one output via `hyprctl keyword monitor`.
// The configuration token has the form WIDTHxHEIGHT@REFRESH,POSXxPOSY,SCALE
// (e.g. 1920x1080@144,0x0,1). A nil return means the compositor accepted
// the new configuration.
func (c *Client) ApplyMonitor(name string, width, height, refreshRate, posX, posY int, scale float64) error {
	// Reject bad input before touching the compositor so the caller gets a
	// clear message instead of whatever hyprctl would print.
	if name == "" || width <= 0 || height <= 0 || refreshRate <= 0 {
		return fmt.Errorf("invalid monitor parameters: name=%q mode=%dx%d@%d", name, width, height, refreshRate)
	}

	token := fmt.Sprintf("%dx%d@%d,%dx%d,%s",
		width, height, refreshRate, posX, posY, FormatScale(scale))

	logging.Info("Applying monitor configuration %s,%s", name, token)
	return c.keyword("monitor", name+","+token)
}

// FormatScale renders a monitor scale as the shortest plain decimal
// (1, 1.25), never scientific notation, matching what hyprctl parses.
// Display code uses the same convention.
func FormatScale(scale float64) string {
	return strconv.FormatFloat(scale, 'f', -1, 64)
}

// SetTransform rotates every output (empty monitor selector) via the
// transform keyword. Use the Transform* constants.
func (c *Client) SetTransform(transform int) error {
	if transform < TransformNormal || transform > TransformRight {
		return fmt.Errorf("invalid transform value %d", transform)
	}

	logging.Info("Setting monitor transform to %d", transform)
	return c.keyword("monitor", fmt.Sprintf(",transform,%d", transform))
}

// keyword runs `hyprctl keyword <key> <value>` and converts the outcome
// into a single error value: nil on exit 0, the tool's own complaint
// (stderr, then stdout) otherwise, or a synthesized message when the tool
// said nothing.
func (c *Client) keyword(key, value string) error {
	result, err := c.runner.Run(c.hyprctl, "keyword", key, value)
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", c.hyprctl, err)
	}
	if result.ExitCode == 0 {
		return nil
	}

	detail := strings.TrimSpace(result.Stderr)
	if detail == "" {
		detail = strings.TrimSpace(result.Stdout)
	}
	if detail == "" {
		detail = fmt.Sprintf("%s failed with exit code %d", c.hyprctl, result.ExitCode)
	}
	return fmt.Errorf("%s", detail)
}
