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
)

// Brightness reads the current backlight level as a percentage through
// brightnessctl. The second return value is false when the tool is missing
// or its output could not be read.
func (c *Client) Brightness() (int, bool) {
	result, err := c.runner.Run(c.brightnessctl, "g", "-p")
	if err != nil || result.ExitCode != 0 {
		return 0, false
	}

	out := strings.TrimSuffix(strings.TrimSpace(result.Stdout), "%")
	percent, err := strconv.Atoi(out)
	if err != nil {
		return 0, false
	}
	if percent < 0 || percent > 100 {
		return 0, false
	}

	return percent, true
}

// SetBrightness sets the backlight to the given percentage.
func (c *Client) SetBrightness(percent int) error {
	if percent < 1 || percent > 100 {
		return fmt.Errorf("brightness percent out of range: %d", percent)
	}

	result, err := c.runner.Run(c.brightnessctl, "s", fmt.Sprintf("%d%%", percent), "-q")
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", c.brightnessctl, err)
	}
	if result.ExitCode != 0 {
		detail := strings.TrimSpace(result.Stderr)
		if detail == "" {
			detail = fmt.Sprintf("%s failed with exit code %d", c.brightnessctl, result.ExitCode)
		}
		return fmt.Errorf("%s", detail)
	}

	return nil
}
