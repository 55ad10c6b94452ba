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

package theme

import (
	"bufio"
	"os"
	"strings"
)

// ParseThemeFile reads a hand-edited key=value color file. Empty lines,
// comment lines and anything that does not look like a color assignment are
// skipped silently; the file is user input, not something to error on.
// Returns an empty map when the file cannot be opened.
func ParseThemeFile(path string) Colors {
	colors := Colors{}

	f, err := os.Open(path)
	if err != nil {
		return colors
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}

		key := strings.TrimSpace(line[:eq])
		value := strings.TrimSpace(line[eq+1:])

		// Only keep values that look like colors: #rrggbb style hex or an
		// rgb()/rgba() expression. rgb values are passed through without
		// further validation; the stylesheet consumer accepts them as-is.
		if key == "" || len(value) < 4 {
			continue
		}
		if value[0] != '#' && !strings.HasPrefix(value, "rgb") {
			continue
		}

		// Later assignments win on duplicate keys.
		colors[key] = value
	}

	return colors
}
