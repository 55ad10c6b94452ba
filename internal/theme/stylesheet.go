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
	"fmt"
	"strings"
)

// BuildStylesheet renders a GTK-style CSS stylesheet from a color map. It is
// pure and total: every slot has a hard-coded default, an empty map falls
// back to the built-in palette, and the rule order is fixed so output is
// reproducible.
func BuildStylesheet(colors Colors) string {
	if len(colors) == 0 {
		colors = FallbackColors()
	}

	get := func(key, def string) string {
		if v, ok := colors[key]; ok {
			return v
		}
		return def
	}

	bg := get("background", "#1e1e2e")
	fg := get("foreground", "#cdd6f4")

	// accent substitutes for a missing primary, and primary for a missing
	// accent, so sparse themes still look coherent.
	defaultAccent := get("accent", "#89b4fa")
	primary := get("primary", defaultAccent)
	accent := get("accent", primary)
	border := get("border", "#45475a")

	buttonBg := get("secondary", "#313244")
	if buttonBg == "" {
		buttonBg = "#313244"
	}
	buttonHover := accent
	if buttonHover == "" {
		buttonHover = "#45475a"
	}

	var css strings.Builder
	fmt.Fprintf(&css, "window { background-color: %s; color: %s; }\n", bg, fg)
	fmt.Fprintf(&css, "frame { margin: 10px; border: 1px solid %s; border-radius: 8px; padding: 12px; }\n", border)
	fmt.Fprintf(&css, "scale highlight { background-color: %s; }\n", primary)
	fmt.Fprintf(&css, "button { margin: 4px; padding: 8px; background-color: %s; border: none; border-radius: 4px; color: %s; }\n", buttonBg, fg)
	fmt.Fprintf(&css, "button:hover { background-color: %s; }\n", buttonHover)
	fmt.Fprintf(&css, "label { font-size: 16px; margin: 0 10px; color: %s; }\n", fg)
	fmt.Fprintf(&css, "dropdown, combobox { background-color: %s; color: %s; border: 1px solid %s; border-radius: 4px; padding: 6px; }\n", buttonBg, fg, border)
	fmt.Fprintf(&css, "dropdown:hover, combobox:hover { background-color: %s; }\n", buttonHover)

	return css.String()
}

// LoadColors resolves the active theme file and parses it, substituting the
// built-in palette when the file is absent or yields nothing.
func LoadColors() Colors {
	path := ActivePath()
	if path == "" {
		return FallbackColors()
	}

	colors := ParseThemeFile(path)
	if len(colors) == 0 {
		return FallbackColors()
	}
	return colors
}

// LoadStylesheet is the front door for callers that only want CSS text:
// resolve, parse, build, with all fallbacks applied internally.
func LoadStylesheet() string {
	return BuildStylesheet(LoadColors())
}
