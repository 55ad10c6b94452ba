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

// Package theme turns the user's Omarchy color file into a stylesheet and
// keeps it fresh while the file is edited. Every entry point degrades to a
// known-good built-in palette instead of failing.
package theme

import (
	"os"
	"path/filepath"
)

// Colors maps semantic role names (background, foreground, primary,
// secondary, accent, border, ...) to color values. Values are hex strings
// like #1e1e2e or rgb() expressions passed through untouched.
type Colors map[string]string

// FallbackColors returns the built-in palette (Catppuccin Mocha) used when
// no theme file exists or it contains nothing usable.
func FallbackColors() Colors {
	return Colors{
		"background": "#1e1e2e",
		"foreground": "#cdd6f4",
		"primary":    "#89b4fa",
		"secondary":  "#f5c2e7",
		"accent":     "#a6e3a1",
		"border":     "#45475a",
	}
}

// overridePath, when non-empty, takes precedence over the Omarchy paths.
// Set from the -theme flag or config.
var overridePath string

// SetOverridePath points theme loading and watching at an explicit file.
func SetOverridePath(path string) {
	overridePath = path
}

// ActivePath returns the theme file currently in effect: the configured
// override, then ~/.config/omarchy/theme/colors, then the legacy
// ~/.config/omarchy/theme.conf. The empty string means no theme file exists,
// which is a normal condition, not an error.
func ActivePath() string {
	if overridePath != "" {
		if fileExists(overridePath) {
			return overridePath
		}
		return ""
	}

	base := configBase()
	if base == "" {
		return ""
	}

	primary := filepath.Join(base, "omarchy", "theme", "colors")
	if fileExists(primary) {
		return primary
	}
	legacy := filepath.Join(base, "omarchy", "theme.conf")
	if fileExists(legacy) {
		return legacy
	}

	return ""
}

func configBase() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return base
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
