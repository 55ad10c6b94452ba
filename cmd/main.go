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

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/adaryorg/dispctl/internal/config"
	"github.com/adaryorg/dispctl/internal/hypr"
	"github.com/adaryorg/dispctl/internal/logging"
	"github.com/adaryorg/dispctl/internal/theme"
	"github.com/adaryorg/dispctl/internal/version"
)

func main() {
	// Define command line flags
	themeFile := flag.String("theme", "", "Use custom theme color file instead of the omarchy theme")
	themeFileShort := flag.String("t", "", "Use custom theme color file instead of the omarchy theme")
	printCSS := flag.Bool("css", false, "Print the generated stylesheet for the active theme and exit")
	help := flag.Bool("help", false, "Show help information")
	helpShort := flag.Bool("h", false, "Show help information")
	versionFlag := flag.Bool("version", false, "Display version and build information")
	versionShort := flag.Bool("v", false, "Display version and build information")
	flag.Parse()

	// Show version if requested
	if *versionFlag || *versionShort {
		fmt.Printf("dispctl version %s | %s (%s)\n",
			version.Version,
			version.BuildTime,
			version.CommitHash,
		)
		os.Exit(0)
	}

	// Show help if requested
	if *help || *helpShort {
		showHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	err = logging.InitLogger(cfg.Logging.LogFile, cfg.Logging.Level,
		cfg.Logging.MaxAge, cfg.Logging.MaxSize, cfg.Logging.MaxBackups,
		cfg.Logging.Console)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	// A theme file on the command line wins over the configured one.
	customThemeFile := *themeFile
	if customThemeFile == "" {
		customThemeFile = *themeFileShort
	}
	if customThemeFile == "" {
		customThemeFile = cfg.Theme.File
	}
	theme.SetOverridePath(customThemeFile)

	if *printCSS {
		fmt.Print(theme.LoadStylesheet())
		return
	}

	missing := hypr.MissingTools(cfg.Tools.Hyprctl, cfg.Tools.Brightnessctl, cfg.Tools.Hyprsunset)
	if len(missing) > 0 {
		logging.Warn("Missing display tools: %s", strings.Join(missing, ", "))
		fmt.Fprintf(os.Stderr, "Warning: missing tools: %s\n", strings.Join(missing, ", "))
	}

	client := hypr.NewClient()
	client.SetTools(cfg.Tools.Hyprctl, cfg.Tools.Brightnessctl)

	sunset := hypr.NewSunset()
	sunset.SetTool(cfg.Tools.Hyprsunset)
	defer sunset.Disable()

	startTUI(client, sunset, cfg)
}

func showHelp() {
	fmt.Println("Dispctl - Hyprland Display Settings")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  dispctl                      Start the display settings TUI")
	fmt.Println("  dispctl --theme FILE, -t FILE Use a custom theme color file")
	fmt.Println("  dispctl --css                Print the generated stylesheet and exit")
	fmt.Println("  dispctl --version, -v        Display version and build information")
	fmt.Println("  dispctl --help, -h           Show this help message")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --theme FILE, -t FILE        Read colors from FILE instead of the omarchy")
	fmt.Println("                               theme under ~/.config/omarchy/. The file is a")
	fmt.Println("                               simple key=value list of hex or rgb() colors.")
	fmt.Println()
	fmt.Println("  --css                        Render the active theme to a stylesheet on")
	fmt.Println("                               stdout and exit. Useful for checking what a")
	fmt.Println("                               theme file resolves to.")
	fmt.Println()
	fmt.Println("  --version, -v                Shows the version information including")
	fmt.Println("                               git tag, build time, and commit hash.")
	fmt.Println()
	fmt.Println("  --help, -h                   Shows this help message.")
	fmt.Println()
	fmt.Println("For more information, see the README.md file.")
}
