package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Logging    LoggingConfig    `toml:"logging"`
	Tools      ToolsConfig      `toml:"tools"`
	Theme      ThemeConfig      `toml:"theme"`
	NightLight NightLightConfig `toml:"night_light"`
}

type LoggingConfig struct {
	LogFile    string `toml:"log_file"`
	Level      string `toml:"level"`
	MaxAge     int    `toml:"max_age"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	Console    bool   `toml:"console"`
}

type ToolsConfig struct {
	Hyprctl       string `toml:"hyprctl"`
	Brightnessctl string `toml:"brightnessctl"`
	Hyprsunset    string `toml:"hyprsunset"`
}

type ThemeConfig struct {
	File string `toml:"file"`
}

type NightLightConfig struct {
	Temperature int `toml:"temperature"`
}

func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "dispctl")
	configPath := filepath.Join(configDir, "config.toml")

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfig(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	// Fill in defaults for anything the file left out
	if config.Logging.LogFile == "" {
		config.Logging.LogFile = "~/.local/share/dispctl/dispctl.log"
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.MaxAge <= 0 {
		config.Logging.MaxAge = 14 // days
	}
	if config.Logging.MaxSize <= 0 {
		config.Logging.MaxSize = 10 // MB
	}
	if config.Logging.MaxBackups <= 0 {
		config.Logging.MaxBackups = 3
	}

	if config.Tools.Hyprctl == "" {
		config.Tools.Hyprctl = "hyprctl"
	}
	if config.Tools.Brightnessctl == "" {
		config.Tools.Brightnessctl = "brightnessctl"
	}
	if config.Tools.Hyprsunset == "" {
		config.Tools.Hyprsunset = "hyprsunset"
	}

	if config.NightLight.Temperature < 2500 || config.NightLight.Temperature > 6500 {
		config.NightLight.Temperature = 4500
	}

	return &config, nil
}

func createDefaultConfig(configPath string) error {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(`[logging]
log_file = "~/.local/share/dispctl/dispctl.log"
level = "info"
max_age = 14
max_size = 10
max_backups = 3
console = false

[tools]
hyprctl = "hyprctl"
brightnessctl = "brightnessctl"
hyprsunset = "hyprsunset"

[theme]
# Explicit theme file; leave empty to use the Omarchy theme.
file = ""

[night_light]
temperature = 4500
`)

	return err
}
