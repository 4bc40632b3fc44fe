package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type Config struct {
	Theme  string `json:"theme"`
	Sound  bool   `json:"sound"`
	Volume int    `json:"volume"`
	Scale  int    `json:"scale"`
}

func defaultConfig() Config {
	return Config{
		Theme:  themes[0].Name,
		Sound:  true,
		Volume: 70,
		Scale:  1,
	}
}

// loadConfig reads settings from dir, falling back to defaults for a
// missing file or missing fields. An empty dir means the user config dir.
func loadConfig(dir string) (Config, error) {
	config := defaultConfig()
	path, err := configPath(dir)
	if err != nil {
		return config, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return defaultConfig(), fmt.Errorf("decode config %s: %w", path, err)
	}
	if themeIndexByName(config.Theme) < 0 {
		config.Theme = themes[0].Name
	}
	config.Scale = clampScale(config.Scale)
	config.Volume = clampVolumePercent(config.Volume)
	return config, nil
}

func saveConfig(dir string, config Config) error {
	path, err := configPath(dir)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func configPath(dir string) (string, error) {
	if dir == "" {
		root, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(root, "termtris")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return filepath.Join(dir, "config.json"), nil
}
