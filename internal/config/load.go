package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations.
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer and dump cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Animation.FramesPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("animation: frames_per_second must be > 0, got %v", c.Animation.FramesPerSecond))
	}
	if c.Animation.StartFrame < 0 {
		errs = append(errs, fmt.Errorf("animation: start_frame must be >= 0, got %d", c.Animation.StartFrame))
	}
	if c.Export.Step <= 0 {
		errs = append(errs, fmt.Errorf("export: step must be > 0, got %d", c.Export.Step))
	}
	if c.Export.To < c.Export.From {
		errs = append(errs, fmt.Errorf("export: to (%d) is before from (%d)", c.Export.To, c.Export.From))
	}
	return errors.Join(errs...)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Tesseract")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Tesseract")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "tesseract")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "tesseract")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
