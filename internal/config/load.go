package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags < model
// paths given as arguments.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the standard locations.
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
	applyArgs(cfg, Args())

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./objview.yaml",
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
		return filepath.Join(home, "Library", "Application Support", "objview")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "objview")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "objview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "objview")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// Relative scene paths are resolved against the file's directory.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	resolveScenes(cfg.Scenes, filepath.Dir(path))
	return nil
}

func resolveScenes(scenes []ModelConfig, base string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	for i := range scenes {
		scenes[i].Path = abs(scenes[i].Path)
		for j := range scenes[i].Parts {
			scenes[i].Parts[j] = abs(scenes[i].Parts[j])
		}
	}
}

// applyArgs replaces the configured scenes with one scene per model path.
func applyArgs(cfg *Config, args []string) {
	if len(args) == 0 {
		return
	}
	scenes := make([]ModelConfig, 0, len(args))
	for _, p := range args {
		scenes = append(scenes, ModelConfig{Path: p})
	}
	cfg.Scenes = scenes
}

// Validate reports settings the viewer cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Viewer.FOV <= 0 || c.Viewer.FOV >= 180 {
		return fmt.Errorf("invalid field of view %g", c.Viewer.FOV)
	}
	if len(c.Scenes) == 0 {
		return fmt.Errorf("no models to show: pass .obj paths or configure scenes")
	}
	for i, s := range c.Scenes {
		if s.Path == "" {
			return fmt.Errorf("scene %d has no path", i)
		}
	}
	return nil
}
