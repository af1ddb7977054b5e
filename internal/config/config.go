// Package config handles viewer configuration loading and management.
package config

import "path/filepath"

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Scenes  []ModelConfig `yaml:"scenes"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"`
}

// ViewerConfig holds rendering and interaction settings.
type ViewerConfig struct {
	Textures      bool         `yaml:"textures"`
	Orthographic  bool         `yaml:"orthographic"`
	AutoRotate    bool         `yaml:"auto_rotate"`
	RotateSpeed   float32      `yaml:"rotate_speed"` // degrees per second
	ShowAxes      bool         `yaml:"show_axes"`
	FOV           float32      `yaml:"fov"` // vertical, degrees
	Background    [3]float32   `yaml:"background"`
	Lights        LightsConfig `yaml:"lights"`
	ScreenshotDir string       `yaml:"screenshot_dir"`
}

// LightsConfig selects which lights of the three-point rig start enabled.
type LightsConfig struct {
	Key  bool `yaml:"key"`
	Back bool `yaml:"back"`
	Fill bool `yaml:"fill"`
}

// ModelConfig describes one scene: a root model and optional parts attached
// beneath it.
type ModelConfig struct {
	Name  string   `yaml:"name"`
	Path  string   `yaml:"path"`
	Parts []string `yaml:"parts"`
}

// DisplayName returns Name, or the file name of Path when Name is empty.
func (m ModelConfig) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return filepath.Base(m.Path)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "objview",
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Viewer: ViewerConfig{
			Textures:     true,
			Orthographic: false,
			AutoRotate:   true,
			RotateSpeed:  20,
			ShowAxes:     false,
			FOV:          45,
			Background:   [3]float32{0.1, 0.1, 0.12},
			Lights: LightsConfig{
				Key:  true,
				Back: true,
				Fill: true,
			},
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}
