// Package config loads the settings of the orrery viewer.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config name searched for when no explicit path is given.
const FileName = "xform3d"

// Config is the viewer configuration.
type Config struct {
	Window    WindowConfig    `yaml:"window" mapstructure:"window"`
	Camera    CameraConfig    `yaml:"camera" mapstructure:"camera"`
	Animation AnimationConfig `yaml:"animation" mapstructure:"animation"`
	LogLevel  string          `yaml:"log_level" mapstructure:"log_level"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" mapstructure:"width"`
	Height int    `yaml:"height" mapstructure:"height"`
	Title  string `yaml:"title" mapstructure:"title"`
}

// CameraConfig places the look-at camera and sizes the orthographic view
// box. HalfExtent is half the visible height in world units, the width
// follows the window aspect ratio.
type CameraConfig struct {
	Eye        []float64 `yaml:"eye" mapstructure:"eye"`
	Target     []float64 `yaml:"target" mapstructure:"target"`
	Up         []float64 `yaml:"up" mapstructure:"up"`
	HalfExtent float64   `yaml:"half_extent" mapstructure:"half_extent"`
	Near       float64   `yaml:"near" mapstructure:"near"`
	Far        float64   `yaml:"far" mapstructure:"far"`
}

type AnimationConfig struct {
	DaysPerSecond float64 `yaml:"days_per_second" mapstructure:"days_per_second"`
	Paused        bool    `yaml:"paused" mapstructure:"paused"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "xform3d orrery",
		},
		Camera: CameraConfig{
			Eye:        []float64{0, 12, 20},
			Target:     []float64{0, 0, 0},
			Up:         []float64{0, 1, 0},
			HalfExtent: 12,
			Near:       0.1,
			Far:        100,
		},
		Animation: AnimationConfig{
			DaysPerSecond: 30,
		},
		LogLevel: "info",
	}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("window.width", cfg.Window.Width)
	v.SetDefault("window.height", cfg.Window.Height)
	v.SetDefault("window.title", cfg.Window.Title)
	v.SetDefault("camera.eye", cfg.Camera.Eye)
	v.SetDefault("camera.target", cfg.Camera.Target)
	v.SetDefault("camera.up", cfg.Camera.Up)
	v.SetDefault("camera.half_extent", cfg.Camera.HalfExtent)
	v.SetDefault("camera.near", cfg.Camera.Near)
	v.SetDefault("camera.far", cfg.Camera.Far)
	v.SetDefault("animation.days_per_second", cfg.Animation.DaysPerSecond)
	v.SetDefault("animation.paused", cfg.Animation.Paused)
	v.SetDefault("log_level", cfg.LogLevel)
}

// Load reads the configuration from path. With an empty path, a file
// named xform3d.yaml is searched in the working directory and in
// $HOME/.xform3d, a missing file is not an error. Environment variables
// prefixed with XFORM3D_ override file values, e.g. XFORM3D_WINDOW_WIDTH.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".xform3d"))
		}
	}

	v.SetEnvPrefix("XFORM3D")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		slog.Debug("Loaded config", slog.String("path", v.ConfigFileUsed()))
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg as yaml to path, creating the parent directory.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks values that would otherwise fail later when building
// the view transform.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}

	for name, vec := range map[string][]float64{
		"eye":    c.Camera.Eye,
		"target": c.Camera.Target,
		"up":     c.Camera.Up,
	} {
		if len(vec) != 3 {
			return fmt.Errorf("camera %s needs 3 components, got %d", name, len(vec))
		}
	}

	if c.Camera.HalfExtent <= 0 {
		return fmt.Errorf("camera half_extent %v must be positive", c.Camera.HalfExtent)
	}

	if c.Camera.Near == c.Camera.Far {
		return fmt.Errorf("camera near and far are both %v", c.Camera.Near)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
