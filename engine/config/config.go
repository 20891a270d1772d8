// Package config loads the application configuration from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. EVENTHORIZON_CAMERA_ROTATION_SPEED.
const EnvPrefix = "EVENTHORIZON"

// Config holds all application configuration.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Camera CameraConfig `mapstructure:"camera"`
	Engine EngineConfig `mapstructure:"engine"`
	Log    LogConfig    `mapstructure:"log"`
}

// WindowConfig configures the window.
type WindowConfig struct {
	Title string `mapstructure:"title"`
	// Width and Height are used when no resolution preset has been saved.
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// CameraConfig tunes the cinematic camera controller.
type CameraConfig struct {
	RotationSpeed  float64    `mapstructure:"rotation_speed"`  // rad/s
	MoveSpeed      float64    `mapstructure:"move_speed"`      // units/s
	MoveEasing     float64    `mapstructure:"move_easing"`     // k in 1 - e^(-k·dt)
	RotationEasing float64    `mapstructure:"rotation_easing"` // k in 1 - e^(-k·dt)
	Smoothing      bool       `mapstructure:"smoothing"`
	Position       [3]float64 `mapstructure:"position"` // initial and reset position
	Mode           string     `mapstructure:"mode"`     // starting mode name
}

// EngineConfig configures the frame loop.
type EngineConfig struct {
	FrameLimit     float64 `mapstructure:"frame_limit"`     // max frames per second, 0 = uncapped
	Profiling      bool    `mapstructure:"profiling"`       // log frame statistics
	Workers        int     `mapstructure:"workers"`         // background task workers
	ResolutionFile string  `mapstructure:"resolution_file"` // overrides ~/.blackhole_resolution
}

// LogConfig configures logging.
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - *Config: the default configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Event Horizon",
			Width:  1920,
			Height: 1080,
		},
		Camera: CameraConfig{
			RotationSpeed:  0.3,
			MoveSpeed:      0.8,
			MoveEasing:     12.0,
			RotationEasing: 15.0,
			Smoothing:      true,
			Position:       [3]float64{0, 2, 20},
			Mode:           "manual",
		},
		Engine: EngineConfig{
			FrameLimit: 0,
			Profiling:  false,
			Workers:    1,
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// NewViper returns a viper instance preloaded with the defaults and environment binding.
// Callers may bind flags to it before passing it to Load.
//
// Returns:
//   - *viper.Viper: the configured viper instance
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)

	v.SetDefault("camera.rotation_speed", d.Camera.RotationSpeed)
	v.SetDefault("camera.move_speed", d.Camera.MoveSpeed)
	v.SetDefault("camera.move_easing", d.Camera.MoveEasing)
	v.SetDefault("camera.rotation_easing", d.Camera.RotationEasing)
	v.SetDefault("camera.smoothing", d.Camera.Smoothing)
	v.SetDefault("camera.position", d.Camera.Position[:])
	v.SetDefault("camera.mode", d.Camera.Mode)

	v.SetDefault("engine.frame_limit", d.Engine.FrameLimit)
	v.SetDefault("engine.profiling", d.Engine.Profiling)
	v.SetDefault("engine.workers", d.Engine.Workers)
	v.SetDefault("engine.resolution_file", d.Engine.ResolutionFile)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.console", d.Log.Console)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration into a Config.
// If path is set that file must exist; otherwise config.yaml is looked up in
// ~/.eventhorizon and the working directory, and a missing file means defaults.
//
// Parameters:
//   - v: the viper instance from NewViper
//   - path: explicit config file path, or "" to search
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if the file exists but cannot be read or decoded
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".eventhorizon"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
