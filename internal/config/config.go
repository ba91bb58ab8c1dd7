// Package config loads server configuration from an optional YAML file
// with environment overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all server settings.
type Config struct {
	Addr             string `yaml:"addr"`
	RenderServiceURL string `yaml:"render_service_url"`
	PollIntervalMs   int    `yaml:"poll_interval_ms"`
	Verbose          bool   `yaml:"verbose"`

	Composition Composition `yaml:"composition"`
}

// Composition fixes the canvas and frame rate of new projects.
type Composition struct {
	FPS    int `yaml:"fps"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Rows   int `yaml:"rows"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:             ":8080",
		RenderServiceURL: "http://localhost:9000",
		PollIntervalMs:   2000,
		Composition: Composition{
			FPS:    30,
			Width:  1280,
			Height: 720,
			Rows:   5,
		},
	}
}

// Load reads the config file at path (when non-empty) on top of the
// defaults, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if addr := os.Getenv("REELKIT_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if url := os.Getenv("RENDER_SERVICE_URL"); url != "" {
		cfg.RenderServiceURL = url
	}

	if cfg.Composition.FPS <= 0 {
		return Config{}, fmt.Errorf("composition fps must be positive, got %d", cfg.Composition.FPS)
	}
	if cfg.Composition.Rows <= 0 {
		return Config{}, fmt.Errorf("composition rows must be positive, got %d", cfg.Composition.Rows)
	}
	return cfg, nil
}
