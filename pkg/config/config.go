package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/df07/raest/pkg/pdf"
	"github.com/df07/raest/pkg/scene"
)

// ErrInvalidConfig is returned by Validate for out of range settings
var ErrInvalidConfig = errors.New("config: invalid value")

// Config represents the main configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
}

// RenderConfig contains the scene and sampling settings
type RenderConfig struct {
	Scene      string  `yaml:"scene"` // Built-in scene name or path to a YAML scene description
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Samples    int     `yaml:"samples"` // Samples per pixel
	Threads    int     `yaml:"threads"` // Render workers; 0 means one per CPU
	MaxDepth   int     `yaml:"max_depth"`
	MixBias    float64 `yaml:"mix_bias"` // Weight of material sampling against light sampling
	Seed       int64   `yaml:"seed"`
	EarthImage string  `yaml:"earth_image"` // Texture for the earth scene
}

// OutputConfig contains output settings
type OutputConfig struct {
	Path string `yaml:"path"` // PNG file; empty skips writing the image
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	defaults := scene.DefaultOptions()

	return &Config{
		Render: RenderConfig{
			Scene:      "random",
			Width:      defaults.Sampling.Width,
			Height:     defaults.Sampling.Height,
			Samples:    defaults.Sampling.SamplesPerPixel,
			Threads:    4,
			MaxDepth:   defaults.Sampling.MaxDepth,
			MixBias:    pdf.DefaultMixBias,
			Seed:       defaults.Seed,
			EarthImage: defaults.EarthImage,
		},
		Output: OutputConfig{
			Path: "output.png",
		},
	}
}

// LoadConfig loads the configuration from a file. Settings missing from the
// file keep their default values.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", filePath, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks that the settings can be rendered
func (c *Config) Validate() error {
	r := c.Render
	switch {
	case r.Scene == "":
		return fmt.Errorf("%w: scene must be set", ErrInvalidConfig)
	case r.Width < 2 || r.Height < 2:
		return fmt.Errorf("%w: image must be at least 2x2, got %dx%d", ErrInvalidConfig, r.Width, r.Height)
	case r.Samples <= 0:
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, r.Samples)
	case r.Threads < 0:
		return fmt.Errorf("%w: threads must not be negative, got %d", ErrInvalidConfig, r.Threads)
	case r.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, r.MaxDepth)
	case r.MixBias < 0 || r.MixBias > 1:
		return fmt.Errorf("%w: mix bias must be within [0, 1], got %v", ErrInvalidConfig, r.MixBias)
	}
	return nil
}

// SceneOptions returns the options used to construct the scene
func (c *Config) SceneOptions() scene.Options {
	return scene.Options{
		Sampling: scene.SamplingConfig{
			Width:           c.Render.Width,
			Height:          c.Render.Height,
			SamplesPerPixel: c.Render.Samples,
			MaxDepth:        c.Render.MaxDepth,
			MixBias:         c.Render.MixBias,
		},
		Seed:       c.Render.Seed,
		EarthImage: c.Render.EarthImage,
	}
}
