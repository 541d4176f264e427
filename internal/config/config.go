package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

const (
	StylePoint = "point" // solid background
	StyleLine  = "line"  // vertical gradient background
)

// Config holds the application configuration
type Config struct {
	ImageSize    int     `yaml:"image_size,omitempty"`    // Square canvas side in pixels (fallback: 320)
	Style        string  `yaml:"style,omitempty"`         // "point" or "line" (fallback: point)
	OutputDir    string  `yaml:"output_dir,omitempty"`    // Where render writes PNGs (fallback: images)
	LineWidth    float64 `yaml:"line_width,omitempty"`    // Polyline width (fallback: 2)
	MarkerRadius float64 `yaml:"marker_radius,omitempty"` // Point marker radius (fallback: 5)
	Label        bool    `yaml:"label,omitempty"`         // Draw the timestamp onto each image
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "puntoplot.yaml"
}

// Validate rejects values that can't be rendered. Zero values are allowed
// and fall back to defaults.
func (c *Config) Validate() error {
	if c.ImageSize < 0 {
		return fmt.Errorf("%w: image_size must be positive, got %d", ErrInvalid, c.ImageSize)
	}
	switch c.Style {
	case "", StylePoint, StyleLine:
	default:
		return fmt.Errorf("%w: unknown style %q (available: point, line)", ErrInvalid, c.Style)
	}
	if c.LineWidth < 0 {
		return fmt.Errorf("%w: line_width must not be negative", ErrInvalid)
	}
	if c.MarkerRadius < 0 {
		return fmt.Errorf("%w: marker_radius must not be negative", ErrInvalid)
	}
	return nil
}

// GetImageSize returns the canvas side with a default of 320
func (c *Config) GetImageSize() int {
	if c.ImageSize <= 0 {
		return 320
	}
	return c.ImageSize
}

// GetStyle returns the background style, falling back to point
func (c *Config) GetStyle() string {
	if c.Style == "" {
		return StylePoint
	}
	return c.Style
}

// GetOutputDir returns the directory render writes into
func (c *Config) GetOutputDir() string {
	if c.OutputDir == "" {
		return "images"
	}
	return c.OutputDir
}

// GetLineWidth returns the polyline width, or 2 if not set
func (c *Config) GetLineWidth() float64 {
	if c.LineWidth <= 0 {
		return 2
	}
	return c.LineWidth
}

// GetMarkerRadius returns the marker radius, or 5 if not set
func (c *Config) GetMarkerRadius() float64 {
	if c.MarkerRadius <= 0 {
		return 5
	}
	return c.MarkerRadius
}
