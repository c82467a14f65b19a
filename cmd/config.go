package main

import (
	"fmt"
	"io"
	"os"

	"github.com/roeezis/sgl"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config describes a walk through a list of points.
type Config struct {
	LogLevel string      `yaml:"log_level"`
	Weight   float64     `yaml:"weight"`
	Offset   []float64   `yaml:"offset"`
	Points   [][]float64 `yaml:"points"`
}

func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// LoadConfig decodes and validates a YAML config.
func LoadConfig(r io.Reader) (*Config, error) {
	c := Config{
		LogLevel: "info",
		Weight:   0.5,
	}
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if len(c.Points) == 0 {
		return fmt.Errorf("config: no points")
	}
	for i, p := range c.Points {
		if len(p) != 3 {
			return fmt.Errorf("config: point %d has %d coordinates, want 3", i, len(p))
		}
	}
	if c.Offset != nil && len(c.Offset) != 3 {
		return fmt.Errorf("config: offset has %d coordinates, want 3", len(c.Offset))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) Point3s() []sgl.Point3 {
	points := make([]sgl.Point3, 0, len(c.Points))
	for _, p := range c.Points {
		points = append(points, sgl.NewPoint3FromArray(p))
	}
	return points
}

// OffsetVector is the zero vector when no offset is configured.
func (c *Config) OffsetVector() sgl.Vector3 {
	if c.Offset == nil {
		return sgl.Vector3{}
	}
	return sgl.NewVector3FromArray(c.Offset)
}
