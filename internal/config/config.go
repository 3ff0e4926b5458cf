// Package config loads lebedev.toml for the lebedev command.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lebedev/internal/logging"
	"github.com/katalvlaran/lebedev/order"
)

// ErrInvalidConfig indicates a value that parses but makes no sense.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved command configuration.
type Config struct {
	Order     order.Order // 0 selects by Degree
	Degree    int
	Workers   int
	Radius    float64
	Tolerance float64
	Format    string
	Output    string // "" or "-" is stdout
	Log       logging.Config
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Order:     order.Order590,
		Workers:   1,
		Radius:    1,
		Tolerance: 1e-10,
		Format:    "text",
		Log:       logging.Default(),
	}
}

type fileConfig struct {
	Order     string  `toml:"order"`
	Degree    int     `toml:"degree"`
	Workers   int     `toml:"workers"`
	Radius    float64 `toml:"radius"`
	Tolerance float64 `toml:"tolerance"`
	Format    string  `toml:"format"`
	Output    string  `toml:"output"`
	Log       struct {
		Level   string `toml:"level"`
		Format  string `toml:"format"`
		NoColor bool   `toml:"no_color"`
	} `toml:"log"`
}

// Load reads path over Default(). Only keys present in the file are applied.
// Setting degree without order selects by degree.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("degree") {
		cfg.Degree = raw.Degree
		cfg.Order = 0
	}
	if meta.IsDefined("order") {
		o, err := order.Parse(raw.Order)
		if err != nil {
			return Config{}, fmt.Errorf("parse order: %w", err)
		}
		cfg.Order = o
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("radius") {
		cfg.Radius = raw.Radius
	}
	if meta.IsDefined("tolerance") {
		cfg.Tolerance = raw.Tolerance
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(raw.Format))
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("log", "format") {
		cfg.Log.Format = strings.ToLower(strings.TrimSpace(raw.Log.Format))
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects values the quadrature options would panic on.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers %d must be ≥ 1: %w", c.Workers, ErrInvalidConfig)
	}
	if math.IsNaN(c.Radius) || math.IsInf(c.Radius, 0) || c.Radius <= 0 {
		return fmt.Errorf("radius %g must be finite and > 0: %w", c.Radius, ErrInvalidConfig)
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance <= 0 {
		return fmt.Errorf("tolerance %g must be finite and > 0: %w", c.Tolerance, ErrInvalidConfig)
	}
	if c.Order == 0 && c.Degree < 0 {
		return fmt.Errorf("degree %d must be ≥ 0: %w", c.Degree, ErrInvalidConfig)
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("log level %q: %w", c.Log.Level, ErrInvalidConfig)
	}

	return nil
}
