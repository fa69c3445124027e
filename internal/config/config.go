// Package config loads the optional YAML settings file of the weatherutils
// command. Command-line flags take precedence over every field.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udawtr/weatherutils-go/weatherutils"
)

// Default values applied when fields are absent from the settings file.
const (
	DefaultLogLevel        = "ERROR"
	DefaultPrecision       = 2
	DefaultTemperatureUnit = "C"
	DefaultPressureUnit    = "hPa"

	// MaxPrecision bounds Precision; float64 carries no more significant decimals.
	MaxPrecision = 15
)

// LogLevels lists the accepted log_level values, most verbose first.
var LogLevels = []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}

// Config maps 1:1 to the settings file:
//
//	log_level: INFO
//	precision: 3
//	temperature_unit: F
//	pressure_unit: inHg
type Config struct {
	// LogLevel is one of LogLevels.
	LogLevel string `yaml:"log_level"`

	// Precision is the number of decimals printed for results.
	Precision int `yaml:"precision"`

	// TemperatureUnit is the unit assumed for --temperature when --unit is absent.
	TemperatureUnit string `yaml:"temperature_unit"`

	// PressureUnit is the unit assumed for --pressure when --pressure-unit is absent.
	PressureUnit string `yaml:"pressure_unit"`

	tempUnit     weatherutils.TemperatureUnit
	pressureUnit weatherutils.PressureUnit
}

// Default returns the configuration used when no settings file is given.
func Default() Config {
	cfg := Config{
		LogLevel:        DefaultLogLevel,
		Precision:       DefaultPrecision,
		TemperatureUnit: DefaultTemperatureUnit,
		PressureUnit:    DefaultPressureUnit,
		tempUnit:        weatherutils.UnitCelsius,
		pressureUnit:    weatherutils.UnitHectopascal,
	}
	return cfg
}

// Load reads the settings file at path. An empty path yields Default().
// Fields missing from the file keep their default; unknown fields are an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a settings document.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// TemperatureUnitValue returns the parsed temperature_unit.
func (c Config) TemperatureUnitValue() weatherutils.TemperatureUnit {
	return c.tempUnit
}

// PressureUnitValue returns the parsed pressure_unit.
func (c Config) PressureUnitValue() weatherutils.PressureUnit {
	return c.pressureUnit
}

func (c *Config) validate() error {
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
	if !validLogLevel(c.LogLevel) {
		return fmt.Errorf("config: invalid log_level %q (allowed: %s)", c.LogLevel, strings.Join(LogLevels, ", "))
	}

	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("config: precision %d out of range 0..%d", c.Precision, MaxPrecision)
	}

	tu, err := weatherutils.ParseTemperatureUnit(c.TemperatureUnit)
	if err != nil {
		return fmt.Errorf("config: temperature_unit: %w", err)
	}
	c.tempUnit = tu

	pu, err := weatherutils.ParsePressureUnit(c.PressureUnit)
	if err != nil {
		return fmt.Errorf("config: pressure_unit: %w", err)
	}
	c.pressureUnit = pu

	return nil
}

func validLogLevel(s string) bool {
	for _, l := range LogLevels {
		if s == l {
			return true
		}
	}
	return false
}
