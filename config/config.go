// Package config holds the parameters of a benchmark run.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ProtonMail/stopwatch/hooks"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWarmup   = 2 * time.Second
	DefaultTime     = 5 * time.Second
	DefaultParallel = 1
)

var validate = validator.New()

// Configuration is read-only for the duration of a run.
type Configuration struct {
	// Warmup is how long the function is run before samples are kept. Zero skips the warmup phase.
	Warmup time.Duration `yaml:"warmup" validate:"gte=0"`

	// Time is how long samples are collected for. Zero skips the measurement.
	Time time.Duration `yaml:"time" validate:"gte=0"`

	// Parallel is the number of workers sampling a scenario at the same time.
	Parallel int `yaml:"parallel" validate:"gte=1,lte=4096"`

	// PrintFastWarning enables the warning raised when a function is too fast to be measured accurately.
	PrintFastWarning bool `yaml:"print_fast_warning"`

	// Hooks are applied to every scenario, in addition to the scenario's own hooks.
	Hooks hooks.Set `yaml:"-" validate:"-"`
}

// Default returns the default configuration.
func Default() Configuration {
	return Configuration{
		Warmup:           DefaultWarmup,
		Time:             DefaultTime,
		Parallel:         DefaultParallel,
		PrintFastWarning: true,
	}
}

// Validate checks the configuration values.
func (c Configuration) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// Parse decodes YAML on top of the default configuration.
func Parse(data []byte) (Configuration, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}

	return cfg, nil
}

// Load reads a YAML configuration file.
func Load(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, err
	}

	return Parse(data)
}
