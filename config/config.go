// Package config holds the settings for a sampler run. Values come from
// defaults, then an optional YAML file, then MHSAMPLE_* environment
// variables; command line flags are applied on top by the caller.
package config

import (
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "MHSAMPLE_"

// Config is the root configuration structure
type Config struct {
	Seed      int64     `yaml:"seed" env:"SEED"`
	Steps     int       `yaml:"steps" env:"STEPS"`
	StepSize  Floats    `yaml:"step_size" env:"STEP_SIZE" envSeparator:","`
	Initial   Floats    `yaml:"initial,omitempty" env:"INITIAL" envSeparator:","`
	BurnIn    float64   `yaml:"burn_in" env:"BURN_IN"`
	Report    int       `yaml:"report" env:"REPORT"`
	TraceFile string    `yaml:"trace_file,omitempty" env:"TRACE_FILE"`
	Monitor   string    `yaml:"monitor,omitempty" env:"MONITOR"`

	Line  LineConfig  `yaml:"line" envPrefix:"LINE_"`
	Gauss GaussConfig `yaml:"gauss" envPrefix:"GAUSS_"`
}

// Floats is a list of numbers that may also be written in YAML as a single
// scalar, so "step_size: 0.5" and "step_size: [0.5]" are the same.
type Floats []float64

// UnmarshalYAML accepts either a scalar or a sequence
func (f *Floats) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var v float64
		if err := value.Decode(&v); err != nil {
			return err
		}
		*f = Floats{v}
		return nil
	}

	var vs []float64
	if err := value.Decode(&vs); err != nil {
		return err
	}
	*f = vs
	return nil
}

// LineConfig holds the straight-line fit settings
type LineConfig struct {
	DataFile     string    `yaml:"data_file,omitempty" env:"DATA_FILE"`
	DefaultSigma float64   `yaml:"default_sigma,omitempty" env:"DEFAULT_SIGMA"`
	Lower        []float64 `yaml:"lower,omitempty" env:"LOWER" envSeparator:","`
	Upper        []float64 `yaml:"upper,omitempty" env:"UPPER" envSeparator:","`
}

// GaussConfig holds the known Gaussian target used for checking the sampler
type GaussConfig struct {
	Mean       []float64 `yaml:"mean" env:"MEAN" envSeparator:","`
	Covariance []float64 `yaml:"covariance" env:"COVARIANCE" envSeparator:","`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Seed:     1,
		Steps:    10000,
		StepSize: []float64{0.5},
		BurnIn:   0.2,
		Report:   1000,
		Gauss: GaussConfig{
			Mean:       []float64{1, -2},
			Covariance: []float64{1, 0.6, 0.6, 2},
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path (skipped
// when path is empty) and then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not READ config from %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "Could not PARSE config %s", path)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Wrap(err, "Could not apply environment overrides")
	}

	return cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "Could not marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "Could not WRITE config to %s", path)
	}
	return nil
}

// Check returns an error if a setting can never make a valid run. Dimension
// checks against a particular target happen when the run starts.
func (c *Config) Check() error {
	if c.Steps <= 0 {
		return errors.Errorf("Steps must be positive, have %d", c.Steps)
	}
	if math.IsNaN(c.BurnIn) || c.BurnIn < 0 || c.BurnIn >= 1 {
		return errors.Errorf("Burn-in fraction must be in [0, 1), have %v", c.BurnIn)
	}
	if len(c.StepSize) < 1 {
		return errors.New("At least one step size is required")
	}
	for i, s := range c.StepSize {
		if !(s > 0) || math.IsInf(s, 1) {
			return errors.Errorf("Step size[%d] must be positive and finite, have %v", i, s)
		}
	}
	if c.Report < 0 {
		return errors.Errorf("Report interval must not be negative, have %d", c.Report)
	}
	if c.Line.DefaultSigma < 0 {
		return errors.Errorf("Default sigma must not be negative, have %v", c.Line.DefaultSigma)
	}
	return nil
}
