// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

// Package config provides configuration structures and loading for primetools.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"leb.io/primetools"
	"leb.io/primetools/crosscheck"
)

// EnvPrefix prefixes environment overrides, e.g. PRIMETOOLS_CHECK_PROBABLE_ROUNDS.
const EnvPrefix = "PRIMETOOLS"

// Config represents the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Check   CheckConfig   `yaml:"check" mapstructure:"check"`
	Walk    WalkConfig    `yaml:"walk" mapstructure:"walk"`
	Verify  VerifyConfig  `yaml:"verify" mapstructure:"verify"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// CheckConfig configures primality testing.
type CheckConfig struct {
	ProbableRounds int `yaml:"probable_rounds" mapstructure:"probable_rounds"` // 0 = trial division only
}

// WalkConfig configures segmented walks.
type WalkConfig struct {
	Segment uint64 `yaml:"segment" mapstructure:"segment"` // values per window, 0 = library default
}

// VerifyConfig configures the verify command.
type VerifyConfig struct {
	Seed        int64  `yaml:"seed" mapstructure:"seed"`
	Trials      int    `yaml:"trials" mapstructure:"trials"`
	Workers     int    `yaml:"workers" mapstructure:"workers"` // 0 = one per physical core
	Below       uint32 `yaml:"below" mapstructure:"below"`
	Ranges      int    `yaml:"ranges" mapstructure:"ranges"`
	RangeBound  uint64 `yaml:"range_bound" mapstructure:"range_bound"`
	RangeWidth  uint64 `yaml:"range_width" mapstructure:"range_width"`
	Factors     int    `yaml:"factors" mapstructure:"factors"`
	FactorLimit uint32 `yaml:"factor_limit" mapstructure:"factor_limit"`
	Primality   int    `yaml:"primality" mapstructure:"primality"`
	PrimeBound  uint64 `yaml:"prime_bound" mapstructure:"prime_bound"`
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() *Config {
	plan := crosscheck.DefaultPlan()
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "text", Output: "stderr"},
		Check:   CheckConfig{ProbableRounds: 0},
		Walk:    WalkConfig{Segment: primetools.DefaultSegment},
		Verify: VerifyConfig{
			Seed:        1,
			Trials:      4,
			Workers:     0,
			Below:       plan.Below,
			Ranges:      plan.Ranges,
			RangeBound:  plan.RangeBound,
			RangeWidth:  plan.RangeWidth,
			Factors:     plan.Factors,
			FactorLimit: plan.FactorLimit,
			Primality:   plan.Primality,
			PrimeBound:  plan.PrimeBound,
		},
	}
}

// Plan converts the verify settings to a crosscheck plan.
func (v VerifyConfig) Plan() crosscheck.Plan {
	return crosscheck.Plan{
		Below:       v.Below,
		Ranges:      v.Ranges,
		RangeBound:  v.RangeBound,
		RangeWidth:  v.RangeWidth,
		Factors:     v.Factors,
		FactorLimit: v.FactorLimit,
		Primality:   v.Primality,
		PrimeBound:  v.PrimeBound,
	}
}

// CheckerConfig converts the check settings to a primetools.Config.
func (c CheckConfig) CheckerConfig() primetools.Config {
	return primetools.Config{ProbableRounds: c.ProbableRounds}
}

// Load reads configuration from the YAML file at configPath, an empty path means
// defaults plus environment. Environment variables override the file.
func Load(configPath string) (*Config, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// newViper returns a viper with every key defaulted, AutomaticEnv only sees known keys.
func newViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("check.probable_rounds", d.Check.ProbableRounds)
	v.SetDefault("walk.segment", d.Walk.Segment)
	v.SetDefault("verify.seed", d.Verify.Seed)
	v.SetDefault("verify.trials", d.Verify.Trials)
	v.SetDefault("verify.workers", d.Verify.Workers)
	v.SetDefault("verify.below", d.Verify.Below)
	v.SetDefault("verify.ranges", d.Verify.Ranges)
	v.SetDefault("verify.range_bound", d.Verify.RangeBound)
	v.SetDefault("verify.range_width", d.Verify.RangeWidth)
	v.SetDefault("verify.factors", d.Verify.Factors)
	v.SetDefault("verify.factor_limit", d.Verify.FactorLimit)
	v.SetDefault("verify.primality", d.Verify.Primality)
	v.SetDefault("verify.prime_bound", d.Verify.PrimeBound)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Overrides holds command line values that take precedence over the file.
type Overrides struct {
	LogLevel       string
	LogFormat      string
	ProbableRounds *int
	Segment        uint64
}

// ApplyOverrides copies the non-zero overrides into c.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
	if o.ProbableRounds != nil {
		c.Check.ProbableRounds = *o.ProbableRounds
	}
	if o.Segment != 0 {
		c.Walk.Segment = o.Segment
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for valid values.
func (c *Config) Validate() error {
	var errs ValidationErrors

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", c.Logging.Level)})
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, ValidationError{Field: "logging.format", Message: fmt.Sprintf("unknown format %q", c.Logging.Format)})
	}

	if err := c.Check.CheckerConfig().Validate(); err != nil {
		if !errors.Is(err, primetools.ErrRounds) {
			return err
		}
		errs = append(errs, ValidationError{Field: "check.probable_rounds", Message: err.Error()})
	}

	if c.Verify.Trials < 1 {
		errs = append(errs, ValidationError{Field: "verify.trials", Message: "must be at least 1"})
	}
	if c.Verify.Workers < 0 {
		errs = append(errs, ValidationError{Field: "verify.workers", Message: "must not be negative"})
	}
	if c.Verify.Ranges > 0 && c.Verify.RangeWidth == 0 {
		errs = append(errs, ValidationError{Field: "verify.range_width", Message: "must be positive when ranges are checked"})
	}
	if c.Verify.Factors > 0 && c.Verify.FactorLimit < 2 {
		errs = append(errs, ValidationError{Field: "verify.factor_limit", Message: "must be at least 2"})
	}
	if c.Verify.Primality > 0 && c.Verify.PrimeBound == 0 {
		errs = append(errs, ValidationError{Field: "verify.prime_bound", Message: "must be positive when primality is checked"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
