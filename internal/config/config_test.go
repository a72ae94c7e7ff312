// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leb.io/primetools"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "primetools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, uint64(primetools.DefaultSegment), cfg.Walk.Segment)
	assert.Equal(t, 0, cfg.Check.ProbableRounds)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
check:
  probable_rounds: 7
walk:
  segment: 4096
verify:
  seed: 99
  trials: 2
  factor_limit: 1000000
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output, "unset keys keep defaults")
	assert.Equal(t, 7, cfg.Check.ProbableRounds)
	assert.Equal(t, uint64(4096), cfg.Walk.Segment)
	assert.Equal(t, int64(99), cfg.Verify.Seed)
	assert.Equal(t, 2, cfg.Verify.Trials)
	assert.Equal(t, uint32(1000000), cfg.Verify.FactorLimit)
	assert.Equal(t, DefaultConfig().Verify.Below, cfg.Verify.Below)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "check:\n  probable_rounds: 3\n")
	t.Setenv("PRIMETOOLS_CHECK_PROBABLE_ROUNDS", "9")
	t.Setenv("PRIMETOOLS_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Check.ProbableRounds)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides(Overrides{})
	assert.Equal(t, DefaultConfig(), cfg)

	rounds := 0
	cfg.Check.ProbableRounds = 5
	cfg.ApplyOverrides(Overrides{LogLevel: "error", LogFormat: "json", ProbableRounds: &rounds, Segment: 128})
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 0, cfg.Check.ProbableRounds, "an explicit zero still overrides")
	assert.Equal(t, uint64(128), cfg.Walk.Segment)
}

func TestVerifyPlan(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Verify.Ranges = 3
	p := cfg.Verify.Plan()
	assert.Equal(t, 3, p.Ranges)
	assert.Equal(t, cfg.Verify.PrimeBound, p.PrimeBound)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"negative rounds", func(c *Config) { c.Check.ProbableRounds = -1 }, "check.probable_rounds"},
		{"too many rounds", func(c *Config) { c.Check.ProbableRounds = primetools.MaxProbableRounds + 1 }, "check.probable_rounds"},
		{"no trials", func(c *Config) { c.Verify.Trials = 0 }, "verify.trials"},
		{"negative workers", func(c *Config) { c.Verify.Workers = -1 }, "verify.workers"},
		{"zero width", func(c *Config) { c.Verify.RangeWidth = 0 }, "verify.range_width"},
		{"factor limit", func(c *Config) { c.Verify.FactorLimit = 1 }, "verify.factor_limit"},
		{"prime bound", func(c *Config) { c.Verify.PrimeBound = 0 }, "verify.prime_bound"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateSkippedChecksNeedNoBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Verify.Ranges = 0
	cfg.Verify.RangeWidth = 0
	cfg.Verify.Primality = 0
	cfg.Verify.PrimeBound = 0
	assert.NoError(t, cfg.Validate())
}

func TestValidationErrorsCollects(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "x"
	cfg.Verify.Trials = 0
	var verrs ValidationErrors
	require.ErrorAs(t, cfg.Validate(), &verrs)
	assert.Len(t, verrs, 2)
	assert.Equal(t, "", ValidationErrors{}.Error())
}
