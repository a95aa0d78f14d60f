// Package config loads game settings from defaults, an optional YAML file,
// the environment and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rechenquiz/rechenquiz/internal/countdown"
	"github.com/rechenquiz/rechenquiz/internal/problemgen"
	"github.com/rechenquiz/rechenquiz/internal/session"
)

// Environment variables recognized by Load.
const (
	EnvConfigFile   = "RECHENQUIZ_CONFIG"
	EnvDuration     = "RECHENQUIZ_DURATION"
	EnvRetries      = "RECHENQUIZ_RETRIES"
	EnvTick         = "RECHENQUIZ_TICK"
	EnvCorrectDelay = "RECHENQUIZ_CORRECT_DELAY"
	EnvWrongDelay   = "RECHENQUIZ_WRONG_DELAY"
	EnvDebug        = "RECHENQUIZ_DEBUG"
	EnvLogFile      = "RECHENQUIZ_LOG_FILE"
	EnvCheckUpdates = "RECHENQUIZ_CHECK_UPDATES"
)

// DefaultLogFile is where debug logs go when no path is configured.
const DefaultLogFile = "rechenquiz.log"

// ErrInvalid wraps every validation and parse failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all game settings.
type Config struct {
	// DurationSecs is the session length in seconds.
	DurationSecs int `yaml:"duration_secs"`

	// Retries is the number of extra tries per question.
	Retries int `yaml:"retries"`

	// TickInterval is the wall-clock length of one countdown second.
	TickInterval time.Duration `yaml:"tick_interval"`

	// CorrectDelay and WrongDelay control how long feedback is shown
	// before the next question.
	CorrectDelay time.Duration `yaml:"correct_delay"`
	WrongDelay   time.Duration `yaml:"wrong_delay"`

	// Ranges are the operand ranges for the question generator.
	Ranges problemgen.Ranges `yaml:"ranges"`

	// Debug enables logging to LogFile.
	Debug   bool   `yaml:"debug"`
	LogFile string `yaml:"log_file"`

	// CheckUpdates lets the start screen look for a newer release.
	CheckUpdates bool `yaml:"check_updates"`
}

// Default returns the classic settings: three minutes, one
// retry, a one-second tick.
func Default() Config {
	return Config{
		DurationSecs: session.DefaultDuration,
		Retries:      session.DefaultRetries,
		TickInterval: countdown.DefaultInterval,
		CorrectDelay: session.DefaultCorrectDelay,
		WrongDelay:   session.DefaultWrongDelay,
		Ranges:       problemgen.DefaultRanges(),
		LogFile:      DefaultLogFile,
	}
}

// Load resolves settings in priority order:
// 1. Defaults
// 2. YAML file at path, or RECHENQUIZ_CONFIG when path is empty
// 3. RECHENQUIZ_* environment variables (a .env file is loaded first)
//
// Command-line flags are applied by the caller afterwards, followed by Validate.
func Load(path string) (*Config, error) {
	// Load .env file if it exists.
	_ = godotenv.Load()
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path == "" {
		path, _ = lookup(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// readFile overlays the YAML file on top of the current values. Keys the
// file leaves out keep their defaults.
func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalid, path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDuration); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvDuration, v)
		}
		c.DurationSecs = n
	}
	if v, ok := lookup(EnvRetries); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvRetries, v)
		}
		c.Retries = n
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvTick, &c.TickInterval},
		{EnvCorrectDelay, &c.CorrectDelay},
		{EnvWrongDelay, &c.WrongDelay},
	}
	for _, d := range durations {
		v, ok := lookup(d.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a valid duration: %v", ErrInvalid, d.key, v, err)
		}
		*d.dst = parsed
	}

	flags := []struct {
		key string
		dst *bool
	}{
		{EnvDebug, &c.Debug},
		{EnvCheckUpdates, &c.CheckUpdates},
	}
	for _, f := range flags {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, f.key, v)
		}
		*f.dst = b
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}
	return nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.DurationSecs <= 0:
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalid, c.DurationSecs)
	case c.Retries < 0:
		return fmt.Errorf("%w: retries must not be negative, got %d", ErrInvalid, c.Retries)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalid, c.TickInterval)
	case c.CorrectDelay < 0 || c.WrongDelay < 0:
		return fmt.Errorf("%w: feedback delays must not be negative", ErrInvalid)
	}
	if err := c.Ranges.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Session returns the state machine settings.
func (c *Config) Session() session.Config {
	return session.Config{
		Duration:     c.DurationSecs,
		Retries:      c.Retries,
		CorrectDelay: c.CorrectDelay,
		WrongDelay:   c.WrongDelay,
	}
}
