package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rechenquiz/rechenquiz/internal/problemgen"
)

func envFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "rechenquiz.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 180, cfg.DurationSecs)
	assert.Equal(t, 1, cfg.Retries)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, 700*time.Millisecond, cfg.CorrectDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.WrongDelay)
	assert.Equal(t, problemgen.DefaultRanges(), cfg.Ranges)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoSources(t *testing.T) {
	cfg, err := load("", envFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
duration_secs: 60
correct_delay: 250ms
ranges:
  minuend:
    min: 30
    max: 39
`)
	cfg, err := load(path, envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.DurationSecs)
	assert.Equal(t, 250*time.Millisecond, cfg.CorrectDelay)
	assert.Equal(t, problemgen.Range{Min: 30, Max: 39}, cfg.Ranges.Minuend)

	// Untouched keys keep their defaults.
	assert.Equal(t, 1, cfg.Retries)
	assert.Equal(t, problemgen.Range{Min: 1, Max: 9}, cfg.Ranges.Subtrahend)
	assert.Equal(t, 1500*time.Millisecond, cfg.WrongDelay)
}

func TestLoad_FileFromEnv(t *testing.T) {
	path := writeFile(t, "retries: 2\n")
	cfg, err := load("", envFrom(map[string]string{EnvConfigFile: path}))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Retries)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "duration_secs: 60\nretries: 3\n")
	cfg, err := load(path, envFrom(map[string]string{
		EnvDuration:     "90",
		EnvTick:         "500ms",
		EnvWrongDelay:   "2s",
		EnvDebug:        "true",
		EnvLogFile:      "/tmp/quiz.log",
		EnvCheckUpdates: "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.DurationSecs)
	assert.Equal(t, 3, cfg.Retries)
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 2*time.Second, cfg.WrongDelay)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/quiz.log", cfg.LogFile)
	assert.True(t, cfg.CheckUpdates)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		env  map[string]string
		is   error
	}{
		{"bad duration", "", map[string]string{EnvDuration: "drei"}, ErrInvalid},
		{"bad retries", "", map[string]string{EnvRetries: "1.5"}, ErrInvalid},
		{"bad tick", "", map[string]string{EnvTick: "fast"}, ErrInvalid},
		{"bad debug", "", map[string]string{EnvDebug: "ja"}, ErrInvalid},
		{"bad check updates", "", map[string]string{EnvCheckUpdates: "nein"}, ErrInvalid},
		{"bad yaml", writeFile(t, "duration_secs: [1, 2"), nil, ErrInvalid},
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml"), nil, os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(tt.path, envFrom(tt.env))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		is     error
	}{
		{"zero duration", func(c *Config) { c.DurationSecs = 0 }, ErrInvalid},
		{"negative retries", func(c *Config) { c.Retries = -1 }, ErrInvalid},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }, ErrInvalid},
		{"negative delay", func(c *Config) { c.WrongDelay = -time.Second }, ErrInvalid},
		{"inverted range", func(c *Config) { c.Ranges.Addend1 = problemgen.Range{Min: 5, Max: 1} }, problemgen.ErrInvalidRange},
		{"unsatisfiable subtraction", func(c *Config) {
			c.Ranges.Minuend = problemgen.Range{Min: 1, Max: 3}
			c.Ranges.Subtrahend = problemgen.Range{Min: 3, Max: 9}
		}, problemgen.ErrUnsatisfiableRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestSession(t *testing.T) {
	cfg := Default()
	cfg.DurationSecs = 30
	cfg.Retries = 2

	sc := cfg.Session()
	assert.Equal(t, 30, sc.Duration)
	assert.Equal(t, 2, sc.Retries)
	assert.Equal(t, cfg.CorrectDelay, sc.CorrectDelay)
	assert.Equal(t, cfg.WrongDelay, sc.WrongDelay)
}
