package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/opsearch/calibrate"
	"github.com/katalvlaran/opsearch/config"
	"github.com/katalvlaran/opsearch/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// clearEnv blanks every override so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvOperators, config.EnvStrategy, config.EnvWorkers,
		config.EnvMaxAssignments, config.EnvLogLevel,
	} {
		t.Setenv(k, "")
	}
}

// writeFile stores body in a temp YAML file and returns its path.
func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "opsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestLoad_MissingFileUsesDefaults returns a valid default configuration.
func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	alpha, err := cfg.Alphabet()
	require.NoError(t, err)
	assert.Equal(t, operator.Basic(), alpha)
	assert.Positive(t, cfg.Workers)
}

// TestLoad_File reads every field from YAML.
func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
operators: [add, mul, concat]
strategy: pruned
workers: 3
max_assignments: 1000
log_level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	alpha, err := cfg.Alphabet()
	require.NoError(t, err)
	assert.Equal(t, operator.Extended(), alpha)

	s, err := cfg.SearchStrategy()
	require.NoError(t, err)
	assert.Equal(t, calibrate.Pruned, s)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, uint64(1000), cfg.MaxAssignments)
}

// TestLoad_EnvOverrides replaces file values with environment values.
func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "operators: [add]\nworkers: 2\n")
	t.Setenv(config.EnvOperators, "mul,concat")
	t.Setenv(config.EnvWorkers, "6")
	t.Setenv(config.EnvStrategy, "pruned")
	t.Setenv(config.EnvMaxAssignments, "9")
	t.Setenv(config.EnvLogLevel, "warn")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"mul", "concat"}, cfg.Operators)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, "pruned", cfg.Strategy)
	assert.Equal(t, uint64(9), cfg.MaxAssignments)
	assert.Equal(t, "warn", cfg.LogLevel)
}

// TestLoad_Invalid wraps ErrInvalid for every bad field.
func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"operator": "operators: [pow]\n",
		"empty":    "operators: []\n",
		"strategy": "strategy: greedy\n",
		"workers":  "workers: 0\n",
		"level":    "log_level: loud\n",
	}
	for name, body := range cases {
		clearEnv(t)
		_, err := config.Load(writeFile(t, body))
		assert.ErrorIs(t, err, config.ErrInvalid, name)
	}

	clearEnv(t)
	t.Setenv(config.EnvWorkers, "many")
	_, err := config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalid)

	clearEnv(t)
	_, err = config.Load(writeFile(t, "workers: [1\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid, "YAML syntax errors are parse errors")
}

// TestSave_RoundTrip writes and reloads a configuration.
func TestSave_RoundTrip(t *testing.T) {
	clearEnv(t)
	cfg := config.Default()
	cfg.Operators = []string{"concat", "add"}
	cfg.Workers = 2
	path := filepath.Join(t.TempDir(), "nested", "opsearch.yaml")
	require.NoError(t, cfg.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

// TestEngineOptions drives a real search with the converted options.
func TestEngineOptions(t *testing.T) {
	clearEnv(t)
	cfg := config.Default()
	cfg.Operators = []string{"add", "mul", "concat"}
	cfg.Strategy = "pruned"
	cfg.Workers = 2
	require.NoError(t, cfg.Validate())

	alpha, err := cfg.Alphabet()
	require.NoError(t, err)
	eqs := []calibrate.Equation{
		calibrate.MustEquation(156, 15, 6),
		calibrate.MustEquation(83, 17, 5),
	}
	total, err := calibrate.TotalOfSatisfiable(eqs, alpha, cfg.EngineOptions(zap.NewNop())...)
	require.NoError(t, err)
	assert.Equal(t, uint64(156), total)
}
