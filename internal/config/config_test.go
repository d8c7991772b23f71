package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/tablefsm/internal/config"
)

var vars = []string{
	"TABLEFSM_INSTANCES", "TABLEFSM_TICK", "TABLEFSM_CYCLES",
	"TABLEFSM_EXPORT_DIR", "TABLEFSM_LOG_LEVEL", "TABLEFSM_LOG_FORMAT",
}

// clearEnv unsets every variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range vars {
		t.Setenv(v, "")
		require.NoError(t, os.Unsetenv(v))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Instances)
	assert.Equal(t, 10*time.Millisecond, cfg.Tick)
	assert.Equal(t, 3, cfg.Cycles)
	assert.Empty(t, cfg.ExportDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("TABLEFSM_INSTANCES", "8")
	t.Setenv("TABLEFSM_TICK", "250ms")
	t.Setenv("TABLEFSM_LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Instances)
	assert.Equal(t, 250*time.Millisecond, cfg.Tick)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_DotenvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env.demo")
	require.NoError(t, os.WriteFile(path, []byte("TABLEFSM_CYCLES=7\nTABLEFSM_EXPORT_DIR=out\n"), 0o644))
	t.Setenv("TABLEFSM_EXPORT_DIR", "from-env")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Cycles)
	assert.Equal(t, "from-env", cfg.ExportDir, "environment wins over dotenv")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("TABLEFSM_TICK", "soon")

	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("TABLEFSM_INSTANCES", "0")

	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
