package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alif-lang/als/internal/config"
)

func TestDefaultMatchesBuiltInValues(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 0, cfg.Pool.Workers)
	assert.Equal(t, 256, cfg.Pool.MaxQueue)
	assert.Equal(t, 50, cfg.Completion.MaxItems)
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "als.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadOverridesOnlyFieldsThePresentInTheFile(t *testing.T) {
	path := writeConfig(t, `
[server]
log_level = "debug"

[pool]
workers = 4
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 4, cfg.Pool.Workers)
	// max_queue and completion.max_items were absent from the file, so
	// they keep their built-in defaults rather than zeroing out.
	assert.Equal(t, 256, cfg.Pool.MaxQueue)
	assert.Equal(t, 50, cfg.Completion.MaxItems)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, `this is not valid toml =`)
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestApplyOverridesPrefersCLIOverConfigFile(t *testing.T) {
	cfg := config.Default()
	cfg.Server.LogLevel = "warn"
	cfg.Pool.Workers = 2

	cfg.ApplyOverrides("trace", "", 8, 512, 100)

	assert.Equal(t, "trace", cfg.Server.LogLevel)
	assert.Equal(t, 8, cfg.Pool.Workers)
	assert.Equal(t, 512, cfg.Pool.MaxQueue)
	assert.Equal(t, 100, cfg.Completion.MaxItems)
}

func TestApplyOverridesLeavesUnsetFlagsAlone(t *testing.T) {
	cfg := config.Default()
	cfg.Server.LogFile = "/tmp/existing.log"

	cfg.ApplyOverrides("", "", -1, 0, 0)

	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "/tmp/existing.log", cfg.Server.LogFile)
	assert.Equal(t, 0, cfg.Pool.Workers)
	assert.Equal(t, 256, cfg.Pool.MaxQueue)
}
