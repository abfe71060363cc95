package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfigParsesDurations(t *testing.T) {
	path := writeConfigFile(t, `
database:
  conn_max_lifetime: 30m
genai:
  stage_timeout: 45s
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, time.Duration(cfg.Database.ConnMaxLifetime))
	assert.Equal(t, 45*time.Second, time.Duration(cfg.GenAI.StageTimeout))
}

func TestLoadConfigDurationDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, time.Hour, time.Duration(cfg.Database.ConnMaxLifetime))
	assert.Equal(t, 90*time.Second, time.Duration(cfg.GenAI.StageTimeout))
}

func TestLoadConfigDurationEnvOverride(t *testing.T) {
	t.Setenv("GENAI_STAGE_TIMEOUT", "2m")
	t.Setenv("DB_CONN_MAX_LIFETIME", "15m")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2*time.Minute, time.Duration(cfg.GenAI.StageTimeout))
	assert.Equal(t, 15*time.Minute, time.Duration(cfg.Database.ConnMaxLifetime))
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	path := writeConfigFile(t, `
genai:
  stage_timeout: ninety-seconds
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestLoadConfigRejectsBadDurationEnv(t *testing.T) {
	t.Setenv("GENAI_STAGE_TIMEOUT", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GENAI_STAGE_TIMEOUT")
}
