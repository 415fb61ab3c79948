package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office97/internal/window"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("OFFICE97_USER_DATA", "")
	t.Setenv("OFFICE97_LOG_LEVEL", "")
	path := writeConfig(t, "[paths]\nuser_data_dir = \"/tmp/o97\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/o97", cfg.Paths.UserDataDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 3*time.Second, cfg.SplashDuration())
	assert.Equal(t, time.Duration(0), cfg.ComposeDelay())
	assert.Equal(t, "0.0.0.0:8096", cfg.Server.Bind)
	assert.Len(t, cfg.BridgedKinds(), 5)
}

func TestLoadParsesShellSection(t *testing.T) {
	path := writeConfig(t, `
[paths]
user_data_dir = "/tmp/o97"

[shell]
legacy_launcher = true
persistent = false
compose_delay_ms = 500
bridged_apps = ["word", "ppt"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Shell.LegacyLauncher)
	assert.False(t, cfg.PersistentProcess())
	assert.Equal(t, 500*time.Millisecond, cfg.ComposeDelay())
	assert.Equal(t, []window.Kind{window.Word, window.PowerPoint}, cfg.BridgedKinds())
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "[paths]\nuser_data_dir = \"/tmp/o97\"\n")
	t.Setenv("OFFICE97_USER_DATA", "/tmp/other")
	t.Setenv("OFFICE97_DEBUG", "1")
	t.Setenv("OFFICE97_JSON_LOGS", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other", cfg.Paths.UserDataDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.JSON)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	for name, body := range map[string]string{
		"bad level":    "[logging]\nlevel = \"loud\"\n",
		"bad app":      "[shell]\nbridged_apps = [\"notepad\"]\n",
		"negative":     "[shell]\ncompose_delay_ms = -1\n",
		"invalid toml": "[shell\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)
	require.NoError(t, CreateSample(path))
	assert.Error(t, CreateSample(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dist", cfg.Server.DistDir)
}
