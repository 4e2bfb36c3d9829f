package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/members/internal/config"
	"github.com/mmynk/members/internal/models"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvDBPath, config.EnvLogLevel, config.EnvLogFile, config.EnvSearchMode, config.EnvSearchCaseSensitive} {
		t.Setenv(k, "")
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "members dev\n", out.String())
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "members.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("db_path: from-file.db\nlog_level: warn\n"), 0o600))

	cfg, err := loadConfig(&rootOptions{configPath: cfgPath})
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)

	t.Setenv(config.EnvDBPath, "from-env.db")
	cfg, err = loadConfig(&rootOptions{configPath: cfgPath, dbPath: "from-flag.db", logLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "from-flag.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = loadConfig(&rootOptions{logLevel: "chatty"})
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoadConfig_FlagOverridesBadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvLogLevel, "chatty")

	cfg, err := loadConfig(&rootOptions{logLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = loadConfig(&rootOptions{})
	assert.ErrorContains(t, err, "unknown log level")
}

func TestOpenStore_UsesConfiguredPath(t *testing.T) {
	clearEnv(t)
	dbPath := filepath.Join(t.TempDir(), "data", "members.db")

	cfg, err := loadConfig(&rootOptions{dbPath: dbPath})
	require.NoError(t, err)

	store, err := openStore(cfg)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.CreateMember(context.Background(), &models.Member{Name: "Ana", Contact: "639171234567"}))
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestSetupLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "members.log")
	closeLog, err := setupLogging(cfg)
	require.NoError(t, err)
	slog.Info("Storage initialized")
	require.NoError(t, closeLog())
	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Storage initialized")

	for _, logFile := range []string{"", "-"} {
		cfg := config.Default()
		cfg.LogFile = logFile
		cfg.LogLevel = "debug"
		closeLog, err := setupLogging(cfg)
		require.NoError(t, err, "log_file %q", logFile)
		assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
		assert.NoError(t, closeLog())
		assert.NoFileExists(t, "-", "stderr logging must not create a file")
	}
}
