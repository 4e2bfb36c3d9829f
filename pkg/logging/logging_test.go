package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestSetupWithWriter(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	runID := SetupWithWriter(&buf, slog.LevelInfo)
	_, err := uuid.Parse(runID)
	require.NoError(t, err)

	slog.Debug("hidden")
	slog.Info("Member added", "member_id", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "Member added")
	assert.Contains(t, out, "member_id=7")
	assert.Contains(t, out, "run_id="+runID)
	assert.NotContains(t, out, "\x1b[", "file logs should not carry color codes")
}

func TestSetupFile(t *testing.T) {
	restoreDefault(t)
	path := filepath.Join(t.TempDir(), "logs", "members.log")

	closeFn, err := SetupFile(path, slog.LevelDebug)
	require.NoError(t, err)
	slog.Debug("ListMembers request received")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "ListMembers request received"))
}

func TestSetupWithLevel(t *testing.T) {
	restoreDefault(t)

	runID := SetupWithLevel(slog.LevelWarn)
	_, err := uuid.Parse(runID)
	require.NoError(t, err)
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))

	assert.NotEqual(t, runID, SetupWithLevel(slog.LevelDebug), "each setup starts a new run")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
