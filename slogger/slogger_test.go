package slogger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {
	require.Equal(t, LevelDebug, LevelFromString("debug"))
	require.Equal(t, LevelWarn, LevelFromString("WARN"))
	require.Equal(t, LevelError, LevelFromString("error"))
	require.Equal(t, LevelInfo, LevelFromString("info"))
	require.Equal(t, LevelInfo, LevelFromString("bogus"))
}

func TestSloggerWritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelWarn, true)

	logger.Info("not logged")
	require.Empty(t, buf.String())

	logger.Warn("job is slow", "job_id", "abc123")
	out := buf.String()
	require.Contains(t, out, "job is slow")
	require.Contains(t, out, "abc123")
}

func TestSloggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelInfo, true).With("component", "bedrock")

	logger.Info("submitting")
	require.Contains(t, buf.String(), "bedrock")
}

func TestDevNull(t *testing.T) {
	var logger Logger = DevNull{}
	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("dropped")
	logger.Error("dropped")
	require.Equal(t, DevNull{}, logger.With("k", "v"))
}
