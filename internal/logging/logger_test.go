package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/internal/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSONStandardizesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)
	require.NoError(t, err)

	log.Info("run failed", "error", errors.New("boom"))
	log.Debug("hidden")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "run failed", rec["msg"])
	assert.Equal(t, "boom", rec["err"])
	assert.NotContains(t, rec, "error")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_TextWithoutTerminalHasNoColor(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, slog.LevelDebug, logging.FormatText)
	require.NoError(t, err)

	log.Debug("recorded", "snapshots", 12)
	out := buf.String()
	assert.Contains(t, out, "recorded")
	assert.Contains(t, out, "snapshots=12")
	assert.NotContains(t, out, "\x1b[", "buffers are not terminals")
	assert.False(t, logging.IsTerminal(&buf))
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, slog.LevelInfo, "xml")
	assert.Error(t, err)
}
