package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()
	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "registry"})
	require.NoError(t, err)

	log.With("group", "Components/Button").Info("registered group", "variants", 5)

	entry := decode(t, buf)
	require.Equal(t, "registered group", entry["message"])
	require.Equal(t, "Components/Button", entry["group"])
	require.Equal(t, "registry", entry["component"])
	require.EqualValues(t, 5, entry["variants"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("boom"), "render failed", "story", "components-button--primary")

	entry := decode(t, buf)
	require.Equal(t, "render failed", entry["message"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "components-button--primary", entry["story"])
}

func TestLoggerOddFieldCountKeepsLastKey(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Warn("dangling", "orphan")

	entry := decode(t, buf)
	require.Contains(t, entry, "orphan")
	require.Nil(t, entry["orphan"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.Error(errors.New("x"), "ignored")
		require.Nil(t, nilLogger.With("k", "v"))
		Nop().With("k", "v").Debug("ignored")
	})
}
