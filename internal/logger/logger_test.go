// SPDX-License-Identifier: Unlicense OR MIT

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

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", JSON: true, Writer: buf})
	require.NoError(t, err)

	log = log.With(map[string]any{"component": "ribbon"})
	log.Info("frame", "visible", 3)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "frame", entry["message"])
	require.Equal(t, "ribbon", entry["component"])
	require.EqualValues(t, 3, entry["visible"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "INFO", JSON: true, Writer: buf})
	require.NoError(t, err)

	log.Debug("hidden")
	require.Empty(t, strings.TrimSpace(buf.String()))
}

func TestLoggerError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", JSON: true, Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("boom"), "reload failed", "path", "gallery.yaml")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "reload failed", entry["message"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "gallery.yaml", entry["path"])
}

func TestLoggerConsole(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Warn("slow frame")
	require.Contains(t, buf.String(), "slow frame")
	require.Contains(t, buf.String(), "WRN")
}

func TestLoggerInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerNil(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Error(errors.New("ignored"), "ignored")
		require.Nil(t, log.With(map[string]any{"a": 1}))
	})
	Nop().Info("discarded")
}
