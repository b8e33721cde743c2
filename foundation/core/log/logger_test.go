// File: logger_test.go
// Title: Logger Unit Tests
// Description: Tests for level filtering, contextual fields, error
//              integration and the timer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-06-14

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: buf, Name: "test"}), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "test", entries[0]["logger"])
}

func TestLogger_Fields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	derived := logger.WithField("session", "s-1").WithFields(Fields{"command": "class add a"})
	derived.Debug("committed", Fields{"trackable": true})
	logger.Debug("parent")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "s-1", entries[0]["session"])
	assert.Equal(t, "class add a", entries[0]["command"])
	assert.Equal(t, true, entries[0]["trackable"])
	_, hasSession := entries[1]["session"]
	assert.False(t, hasSession, "parent logger must not see derived fields")
}

func TestLogger_SetLevelIsShared(t *testing.T) {
	logger, buf := newBufferLogger(LevelError)
	derived := logger.WithName("repl")

	derived.Info("before")
	logger.SetLevel(LevelInfo)
	derived.Info("after")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "after", entries[0]["msg"])
	assert.Equal(t, "test.repl", entries[0]["logger"])
	assert.True(t, derived.IsLevelEnabled(LevelInfo))
}

func TestLogger_LogError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	logger.LogError(nil)
	logger.LogError(mumlerr.New("class 'a' does not exist").WithCode(mumlerr.CodeNotFound).WithOperation("GetClass"))
	logger.LogError(mumlerr.New("cannot write").WithCode(mumlerr.CodeIO))
	logger.LogError(errors.New("plain"))

	entries := decodeLines(t, buf)
	require.Len(t, entries, 3)
	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "NOT_FOUND", entries[0]["error_code"])
	assert.Equal(t, "GetClass", entries[0]["error_operation"])
	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "plain", entries[2]["msg"])
}

func TestTimer_Stop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	timer := logger.StartTimer("commit").WithField("command", "undo")
	assert.GreaterOrEqual(t, int64(timer.Stop()), int64(0))
	assert.Equal(t, int64(0), int64(timer.Stop()), "second stop is a no-op")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "commit completed", entries[0]["msg"])
	assert.Equal(t, "undo", entries[0]["command"])
	assert.Equal(t, true, entries[0]["success"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"WARNING", LevelWarn, false},
		{" error ", LevelError, false},
		{"", LevelInfo, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("console")
	assert.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.EqualError(t, err, "invalid format: xml")
}
