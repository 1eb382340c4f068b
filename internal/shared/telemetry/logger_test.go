package telemetry

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		SetLevel("info")
	})
	return &buf
}

func TestInfoWritesJSONLine(t *testing.T) {
	buf := captureLog(t)

	Info("request.complete", map[string]any{"status": 200, "path": "/health"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "request.complete", entry["msg"])
	assert.Equal(t, "/health", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
	assert.NotEmpty(t, entry["ts"])
}

func TestSetLevelFiltersDebug(t *testing.T) {
	buf := captureLog(t)

	Debug("hidden", nil)
	assert.Empty(t, buf.String())

	SetLevel("debug")
	Debug("shown", nil)
	assert.True(t, strings.Contains(buf.String(), `"msg":"shown"`))
}

func TestSetLevelUnknownFallsBackToInfo(t *testing.T) {
	buf := captureLog(t)

	SetLevel("chatty")
	Debug("hidden", nil)
	Warn("kept", map[string]any{"k": "v"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"level":"warning"`)
}
