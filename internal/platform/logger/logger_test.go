package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time { return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC) }

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Writer: &buf})

	l.Info("ignored", nil)
	l.Error("kept", nil)

	out := buf.String()
	assert.NotContains(t, out, "ignored")
	assert.Contains(t, out, "msg=kept")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestLogger_JSONIncludesBaseAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, App: "dog-registry", Writer: &buf}).(*StdLogger)
	l.now = fixedNow

	l.With(map[string]any{"component": "dogs"}).Error("boom", map[string]any{"request_id": "r-1"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "dog-registry", entry["app"])
	assert.Equal(t, "dogs", entry["component"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "2025-12-22T10:00:00Z", entry["ts"])
}

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel("nope"))
	assert.Equal(t, FormatJSON, ParseFormat(" json "))
	assert.Equal(t, FormatText, ParseFormat(""))
}
