package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := newAppLogger(&buf, "info", "json")

	l.Debugf("hidden %d", 1)
	l.Warningf("tag %s drifted by %d", "go", 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "tag go drifted by 2", entry["message"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestAppLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newAppLogger(&buf, "nonsense", "json")

	l.Infof("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestAppLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := newAppLogger(&buf, "debug", "json").With("reconciler")

	l.Errorf("boom")
	assert.Contains(t, buf.String(), `"component":"reconciler"`)
}
