package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_LevelFiltering(t *testing.T) {
	out := &bytes.Buffer{}
	logger := newLogger("warn", "text", out)

	logger.Info("suppressed")
	logger.Warn("emitted")

	assert.NotContains(t, out.String(), "suppressed")
	assert.Contains(t, out.String(), "emitted")
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	out := &bytes.Buffer{}
	logger := newLogger("verbose", "text", out)

	logger.Debug("suppressed")
	logger.Info("emitted")

	assert.NotContains(t, out.String(), "suppressed")
	assert.Contains(t, out.String(), "emitted")
}

func TestNewLogger_JSONFormat(t *testing.T) {
	out := &bytes.Buffer{}
	logger := newLogger("debug", "json", out)

	logger.Debug("structured")

	var record map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "structured", record["msg"])
}
