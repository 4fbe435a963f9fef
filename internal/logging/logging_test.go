package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "debug", Format: FormatJSON, Output: &buf}))
	t.Cleanup(func() { _ = Init(Config{}) })

	logger := Component("build")
	logger.Debug().Str("target", "vscode").Msg("wrote")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "build", entry["component"])
	assert.Equal(t, "vscode", entry["target"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "wrote", entry["message"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "WARN", Format: FormatJSON, Output: &buf}))
	t.Cleanup(func() { _ = Init(Config{}) })

	logger := Component("x")
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())
	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Format: "console", Output: &buf}))
	t.Cleanup(func() { _ = Init(Config{}) })

	logger := Component("palette")
	logger.Info().Msg("loaded")
	assert.Contains(t, buf.String(), "loaded")
	assert.Contains(t, buf.String(), "palette")
}

func TestInitRejectsBadSettings(t *testing.T) {
	require.Error(t, Init(Config{Level: "loud"}))
	require.Error(t, Init(Config{Format: "xml"}))
}
