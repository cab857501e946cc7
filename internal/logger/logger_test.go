package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("warn", "production", &buf)

	l.Info().Msg("dropped")
	l.Warn().Str("club", "Arsenal").Msg("kept")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "Arsenal", line["club"])
	assert.Equal(t, "eplradar", line["service"])
}

func TestNewWithWriterBadLevel(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter("loud", "test", &buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
