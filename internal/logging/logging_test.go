package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace": zerolog.TraceLevel, " DEBUG ": zerolog.DebugLevel, "info": zerolog.InfoLevel,
		"warning": zerolog.WarnLevel, "error": zerolog.ErrorLevel, "off": zerolog.Disabled,
	}
	for raw, want := range cases {
		got, ok := ParseLevel(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
	_, ok := ParseLevel("loud")
	assert.False(t, ok)
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:   "Debug",
		EnvLogFormat:  "JSON",
		EnvLogNoColor: "true",
	}
	cfg := Default()
	applyEnvOverrides(&cfg, func(k string) string { return env[k] })
	assert.Equal(t, Config{Level: "debug", Format: FormatJSON, NoColor: true}, cfg)

	cfg = Default()
	bad := map[string]string{EnvLogLevel: "loud", EnvLogFormat: "xml", EnvLogNoColor: "maybe"}
	applyEnvOverrides(&cfg, func(k string) string { return bad[k] })
	assert.Equal(t, Default(), cfg)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "lebedev", Config{Level: "warn", Format: FormatJSON})
	log.Info().Msg("dropped")
	log.Warn().Int("order", 590).Msg("kept")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["message"])
	assert.Equal(t, "lebedev", rec["app"])
	assert.Equal(t, float64(590), rec["order"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "lebedev", Config{Level: "bogus", NoColor: true})
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
