package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]struct {
		want zerolog.Level
		ok   bool
	}{
		"":        {zerolog.InfoLevel, false},
		"trace":   {zerolog.TraceLevel, true},
		" DEBUG ": {zerolog.DebugLevel, true},
		"warning": {zerolog.WarnLevel, true},
		"error":   {zerolog.ErrorLevel, true},
		"off":     {zerolog.Disabled, true},
		"verbose": {zerolog.InfoLevel, false},
	}
	for raw, tc := range cases {
		got, ok := ParseLevel(raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", raw)
		assert.Equal(t, tc.want, got, "raw=%q", raw)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "1")
	t.Setenv(EnvLogJSON, "not-a-bool")

	cfg := DefaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)

	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.False(t, cfg.Timestamp)
	assert.True(t, cfg.NoColor)
	assert.False(t, cfg.JSON)
}

func TestApplyJSONWritesStructuredEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := Apply(Config{Level: zerolog.InfoLevel, JSON: true, Out: &buf})
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	logger.Debug().Msg("hidden")
	logger.Info().Str("era", "exact").Msg("inferred")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"era":"exact"`)
	require.Contains(t, out, `"message":"inferred"`)
}
