package testlog

import (
	"testing"

	"github.com/danmuck/solcver/internal/logging"
	"github.com/rs/zerolog/log"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Info().Str("test", t.Name()).Msg("start")
}

// Logf records a debug line attributed to the running test.
func Logf(t *testing.T, format string, args ...any) {
	t.Helper()
	log.Debug().Str("test", t.Name()).Msgf(format, args...)
}
