//go:build unit || !integration

package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	require.Equal(t, zerolog.TraceLevel, ParseLevel("trace"))
	require.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	require.Equal(t, zerolog.WarnLevel, ParseLevel(""))
	require.Equal(t, zerolog.WarnLevel, ParseLevel("chatty"))
}

func TestConfigureFallsBackToEnvironment(t *testing.T) {
	t.Cleanup(func() { Configure("") })

	t.Setenv(LevelEnv, "debug")
	Configure("")
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Configure("error")
	require.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
}
