package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestComponent(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	l := Component("storeguard")
	l.Info().Str("store", "postgres").Msg("guarded call")

	assert.Contains(t, buf.String(), `"component":"storeguard"`)
	assert.Contains(t, buf.String(), `"store":"postgres"`)
}

func TestInit_Levels(t *testing.T) {
	prev := zerolog.GlobalLevel()
	prevLogger := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
		log.Logger = prevLogger
	})

	Init("production")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Init("development")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
