package config

import (
	"testing"

	"github.com/gofiber/fiber/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Origins())
	assert.Equal(t, log.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 1024, cfg.WSBufferSize)
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Setenv("CHESS_ADDR", ":8080")
	t.Setenv("CHESS_LOG_LEVEL", "DEBUG")
	t.Setenv("CHESS_ALLOW_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load([]string{"-addr", ":9090", "-ws-buffer", "2048"})
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, log.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins())
	assert.Equal(t, 2048, cfg.WSBufferSize)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load([]string{"-log-level", "loud"})
	assert.Error(t, err)

	_, err = Load([]string{"-ws-buffer", "-1"})
	assert.Error(t, err)

	_, err = Load([]string{"-nope"})
	assert.Error(t, err)
}
