package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Parse()
		require.NoError(t, err)

		assert.Equal(t, ":8081", cfg.HTTP.Addr)
		assert.Equal(t, "info", cfg.App.LogLevel)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, uint(3), cfg.Database.RetryAttempts)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", ":9000")
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("AUTH_TOKENS", "alice-token:1,bob-token:2")

		cfg, err := Parse()
		require.NoError(t, err)

		assert.Equal(t, ":9000", cfg.HTTP.Addr)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, map[string]string{"alice-token": "1", "bob-token": "2"}, cfg.Auth.Tokens)
	})
}

func TestParseClient(t *testing.T) {
	t.Setenv("NOTES_SERVER_URL", "http://notes.local")
	t.Setenv("NOTES_TOKEN", "secret")
	t.Setenv("NOTES_TIMEOUT", "5s")

	cfg, err := ParseClient()
	require.NoError(t, err)

	assert.Equal(t, "http://notes.local", cfg.Server.URL)
	assert.Equal(t, "secret", cfg.Server.Token)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
}
