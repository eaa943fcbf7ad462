package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("AUTH_MODE", "")
	t.Setenv("CLIENT_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, AuthModeFirebase, cfg.AuthMode)
	assert.NotEmpty(t, cfg.ClientURL)
}

func TestLoadReadsPort(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadRejectsNonNumericPort(t *testing.T) {
	t.Setenv("PORT", "https")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownAuthMode(t *testing.T) {
	t.Setenv("AUTH_MODE", "basic")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadLocalModeRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_MODE", AuthModeLocal)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "dev-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, AuthModeLocal, cfg.AuthMode)
}
