package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load is a process-wide singleton, so one test drives it and checks
// defaults and environment overrides together.
func TestLoadEnvOverridesAndDefaults(t *testing.T) {
	t.Setenv("TASKS_JWT_SECRET", "secret-from-env")
	t.Setenv("TASKS_GRAPHQL_URL", "http://localhost:5433/graphql")
	t.Setenv("TASKS_SERVER_PORT", "9000")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// env values must land in the unmarshaled struct, not just in viper
	assert.Equal(t, "secret-from-env", cfg.JWT.Secret)
	assert.Equal(t, "http://localhost:5433/graphql", cfg.GraphQL.URL)
	assert.Equal(t, 9000, cfg.Server.Port)

	// untouched keys keep their defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Address)
	assert.Equal(t, 30, cfg.GraphQL.TimeoutSeconds)
	assert.Equal(t, 60, cfg.JWT.ExpireMinutes)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.Same(t, cfg, Get())
}
