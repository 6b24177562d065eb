package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing and returns a cleanup
// function restoring the previous values.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	t.Helper()

	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
			continue
		}
		require.NoError(t, os.Setenv(name, value), "Failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"FITTRACK_DATABASE_URL":     "mongodb://localhost:27017",
		"FITTRACK_AUTH_API_KEY":     "test-api-key",
		"FITTRACK_SERVER_PORT":      "",
		"FITTRACK_SERVER_LOG_LEVEL": "",
		"FITTRACK_DATABASE_NAME":    "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "fittrack", cfg.Database.Name, "Default database name should be 'fittrack'")
}

func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"FITTRACK_SERVER_PORT":      "9090",
		"FITTRACK_SERVER_LOG_LEVEL": "debug",
		"FITTRACK_DATABASE_URL":     "mongodb://mongo.internal:27017",
		"FITTRACK_DATABASE_NAME":    "fittrack_test",
		"FITTRACK_AUTH_API_KEY":     "super-secret-key",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "mongodb://mongo.internal:27017", cfg.Database.URL)
	assert.Equal(t, "fittrack_test", cfg.Database.Name)
	assert.Equal(t, "super-secret-key", cfg.Auth.APIKey)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"FITTRACK_DATABASE_URL": "",
		"FITTRACK_AUTH_API_KEY": "test-api-key",
	})
	defer cleanup()

	cfg, err := Load()

	require.Error(t, err, "Load() must fail loudly when the database URL is absent")
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadMissingAPIKey(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"FITTRACK_DATABASE_URL": "mongodb://localhost:27017",
		"FITTRACK_AUTH_API_KEY": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.Error(t, err, "Load() must fail loudly when the API key is absent")
	assert.Nil(t, cfg)
}

func TestLoadInvalidLogLevel(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"FITTRACK_DATABASE_URL":     "mongodb://localhost:27017",
		"FITTRACK_AUTH_API_KEY":     "test-api-key",
		"FITTRACK_SERVER_LOG_LEVEL": "verbose",
	})
	defer cleanup()

	_, err := Load()

	require.Error(t, err, "Load() should reject log levels outside the allowed set")
}
