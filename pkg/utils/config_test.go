package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_RequiresSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-secret", config.App.SecretKey)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, 24, config.Session.ExpiryHours)
	assert.Equal(t, "http://www.omdbapi.com/", config.OMDB.BaseURL)
	assert.Equal(t, 10, config.OMDB.TimeoutSeconds)
}

func TestLoadConfig_ProductionDatabaseBlock(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("ENV", "production")
	t.Setenv("PROD_DB_HOST", "db.internal")
	t.Setenv("PROD_DB_NAME", "movies")
	t.Setenv("DB_HOST", "localhost")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "db.internal", config.Database.Host)
	assert.Equal(t, "movies", config.Database.Name)
}
