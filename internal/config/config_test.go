package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8080), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 5, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Equal(t, StorageBackendMemory, cfg.Storage.Backend)
	assert.Equal(t, DefaultMongoDBConnectionString, cfg.MongoDB.ConnectionString)
	assert.Equal(t, DefaultMongoDBDatabaseName, cfg.MongoDB.DatabaseName)
	assert.Equal(t, DefaultMongoDBCollectionName, cfg.MongoDB.CollectionName)
	assert.Equal(t, 10*time.Second, cfg.MongoDB.ConnectTimeout)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "mongodb")
	t.Setenv("MONGODB_CONNECTION_STRING", "mongodb://db.internal:27017")
	t.Setenv("MONGODB_DATABASE_NAME", "Pokedex")
	t.Setenv("MONGODB_CONNECT_TIMEOUT", "2s")
	t.Setenv("LOG_FORMAT", "json")

	cfg := NewConfig()

	assert.Equal(t, int32(9090), cfg.HTTP.Port)
	assert.Equal(t, StorageBackendMongoDB, cfg.Storage.Backend)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoDB.ConnectionString)
	assert.Equal(t, "Pokedex", cfg.MongoDB.DatabaseName)
	assert.Equal(t, 2*time.Second, cfg.MongoDB.ConnectTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Run("rejects unknown backend", func(t *testing.T) {
		cfg := &Config{Storage: Storage{Backend: "redis"}}
		assert.ErrorContains(t, cfg.Validate(), `unknown STORAGE_BACKEND "redis"`)
	})

	t.Run("mongodb requires a connection string", func(t *testing.T) {
		cfg := &Config{
			Storage: Storage{Backend: StorageBackendMongoDB},
			MongoDB: MongoDB{DatabaseName: "PokemonDb"},
		}
		assert.ErrorContains(t, cfg.Validate(), "MONGODB_CONNECTION_STRING")
	})

	t.Run("mongodb requires a database name", func(t *testing.T) {
		cfg := &Config{
			Storage: Storage{Backend: StorageBackendMongoDB},
			MongoDB: MongoDB{ConnectionString: "mongodb://localhost"},
		}
		assert.ErrorContains(t, cfg.Validate(), "MONGODB_DATABASE_NAME")
	})

	t.Run("sqlite needs nothing extra", func(t *testing.T) {
		cfg := &Config{Storage: Storage{Backend: StorageBackendSQLite}}
		assert.NoError(t, cfg.Validate())
	})
}
