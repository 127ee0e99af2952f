package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type StorageBackend string

const (
	StorageBackendMemory  StorageBackend = "memory"  // In-process slice (default)
	StorageBackendMongoDB StorageBackend = "mongodb" // Document store
	StorageBackendSQLite  StorageBackend = "sqlite"  // gorm + sqlite file
)

type (
	Config struct {
		HTTP
		Global
		Storage
		MongoDB
		Database
		Log
	}

	HTTP struct {
		Port    int32
		Host    string
		GinMode string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Storage struct {
		Backend StorageBackend
	}
	MongoDB struct {
		ConnectionString string
		DatabaseName     string
		CollectionName   string
		ConnectTimeout   time.Duration
	}
	Database struct {
		Path string
	}
	Log struct {
		Level  string
		Format string // "text" or "json"
	}
)

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageBackendMemory, StorageBackendSQLite:
	case StorageBackendMongoDB:
		if c.MongoDB.ConnectionString == "" {
			return fmt.Errorf("MONGODB_CONNECTION_STRING is required for the %s backend", c.Storage.Backend)
		}
		if c.MongoDB.DatabaseName == "" {
			return fmt.Errorf("MONGODB_DATABASE_NAME is required for the %s backend", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (expected memory, mongodb or sqlite)", c.Storage.Backend)
	}
	return nil
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 5)
	v.SetDefault("storage_backend", string(StorageBackendMemory))

	// Document store defaults
	v.SetDefault("mongodb_connection_string", DefaultMongoDBConnectionString)
	v.SetDefault("mongodb_database_name", DefaultMongoDBDatabaseName)
	v.SetDefault("mongodb_collection_name", DefaultMongoDBCollectionName)
	v.SetDefault("mongodb_connect_timeout", "10s")

	v.SetDefault("database_path", DefaultDatabasePath)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Storage: Storage{
			Backend: StorageBackend(v.GetString("STORAGE_BACKEND")),
		},
		MongoDB: MongoDB{
			ConnectionString: v.GetString("MONGODB_CONNECTION_STRING"),
			DatabaseName:     v.GetString("MONGODB_DATABASE_NAME"),
			CollectionName:   v.GetString("MONGODB_COLLECTION_NAME"),
			ConnectTimeout:   v.GetDuration("MONGODB_CONNECT_TIMEOUT"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}
