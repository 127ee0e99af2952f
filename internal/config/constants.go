package config

const (
	// DefaultDatabasePath is the sqlite file used by the sqlite backend
	DefaultDatabasePath = "./pokemon.db"

	DefaultMongoDBConnectionString = "mongodb://localhost:27017"
	DefaultMongoDBDatabaseName     = "PokemonDb"
	DefaultMongoDBCollectionName   = "Pokemon"
)
