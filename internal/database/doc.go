// Package database provides the storage backends behind
// services.PokemonService.
//
// # Architecture
//
//	database/
//	├── database.go      # gorm + sqlite connection setup and migration
//	├── pokemon/         # SQL-backed repository (gorm)
//	├── mongodb/         # document-store repository and client
//	└── memory/          # in-process repository
//
// Each sub-package provides a Repository type implementing
// services.PokemonService, checked at compile time with
//
//	var _ services.PokemonService = (*Repository)(nil)
//
// # Choosing a backend
//
// entrypoint.OpenStorage is the only place a backend is selected, driven by
// the STORAGE_BACKEND setting:
//
//	db, err := database.NewDatabase("./pokemon.db", log)
//	repo := pokemon.NewRepository(db.DB)
//
//	client, err := mongodb.Connect(ctx, mongodb.Settings{...})
//	// client embeds *mongodb.Repository
//
//	repo := memory.NewRepository()
//
// # Shared behaviour
//
// All backends accept duplicate ids, resolve lookups to the first inserted
// match, and treat Update/Delete of a missing id as a successful no-op. The
// suite in services/servicetest checks this for every backend.
package database
