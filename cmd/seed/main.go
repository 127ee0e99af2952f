// Command seed inserts a starter set of Pokemon into the configured
// persistent backend (mongodb or sqlite).
// Usage: STORAGE_BACKEND=sqlite go run ./cmd/seed [-skip-existing]
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/mrlokans/pokedex/internal/config"
	"github.com/mrlokans/pokedex/internal/entities"
	"github.com/mrlokans/pokedex/internal/entrypoint"
	"github.com/mrlokans/pokedex/internal/observability"
	"github.com/mrlokans/pokedex/internal/services"
)

var starters = []entities.Pokemon{
	{ID: 1, Name: "Bulbasaur", Type: "Grass", Ability: "Overgrow", Level: 5},
	{ID: 4, Name: "Charmander", Type: "Fire", Ability: "Blaze", Level: 5},
	{ID: 7, Name: "Squirtle", Type: "Water", Ability: "Torrent", Level: 5},
	{ID: 25, Name: "Pikachu", Type: "Electric", Ability: "Static", Level: 5},
	{ID: 133, Name: "Eevee", Type: "Normal", Ability: "Adaptability", Level: 5},
}

func main() {
	skipExisting := flag.Bool("skip-existing", true, "do not insert ids that are already stored")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.NewConfig()
	log := observability.NewLogger(cfg.Log.Level, cfg.Log.Format, os.Stdout)

	if cfg.Storage.Backend == config.StorageBackendMemory {
		log.Fatal("Seeding the in-memory backend has no effect; set STORAGE_BACKEND to mongodb or sqlite")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	ctx := context.Background()
	storage, err := entrypoint.OpenStorage(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open storage")
	}
	defer storage.Close(ctx)

	inserted := 0
	for _, p := range starters {
		if *skipExisting {
			_, err := storage.Service.GetByID(ctx, p.ID)
			if err == nil {
				log.WithField("id", p.ID).Info("Already stored, skipping")
				continue
			}
			if !errors.Is(err, services.ErrNotFound) {
				log.WithError(err).Fatal("Failed to check existing pokemon")
			}
		}

		if err := storage.Service.Add(ctx, p); err != nil {
			log.WithError(err).WithField("id", p.ID).Error("Failed to add pokemon")
			continue
		}
		inserted++
		log.WithField("name", p.Name).Info("Saved")
	}

	log.WithField("inserted", inserted).Info("Seeding complete")
}
