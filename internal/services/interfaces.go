package services

import (
	"context"
	"errors"

	"github.com/mrlokans/pokedex/internal/entities"
)

// ErrNotFound is returned by GetByID when no record carries the requested id.
var ErrNotFound = errors.New("pokemon not found")

// PokemonService is the storage capability behind the HTTP handlers.
// Implementations live in internal/database/{memory,mongodb,pokemon} and must
// be interchangeable: Update and Delete on a missing id succeed without
// changing anything, and Add never checks for an existing id.
type PokemonService interface {
	GetAll(ctx context.Context) ([]entities.Pokemon, error)
	GetByID(ctx context.Context, id int) (*entities.Pokemon, error)
	Add(ctx context.Context, pokemon entities.Pokemon) error
	Update(ctx context.Context, pokemon entities.Pokemon) error
	Delete(ctx context.Context, id int) error
}

// Pinger is implemented by backends that hold an external connection.
// The health endpoint uses it when available.
type Pinger interface {
	Ping(ctx context.Context) error
}
