// Package memory provides an in-process PokemonService backed by an ordered
// slice. State is lost on restart and is not shared between processes.
//
// # Usage
//
//	repo := memory.NewRepository()
//	err := repo.Add(ctx, entities.Pokemon{ID: 25, Name: "Pikachu"})
package memory

import (
	"context"
	"sync"

	"github.com/mrlokans/pokedex/internal/entities"
	"github.com/mrlokans/pokedex/internal/services"
)

var _ services.PokemonService = (*Repository)(nil)

// Repository keeps records in insertion order behind a RWMutex.
type Repository struct {
	mu    sync.RWMutex
	items []entities.Pokemon
}

// NewRepository returns a Repository preloaded with a copy of items.
func NewRepository(items ...entities.Pokemon) *Repository {
	return &Repository{items: append([]entities.Pokemon(nil), items...)}
}

// GetAll returns a copy of every record in insertion order.
func (r *Repository) GetAll(_ context.Context) ([]entities.Pokemon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Pokemon, len(r.items))
	copy(out, r.items)
	return out, nil
}

// GetByID returns the first record with the given id.
func (r *Repository) GetByID(_ context.Context, id int) (*entities.Pokemon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		p := r.items[i]
		return &p, nil
	}
	return nil, services.ErrNotFound
}

// Add appends the record without checking for an existing id.
func (r *Repository) Add(_ context.Context, pokemon entities.Pokemon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, pokemon)
	return nil
}

// Update overwrites the first record with a matching id. A missing id is a no-op.
func (r *Repository) Update(_ context.Context, pokemon entities.Pokemon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(pokemon.ID); i >= 0 {
		r.items[i] = pokemon
	}
	return nil
}

// Delete removes the first record with a matching id. A missing id is a no-op.
func (r *Repository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.items = append(r.items[:i], r.items[i+1:]...)
	}
	return nil
}

// indexOf must be called with mu held.
func (r *Repository) indexOf(id int) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
