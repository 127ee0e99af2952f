// Package mongodb provides the document-store PokemonService. Each Pokemon
// is stored as one document; every operation filters on the "id" field, not
// on the driver-managed "_id", so duplicate ids are representable.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mrlokans/pokedex/internal/entities"
	"github.com/mrlokans/pokedex/internal/services"
)

var _ services.PokemonService = (*Repository)(nil)

type Repository struct {
	collection *mongo.Collection
}

// NewRepository wraps an already opened collection.
func NewRepository(collection *mongo.Collection) *Repository {
	return &Repository{collection: collection}
}

func byID(id int) bson.D {
	return bson.D{{Key: "id", Value: id}}
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Pokemon, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pokemon: %w", err)
	}

	out := make([]entities.Pokemon, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode pokemon: %w", err)
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*entities.Pokemon, error) {
	var p entities.Pokemon
	err := r.collection.FindOne(ctx, byID(id)).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pokemon %d: %w", id, err)
	}
	return &p, nil
}

func (r *Repository) Add(ctx context.Context, p entities.Pokemon) error {
	if _, err := r.collection.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to add pokemon %d: %w", p.ID, err)
	}
	return nil
}

// Update replaces the first matching document. ReplaceOne reports zero
// matches without an error, so a missing id is a no-op.
func (r *Repository) Update(ctx context.Context, p entities.Pokemon) error {
	if _, err := r.collection.ReplaceOne(ctx, byID(p.ID), p); err != nil {
		return fmt.Errorf("failed to update pokemon %d: %w", p.ID, err)
	}
	return nil
}

// Delete removes the first matching document; a missing id is a no-op.
func (r *Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.collection.DeleteOne(ctx, byID(id)); err != nil {
		return fmt.Errorf("failed to delete pokemon %d: %w", id, err)
	}
	return nil
}
