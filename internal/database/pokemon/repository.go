// Package pokemon provides the SQL-backed PokemonService built on gorm.
//
// Rows carry a surrogate row_id primary key so that, like the other
// backends, several rows may share the same Pokemon id. Lookups by id
// always resolve to the lowest row_id, i.e. the first inserted record.
//
// # Usage
//
//	db, err := database.NewDatabase("./pokemon.db")
//	repo := pokemon.NewRepository(db.DB)
package pokemon

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/pokedex/internal/entities"
	"github.com/mrlokans/pokedex/internal/services"
)

var _ services.PokemonService = (*Repository)(nil)

// Record is the table layout for a stored Pokemon.
type Record struct {
	RowID   uint   `gorm:"column:row_id;primaryKey;autoIncrement"`
	ID      int    `gorm:"column:id;index;not null"`
	Name    string `gorm:"column:name"`
	Type    string `gorm:"column:type"`
	Ability string `gorm:"column:ability"`
	Level   int    `gorm:"column:level"`
}

func (Record) TableName() string {
	return "pokemon"
}

func newRecord(p entities.Pokemon) Record {
	return Record{ID: p.ID, Name: p.Name, Type: p.Type, Ability: p.Ability, Level: p.Level}
}

func (r Record) toEntity() entities.Pokemon {
	return entities.Pokemon{ID: r.ID, Name: r.Name, Type: r.Type, Ability: r.Ability, Level: r.Level}
}

// Repository handles all Pokemon database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new Pokemon repository. The pokemon table must
// already exist; database.NewDatabase migrates it.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll returns every row ordered by insertion.
func (r *Repository) GetAll(ctx context.Context) ([]entities.Pokemon, error) {
	var records []Record
	if err := r.db.WithContext(ctx).Order("row_id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list pokemon: %w", err)
	}

	out := make([]entities.Pokemon, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

// GetByID returns the first row with the given id.
func (r *Repository) GetByID(ctx context.Context, id int) (*entities.Pokemon, error) {
	rec, err := r.first(ctx, id)
	if err != nil {
		return nil, err
	}
	p := rec.toEntity()
	return &p, nil
}

// Add inserts a new row unconditionally.
func (r *Repository) Add(ctx context.Context, p entities.Pokemon) error {
	rec := newRecord(p)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to add pokemon %d: %w", p.ID, err)
	}
	return nil
}

// Update overwrites the first row with a matching id. A missing id is a no-op.
func (r *Repository) Update(ctx context.Context, p entities.Pokemon) error {
	rec, err := r.first(ctx, p.ID)
	if errors.Is(err, services.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	updated := newRecord(p)
	updated.RowID = rec.RowID
	if err := r.db.WithContext(ctx).Save(&updated).Error; err != nil {
		return fmt.Errorf("failed to update pokemon %d: %w", p.ID, err)
	}
	return nil
}

// Delete removes the first row with a matching id. A missing id is a no-op.
func (r *Repository) Delete(ctx context.Context, id int) error {
	rec, err := r.first(ctx, id)
	if errors.Is(err, services.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&Record{}, rec.RowID).Error; err != nil {
		return fmt.Errorf("failed to delete pokemon %d: %w", id, err)
	}
	return nil
}

func (r *Repository) first(ctx context.Context, id int) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).Where("id = ?", id).Order("row_id").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pokemon %d: %w", id, err)
	}
	return &rec, nil
}
