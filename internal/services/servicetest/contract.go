// Package servicetest holds behaviour checks shared by every
// services.PokemonService implementation.
//
//	func TestRepository_Contract(t *testing.T) {
//		servicetest.RunContract(t, func(t *testing.T) services.PokemonService {
//			return memory.NewRepository()
//		})
//	}
package servicetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/pokedex/internal/entities"
	"github.com/mrlokans/pokedex/internal/services"
)

// Factory returns an empty store. It is called once per subtest.
type Factory func(t *testing.T) services.PokemonService

// Pikachu is the record used by the end-to-end scenarios.
var Pikachu = entities.Pokemon{ID: 1, Name: "Pikachu", Type: "Electric", Ability: "Static", Level: 5}

// RunContract exercises the storage contract against stores built by newStore.
func RunContract(t *testing.T, newStore Factory) {
	t.Helper()
	ctx := context.Background()

	t.Run("empty store lists nothing", func(t *testing.T) {
		store := newStore(t)

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("add then get returns equal record", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Add(ctx, Pikachu))

		got, err := store.GetByID(ctx, Pikachu.ID)
		require.NoError(t, err)
		assert.Equal(t, Pikachu, *got)
	})

	t.Run("get missing id returns ErrNotFound", func(t *testing.T) {
		store := newStore(t)

		got, err := store.GetByID(ctx, 999)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		store := newStore(t)
		first := entities.Pokemon{ID: 4, Name: "Charmander", Type: "Fire", Ability: "Blaze", Level: 8}
		second := entities.Pokemon{ID: 7, Name: "Squirtle", Type: "Water", Ability: "Torrent", Level: 6}

		require.NoError(t, store.Add(ctx, first))
		require.NoError(t, store.Add(ctx, second))

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entities.Pokemon{first, second}, all)
	})

	t.Run("duplicate ids are accepted", func(t *testing.T) {
		store := newStore(t)
		dup := Pikachu
		dup.Name = "Raichu"

		require.NoError(t, store.Add(ctx, Pikachu))
		require.NoError(t, store.Add(ctx, dup))

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		got, err := store.GetByID(ctx, Pikachu.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pikachu", got.Name, "first inserted record wins")
	})

	t.Run("update overwrites fields and keeps id", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Add(ctx, Pikachu))

		evolved := entities.Pokemon{ID: Pikachu.ID, Name: "Raichu", Type: "Electric", Ability: "Lightning Rod", Level: 30}
		require.NoError(t, store.Update(ctx, evolved))

		got, err := store.GetByID(ctx, Pikachu.ID)
		require.NoError(t, err)
		assert.Equal(t, evolved, *got)

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("update missing id is a no-op", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Add(ctx, Pikachu))

		ghost := entities.Pokemon{ID: 42, Name: "Missingno", Level: 80}
		require.NoError(t, store.Update(ctx, ghost))

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entities.Pokemon{Pikachu}, all)

		_, err = store.GetByID(ctx, ghost.ID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Add(ctx, Pikachu))

		require.NoError(t, store.Delete(ctx, Pikachu.ID))

		_, err := store.GetByID(ctx, Pikachu.ID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("delete removes only the first duplicate", func(t *testing.T) {
		store := newStore(t)
		dup := Pikachu
		dup.Name = "Raichu"
		require.NoError(t, store.Add(ctx, Pikachu))
		require.NoError(t, store.Add(ctx, dup))

		require.NoError(t, store.Delete(ctx, Pikachu.ID))

		got, err := store.GetByID(ctx, Pikachu.ID)
		require.NoError(t, err)
		assert.Equal(t, "Raichu", got.Name)
	})

	t.Run("delete missing id is a no-op", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Add(ctx, Pikachu))

		require.NoError(t, store.Delete(ctx, 999))

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entities.Pokemon{Pikachu}, all)
	})
}
