package pokemon

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/pokedex/internal/entities"
	"github.com/mrlokans/pokedex/internal/services"
	"github.com/mrlokans/pokedex/internal/services/servicetest"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "pokemon.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Record{}))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func TestRepository_Contract(t *testing.T) {
	servicetest.RunContract(t, func(t *testing.T) services.PokemonService {
		return NewRepository(setupTestDB(t))
	})
}

func TestRepository_UpdateKeepsRowKey(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.Add(ctx, servicetest.Pikachu))
	var before Record
	require.NoError(t, db.First(&before).Error)

	require.NoError(t, repo.Update(ctx, entities.Pokemon{ID: 1, Name: "Raichu", Level: 30}))

	var after Record
	require.NoError(t, db.First(&after).Error)
	assert.Equal(t, before.RowID, after.RowID)
	assert.Equal(t, "Raichu", after.Name)
	assert.Empty(t, after.Type)
}

func TestRepository_UpdateTouchesFirstDuplicateOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	second := servicetest.Pikachu
	second.Name = "Pichu"
	require.NoError(t, repo.Add(ctx, servicetest.Pikachu))
	require.NoError(t, repo.Add(ctx, second))

	require.NoError(t, repo.Update(ctx, entities.Pokemon{ID: 1, Name: "Raichu"}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Raichu", all[0].Name)
	assert.Equal(t, "Pichu", all[1].Name)
}

func TestRepository_ClosedDatabase(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.GetAll(ctx)
	assert.Error(t, err)

	_, err = repo.GetByID(ctx, 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrNotFound)

	assert.Error(t, repo.Add(ctx, servicetest.Pikachu))
	assert.Error(t, repo.Update(ctx, servicetest.Pikachu))
	assert.Error(t, repo.Delete(ctx, 1))
}
