package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/pokedex/internal/database/memory"
	"github.com/mrlokans/pokedex/internal/entities"
	"github.com/mrlokans/pokedex/internal/services"
)

const pikachuJSON = `{"id":1,"name":"Pikachu","type":"Electric","ability":"Static","level":5}`

type failingStore struct {
	err error
}

func (f *failingStore) GetAll(context.Context) ([]entities.Pokemon, error) { return nil, f.err }
func (f *failingStore) GetByID(context.Context, int) (*entities.Pokemon, error) {
	return nil, f.err
}
func (f *failingStore) Add(context.Context, entities.Pokemon) error    { return f.err }
func (f *failingStore) Update(context.Context, entities.Pokemon) error { return f.err }
func (f *failingStore) Delete(context.Context, int) error              { return f.err }

func setupPokemonRouter(t *testing.T, service services.PokemonService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterConfig{Service: service, Backend: "memory"})
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPokemonController_EndToEnd(t *testing.T) {
	t.Run("create then get returns identical body", func(t *testing.T) {
		router := setupPokemonRouter(t, memory.NewRepository())

		w := doRequest(router, "POST", "/pokemon", pikachuJSON)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/pokemon/1", w.Header().Get("Location"))
		assert.JSONEq(t, pikachuJSON, w.Body.String())

		w = doRequest(router, "GET", "/pokemon/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, pikachuJSON, w.Body.String())
	})

	t.Run("get unknown id returns 404 with empty body", func(t *testing.T) {
		router := setupPokemonRouter(t, memory.NewRepository())

		w := doRequest(router, "GET", "/pokemon/999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("delete then get returns 404", func(t *testing.T) {
		router := setupPokemonRouter(t, memory.NewRepository())

		w := doRequest(router, "POST", "/pokemon", `{"id":2,"name":"Ivysaur","type":"Grass","ability":"Overgrow","level":16}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doRequest(router, "DELETE", "/pokemon/2", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		w = doRequest(router, "GET", "/pokemon/2", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("put unknown id is a 204 no-op", func(t *testing.T) {
		router := setupPokemonRouter(t, memory.NewRepository())

		w := doRequest(router, "PUT", "/pokemon", `{"id":77,"name":"Ponyta","type":"Fire","ability":"Run Away","level":40}`)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		w = doRequest(router, "GET", "/pokemon/77", "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doRequest(router, "GET", "/pokemon", "")
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestPokemonController_GetAll(t *testing.T) {
	t.Run("returns empty array when nothing stored", func(t *testing.T) {
		router := setupPokemonRouter(t, memory.NewRepository())

		w := doRequest(router, "GET", "/pokemon", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("returns records in insertion order", func(t *testing.T) {
		repo := memory.NewRepository(
			entities.Pokemon{ID: 7, Name: "Squirtle"},
			entities.Pokemon{ID: 4, Name: "Charmander"},
		)
		router := setupPokemonRouter(t, repo)

		w := doRequest(router, "GET", "/pokemon", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got []entities.Pokemon
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Squirtle", got[0].Name)
		assert.Equal(t, "Charmander", got[1].Name)
	})
}

func TestPokemonController_Update(t *testing.T) {
	repo := memory.NewRepository(entities.Pokemon{ID: 1, Name: "Pikachu", Type: "Electric", Ability: "Static", Level: 5})
	router := setupPokemonRouter(t, repo)

	w := doRequest(router, "PUT", "/pokemon", `{"id":1,"name":"Raichu","level":30}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, entities.Pokemon{ID: 1, Name: "Raichu", Level: 30}, *got, "missing fields bind to zero values")
}

func TestPokemonController_Add(t *testing.T) {
	t.Run("missing fields default to zero values", func(t *testing.T) {
		repo := memory.NewRepository()
		router := setupPokemonRouter(t, repo)

		w := doRequest(router, "POST", "/pokemon", `{"name":"Eevee"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/pokemon/0", w.Header().Get("Location"))

		got, err := repo.GetByID(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, entities.Pokemon{Name: "Eevee"}, *got)
	})

	t.Run("duplicate ids are both stored", func(t *testing.T) {
		repo := memory.NewRepository()
		router := setupPokemonRouter(t, repo)

		assert.Equal(t, http.StatusCreated, doRequest(router, "POST", "/pokemon", pikachuJSON).Code)
		assert.Equal(t, http.StatusCreated, doRequest(router, "POST", "/pokemon", pikachuJSON).Code)

		all, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("location follows the api prefix", func(t *testing.T) {
		router := setupPokemonRouter(t, memory.NewRepository())

		w := doRequest(router, "POST", "/api/pokemon", pikachuJSON)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/pokemon/1", w.Header().Get("Location"))

		w = doRequest(router, "GET", "/api/pokemon/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPokemonController_BadRequests(t *testing.T) {
	router := setupPokemonRouter(t, memory.NewRepository())

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"malformed create body", "POST", "/pokemon", `{"id":1,"name":`},
		{"empty create body", "POST", "/pokemon", ""},
		{"wrong field type", "POST", "/pokemon", `{"id":"one"}`},
		{"malformed update body", "PUT", "/pokemon", `not json`},
		{"non-integer get id", "GET", "/pokemon/abc", ""},
		{"non-integer delete id", "DELETE", "/pokemon/abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestPokemonController_StorageFailure(t *testing.T) {
	router := setupPokemonRouter(t, &failingStore{err: errors.New("server selection timeout")})

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"list", "GET", "/pokemon", ""},
		{"get", "GET", "/pokemon/1", ""},
		{"create", "POST", "/pokemon", pikachuJSON},
		{"replace", "PUT", "/pokemon", pikachuJSON},
		{"delete", "DELETE", "/pokemon/1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
			assert.NotContains(t, w.Body.String(), "server selection timeout")
		})
	}
}
