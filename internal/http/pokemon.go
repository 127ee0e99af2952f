package http

import (
	"errors"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pokedex/internal/entities"
	"github.com/mrlokans/pokedex/internal/services"
)

type PokemonController struct {
	service services.PokemonService
}

func NewPokemonController(service services.PokemonService) *PokemonController {
	return &PokemonController{service: service}
}

// RegisterRoutes mounts the five CRUD routes on group.
func (pc *PokemonController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", pc.GetAll)
	group.GET("/:id", pc.GetByID)
	group.POST("", pc.Add)
	group.PUT("", pc.Update)
	group.DELETE("/:id", pc.Delete)
}

// GetAll returns every stored Pokemon
// GET /pokemon
func (pc *PokemonController) GetAll(c *gin.Context) {
	all, err := pc.service.GetAll(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "get all pokemon")
		return
	}
	if all == nil {
		all = []entities.Pokemon{}
	}
	c.JSON(http.StatusOK, all)
}

// GetByID returns the first Pokemon with the given id, or 404 with no body
// GET /pokemon/:id
func (pc *PokemonController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pokemon, err := pc.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		respondInternalError(c, err, "get pokemon")
		return
	}
	c.JSON(http.StatusOK, pokemon)
}

// Add stores the posted Pokemon. Duplicate ids are accepted.
// POST /pokemon
func (pc *PokemonController) Add(c *gin.Context) {
	var pokemon entities.Pokemon
	if err := c.ShouldBindJSON(&pokemon); err != nil {
		respondBadRequest(c, "invalid pokemon", err.Error())
		return
	}

	if err := pc.service.Add(c.Request.Context(), pokemon); err != nil {
		respondInternalError(c, err, "add pokemon")
		return
	}

	c.Header("Location", path.Join(c.FullPath(), strconv.Itoa(pokemon.ID)))
	c.JSON(http.StatusCreated, pokemon)
}

// Update replaces the Pokemon whose id matches the body. Nothing matching is
// not an error: the response is 204 either way.
// PUT /pokemon
func (pc *PokemonController) Update(c *gin.Context) {
	var pokemon entities.Pokemon
	if err := c.ShouldBindJSON(&pokemon); err != nil {
		respondBadRequest(c, "invalid pokemon", err.Error())
		return
	}

	if err := pc.service.Update(c.Request.Context(), pokemon); err != nil {
		respondInternalError(c, err, "update pokemon")
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete removes the Pokemon with the given id; 204 whether or not it existed.
// DELETE /pokemon/:id
func (pc *PokemonController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := pc.service.Delete(c.Request.Context(), id); err != nil {
		respondInternalError(c, err, "delete pokemon")
		return
	}
	c.Status(http.StatusNoContent)
}
