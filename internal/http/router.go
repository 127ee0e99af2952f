package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PokemonRoutePrefixes are the mount points of the CRUD routes. The /api
// variant is kept for clients of the earlier controller route.
var PokemonRoutePrefixes = []string{"/pokemon", "/api/pokemon"}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if cfg.Logger != nil {
		router.Use(RequestLogger(cfg.Logger))
	}
	if cfg.Metrics != nil {
		router.Use(MetricsMiddleware(cfg.Metrics))
	}

	health := NewHealthController(cfg.Pinger, cfg.Backend, cfg.Version)
	pokemon := NewPokemonController(cfg.Service)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	if cfg.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	for _, prefix := range PokemonRoutePrefixes {
		pokemon.RegisterRoutes(router.Group(prefix))
	}

	return router
}
