package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/pokedex/internal/observability"
	"github.com/mrlokans/pokedex/internal/services"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Storage capability selected at startup
	Service services.PokemonService

	// Health reporting. Pinger is nil for the in-memory backend.
	Pinger  services.Pinger
	Backend string

	// Observability
	Logger   logrus.FieldLogger
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer

	// Application info
	Version string
}
