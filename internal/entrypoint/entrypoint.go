package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/pokedex/internal/config"
	"github.com/mrlokans/pokedex/internal/database"
	"github.com/mrlokans/pokedex/internal/database/memory"
	"github.com/mrlokans/pokedex/internal/database/mongodb"
	"github.com/mrlokans/pokedex/internal/database/pokemon"
	http_controllers "github.com/mrlokans/pokedex/internal/http"
	"github.com/mrlokans/pokedex/internal/observability"
	"github.com/mrlokans/pokedex/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Storage is the backend chosen at startup together with its lifecycle hooks.
type Storage struct {
	Service services.PokemonService
	Pinger  services.Pinger // nil for the in-memory backend
	Close   ShutdownFunc
}

// OpenStorage builds the storage backend named in cfg. It is the single
// point where an implementation of services.PokemonService is selected.
func OpenStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendMemory:
		log.Warn("Using in-memory storage: data is lost on restart")
		return &Storage{
			Service: memory.NewRepository(),
			Close:   func(context.Context) {},
		}, nil

	case config.StorageBackendMongoDB:
		client, err := mongodb.Connect(ctx, mongodb.Settings{
			ConnectionString: cfg.MongoDB.ConnectionString,
			DatabaseName:     cfg.MongoDB.DatabaseName,
			CollectionName:   cfg.MongoDB.CollectionName,
			ConnectTimeout:   cfg.MongoDB.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"database":   cfg.MongoDB.DatabaseName,
			"collection": cfg.MongoDB.CollectionName,
		}).Info("Connected to MongoDB")
		return &Storage{
			Service: client,
			Pinger:  client,
			Close: func(ctx context.Context) {
				if err := client.Close(ctx); err != nil {
					log.WithError(err).Error("Error disconnecting from MongoDB")
				}
			},
		}, nil

	case config.StorageBackendSQLite:
		db, err := database.NewDatabase(cfg.Database.Path, log)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Service: pokemon.NewRepository(db.DB),
			Pinger:  db,
			Close: func(context.Context) {
				if err := db.Close(); err != nil {
					log.WithError(err).Error("Error closing database")
				}
			},
		}, nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func Serve(router *gin.Engine, cfg *config.Config, log *logrus.Logger, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()

	// kill (no param) default sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infof("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server Shutdown")
	}

	// Storage is released after in-flight requests have drained.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Info("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log := observability.NewLogger(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	log.WithField("version", version).Info("Starting Pokedex API")

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	gin.SetMode(cfg.HTTP.GinMode)

	storage, err := OpenStorage(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize storage")
	}
	log.WithField("backend", cfg.Storage.Backend).Info("Storage ready")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(registry)

	service := services.NewInstrumentedService(storage.Service, string(cfg.Storage.Backend), metrics, log)

	routerCfg := http_controllers.RouterConfig{
		Service:  service,
		Pinger:   storage.Pinger,
		Backend:  string(cfg.Storage.Backend),
		Logger:   log,
		Metrics:  metrics,
		Gatherer: registry,
		Version:  version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg, log, storage.Close)
}
