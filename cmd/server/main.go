package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mael/portfolio-showcase/assets"
	"github.com/mael/portfolio-showcase/internal/api"
	"github.com/mael/portfolio-showcase/internal/config"
	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/repository/localstore"
	"github.com/mael/portfolio-showcase/internal/service"
	"github.com/mael/portfolio-showcase/internal/store"
	"github.com/mael/portfolio-showcase/internal/websocket"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	st, err := openStore(cfg)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}

	// Seed collections from the bundled fixtures when no durable copy
	// exists yet, then build repositories and services on top.
	localstore.Seed(st, assets.Fixtures, logger)
	repos := localstore.NewRepositories(st)

	services, err := service.NewServices(repos, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize services", zap.Error(err))
	}

	// Restore login state before serving so a restart keeps the user
	// signed in.
	if err := services.Auth.RestoreSession(); err != nil {
		logger.Warn("session restore failed", zap.Error(err))
	}

	hub := websocket.NewHub(logger)
	go hub.Run()

	// Fan reactive state out to websocket subscribers.
	services.Catalog.Hydrated().Subscribe(func(projects []domain.Project) {
		hub.Broadcast(websocket.EventProjectsChanged, projects)
	})
	services.Auth.Sessions().Subscribe(func(user *domain.User) {
		hub.Broadcast(websocket.EventSessionChanged, user)
	})

	router := api.NewRouter(services, hub, cfg, logger)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("backend", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	hub.Stop()

	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return store.NewMemory(), nil
	case config.BackendPostgres:
		return store.NewPostgres(cfg.DatabaseURL)
	default:
		return store.NewFile(cfg.DataDir, cfg.MaxValueBytes)
	}
}
