package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"stylize-engine/backend/internal/api"
	"stylize-engine/backend/internal/app"
	"stylize-engine/backend/pkg/config"
	"stylize-engine/backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting HTTP API server...")

	engine, err := app.New(cfg)
	if err != nil {
		log.Fatal("Failed to initialize engine", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newAPIServer(engine, cfg).Handler(),
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// newAPIServer adapts the engine to the HTTP layer. Optional collaborators stay
// nil interfaces when not configured.
func newAPIServer(engine *app.Engine, cfg *config.Config) *api.Server {
	deps := api.Deps{
		Builder: engine.Builder,
		Presets: engine.Catalog,
	}
	if engine.Dispatcher != nil {
		deps.Dispatcher = engine.Dispatcher
	}
	if engine.Enhancer != nil {
		deps.Enhancer = engine.Enhancer
	}
	return api.NewServer(deps, api.Options{
		Production:         cfg.IsProduction(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})
}
