// Package app assembles the stylization engine from configuration.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"stylize-engine/backend/internal/catalog"
	"stylize-engine/backend/internal/dispatch"
	"stylize-engine/backend/internal/enhance"
	"stylize-engine/backend/internal/rotation"
	"stylize-engine/backend/internal/router"
	"stylize-engine/backend/pkg/config"
	"stylize-engine/backend/pkg/logger"
)

// Engine holds the long-lived collaborators shared by the HTTP server and the bot.
// Dispatcher and Enhancer are nil when not configured.
type Engine struct {
	Catalog    *catalog.Catalog
	Fragments  *rotation.Registry
	Builder    *router.Builder
	Dispatcher *dispatch.Client
	Enhancer   *enhance.Enhancer
}

// New loads catalogs, validates them against the fragment registry and wires the router.
// Any catalog inconsistency is a startup error.
func New(cfg *config.Config) (*Engine, error) {
	log := logger.Get()

	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		extra, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog overlay: %w", err)
		}
		if cat, err = cat.Merge(extra...); err != nil {
			return nil, fmt.Errorf("failed to merge catalog overlay: %w", err)
		}
		log.Info("Catalog overlay loaded",
			zap.String("file", cfg.CatalogFile),
			zap.Int("presets", len(extra)),
		)
	}

	fragments := rotation.DefaultRegistry(rotation.WithWindow(cfg.RotationResetWindow))
	if err := catalog.Validate(cat, fragments); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	e := &Engine{
		Catalog:   cat,
		Fragments: fragments,
		Builder: router.NewBuilder(cat, fragments, router.Settings{
			EditModel:         cfg.EditModelID,
			DiffusionModel:    cfg.DiffusionModelID,
			NumInferenceSteps: cfg.NumInferenceSteps,
			MaxVariations:     cfg.MaxVariations,
		}),
	}

	if cfg.DispatchEnabled() {
		e.Dispatcher = dispatch.NewClient(dispatch.Config{
			Endpoint:   cfg.GenerationEndpoint,
			APIKey:     cfg.GenerationAPIKey,
			Timeout:    cfg.DispatchTimeout,
			MaxRetries: cfg.DispatchMaxRetries,
		})
	}
	if cfg.EnhanceEnabled() {
		e.Enhancer = enhance.NewEnhancer(enhance.NewLLM(cfg.LiteLLMURL, cfg.OpenRouterAPIKey, cfg.EnhanceModelID))
	}

	log.Info("Engine ready",
		zap.Int("presets", cat.Len()),
		zap.Int("vocabularies", fragments.Size()),
		zap.Duration("rotation_window", cfg.RotationResetWindow),
		zap.Bool("dispatch", e.Dispatcher != nil),
		zap.Bool("enhance", e.Enhancer != nil),
	)
	return e, nil
}
