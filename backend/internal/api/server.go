// Package api exposes the payload router over HTTP.
package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"stylize-engine/backend/internal/catalog"
	"stylize-engine/backend/internal/dispatch"
	"stylize-engine/backend/internal/router"
	"stylize-engine/backend/pkg/logger"
)

// PayloadBuilder is satisfied by *router.Builder.
type PayloadBuilder interface {
	Build(presetID, imageURL string, opts router.Options) (router.Payload, error)
	BuildFreeText(prompt, imageURL string, opts router.Options) (router.Payload, error)
}

// PresetLister is satisfied by *catalog.Catalog.
type PresetLister interface {
	All() []catalog.Entry
	Entries(f catalog.Family) []catalog.Entry
}

// Dispatcher is satisfied by *dispatch.Client.
type Dispatcher interface {
	Submit(ctx context.Context, payload router.Payload) (*dispatch.Job, error)
}

// PromptEnhancer is satisfied by *enhance.Enhancer.
type PromptEnhancer interface {
	Enhance(ctx context.Context, prompt string) (string, error)
}

// Deps are the collaborators behind the HTTP handlers. Dispatcher and Enhancer are optional.
type Deps struct {
	Builder    PayloadBuilder
	Presets    PresetLister
	Dispatcher Dispatcher
	Enhancer   PromptEnhancer
}

// Options configures the HTTP layer.
type Options struct {
	Production         bool
	CORSAllowedOrigins []string
}

// Server owns the gin engine and its handlers.
type Server struct {
	deps   Deps
	engine *gin.Engine
	log    *zap.Logger
}

// NewServer wires middleware and routes.
func NewServer(deps Deps, opts Options) *Server {
	if opts.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		deps:   deps,
		engine: gin.New(),
		log:    logger.Get(),
	}

	s.engine.Use(requestID())
	s.engine.Use(ginLogger(s.log))
	s.engine.Use(gin.Recovery())
	s.engine.Use(metricsMiddleware())
	s.engine.Use(corsMiddleware(opts.CORSAllowedOrigins))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", s.health)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")
	{
		api.GET("/presets", s.listPresets)
		api.POST("/generations", s.createGeneration)
		api.POST("/generations/batch", s.createBatch)
	}
}

// Handler returns the root http handler.
func (s *Server) Handler() *gin.Engine {
	return s.engine
}
