package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"stylize-engine/backend/internal/catalog"
	"stylize-engine/backend/internal/constants"
	"stylize-engine/backend/internal/dispatch"
	"stylize-engine/backend/internal/router"
	apperrors "stylize-engine/backend/pkg/errors"
)

// GenerationRequest asks for one payload. Exactly one of PresetID and Prompt is set.
type GenerationRequest struct {
	PresetID      string `json:"preset_id"`
	Prompt        string `json:"prompt"`
	ImageURL      string `json:"image_url"`
	NumVariations int    `json:"num_variations"`
	Enhance       bool   `json:"enhance"`
	Dispatch      bool   `json:"dispatch"`
}

// GenerationResponse carries the built payload and, when dispatched, the backend job.
type GenerationResponse struct {
	RequestID string         `json:"request_id"`
	Payload   router.Payload `json:"payload"`
	Job       *dispatch.Job  `json:"job,omitempty"`
}

// BatchRequest builds several payloads in one call.
type BatchRequest struct {
	Items []GenerationRequest `json:"items"`
}

// BatchResult is one item of a batch. Error is the user-facing message.
type BatchResult struct {
	Index   int            `json:"index"`
	Payload router.Payload `json:"payload,omitempty"`
	Job     *dispatch.Job  `json:"job,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// BatchResponse lists results in request order.
type BatchResponse struct {
	RequestID string        `json:"request_id"`
	Results   []BatchResult `json:"results"`
}

// PresetSummary is the public listing shape of a catalog entry.
type PresetSummary struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Family     catalog.Family `json:"family"`
	Randomized bool           `json:"randomized"`
	Tags       []string       `json:"tags,omitempty"`
}

// invalidRequestError is a client mistake detected before routing.
type invalidRequestError struct {
	msg string
}

func (e *invalidRequestError) Error() string { return e.msg }

func (r GenerationRequest) validate() error {
	hasPreset := strings.TrimSpace(r.PresetID) != ""
	hasPrompt := strings.TrimSpace(r.Prompt) != ""
	switch {
	case hasPreset == hasPrompt:
		return &invalidRequestError{msg: "exactly one of preset_id or prompt is required"}
	case strings.TrimSpace(r.ImageURL) == "":
		return &invalidRequestError{msg: "image_url is required"}
	case len(r.Prompt) > constants.MaxPromptLength:
		return &invalidRequestError{msg: fmt.Sprintf("prompt exceeds %d characters", constants.MaxPromptLength)}
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listPresets(c *gin.Context) {
	var entries []catalog.Entry
	if raw := c.Query("family"); raw != "" {
		family, err := catalog.ParseFamily(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		entries = s.deps.Presets.Entries(family)
	} else {
		entries = s.deps.Presets.All()
	}

	out := make([]PresetSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, PresetSummary{
			ID:         e.ID,
			Name:       e.Name,
			Family:     e.Family,
			Randomized: e.IsRandomized,
			Tags:       e.Tags,
		})
	}
	c.JSON(http.StatusOK, gin.H{"presets": out, "count": len(out)})
}

func (s *Server) createGeneration(c *gin.Context) {
	var req GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, job, err := s.generate(c.Request.Context(), req)
	if err != nil {
		status, msg := s.errorResponse(err, req)
		c.JSON(status, gin.H{"error": msg, "request_id": c.GetString(requestIDKey)})
		return
	}

	c.JSON(http.StatusOK, GenerationResponse{
		RequestID: c.GetString(requestIDKey),
		Payload:   payload,
		Job:       job,
	})
}

func (s *Server) createBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items is required"})
		return
	}
	if len(req.Items) > constants.MaxBatchItems {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d items per batch", constants.MaxBatchItems)})
		return
	}

	results := make([]BatchResult, len(req.Items))
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.SetLimit(constants.BatchConcurrency)
	for i, item := range req.Items {
		g.Go(func() error {
			payload, job, err := s.generate(ctx, item)
			results[i] = BatchResult{Index: i, Payload: payload, Job: job}
			if err != nil {
				_, results[i].Error = s.errorResponse(err, item)
			}
			// per-item failures never cancel the rest of the batch
			return nil
		})
	}
	_ = g.Wait()

	c.JSON(http.StatusOK, BatchResponse{
		RequestID: c.GetString(requestIDKey),
		Results:   results,
	})
}

// generate validates, routes and optionally dispatches one request.
func (s *Server) generate(ctx context.Context, req GenerationRequest) (router.Payload, *dispatch.Job, error) {
	if err := req.validate(); err != nil {
		return nil, nil, err
	}

	opts := router.Options{NumVariations: req.NumVariations}
	if opts.NumVariations == 0 {
		opts.NumVariations = constants.DefaultNumVariations
	}

	var (
		payload router.Payload
		err     error
	)
	if presetID := strings.TrimSpace(req.PresetID); presetID != "" {
		payload, err = s.deps.Builder.Build(presetID, req.ImageURL, opts)
	} else {
		prompt := strings.TrimSpace(req.Prompt)
		if req.Enhance && s.deps.Enhancer != nil {
			if prompt, err = s.deps.Enhancer.Enhance(ctx, prompt); err != nil {
				return nil, nil, err
			}
		}
		payload, err = s.deps.Builder.BuildFreeText(prompt, req.ImageURL, opts)
	}
	if err != nil {
		return nil, nil, err
	}

	if !req.Dispatch {
		return payload, nil, nil
	}
	if s.deps.Dispatcher == nil {
		return payload, nil, apperrors.ErrDispatchNotConfigured
	}
	job, err := s.deps.Dispatcher.Submit(ctx, payload)
	if err != nil {
		return payload, nil, err
	}
	return payload, job, nil
}

// errorResponse maps an error to a status and a message safe for end users.
// Internal family and catalog names never leave the process.
func (s *Server) errorResponse(err error, req GenerationRequest) (int, string) {
	var invalid *invalidRequestError
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest, invalid.msg
	case apperrors.IsUnknownPreset(err):
		s.log.Warn("Unknown preset requested", zap.String("preset_id", req.PresetID))
		return http.StatusUnprocessableEntity, apperrors.GenericGenerationMessage
	case errors.Is(err, apperrors.ErrDispatchNotConfigured):
		return http.StatusServiceUnavailable, apperrors.GenericGenerationMessage
	case apperrors.IsErrorType(err, apperrors.ErrorTypeDispatch):
		s.log.Error("Dispatch failed", zap.Error(err), zap.String("preset_id", req.PresetID))
		return http.StatusBadGateway, apperrors.GenericGenerationMessage
	default:
		s.log.Error("Generation failed", zap.Error(err), zap.String("preset_id", req.PresetID))
		return http.StatusInternalServerError, apperrors.GenericGenerationMessage
	}
}
