package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"stylize-engine/backend/internal/router"
	apperrors "stylize-engine/backend/pkg/errors"
	"stylize-engine/backend/pkg/logger"
	"stylize-engine/backend/pkg/metrics"
)

// Job statuses reported by the generation backend.
const (
	StatusQueued     = "IN_QUEUE"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

// Config configures a Client.
type Config struct {
	Endpoint   string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	// Backoff is multiplied by the attempt number between retries.
	Backoff time.Duration
}

// Client posts generation payloads to the backend and tracks the resulting jobs.
type Client struct {
	endpoint   string
	apiKey     string
	maxRetries int
	backoff    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

// Job is the backend's view of a submitted generation.
type Job struct {
	ID     string                 `json:"id"`
	Status string                 `json:"status"`
	Output map[string]interface{} `json:"output,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// Done reports whether the job reached a terminal status.
func (j *Job) Done() bool {
	return j.Status == StatusCompleted || j.Status == StatusFailed
}

// NewClient creates a new dispatch client
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = 500 * time.Millisecond
	}
	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		maxRetries: cfg.MaxRetries,
		backoff:    cfg.Backoff,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Get(),
	}
}

// Submit sends a payload to the generation endpoint. Transport errors, 5xx and 429
// responses are retried up to MaxRetries times.
func (c *Client) Submit(ctx context.Context, payload router.Payload) (*Job, error) {
	if c.endpoint == "" {
		return nil, apperrors.ErrDispatchNotConfigured
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	model := payload.Target()
	start := time.Now()
	defer func() {
		metrics.DispatchCallDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())
	}()

	var (
		lastErr    error
		lastStatus int
	)
	for attempt := 1; attempt <= c.maxRetries+1; attempt++ {
		if attempt > 1 {
			wait := c.backoff * time.Duration(attempt-1)
			c.logger.Warn("Retrying generation submit",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", wait),
				zap.Error(lastErr),
			)
			select {
			case <-ctx.Done():
				metrics.DispatchCallsTotal.WithLabelValues(model, "cancelled").Inc()
				return nil, fmt.Errorf("dispatch cancelled: %w", ctx.Err())
			case <-time.After(wait):
			}
		}

		job, status, err := c.post(ctx, jsonData)
		if err == nil {
			metrics.DispatchCallsTotal.WithLabelValues(model, "ok").Inc()
			c.logger.Info("Generation submitted",
				zap.String("job_id", job.ID),
				zap.String("model", model),
				zap.Int("attempts", attempt),
			)
			return job, nil
		}
		lastErr, lastStatus = err, status

		if ctx.Err() != nil {
			metrics.DispatchCallsTotal.WithLabelValues(model, "cancelled").Inc()
			return nil, fmt.Errorf("dispatch cancelled: %w", ctx.Err())
		}
		if !retryable(status) {
			metrics.DispatchCallsTotal.WithLabelValues(model, "error").Inc()
			return nil, apperrors.NewDispatchFailed(status, attempt, false, err)
		}
	}

	metrics.DispatchCallsTotal.WithLabelValues(model, "error").Inc()
	return nil, apperrors.NewDispatchFailed(lastStatus, c.maxRetries+1, true, lastErr)
}

// post performs one submit. A zero status means the request never got a response.
func (c *Client) post(ctx context.Context, jsonData []byte) (*Job, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.logger.Debug("Submitting generation", zap.String("url", c.endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to submit generation: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Generation API error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("url", c.endpoint),
			zap.String("response_body", string(body)),
		)
		return nil, resp.StatusCode, fmt.Errorf("generation API error: status %d", resp.StatusCode)
	}

	if len(body) == 0 {
		return nil, resp.StatusCode, fmt.Errorf("empty response from generation API")
	}

	var job Job
	if err := json.Unmarshal(body, &job); err != nil {
		c.logger.Error("Failed to decode generation response",
			zap.Error(err),
			zap.String("response_body", string(body)),
		)
		return nil, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	if job.ID == "" {
		return nil, resp.StatusCode, fmt.Errorf("empty job ID in response")
	}
	if job.Status == "" {
		job.Status = StatusQueued
	}
	return &job, resp.StatusCode, nil
}

func retryable(status int) bool {
	return status == 0 || status == http.StatusTooManyRequests || status >= 500
}

// Status fetches the current state of a job.
func (c *Client) Status(ctx context.Context, jobID string) (*Job, error) {
	if c.endpoint == "" {
		return nil, apperrors.ErrDispatchNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/"+jobID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewDispatchFailed(resp.StatusCode, 1, retryable(resp.StatusCode),
			fmt.Errorf("status request returned %d", resp.StatusCode))
	}

	var job Job
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return nil, fmt.Errorf("failed to decode status: %w", err)
	}
	if job.ID == "" {
		job.ID = jobID
	}
	return &job, nil
}

// Wait polls a job until it completes, fails, or maxPolls is reached.
func (c *Client) Wait(ctx context.Context, jobID string, maxPolls int, pollInterval time.Duration) (*Job, error) {
	c.logger.Debug("Polling job status",
		zap.String("job_id", jobID),
		zap.Int("max_polls", maxPolls),
	)

	for i := 0; i < maxPolls; i++ {
		job, err := c.Status(ctx, jobID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn("Poll request failed, retrying",
				zap.Error(err),
				zap.Int("attempt", i+1),
			)
		} else {
			c.logger.Debug("Job status",
				zap.String("job_id", jobID),
				zap.String("status", job.Status),
				zap.Int("poll", i+1),
			)
			switch job.Status {
			case StatusCompleted:
				return job, nil
			case StatusFailed:
				return job, apperrors.NewJobFailed(jobID, job.Error)
			case StatusQueued, StatusInProgress:
			default:
				c.logger.Warn("Unknown job status", zap.String("status", job.Status))
			}
		}

		if i < maxPolls-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(pollInterval):
			}
		}
	}

	return nil, apperrors.NewContextTimeout(fmt.Sprintf("job %s did not complete within %d polls", jobID, maxPolls), time.Duration(maxPolls)*pollInterval)
}

// ImageURLs extracts result image URLs from a completed job's output.
func ImageURLs(job *Job) ([]string, error) {
	if job == nil || job.Output == nil {
		return nil, fmt.Errorf("no output in job")
	}

	images, ok := job.Output["images"].([]interface{})
	if !ok || len(images) == 0 {
		return nil, fmt.Errorf("no images in output")
	}

	urls := make([]string, 0, len(images))
	for _, img := range images {
		switch v := img.(type) {
		case string:
			urls = append(urls, v)
		case map[string]interface{}:
			if u, ok := v["url"].(string); ok {
				urls = append(urls, u)
			}
		}
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("invalid image object format")
	}
	return urls, nil
}
