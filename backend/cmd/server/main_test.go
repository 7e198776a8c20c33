package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylize-engine/backend/internal/app"
	"stylize-engine/backend/pkg/config"
)

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine, err := app.New(cfg)
	require.NoError(t, err)
	return newAPIServer(engine, cfg).Handler()
}

func baseConfig() *config.Config {
	return &config.Config{
		Env:                 "development",
		EditModelID:         "edit-model",
		DiffusionModelID:    "diffusion-model",
		NumInferenceSteps:   30,
		MaxVariations:       4,
		RotationResetWindow: 5 * time.Minute,
		CORSAllowedOrigins:  []string{"*"},
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, baseConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ok", response["status"])
}

func TestGenerationEndpoint_InvalidRequest(t *testing.T) {
	router := newTestRouter(t, baseConfig())

	// Test missing fields
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/generations", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerationEndpoint_DispatchNotConfigured(t *testing.T) {
	router := newTestRouter(t, baseConfig())

	w := httptest.NewRecorder()
	body := `{"preset_id":"pro_golden_hour_missing","image_url":"https://img/x.png"}`
	req, _ := http.NewRequest("POST", "/api/generations", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// a nil dispatcher must not turn into a typed-nil interface
	w = httptest.NewRecorder()
	body = `{"preset_id":"glitch_vhs","image_url":"https://img/x.png","dispatch":true}`
	req, _ = http.NewRequest("POST", "/api/generations", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGenerationEndpoint_DispatchesToBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "diffusion-model", body["model"])
		_, _ = w.Write([]byte(`{"id":"job-42","status":"IN_QUEUE"}`))
	}))
	defer backend.Close()

	cfg := baseConfig()
	cfg.GenerationEndpoint = backend.URL
	router := newTestRouter(t, cfg)

	w := httptest.NewRecorder()
	body := `{"preset_id":"smoke_aura","image_url":"https://img/x.png","dispatch":true}`
	req, _ := http.NewRequest("POST", "/api/generations", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "job-42", response["job"].(map[string]interface{})["id"])
}
