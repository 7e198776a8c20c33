package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylize-engine/backend/internal/catalog"
	"stylize-engine/backend/internal/dispatch"
	"stylize-engine/backend/internal/rotation"
	"stylize-engine/backend/internal/router"
	apperrors "stylize-engine/backend/pkg/errors"
)

type mockDispatcher struct {
	mu       sync.Mutex
	payloads []router.Payload
	err      error
}

func (m *mockDispatcher) Submit(ctx context.Context, p router.Payload) (*dispatch.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads = append(m.payloads, p)
	if m.err != nil {
		return nil, m.err
	}
	return &dispatch.Job{ID: "job-1", Status: dispatch.StatusQueued}, nil
}

type mockEnhancer struct{}

func (mockEnhancer) Enhance(ctx context.Context, prompt string) (string, error) {
	return "enhanced: " + prompt, nil
}

func newTestServer(t *testing.T, d Dispatcher) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := catalog.Default()
	b := router.NewBuilder(c, rotation.DefaultRegistry(), router.Settings{
		EditModel:         "edit-model",
		DiffusionModel:    "diffusion-model",
		NumInferenceSteps: 30,
		MaxVariations:     4,
	})
	return NewServer(Deps{
		Builder:    b,
		Presets:    c,
		Dispatcher: d,
		Enhancer:   mockEnhancer{},
	}, Options{})
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	w := doJSON(t, s, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t, nil)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	doJSON(t, s, "POST", "/api/generations", `{"preset_id":"calm_focus","image_url":"https://img/x.png"}`)

	w := doJSON(t, s, "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "stylize_router_payload_builds_total")
}

func TestListPresets(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s, "GET", "/api/presets", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(catalog.Default().Len()), body["count"])

	w = doJSON(t, s, "GET", "/api/presets?family=mood", "")
	require.Equal(t, http.StatusOK, w.Code)
	presets := decode(t, w)["presets"].([]interface{})
	require.NotEmpty(t, presets)
	for _, p := range presets {
		assert.Equal(t, "mood_mask", p.(map[string]interface{})["family"])
	}

	w = doJSON(t, s, "GET", "/api/presets?family=nope", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateGeneration_Preset(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s, "POST", "/api/generations", `{"preset_id":"joy_sadness","image_url":"https://img/x.png"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.NotEmpty(t, body["request_id"])
	assert.Nil(t, body["job"])
	payload := body["payload"].(map[string]interface{})
	assert.Equal(t, "edit-model", payload["model"])
	assert.Equal(t, "https://img/x.png", payload["image_url"])
	assert.InDelta(t, 0.15, payload["strength"], 1e-9)
	assert.Contains(t, payload["prompt"], "bittersweet expression")
}

func TestCreateGeneration_FreeTextEnhanced(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s, "POST", "/api/generations",
		`{"prompt":"make it moody","image_url":"https://img/x.png","enhance":true,"num_variations":2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	payload := decode(t, w)["payload"].(map[string]interface{})
	assert.Equal(t, router.SingleFrameGuard+"enhanced: make it moody", payload["prompt"])
	assert.Equal(t, float64(2), payload["num_variations"])
	assert.Equal(t, "diffusion-model", payload["model"])
}

func TestCreateGeneration_UnknownPresetIsGeneric(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s, "POST", "/api/generations", `{"preset_id":"not_a_real_preset","image_url":"https://img/x.png"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "couldn't start generation")
	for _, f := range catalog.Families() {
		assert.NotContains(t, body, f.String())
	}
	assert.NotContains(t, body, "not_a_real_preset")
}

func TestCreateGeneration_InvalidRequest(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"neither preset nor prompt", `{"image_url":"https://img/x.png"}`},
		{"both preset and prompt", `{"preset_id":"calm_focus","prompt":"x","image_url":"https://img/x.png"}`},
		{"missing image", `{"preset_id":"calm_focus"}`},
		{"prompt too long", `{"prompt":"` + strings.Repeat("a", 1001) + `","image_url":"https://img/x.png"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, s, "POST", "/api/generations", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateGeneration_Dispatch(t *testing.T) {
	d := &mockDispatcher{}
	s := newTestServer(t, d)

	w := doJSON(t, s, "POST", "/api/generations", `{"preset_id":"pro_editorial_bw","image_url":"https://img/x.png","dispatch":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	job := decode(t, w)["job"].(map[string]interface{})
	assert.Equal(t, "job-1", job["id"])
	require.Len(t, d.payloads, 1)
	assert.Equal(t, router.ShapeDiffusion, d.payloads[0].Shape())
}

func TestCreateGeneration_DispatchErrors(t *testing.T) {
	s := newTestServer(t, nil)
	w := doJSON(t, s, "POST", "/api/generations", `{"preset_id":"calm_focus","image_url":"https://img/x.png","dispatch":true}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	d := &mockDispatcher{err: apperrors.NewDispatchFailed(500, 4, true, errors.New("down"))}
	s = newTestServer(t, d)
	w = doJSON(t, s, "POST", "/api/generations", `{"preset_id":"calm_focus","image_url":"https://img/x.png","dispatch":true}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "couldn't start generation")
}

func TestCreateBatch(t *testing.T) {
	s := newTestServer(t, nil)

	items := []string{}
	for i := 0; i < 6; i++ {
		items = append(items, `{"preset_id":"molten_gloss","image_url":"https://img/x.png"}`)
	}
	items = append(items, `{"preset_id":"nope","image_url":"https://img/x.png"}`)
	body := `{"items":[` + strings.Join(items, ",") + `]}`

	w := doJSON(t, s, "POST", "/api/generations/batch", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		RequestID string `json:"request_id"`
		Results   []struct {
			Index   int                    `json:"index"`
			Payload map[string]interface{} `json:"payload"`
			Error   string                 `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 7)

	animals := map[string]int{}
	for i, r := range resp.Results[:6] {
		assert.Equal(t, i, r.Index)
		require.Empty(t, r.Error)
		prompt := r.Payload["prompt"].(string)
		for _, a := range []string{"panther", "serpent", "stallion"} {
			if strings.Contains(prompt, "sculpture of a "+a) {
				animals[a]++
			}
		}
	}
	// two full cycles of a three-animal vocabulary, drawn concurrently
	assert.Equal(t, map[string]int{"panther": 2, "serpent": 2, "stallion": 2}, animals)

	last := resp.Results[6]
	assert.Nil(t, last.Payload)
	assert.Equal(t, "couldn't start generation", last.Error)
}

func TestCreateBatch_Limits(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s, "POST", "/api/generations/batch", `{"items":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	items := make([]string, 17)
	for i := range items {
		items[i] = `{"preset_id":"calm_focus","image_url":"u"}`
	}
	w = doJSON(t, s, "POST", "/api/generations/batch", `{"items":[`+strings.Join(items, ",")+`]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/api/generations", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
