package enhance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "stylize-engine/backend/pkg/errors"
)

type mockCompleter struct {
	reply string
	err   error
	calls int
	user  string
}

func (m *mockCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	m.calls++
	m.user = user
	return m.reply, m.err
}

func (m *mockCompleter) Model() string { return "mock-model" }

func TestEnhancer_Enhance(t *testing.T) {
	tests := []struct {
		name  string
		llm   *mockCompleter
		input string
		want  string
	}{
		{
			name:  "rewritten",
			llm:   &mockCompleter{reply: "  \"Warm film look with soft grain.\" "},
			input: "make it vintage",
			want:  "Warm film look with soft grain.",
		},
		{
			name:  "llm error falls back",
			llm:   &mockCompleter{err: errors.New("boom")},
			input: "make it vintage",
			want:  "make it vintage",
		},
		{
			name:  "empty reply falls back",
			llm:   &mockCompleter{reply: "   "},
			input: " make it vintage ",
			want:  "make it vintage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnhancer(tt.llm)
			got, err := e.Enhance(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, tt.llm.calls)
		})
	}
}

func TestEnhancer_EmptyPrompt(t *testing.T) {
	m := &mockCompleter{reply: "x"}
	_, err := NewEnhancer(m).Enhance(context.Background(), "  ")
	assert.Error(t, err)
	assert.Equal(t, 0, m.calls)
}

func TestEnhancer_NilIsPassthrough(t *testing.T) {
	var e *Enhancer
	got, err := e.Enhance(context.Background(), "as is")
	require.NoError(t, err)
	assert.Equal(t, "as is", got)
}

func chatServer(t *testing.T, failures int32, content string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		if atomic.AddInt32(&calls, 1) <= failures {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"upstream down"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "test-model",
			"choices": []map[string]interface{}{
				{"index": 0, "finish_reason": "stop", "message": map[string]interface{}{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 50))
	assert.Equal(t, "abc...", truncateString("abcdef", 3))

	out := truncateString(strings.Repeat("é", 30), 49)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, strings.Repeat("é", 24)+"...", out)
}

func TestLLM_Complete(t *testing.T) {
	server, calls := chatServer(t, 1, "Soft studio light, same person.")

	llm := NewLLM(server.URL, "", "test-model")
	llm.backoff = time.Millisecond

	got, err := llm.Complete(context.Background(), "system", "make it pro")
	require.NoError(t, err)
	assert.Equal(t, "Soft studio light, same person.", got)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
	assert.Equal(t, "test-model", llm.Model())
}

func TestLLM_CompleteGivesUp(t *testing.T) {
	server, calls := chatServer(t, 10, "")

	llm := NewLLM(server.URL, "key", "test-model")
	llm.backoff = time.Millisecond

	_, err := llm.Complete(context.Background(), "system", "make it pro")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeEnhance))
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))

	// the enhancer swallows the failure
	got, err := NewEnhancer(llm).Enhance(context.Background(), "make it pro")
	require.NoError(t, err)
	assert.Equal(t, "make it pro", got)
}
