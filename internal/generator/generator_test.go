package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "marketing-asset-backend/pkg/errors"
)

type chatRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	User      string `json:"user"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func completionBody(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   "gpt-4o",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": content},
			},
		},
		"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
	}
}

func newFakeOpenAI(t *testing.T, handler func(w http.ResponseWriter, req chatRequest)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		handler(w, req)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGenerator(srv *httptest.Server, timeout time.Duration) ContentGenerator {
	return NewOpenAIGenerator(Config{
		APIKey:    "test-key",
		BaseURL:   srv.URL + "/v1",
		Model:     "gpt-4o",
		MaxTokens: 4096,
		Timeout:   timeout,
	})
}

func TestGenerate_Success(t *testing.T) {
	var (
		mu       sync.Mutex
		sessions []string
	)

	srv := newFakeOpenAI(t, func(w http.ResponseWriter, req chatRequest) {
		assert.Equal(t, "gpt-4o", req.Model)
		assert.Equal(t, 4096, req.MaxTokens)
		if assert.Len(t, req.Messages, 2) {
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Equal(t, SystemPrompt, req.Messages[0].Content)
			assert.Equal(t, "user", req.Messages[1].Role)
			assert.Equal(t, "write an email", req.Messages[1].Content)
		}

		mu.Lock()
		sessions = append(sessions, req.User)
		mu.Unlock()

		_ = json.NewEncoder(w).Encode(completionBody("Subject: Fresh beans"))
	})

	gen := newTestGenerator(srv, 5*time.Second)

	for i := 0; i < 2; i++ {
		out, err := gen.Generate(context.Background(), "write an email")
		require.NoError(t, err)
		assert.Equal(t, "Subject: Fresh beans", out)
	}

	require.Len(t, sessions, 2)
	assert.NotEmpty(t, sessions[0])
	assert.NotEqual(t, sessions[0], sessions[1], "each call must use a fresh session")
}

func TestGenerate_UpstreamError(t *testing.T) {
	srv := newFakeOpenAI(t, func(w http.ResponseWriter, _ chatRequest) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"message": "Incorrect API key provided",
				"type":    "invalid_request_error",
			},
		})
	})

	_, err := newTestGenerator(srv, 5*time.Second).Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrGenerationFailure))
	assert.Equal(t, http.StatusInternalServerError, apperrors.GetStatusCode(err))
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestGenerate_EmptyCompletion(t *testing.T) {
	srv := newFakeOpenAI(t, func(w http.ResponseWriter, _ chatRequest) {
		_ = json.NewEncoder(w).Encode(completionBody("  "))
	})

	_, err := newTestGenerator(srv, 5*time.Second).Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrGenerationFailure))
}

func TestGenerate_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := newFakeOpenAI(t, func(w http.ResponseWriter, _ chatRequest) {
		<-release
		_ = json.NewEncoder(w).Encode(completionBody("late"))
	})
	defer close(release)

	_, err := newTestGenerator(srv, 50*time.Millisecond).Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrGenerationFailure))
}
