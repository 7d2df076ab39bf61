package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"marketing-asset-backend/internal/models"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantOrigin string
	}{
		{name: "wildcard echoes origin", allowed: []string{"*"}, origin: "https://app.example", wantOrigin: "https://app.example"},
		{name: "listed origin", allowed: []string{"https://app.example"}, origin: "https://app.example", wantOrigin: "https://app.example"},
		{name: "unlisted origin", allowed: []string{"https://app.example"}, origin: "https://evil.example", wantOrigin: ""},
		{name: "no origin header", allowed: []string{"*"}, origin: "", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			CORS(tt.allowed)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodOptions, "/api/assets/generate", nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()

	CORS([]string{"*"})(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called, "preflight must not reach the handler")
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestIdentity(t *testing.T) {
	demo := models.Identity{Email: "demo@example.com", Name: "Demo User"}

	var got models.Identity
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetIdentityFromContext(r.Context())
	})

	Identity(demo)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	assert.Equal(t, demo, got)

	_, ok = GetIdentityFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	})

	handler := RequestID()(Logger(logger)(failing))
	req := httptest.NewRequest(http.MethodPost, "/api/assets/generate", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/api/assets/generate", fields["path"])
	assert.Equal(t, int64(http.StatusPaymentRequired), fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}
