package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteforge-io/siteforge/internal/config"
	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/internal/service"
)

type mockConfigService struct {
	getFunc func(ctx context.Context) ([]byte, error)
	putFunc func(ctx context.Context, document []byte) error
}

func (m *mockConfigService) Get(ctx context.Context) ([]byte, error) {
	return m.getFunc(ctx)
}

func (m *mockConfigService) Put(ctx context.Context, document []byte) error {
	return m.putFunc(ctx, document)
}

func newTestRouter(svc service.ConfigService, token string, origins []string) http.Handler {
	cfg := config.StoreConfig{
		Auth: config.Auth{AdminToken: token},
		CORS: config.CORS{AllowedOrigins: origins},
	}
	return NewHandler(svc, cfg, logger.Nop()).Init()
}

func TestGetConfig_ReturnsStoredDocument(t *testing.T) {
	stored := `{"site":{"title":"Acme"}}`
	svc := &mockConfigService{
		getFunc: func(_ context.Context) ([]byte, error) { return []byte(stored), nil },
	}
	router := newTestRouter(svc, "secret", []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, stored, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestGetConfig_EmptyStore(t *testing.T) {
	svc := &mockConfigService{
		getFunc: func(_ context.Context) ([]byte, error) { return []byte("{}"), nil },
	}
	router := newTestRouter(svc, "secret", []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestGetConfig_ServiceError(t *testing.T) {
	svc := &mockConfigService{
		getFunc: func(_ context.Context) ([]byte, error) { return nil, errors.New("boom") },
	}
	router := newTestRouter(svc, "secret", []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPutConfig_Authorized(t *testing.T) {
	var saved []byte
	svc := &mockConfigService{
		putFunc: func(_ context.Context, document []byte) error {
			saved = document
			return nil
		},
	}
	router := newTestRouter(svc, "secret", []string{"*"})

	req := httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(`{"a":1}`))
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.JSONEq(t, `{"a":1}`, string(saved))
}

func TestPutConfig_AuthMatrix(t *testing.T) {
	tests := []struct {
		name       string
		adminToken string
		header     string
		wantStatus int
	}{
		{name: "no token configured fails closed", adminToken: "", header: "Bearer anything", wantStatus: http.StatusForbidden},
		{name: "missing header", adminToken: "secret", header: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", adminToken: "secret", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "empty token", adminToken: "secret", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", adminToken: "secret", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "correct token", adminToken: "secret", header: "Bearer secret", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockConfigService{
				putFunc: func(_ context.Context, _ []byte) error { return nil },
			}
			router := newTestRouter(svc, tt.adminToken, []string{"*"})

			req := httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(`{}`))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPutConfig_InvalidJSON(t *testing.T) {
	svc := &mockConfigService{
		putFunc: func(_ context.Context, _ []byte) error { return service.ErrInvalidDocument },
	}
	router := newTestRouter(svc, "secret", []string{"*"})

	req := httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(`{"broken`))
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_UnknownPathAndMethod(t *testing.T) {
	svc := &mockConfigService{
		getFunc: func(_ context.Context) ([]byte, error) { return []byte("{}"), nil },
	}
	router := newTestRouter(svc, "secret", []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/config", strings.NewReader(`{}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORS_Matrix(t *testing.T) {
	tests := []struct {
		name      string
		origins   []string
		origin    string
		wantAllow string
	}{
		{name: "wildcard", origins: []string{"*"}, origin: "https://acme.example", wantAllow: "*"},
		{name: "exact match", origins: []string{"https://acme.example"}, origin: "https://acme.example", wantAllow: "https://acme.example"},
		{name: "no match", origins: []string{"https://acme.example"}, origin: "https://evil.example", wantAllow: ""},
		{name: "empty list", origins: nil, origin: "https://acme.example", wantAllow: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockConfigService{
				getFunc: func(_ context.Context) ([]byte, error) { return []byte("{}"), nil },
			}
			router := newTestRouter(svc, "secret", tt.origins)

			req := httptest.NewRequest(http.MethodGet, "/config", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	svc := &mockConfigService{
		putFunc: func(_ context.Context, _ []byte) error {
			t.Fatal("preflight must not reach the handler")
			return nil
		},
	}
	router := newTestRouter(svc, "secret", []string{"*"})

	req := httptest.NewRequest(http.MethodOptions, "/config", nil)
	req.Header.Set("Origin", "https://acme.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, corsAllowMethods, rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, corsAllowHeaders, rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestTraceID_EchoedAndGenerated(t *testing.T) {
	svc := &mockConfigService{
		getFunc: func(_ context.Context) ([]byte, error) { return []byte("{}"), nil },
	}
	router := newTestRouter(svc, "secret", []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/config", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
