package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func originGuardedOK(origins []string) http.Handler {
	return OriginGuard(origins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestOriginGuard_NoOriginPasses(t *testing.T) {
	handler := originGuardedOK(AllowedOrigins(""))

	req := httptest.NewRequest(http.MethodGet, "/api/wishes", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestOriginGuard_AllowedOriginPasses(t *testing.T) {
	handler := originGuardedOK(AllowedOrigins("https://wishes.example.com"))

	req := httptest.NewRequest(http.MethodGet, "/api/wishes", nil)
	req.Header.Set("Origin", "https://wishes.example.com")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestOriginGuard_DisallowedOriginRejected(t *testing.T) {
	handler := originGuardedOK(AllowedOrigins("https://wishes.example.com"))

	req := httptest.NewRequest(http.MethodGet, "/api/wishes", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "error")
}

func TestAllowedOrigins_IncludesDefaultsAndConfigured(t *testing.T) {
	origins := AllowedOrigins("https://wishes.example.com")
	assert.Contains(t, origins, "http://localhost:3000")
	assert.Contains(t, origins, "https://wishes.example.com")

	assert.NotContains(t, AllowedOrigins(""), "")
}
