package httpx_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/boardsync/taskboard/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddlewareAllowsWithinBudget(t *testing.T) {
	config := httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3}
	handler := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
}

func TestRateLimitMiddlewareBlocksOverBudget(t *testing.T) {
	config := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	handler := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimitMiddlewareIsolatesKeys(t *testing.T) {
	config := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	handler := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.3:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	// A different IP gets its own budget.
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.0.0.4:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitByIPAndJSONFieldKeysOnAccount(t *testing.T) {
	config := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	handler := httpx.RateLimitByIPAndJSONField(config, "email")(okHandler())

	post := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.RemoteAddr = "10.0.0.6:1234"
		handler.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, post(`{"email":"alice@example.com"}`).Code)

	// Same IP, same account: over budget.
	require.Equal(t, http.StatusTooManyRequests, post(`{"email":"alice@example.com"}`).Code)

	// Same IP, different account: its own budget.
	require.Equal(t, http.StatusOK, post(`{"email":"bob@example.com"}`).Code)

	// Email casing and padding fold into one key.
	require.Equal(t, http.StatusTooManyRequests, post(`{"email":" BOB@example.com "}`).Code)
}

func TestJSONFieldKeyExtractorRestoresBody(t *testing.T) {
	body := `{"email":"alice@example.com","password":"hunter2!"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	require.Equal(t, "alice@example.com", httpx.JSONFieldKeyExtractor("email")(req))

	// The handler still sees the full body after the extractor ran.
	got, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	require.Equal(t, body, string(got))
}

func TestJSONFieldKeyExtractorToleratesBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not json"))
	require.Empty(t, httpx.JSONFieldKeyExtractor("email")(req))
}

func TestIPKeyExtractorPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.5:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.5")

	require.Equal(t, "203.0.113.7", httpx.IPKeyExtractor(req))
}
