package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css")
		_, _ = io.WriteString(w, body)
	})
}

func TestCompression_GzipsBodies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/mess/m-1", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()

	Compression(textHandler("hello mess")).ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "hello mess", string(body))
}

func TestCompression_LeavesRedirectsPlain(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/mess/m-1/subscribe", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/mess/m-1", http.StatusSeeOther)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/mess/m-1", rec.Header().Get("Location"))
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestResponseOptimization_StaticGetsETag(t *testing.T) {
	handler := ResponseOptimization(textHandler("body{}"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, "public, max-age=3600, must-revalidate", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "body{}", rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/static/app.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestResponseOptimization_PagesAreNotCached(t *testing.T) {
	rec := httptest.NewRecorder()

	ResponseOptimization(textHandler("<p>hi</p>")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/profile", nil))

	assert.Equal(t, "private, no-cache", rec.Header().Get("Cache-Control"))
	assert.Empty(t, rec.Header().Get("ETag"))
}

func TestCORSMiddleware(t *testing.T) {
	handler := CORSMiddleware([]string{"https://tastebuddies.example", " "})(textHandler("ok"))

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://tastebuddies.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, "https://tastebuddies.example", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))
	})

	t.Run("other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/search", nil)
		req.Header.Set("Origin", "https://tastebuddies.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "HX-Request")
	})
}

func TestObservabilityMiddleware_ResolvesPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /mess/{id}", func(w http.ResponseWriter, r *http.Request) {})

	assert.Equal(t, "GET /mess/{id}", routePattern(httptest.NewRequest(http.MethodGet, "/mess/abc", nil), mux))
	assert.Equal(t, "unmatched", routePattern(httptest.NewRequest(http.MethodGet, "/nope", nil), mux))
	assert.Equal(t, "/nope", routePattern(httptest.NewRequest(http.MethodGet, "/nope", nil), nil))

	rec := httptest.NewRecorder()
	ObservabilityMiddleware(nil, mux)(mux).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mess/abc", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoggingMiddleware_KeepsFirstStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	var seen *loggingResponseWriter

	LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.(*loggingResponseWriter)
		w.WriteHeader(http.StatusTeapot)
		_, _ = io.WriteString(w, "short and stout")
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, seen)
	assert.Equal(t, http.StatusTeapot, seen.statusCode)
	assert.Equal(t, len("short and stout"), seen.bytes)
}
