package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name          string
		allowed       []string
		origin        string
		method        string
		expectedAllow string
		expectedCode  int
	}{
		{name: "Origem liberada", allowed: []string{"http://localhost:3000"}, origin: "http://localhost:3000", method: http.MethodGet, expectedAllow: "http://localhost:3000", expectedCode: http.StatusNoContent},
		{name: "Origem bloqueada", allowed: []string{"http://localhost:3000"}, origin: "http://evil.com", method: http.MethodGet, expectedAllow: "", expectedCode: http.StatusNoContent},
		{name: "Curinga", allowed: []string{"*"}, origin: "http://qualquer.com", method: http.MethodGet, expectedAllow: "http://qualquer.com", expectedCode: http.StatusNoContent},
		{name: "Preflight responde sem chamar o handler", allowed: []string{"*"}, origin: "http://a.com", method: http.MethodOptions, expectedAllow: "http://a.com", expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/dashboard", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLoggingMiddleware_SetsCorrelationHeader(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.Header().Get(CorrelationHeader)
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationHeader))
	assert.Equal(t, rec.Header().Get(CorrelationHeader), seen)
}

func TestLogPanicMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
