package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter(t *testing.T) {
	t.Run("allows requests within the burst", func(t *testing.T) {
		rl := NewRateLimiter(1, 3, false)
		defer rl.Shutdown()

		handler := rl.Middleware(okHandler())

		for i := 0; i < 3; i++ {
			r := httptest.NewRequest(http.MethodGet, "/pay/prod-123", nil)
			r.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("rejects requests over the burst", func(t *testing.T) {
		rl := NewRateLimiter(1, 1, false)
		defer rl.Shutdown()

		handler := rl.Middleware(okHandler())

		first := httptest.NewRequest(http.MethodGet, "/pay/prod-123", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, first)
		assert.Equal(t, http.StatusOK, w.Code)

		second := httptest.NewRequest(http.MethodGet, "/pay/prod-123", nil)
		second.RemoteAddr = "10.0.0.1:1234"
		w = httptest.NewRecorder()
		handler.ServeHTTP(w, second)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("limits clients independently", func(t *testing.T) {
		rl := NewRateLimiter(1, 1, false)
		defer rl.Shutdown()

		handler := rl.Middleware(okHandler())

		first := httptest.NewRequest(http.MethodGet, "/pay/prod-123", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, first)
		assert.Equal(t, http.StatusOK, w.Code)

		other := httptest.NewRequest(http.MethodGet, "/pay/prod-123", nil)
		other.RemoteAddr = "10.0.0.2:1234"
		w = httptest.NewRecorder()
		handler.ServeHTTP(w, other)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("uses the forwarded address behind a proxy", func(t *testing.T) {
		rl := NewRateLimiter(1, 1, true)
		defer rl.Shutdown()

		handler := rl.Middleware(okHandler())

		// Same proxy address, different clients
		first := httptest.NewRequest(http.MethodGet, "/pay/prod-123", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		first.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, first)
		assert.Equal(t, http.StatusOK, w.Code)

		second := httptest.NewRequest(http.MethodGet, "/pay/prod-123", nil)
		second.RemoteAddr = "10.0.0.1:1234"
		second.Header.Set("X-Forwarded-For", "203.0.113.8, 10.0.0.1")
		w = httptest.NewRecorder()
		handler.ServeHTTP(w, second)
		assert.Equal(t, http.StatusOK, w.Code)

		repeat := httptest.NewRequest(http.MethodGet, "/pay/prod-123", nil)
		repeat.RemoteAddr = "10.0.0.1:1234"
		repeat.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		w = httptest.NewRecorder()
		handler.ServeHTTP(w, repeat)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}
