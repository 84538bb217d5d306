package limit

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitMiddleware(t *testing.T) {
	var logs bytes.Buffer
	l := NewIPRateLimiter(0.001, 2, slog.New(slog.NewTextHandler(&logs, nil)))
	h := l.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest("POST", "/api/tools/coil/calc", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:5000"))
	// a new port from the same host shares the bucket
	assert.Equal(t, http.StatusOK, do("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:5002"))
	assert.Equal(t, http.StatusOK, do("10.0.0.2:5000"))

	assert.Contains(t, logs.String(), "rate limit exceeded")
	assert.Contains(t, logs.String(), "10.0.0.1")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "[::1]:8080"
	assert.Equal(t, "::1", clientIP(req))

	req.RemoteAddr = "garbage"
	assert.Equal(t, "garbage", clientIP(req))
}
