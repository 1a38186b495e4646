package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitExhaustsBurst(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	var last int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		last = rec.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)

	// A different IP gets its own bucket.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	rec := httptest.NewRecorder()
	handler(rec, req, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetLimiterRefreshesLastSeen(t *testing.T) {
	rl := NewRateLimiter()

	first := rl.getLimiter("10.0.0.9")
	rl.mu.Lock()
	rl.visitors["10.0.0.9"].lastSeen = time.Now().Add(-idleEviction / 2)
	stale := rl.visitors["10.0.0.9"].lastSeen
	rl.mu.Unlock()

	again := rl.getLimiter("10.0.0.9")
	assert.Same(t, first, again)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	v, ok := rl.visitors["10.0.0.9"]
	require.True(t, ok)
	// Activity pushes the eviction horizon forward.
	assert.True(t, v.lastSeen.After(stale))
}
