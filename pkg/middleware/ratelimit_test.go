package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"artstudio-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(utils.RateLimitConfig{RequestsPerMinute: 1, Burst: 2}, zap.NewNop())
	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _ := utils.GetClientIP(r.Context())
		w.Write([]byte(ip))
	}))

	send := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/reservations/abc/checkout", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	first := send("10.0.0.1:5000")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "10.0.0.1", first.Body.String())
	assert.Equal(t, http.StatusOK, send("10.0.0.1:5001").Code)

	blocked := send("10.0.0.1:5002")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "60", blocked.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, send("10.0.0.2:5000").Code)
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(utils.RateLimitConfig{RequestsPerMinute: 1, Burst: 1}, zap.NewNop())
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getLimiter("10.0.0.1")
	assert.Len(t, rl.visitors, 1)

	now = now.Add(11 * time.Minute)
	rl.getLimiter("10.0.0.2")
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "10.0.0.2")
}
