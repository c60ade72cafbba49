package httpmiddleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func hit(h http.Handler, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	req.RemoteAddr = addr
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	clock := newClock()
	h := RateLimit(RateLimitConfig{Max: 3, Window: time.Minute, Now: clock.Now})(okHandler())

	for i, remaining := range []string{"2", "1", "0"} {
		w := hit(h, "10.0.0.1:4000")
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, remaining, w.Header().Get("X-RateLimit-Remaining"))
	}

	w := hit(h, "10.0.0.1:4000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"code":429,"message":"rate limit exceeded"}`, w.Body.String())

	// Other clients have their own budget.
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2:4000").Code)
}

func TestRateLimit_SlidingWindow(t *testing.T) {
	clock := newClock()
	h := RateLimit(RateLimitConfig{Max: 2, Window: time.Minute, Now: clock.Now})(okHandler())

	require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
	require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
	require.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1").Code)

	// Just after the boundary the previous window still weighs almost fully.
	clock.Advance(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1").Code)

	// Near the end of the window the previous one has almost slid out.
	clock.Advance(58 * time.Second)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1").Code)

	// Two idle windows reset the client entirely.
	clock.Advance(2 * time.Minute)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
}

func TestRateLimit_KeyFunc(t *testing.T) {
	h := RateLimit(RateLimitConfig{
		Max:     1,
		Window:  time.Minute,
		KeyFunc: func(*http.Request) string { return "everyone" },
	})(okHandler())

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.2:1").Code)
}

func TestLimiter_Evict(t *testing.T) {
	clock := newClock()
	l := newLimiter(RateLimitConfig{Max: 1, Window: time.Minute, Now: clock.Now})

	_, _, ok := l.take("a", clock.Now())
	require.True(t, ok)
	clock.Advance(30 * time.Second)
	_, _, ok = l.take("b", clock.Now())
	require.True(t, ok)

	l.evict(clock.now.Add(2 * time.Minute))
	assert.Empty(t, l.clients)

	_, _, ok = l.take("c", clock.Now())
	require.True(t, ok)
	l.evict(clock.Now())
	assert.Len(t, l.clients, 1)
}

func TestRateLimitWithCleanup_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := RateLimitWithCleanup(ctx, RateLimitConfig{Max: 1, Window: 10 * time.Millisecond})(okHandler())
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
	cancel()
}

func TestClientIP(t *testing.T) {
	for _, tt := range []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "RemoteAddr", remote: "192.0.2.1:1234", want: "192.0.2.1"},
		{name: "RemoteAddrNoPort", remote: "192.0.2.1", want: "192.0.2.1"},
		{
			name:    "ForwardedFor",
			headers: map[string]string{"X-Forwarded-For": " 203.0.113.5 , 10.0.0.1"},
			remote:  "192.0.2.1:1234",
			want:    "203.0.113.5",
		},
		{
			name:    "RealIP",
			headers: map[string]string{"X-Real-IP": "198.51.100.7"},
			remote:  "192.0.2.1:1234",
			want:    "198.51.100.7",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}
