package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(context.Context) error { return nil }

func failing(msg string) CheckFunc {
	return func(context.Context) error { return errors.New(msg) }
}

func serve(fn http.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	fn(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestLiveEndpoint(t *testing.T) {
	h := New()
	h.AddLivenessCheck("goroutines", time.Second, ok)

	w := serve(h.LiveEndpoint)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCheck_FailureThreshold(t *testing.T) {
	h := New()
	h.AddLivenessCheck("engine", time.Second, failing("boom"))
	c := h.live[0]
	ctx := context.Background()

	for range FailureThreshold - 1 {
		c.run(ctx)
		assert.Equal(t, http.StatusOK, serve(h.LiveEndpoint).Code)
	}

	c.run(ctx)
	w := serve(h.LiveEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy","checks":{"engine":"boom"}}`, w.Body.String())
}

func TestCheck_Recovers(t *testing.T) {
	var broken atomic.Bool
	broken.Store(true)
	c := newCheck("flaky", time.Second, func(context.Context) error {
		if broken.Load() {
			return errors.New("down")
		}
		return nil
	})

	ctx := context.Background()
	for range FailureThreshold {
		c.run(ctx)
	}
	require.Equal(t, "down", c.failure())

	broken.Store(false)
	c.run(ctx)
	assert.Empty(t, c.failure())
}

func TestCheck_Timeout(t *testing.T) {
	c := newCheck("slow", time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	for range FailureThreshold {
		c.run(context.Background())
	}
	assert.Equal(t, context.DeadlineExceeded.Error(), c.failure())
}

func TestReadyEndpoint(t *testing.T) {
	h := New()
	h.AddReadinessCheck("engine", time.Second, ok)

	w := serve(h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy","checks":{"ready":"service is not ready"}}`, w.Body.String())
	assert.False(t, h.IsReady())

	h.SetReady(true)
	w = serve(h.ReadyEndpoint)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, h.IsReady())

	h.SetReady(false)
	assert.False(t, h.IsReady())
}

func TestReadyEndpoint_FailingCheck(t *testing.T) {
	h := New()
	h.SetReady(true)
	h.AddReadinessCheck("engine", time.Second, failing("quote mismatch"))
	for range FailureThreshold {
		h.probes[0].run(context.Background())
	}

	assert.False(t, h.IsReady())
	w := serve(h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy","checks":{"engine":"quote mismatch"}}`, w.Body.String())
}

func TestStartStop(t *testing.T) {
	h := New()
	var runs atomic.Int32
	h.AddReadinessCheck("count", time.Second, func(context.Context) error {
		runs.Add(1)
		return errors.New("nope")
	})

	h.Start(context.Background(), time.Millisecond)
	defer h.Stop()

	require.Eventually(t, func() bool {
		return runs.Load() >= FailureThreshold && h.readiness()[0].failure() != ""
	}, time.Second, time.Millisecond)

	h.Stop()
	h.Stop()
}

func TestGoroutineCountCheck(t *testing.T) {
	assert.NoError(t, GoroutineCountCheck(1_000_000)(context.Background()))
	assert.Error(t, GoroutineCountCheck(0)(context.Background()))
}
