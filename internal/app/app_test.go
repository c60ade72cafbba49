package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/xenking/coffee-order/pkg/health"
	"github.com/xenking/coffee-order/pkg/httpmiddleware"
)

func testConfig() *Config {
	return &Config{
		Author:    "Test",
		RateLimit: RateLimitConfig{Max: 100, Window: time.Minute},
	}
}

func newTestServer(t *testing.T, cfg *Config) (*httptest.Server, *health.Health) {
	t.Helper()

	hs := health.New()
	hs.AddReadinessCheck("engine", time.Second, EngineCheck)
	h, err := NewHandler(t.Context(), cfg, hs, tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider())
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv, hs
}

func TestEngineCheck(t *testing.T) {
	require.NoError(t, EngineCheck(context.Background()))
}

func TestNewHandler_Routes(t *testing.T) {
	srv, hs := newTestServer(t, testConfig())

	resp, err := http.Get(srv.URL + "/api/menu")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(httpmiddleware.HeaderRequestID))
	assert.Equal(t, "100", resp.Header.Get("X-RateLimit-Limit"))

	resp, err = http.Get(srv.URL + "/livez")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	hs.SetReady(true)
	resp, err = http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := `{"items":[{"baseDrink":"Latte","size":"Tall","temp":"Hot"}],"promoCodes":["happyhour"]}`
	resp, err = http.Post(srv.URL+"/api/quote", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewHandler_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Max = 1
	srv, _ := newTestServer(t, cfg)

	resp, err := http.Get(srv.URL + "/api/menu")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/menu")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestNewHandler_BodyTooLarge(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	body := `{"items": [], "pad": "` + strings.Repeat("x", maxBodyBytes) + `"}`
	resp, err := http.Post(srv.URL+"/api/quote", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestNewHandler_Receipt(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	body := `{"items":[{"baseDrink":"Tea","size":"Tall","temp":"Iced"}]}`
	resp, err := http.Post(srv.URL+"/api/receipt", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Author: Test")
	assert.Contains(t, string(data), "Total Due:                 $3.00")
}
