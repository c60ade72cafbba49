package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/coffee-order/gen/oas"
	"github.com/xenking/coffee-order/internal/domain/beverage"
	"github.com/xenking/coffee-order/internal/domain/order"
	"github.com/xenking/coffee-order/internal/domain/promotion"
	"github.com/xenking/coffee-order/internal/handler"
	"github.com/xenking/coffee-order/pkg/health"
	"github.com/xenking/coffee-order/pkg/httpmiddleware"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Run builds the service graph, serves HTTP until ctx is done and then shuts
// down gracefully.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing",
		zap.String("addr", cfg.Addr),
		zap.Bool("strict_validation", cfg.StrictValidation),
	)

	hs := health.New()
	hs.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	hs.AddReadinessCheck("engine", time.Second, EngineCheck)
	hs.Start(ctx, 10*time.Second)
	defer hs.Stop()

	h, err := NewHandler(ctx, cfg, hs, m.TracerProvider(), m.MeterProvider())
	if err != nil {
		return err
	}

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler:           h,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("Server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "serve")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		hs.SetReady(false)
		if ctx.Err() != nil {
			lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
			time.Sleep(cfg.Graceful.ReadinessDelay)
		}

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		return nil
	})

	hs.SetReady(true)
	return g.Wait()
}

// NewHandler assembles the HTTP surface: API routes, health probes and the
// middleware chain. The rate limiter's cleanup goroutine stops with ctx.
func NewHandler(
	ctx context.Context,
	cfg *Config,
	hs *health.Health,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
) (http.Handler, error) {
	svc, err := order.NewService(order.Config{
		Author:           cfg.Author,
		StrictValidation: cfg.StrictValidation,
	}, tp, mp)
	if err != nil {
		return nil, errors.Wrap(err, "create order service")
	}

	oasServer, err := oas.NewServer(handler.NewHandler(svc),
		oas.WithPathPrefix("/api"),
		oas.WithTracerProvider(tp),
		oas.WithMeterProvider(mp),
		oas.WithErrorHandler(handler.ErrorHandler),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create oas server")
	}

	// Mux: health endpoints + ogen API routes on one server.
	routeFinder := httpmiddleware.MakeRouteFinder(oasServer.FindPath)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /livez", hs.LiveEndpoint)
	mux.HandleFunc("GET /readyz", hs.ReadyEndpoint)
	mux.Handle("/api/", oasServer)

	return httpmiddleware.Wrap(mux,
		httpmiddleware.Recovery(),
		httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
			Max:    cfg.RateLimit.Max,
			Window: cfg.RateLimit.Window,
		}),
		httpmiddleware.RequestID(),
		httpmiddleware.InjectLogger(zctx.From(ctx)),
		httpmiddleware.BodyLimit(maxBodyBytes),
		httpmiddleware.Instrument("coffee-api", routeFinder, tp, mp),
		httpmiddleware.LogRequests(routeFinder),
		httpmiddleware.Labeler(routeFinder),
	), nil
}

var (
	engineProbe = []beverage.Beverage{
		{BaseDrink: "Latte", Size: beverage.SizeGrande, Temp: beverage.TempHot, Shots: 1},
		{BaseDrink: "Tea", Size: beverage.SizeTall, Temp: beverage.TempIced},
	}
	engineProbeTotal = decimal.RequireFromString("3.40")
)

// EngineCheck prices a fixed order through the promotion engine and fails if
// the total drifts from the known answer.
//
// The hot latte costs 4.25 and HAPPYHOUR takes 0.85 off it. BOGO then frees
// the cheaper 3.00 iced tea, leaving 3.40 due.
func EngineCheck(context.Context) error {
	res := promotion.Apply(engineProbe, []string{string(promotion.HappyHour), string(promotion.BOGO)})
	if !res.FinalOrderTotal.Equal(engineProbeTotal) {
		return errors.Errorf("probe order total %s, want %s", res.FinalOrderTotal.StringFixed(2), engineProbeTotal.StringFixed(2))
	}
	return nil
}
