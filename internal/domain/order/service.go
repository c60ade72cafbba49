package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/coffee-order/internal/domain/beverage"
	"github.com/xenking/coffee-order/internal/domain/classify"
	"github.com/xenking/coffee-order/internal/domain/pricing"
	"github.com/xenking/coffee-order/internal/domain/promotion"
	"github.com/xenking/coffee-order/internal/domain/validation"
	"github.com/xenking/coffee-order/internal/receipt"
)

const instrumentationName = "github.com/xenking/coffee-order/internal/domain/order"

// ErrEmptyItems is returned when a quote request has no beverages.
var ErrEmptyItems = errors.New("items required")

// InvalidBeverageError indicates a beverage failed validation while strict
// validation is enabled.
type InvalidBeverageError struct {
	Index  int
	Errors []string
}

func (e *InvalidBeverageError) Error() string {
	return fmt.Sprintf("item %d is invalid: %s", e.Index+1, strings.Join(e.Errors, " "))
}

// Config holds non-dependency configuration for the Service.
type Config struct {
	// Author is printed in the receipt header.
	Author string
	// StrictValidation rejects orders containing an invalid beverage instead
	// of pricing them anyway.
	StrictValidation bool
}

// Service quotes coffee orders.
type Service struct {
	cfg    Config
	now    func() time.Time
	tracer trace.Tracer

	quotes   metric.Int64Counter
	discount metric.Float64Histogram
}

// NewService creates an order Service reporting to the given telemetry
// providers.
func NewService(cfg Config, tp trace.TracerProvider, mp metric.MeterProvider) (*Service, error) {
	meter := mp.Meter(instrumentationName)

	quotes, err := meter.Int64Counter("coffee.quotes",
		metric.WithDescription("Number of quoted orders"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create quotes counter")
	}
	discount, err := meter.Float64Histogram("coffee.discount",
		metric.WithDescription("Total promotion discount per order"),
		metric.WithUnit("USD"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create discount histogram")
	}

	return &Service{
		cfg:      cfg,
		now:      time.Now,
		tracer:   tp.Tracer(instrumentationName),
		quotes:   quotes,
		discount: discount,
	}, nil
}

// Quote prices every beverage, applies promotions and renders the receipt.
// Validation problems are reported per line and only fail the request when
// strict validation is enabled.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	ctx, span := s.tracer.Start(ctx, "order.Quote",
		trace.WithAttributes(attribute.Int("order.items", len(req.Items))),
	)
	defer span.End()

	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}

	items := make([]beverage.Beverage, len(req.Items))
	for i, b := range req.Items {
		items[i] = b.Clone()
	}

	lines := make([]Line, len(items))
	warnings := make([][]string, len(items))
	for i, b := range items {
		v := validation.Validate(b)
		if s.cfg.StrictValidation && !v.Valid() {
			return nil, &InvalidBeverageError{Index: i, Errors: v.Errors}
		}
		warnings[i] = v.Warnings
		lines[i] = Line{
			Beverage:   b,
			Breakdown:  pricing.CalculateBeverageSubtotal(b),
			Labels:     classify.Classify(b),
			Validation: v,
		}
	}

	result := promotion.Apply(items, req.PromoCodes)
	for i := range lines {
		lines[i].Total = result.Items[i]
	}

	var applied []promotion.Code
	for _, c := range promotion.NormalizeCodes(req.PromoCodes) {
		if promotion.Known(string(c)) {
			applied = append(applied, c)
		}
	}

	createdAt := s.now().UTC()
	q := &Quote{
		ID:            uuid.New().String(),
		CreatedAt:     createdAt,
		Lines:         lines,
		AppliedCodes:  applied,
		Discounts:     result.Lines,
		Subtotal:      pricing.CalculateOrderSubtotal(items),
		TotalDiscount: result.TotalDiscount,
		Total:         result.FinalOrderTotal,
	}
	q.Receipt = receipt.Render(receipt.Order{
		Beverages:  items,
		PromoCodes: req.PromoCodes,
		Author:     s.cfg.Author,
		CreatedAt:  createdAt,
	}, result, warnings)

	s.quotes.Add(ctx, 1, metric.WithAttributes(attribute.Bool("order.discounted", result.TotalDiscount.IsPositive())))
	s.discount.Record(ctx, result.TotalDiscount.InexactFloat64())

	span.SetAttributes(
		attribute.String("order.id", q.ID),
		attribute.String("order.total", q.Total.StringFixed(2)),
	)
	zctx.From(ctx).Debug("Quoted order",
		zap.String("order_id", q.ID),
		zap.Int("items", len(items)),
		zap.Stringer("total", q.Total),
		zap.Stringer("discount", q.TotalDiscount),
	)

	return q, nil
}
