package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/xenking/coffee-order/internal/domain/beverage"
	"github.com/xenking/coffee-order/internal/domain/promotion"
	"github.com/xenking/coffee-order/internal/domain/validation"
)

// --- Helpers ---

var fixedNow = time.Date(2025, 9, 26, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, cfg Config) *Service {
	t.Helper()
	svc, err := NewService(cfg, tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider())
	require.NoError(t, err)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func oatLatte() beverage.Beverage {
	return beverage.Beverage{
		BaseDrink: "Latte", Size: "Tall", Temp: "Hot", PlantMilk: "Oat",
		Shots: 2, Syrups: []string{"Vanilla"},
	}
}

func grandeTea() beverage.Beverage {
	return beverage.Beverage{BaseDrink: "Tea", Size: "Grande", Temp: "Hot", IsDecaf: true}
}

// --- Tests ---

func TestQuote_EmptyItems(t *testing.T) {
	svc := newTestService(t, Config{})

	_, err := svc.Quote(context.Background(), QuoteRequest{})
	require.ErrorIs(t, err, ErrEmptyItems)
}

func TestQuote_NoPromotions(t *testing.T) {
	svc := newTestService(t, Config{Author: "Barista"})

	q, err := svc.Quote(context.Background(), QuoteRequest{
		Items: []beverage.Beverage{oatLatte(), grandeTea()},
	})
	require.NoError(t, err)

	_, err = uuid.Parse(q.ID)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, q.CreatedAt)
	assert.True(t, d("8.90").Equal(q.Subtotal))
	assert.True(t, decimal.Zero.Equal(q.TotalDiscount))
	assert.True(t, q.Subtotal.Equal(q.Total))
	assert.Empty(t, q.Discounts)
	assert.Empty(t, q.AppliedCodes)
	assert.Contains(t, q.Receipt, "Author: Barista")
}

func TestQuote_WithPromotions(t *testing.T) {
	svc := newTestService(t, Config{Author: "Barista"})

	q, err := svc.Quote(context.Background(), QuoteRequest{
		Items:      []beverage.Beverage{oatLatte(), grandeTea()},
		PromoCodes: []string{"happyhour", "BOGO", "bogo", "FREEBIE"},
	})
	require.NoError(t, err)

	assert.Equal(t, []promotion.Code{promotion.HappyHour, promotion.BOGO}, q.AppliedCodes)
	assert.True(t, d("8.90").Equal(q.Subtotal))
	assert.True(t, d("4.58").Equal(q.TotalDiscount), "discount %s", q.TotalDiscount)
	assert.True(t, d("4.32").Equal(q.Total), "total %s", q.Total)

	require.Len(t, q.Lines, 2)
	assert.True(t, d("5.40").Equal(q.Lines[0].Breakdown.Subtotal))
	assert.True(t, d("4.32").Equal(q.Lines[0].Total.Final()))
	assert.True(t, d("0.00").Equal(q.Lines[1].Total.Final()))
	assert.True(t, q.Lines[0].Labels.Caffeinated)
	assert.True(t, q.Lines[1].Labels.Decaf)

	require.Len(t, q.Discounts, 2)
	assert.Equal(t, promotion.ReasonHappyHour, q.Discounts[0].Reason)
	assert.Equal(t, promotion.ReasonBOGO, q.Discounts[1].Reason)

	assert.Contains(t, q.Receipt, "Created: 2025-09-26 12:00 UTC")
	assert.Contains(t, q.Receipt, "Total Due:                 $4.32")
}

func TestQuote_InvalidBeveragePricedWhenLenient(t *testing.T) {
	svc := newTestService(t, Config{})

	bad := beverage.Beverage{Temp: "Hot", Milk: "Whole", PlantMilk: "Almond", Shots: 9}

	q, err := svc.Quote(context.Background(), QuoteRequest{Items: []beverage.Beverage{bad}})
	require.NoError(t, err)

	require.Len(t, q.Lines, 1)
	assert.False(t, q.Lines[0].Validation.Valid())
	assert.Contains(t, q.Lines[0].Validation.Errors, validation.MsgMilkConflict)
	// Tall fallback 3.00 + 9 shots 6.75 + almond 0.60
	assert.True(t, d("10.35").Equal(q.Total), "total %s", q.Total)
	assert.Contains(t, q.Receipt, "! "+validation.WarnTreeNuts)
}

func TestQuote_StrictValidation(t *testing.T) {
	svc := newTestService(t, Config{StrictValidation: true})

	_, err := svc.Quote(context.Background(), QuoteRequest{
		Items: []beverage.Beverage{oatLatte(), {BaseDrink: "Latte", Size: "Tall"}},
	})

	var ibErr *InvalidBeverageError
	require.ErrorAs(t, err, &ibErr)
	assert.Equal(t, 1, ibErr.Index)
	assert.Equal(t, []string{validation.MsgTempRequired}, ibErr.Errors)
	assert.Contains(t, ibErr.Error(), "item 2 is invalid")
}

func TestQuote_DoesNotRetainCallerSlices(t *testing.T) {
	svc := newTestService(t, Config{})

	items := []beverage.Beverage{oatLatte()}
	q, err := svc.Quote(context.Background(), QuoteRequest{Items: items})
	require.NoError(t, err)

	items[0].Syrups[0] = "Caramel"
	assert.Equal(t, []string{"Vanilla"}, q.Lines[0].Beverage.Syrups)
}
