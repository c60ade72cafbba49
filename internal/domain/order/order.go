package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/coffee-order/internal/domain/beverage"
	"github.com/xenking/coffee-order/internal/domain/classify"
	"github.com/xenking/coffee-order/internal/domain/pricing"
	"github.com/xenking/coffee-order/internal/domain/promotion"
	"github.com/xenking/coffee-order/internal/domain/validation"
)

// QuoteRequest holds the input for quoting an order.
type QuoteRequest struct {
	Items      []beverage.Beverage
	PromoCodes []string
}

// Line is one priced order line.
type Line struct {
	Beverage   beverage.Beverage
	Breakdown  pricing.Breakdown
	Labels     classify.Labels
	Validation validation.Result
	Total      promotion.ItemTotal
}

// Quote is a fully priced order with promotions applied and the rendered
// receipt.
type Quote struct {
	ID        string
	CreatedAt time.Time
	Lines     []Line
	// AppliedCodes lists the recognised promotion codes that were requested,
	// normalised and deduplicated.
	AppliedCodes  []promotion.Code
	Discounts     []promotion.Line
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	Total         decimal.Decimal
	Receipt       string
}
