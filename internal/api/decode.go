// Package api converts between the generated OpenAPI types and the order
// domain.
package api

import (
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/coffee-order/gen/oas"
	"github.com/xenking/coffee-order/internal/domain/beverage"
	"github.com/xenking/coffee-order/internal/domain/order"
)

// ErrTrailingData is returned when a request document is followed by more
// input.
var ErrTrailingData = errors.New("unexpected trailing data")

// DecodeError reports a malformed request document.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "invalid request body: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeQuoteRequest parses a single JSON quote request with the same rules
// the HTTP API applies:
//
//	{"items": [{"baseDrink": "Latte", "size": "Tall", ...}], "promoCodes": ["BOGO"]}
//
// Unknown fields are ignored. Anything but whitespace after the object is an
// error.
func DecodeQuoteRequest(data []byte) (order.QuoteRequest, error) {
	var req oas.QuoteRequest

	d := jx.DecodeBytes(data)
	if err := req.Decode(d); err != nil {
		return order.QuoteRequest{}, &DecodeError{Err: err}
	}
	if err := d.Skip(); !errors.Is(err, io.EOF) {
		return order.QuoteRequest{}, &DecodeError{Err: ErrTrailingData}
	}
	if err := req.Validate(); err != nil {
		return order.QuoteRequest{}, &DecodeError{Err: err}
	}

	return QuoteRequestFromOAS(&req), nil
}

// QuoteRequestFromOAS converts a decoded request to the domain request.
func QuoteRequestFromOAS(req *oas.QuoteRequest) order.QuoteRequest {
	items := make([]beverage.Beverage, len(req.Items))
	for i, b := range req.Items {
		items[i] = BeverageFromOAS(b)
	}
	return order.QuoteRequest{
		Items:      items,
		PromoCodes: req.PromoCodes,
	}
}

// BeverageFromOAS converts a wire beverage. Absent fields become zero values,
// which the domain treats as "not selected".
func BeverageFromOAS(b oas.Beverage) beverage.Beverage {
	return beverage.Beverage{
		BaseDrink: b.BaseDrink.Or(""),
		Size:      b.Size.Or(""),
		Temp:      b.Temp.Or(""),
		Milk:      b.Milk.Or(""),
		PlantMilk: b.PlantMilk.Or(""),
		Shots:     b.Shots.Or(0),
		Syrups:    b.Syrups,
		Toppings:  b.Toppings,
		IsDecaf:   b.IsDecaf.Or(false),
	}
}
