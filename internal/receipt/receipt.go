// Package receipt renders a deterministic plain-text receipt for an order.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/coffee-order/internal/domain/beverage"
	"github.com/xenking/coffee-order/internal/domain/pricing"
	"github.com/xenking/coffee-order/internal/domain/promotion"
	"github.com/xenking/coffee-order/internal/domain/validation"
)

const (
	title      = "=== Coffee Shop Receipt ==="
	timeLayout = "2006-01-02 15:04"
)

// Order is the input for Format.
type Order struct {
	Beverages  []beverage.Beverage
	PromoCodes []string
	Author     string
	// CreatedAt is printed in UTC.
	CreatedAt time.Time
}

// Format prices the order, applies promotions and renders the receipt.
// The same input always yields the same text.
func Format(o Order) string {
	result := promotion.Apply(o.Beverages, o.PromoCodes)

	warnings := make([][]string, len(o.Beverages))
	for i, b := range o.Beverages {
		warnings[i] = validation.Validate(b).Warnings
	}

	return Render(o, result, warnings)
}

// Render lays out an already computed promotion result. warnings holds the
// validation warnings per beverage and may be shorter than the order. A
// beverage without a matching result item is priced at its subtotal with no
// discount.
func Render(o Order, result promotion.Result, warnings [][]string) string {
	lines := []string{
		title,
		"Author: " + o.Author,
		"Created: " + o.CreatedAt.UTC().Format(timeLayout) + " UTC",
		"",
		"Items:",
	}

	subtotal := decimal.Zero
	for i, b := range o.Beverages {
		it := itemAt(result, i, b)
		subtotal = subtotal.Add(it.Original)

		lines = append(lines, fmt.Sprintf("%d) %s %s %s - Original: %s | Discounts: %s | Final: %s",
			i+1, b.BaseDrink, b.Size, b.Temp,
			Money(it.Original), Money(it.Discount), Money(it.Final()),
		))

		if i < len(warnings) {
			for _, w := range warnings[i] {
				lines = append(lines, "   ! "+w)
			}
		}
	}

	lines = append(lines, "")

	if len(result.Lines) > 0 {
		lines = append(lines, "Discounts:")
		for _, l := range result.Lines {
			lines = append(lines, fmt.Sprintf(" - %s: %s", l.Reason, Money(l.Amount)))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"Subtotal (before promos): "+Money(pricing.Round2(subtotal)),
		"Total Discounts:           "+Money(result.TotalDiscount),
		"Total Due:                 "+Money(result.FinalOrderTotal),
	)

	return strings.Join(lines, "\n")
}

func itemAt(result promotion.Result, i int, b beverage.Beverage) promotion.ItemTotal {
	if i < len(result.Items) {
		return result.Items[i]
	}
	return promotion.ItemTotal{
		Original: pricing.CalculateBeverageSubtotal(b).Subtotal,
		Discount: decimal.Zero,
	}
}
