// Package pricing computes per-beverage price breakdowns and order subtotals.
//
// All amounts are decimal and rounded half away from zero to two places.
// Invalid or missing beverage options never fail: they contribute nothing,
// and an unknown size is priced as a Tall.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xenking/coffee-order/internal/domain/beverage"
)

var (
	tallPrice   = decimal.RequireFromString("3.00")
	grandePrice = decimal.RequireFromString("3.50")
	ventiPrice  = decimal.RequireFromString("4.00")

	shotPrice      = decimal.RequireFromString("0.75")
	syrupPrice     = decimal.RequireFromString("0.30")
	plantMilkPrice = decimal.RequireFromString("0.60")
	toppingPrice   = decimal.RequireFromString("0.25")
)

// Breakdown is the itemised price of a single beverage.
type Breakdown struct {
	BasePrice decimal.Decimal
	Shots     decimal.Decimal
	Syrups    decimal.Decimal
	PlantMilk decimal.Decimal
	Toppings  decimal.Decimal
	Subtotal  decimal.Decimal
}

// Round2 rounds d to two decimal places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CalculateBeverageSubtotal prices one beverage. Each component is rounded
// on its own for display; the subtotal is rounded once from the raw sum.
func CalculateBeverageSubtotal(b beverage.Beverage) Breakdown {
	base := basePrice(b.Size)
	shots := shotPrice.Mul(count(b.Shots))
	syrups := syrupPrice.Mul(count(len(b.Syrups)))
	toppings := toppingPrice.Mul(count(len(b.Toppings)))

	plantMilk := decimal.Zero
	if b.HasPlantMilk() {
		plantMilk = plantMilkPrice
	}

	raw := base.Add(shots).Add(syrups).Add(plantMilk).Add(toppings)

	return Breakdown{
		BasePrice: Round2(base),
		Shots:     Round2(shots),
		Syrups:    Round2(syrups),
		PlantMilk: Round2(plantMilk),
		Toppings:  Round2(toppings),
		Subtotal:  Round2(raw),
	}
}

// CalculateOrderSubtotal sums the rounded subtotals of all beverages.
// An empty or nil order costs zero.
func CalculateOrderSubtotal(bevs []beverage.Beverage) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range bevs {
		sum = sum.Add(CalculateBeverageSubtotal(b).Subtotal)
	}
	return Round2(sum)
}

// basePrice resolves the size-based price. Blank and unrecognised sizes fall
// back to the Tall price.
func basePrice(size string) decimal.Decimal {
	s := strings.TrimSpace(size)
	switch {
	case strings.EqualFold(s, beverage.SizeGrande):
		return grandePrice
	case strings.EqualFold(s, beverage.SizeVenti):
		return ventiPrice
	default:
		return tallPrice
	}
}

// count converts n to a decimal multiplier, clamping negatives to zero.
func count(n int) decimal.Decimal {
	if n < 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(n))
}
