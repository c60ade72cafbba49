package api

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/coffee-order/gen/oas"
	"github.com/xenking/coffee-order/internal/domain/beverage"
	"github.com/xenking/coffee-order/internal/domain/order"
	"github.com/xenking/coffee-order/internal/domain/pricing"
	"github.com/xenking/coffee-order/internal/domain/promotion"
)

// Promotion describes a recognised promotion code.
type Promotion struct {
	Code        promotion.Code
	Description string
}

// Promotions lists the promotion codes in the order they are applied.
var Promotions = []Promotion{
	{Code: promotion.HappyHour, Description: promotion.ReasonHappyHour},
	{Code: promotion.BOGO, Description: promotion.ReasonBOGO},
}

// QuoteToOAS builds the quote response.
func QuoteToOAS(q *order.Quote) *oas.Quote {
	lines := make([]oas.QuoteLine, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = lineToOAS(l)
	}

	codes := make([]string, len(q.AppliedCodes))
	for i, c := range q.AppliedCodes {
		codes[i] = string(c)
	}

	discounts := make([]oas.Discount, len(q.Discounts))
	for i, l := range q.Discounts {
		discounts[i] = oas.Discount{Reason: l.Reason, Amount: money(l.Amount)}
	}

	return &oas.Quote{
		ID:            q.ID,
		CreatedAt:     q.CreatedAt,
		Items:         lines,
		PromoCodes:    codes,
		Discounts:     discounts,
		Subtotal:      money(q.Subtotal),
		TotalDiscount: money(q.TotalDiscount),
		Total:         money(q.Total),
		Receipt:       q.Receipt,
	}
}

func lineToOAS(l order.Line) oas.QuoteLine {
	return oas.QuoteLine{
		Beverage: BeverageToOAS(l.Beverage),
		Breakdown: oas.Breakdown{
			BasePrice: money(l.Breakdown.BasePrice),
			Shots:     money(l.Breakdown.Shots),
			Syrups:    money(l.Breakdown.Syrups),
			PlantMilk: money(l.Breakdown.PlantMilk),
			Toppings:  money(l.Breakdown.Toppings),
			Subtotal:  money(l.Breakdown.Subtotal),
		},
		Discount: money(l.Total.Discount),
		Final:    money(l.Total.Final()),
		Labels:   l.Labels.Names(),
		Valid:    l.Validation.Valid(),
		Errors:   l.Validation.Errors,
		Warnings: l.Validation.Warnings,
	}
}

// BeverageToOAS echoes a beverage with every field present.
func BeverageToOAS(b beverage.Beverage) oas.Beverage {
	return oas.Beverage{
		BaseDrink: oas.NewOptString(b.BaseDrink),
		Size:      oas.NewOptString(b.Size),
		Temp:      oas.NewOptString(b.Temp),
		Milk:      oas.NewOptString(b.Milk),
		PlantMilk: oas.NewOptString(b.PlantMilk),
		Shots:     oas.NewOptInt(b.Shots),
		Syrups:    orEmpty(b.Syrups),
		Toppings:  orEmpty(b.Toppings),
		IsDecaf:   oas.NewOptBool(b.IsDecaf),
	}
}

// MenuToOAS builds the menu response from the price list and the known
// promotions.
func MenuToOAS(m pricing.PriceList) *oas.Menu {
	sizes := make([]oas.SizePrice, len(m.Sizes))
	for i, s := range m.Sizes {
		sizes[i] = oas.SizePrice{Size: s.Size, Price: money(s.Price)}
	}

	promos := make([]oas.Promotion, len(Promotions))
	for i, p := range Promotions {
		promos[i] = oas.Promotion{Code: string(p.Code), Description: p.Description}
	}

	return &oas.Menu{
		Sizes: sizes,
		AddOns: oas.AddOns{
			Shot:      money(m.Shot),
			Syrup:     money(m.Syrup),
			PlantMilk: money(m.PlantMilk),
			Topping:   money(m.Topping),
		},
		Promotions: promos,
	}
}

// money converts an already rounded amount to a JSON number.
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// orEmpty keeps optional arrays present on the wire.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
