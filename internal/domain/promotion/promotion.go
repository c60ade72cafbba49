// Package promotion applies promotion codes to a priced order.
//
// Promotions run in a fixed sequence: HAPPYHOUR first, then BOGO. BOGO ranks
// items by their price after HAPPYHOUR, so the sequence changes which item
// is freed and is part of the contract.
package promotion

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xenking/coffee-order/internal/domain/beverage"
	"github.com/xenking/coffee-order/internal/domain/pricing"
)

// Code is a normalised promotion code.
type Code string

const (
	// HappyHour takes 20% off every Hot drink.
	HappyHour Code = "HAPPYHOUR"
	// BOGO frees the cheaper of the two most expensive items, once per order.
	BOGO Code = "BOGO"
)

// Summary line reasons.
const (
	ReasonHappyHour = "HAPPYHOUR: 20% off Hot drinks"
	ReasonBOGO      = "BOGO: free item (once per order)"
)

var happyHourRate = decimal.RequireFromString("0.20")

// ItemTotal is the promotion outcome for one order line.
type ItemTotal struct {
	Original decimal.Decimal
	Discount decimal.Decimal
}

// Final is the price after discounts.
func (it ItemTotal) Final() decimal.Decimal {
	return pricing.Round2(it.Original.Sub(it.Discount))
}

// Line is one entry of the discount summary.
type Line struct {
	Reason string
	Amount decimal.Decimal
}

// Result is the outcome of Apply. Items follow the input order and Lines
// follow the order promotions were evaluated in.
type Result struct {
	Items           []ItemTotal
	TotalDiscount   decimal.Decimal
	FinalOrderTotal decimal.Decimal
	Lines           []Line
}

// Known reports whether code (in any case, with surrounding spaces) is a
// recognised promotion.
func Known(code string) bool {
	switch Code(strings.ToUpper(strings.TrimSpace(code))) {
	case HappyHour, BOGO:
		return true
	default:
		return false
	}
}

// NormalizeCodes trims and upper-cases codes, dropping blanks and duplicates.
// The first occurrence of each code keeps its position.
func NormalizeCodes(codes []string) []Code {
	out := make([]Code, 0, len(codes))
	seen := make(map[Code]struct{}, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		code := Code(strings.ToUpper(c))
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// Apply prices every beverage and applies the promotion codes to the order.
// Unknown codes are ignored. Apply never fails and does not modify its
// arguments.
func Apply(bevs []beverage.Beverage, codes []string) Result {
	active := make(map[Code]bool)
	for _, c := range NormalizeCodes(codes) {
		active[c] = true
	}

	breakdowns := make([]pricing.Breakdown, len(bevs))
	items := make([]ItemTotal, len(bevs))
	for i, b := range bevs {
		breakdowns[i] = pricing.CalculateBeverageSubtotal(b)
		items[i] = ItemTotal{
			Original: breakdowns[i].Subtotal,
			Discount: decimal.Zero,
		}
	}

	var lines []Line

	if active[HappyHour] {
		applyHappyHour(bevs, items)

		if amount := happyHourTotal(bevs, breakdowns); amount.IsPositive() {
			lines = append(lines, Line{Reason: ReasonHappyHour, Amount: amount})
		}
	}

	if active[BOGO] && len(items) >= 2 {
		if amount := applyBOGO(items); amount.IsPositive() {
			lines = append(lines, Line{Reason: ReasonBOGO, Amount: amount})
		}
	}

	totalDiscount := decimal.Zero
	finalTotal := decimal.Zero
	for _, it := range items {
		totalDiscount = totalDiscount.Add(it.Discount)
		finalTotal = finalTotal.Add(it.Final())
	}

	return Result{
		Items:           items,
		TotalDiscount:   pricing.Round2(totalDiscount),
		FinalOrderTotal: pricing.Round2(finalTotal),
		Lines:           lines,
	}
}

// applyHappyHour adds 20% of the pre-promotion subtotal to the discount of
// every Hot item.
func applyHappyHour(bevs []beverage.Beverage, items []ItemTotal) {
	for i, b := range bevs {
		if !b.IsHot() {
			continue
		}
		off := happyHourDiscount(items[i].Original)
		if off.IsPositive() {
			items[i].Discount = pricing.Round2(items[i].Discount.Add(off))
		}
	}
}

// happyHourTotal recomputes the HAPPYHOUR contribution from the raw
// breakdowns, so the summary line stays exact whatever BOGO adds later.
func happyHourTotal(bevs []beverage.Beverage, breakdowns []pricing.Breakdown) decimal.Decimal {
	sum := decimal.Zero
	for i, b := range bevs {
		if b.IsHot() {
			sum = sum.Add(happyHourDiscount(breakdowns[i].Subtotal))
		}
	}
	return pricing.Round2(sum)
}

func happyHourDiscount(subtotal decimal.Decimal) decimal.Decimal {
	return pricing.Round2(subtotal.Mul(happyHourRate))
}

type ranked struct {
	idx   int
	price decimal.Decimal
}

// applyBOGO frees the second-ranked of the two most expensive items by
// effective price and returns the freed amount. Ties rank by input position,
// so on equal prices the later item is freed. items must hold at least two
// entries.
func applyBOGO(items []ItemTotal) decimal.Decimal {
	ranks := make([]ranked, len(items))
	for i, it := range items {
		ranks[i] = ranked{idx: i, price: it.Final()}
	}

	slices.SortStableFunc(ranks, func(a, b ranked) int {
		if c := b.price.Cmp(a.price); c != 0 {
			return c
		}
		return cmp.Compare(a.idx, b.idx)
	})

	free := ranks[1]
	amount := pricing.Round2(free.price)
	if !amount.IsPositive() {
		return decimal.Zero
	}

	items[free.idx].Discount = pricing.Round2(items[free.idx].Discount.Add(amount))
	return amount
}
