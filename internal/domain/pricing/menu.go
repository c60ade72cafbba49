package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/coffee-order/internal/domain/beverage"
)

// SizePrice is the base price of one cup size.
type SizePrice struct {
	Size  string
	Price decimal.Decimal
}

// PriceList lists the base prices and add-on unit prices.
type PriceList struct {
	Sizes     []SizePrice
	Shot      decimal.Decimal
	Syrup     decimal.Decimal
	PlantMilk decimal.Decimal
	Topping   decimal.Decimal
}

// Menu returns the current price list. Sizes are ordered smallest first.
func Menu() PriceList {
	return PriceList{
		Sizes: []SizePrice{
			{Size: beverage.SizeTall, Price: tallPrice},
			{Size: beverage.SizeGrande, Price: grandePrice},
			{Size: beverage.SizeVenti, Price: ventiPrice},
		},
		Shot:      shotPrice,
		Syrup:     syrupPrice,
		PlantMilk: plantMilkPrice,
		Topping:   toppingPrice,
	}
}
