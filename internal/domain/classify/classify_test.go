package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xenking/coffee-order/internal/domain/beverage"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		bev  beverage.Beverage
		want Labels
	}{
		{
			name: "two shots not decaf is caffeinated",
			bev:  beverage.Beverage{BaseDrink: "Latte", Temp: "Hot", Milk: "2%", Shots: 2},
			want: Labels{Caffeinated: true},
		},
		{
			name: "decaf overrides shot count",
			bev:  beverage.Beverage{BaseDrink: "Latte", Temp: "Hot", Milk: "2%", Shots: 2, IsDecaf: true},
			want: Labels{Decaf: true, KidSafe: true},
		},
		{
			name: "plant milk only is dairy free and vegan friendly",
			bev:  beverage.Beverage{BaseDrink: "Latte", Temp: "Iced", PlantMilk: "Oat", Shots: 1},
			want: Labels{Caffeinated: true, DairyFree: true, VeganFriendly: true},
		},
		{
			name: "zero shots hot is kid safe",
			bev:  beverage.Beverage{BaseDrink: "Chocolate", Temp: "Hot", Milk: "Whole"},
			want: Labels{KidSafe: true},
		},
		{
			name: "extra hot is never kid safe",
			bev:  beverage.Beverage{BaseDrink: "Chocolate", Temp: "ExtraHot", IsDecaf: true},
			want: Labels{Decaf: true, DairyFree: true, VeganFriendly: true},
		},
		{
			name: "whitespace milk counts as none",
			bev:  beverage.Beverage{BaseDrink: "Tea", Temp: "Hot", Milk: "  "},
			want: Labels{DairyFree: true, VeganFriendly: true, KidSafe: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.bev))
		})
	}
}

func TestLabels_Names(t *testing.T) {
	assert.Nil(t, Labels{}.Names())
	assert.Equal(t,
		[]string{"caffeinated", "decaf", "dairy-free", "vegan-friendly", "kid-safe"},
		Labels{Caffeinated: true, Decaf: true, DairyFree: true, VeganFriendly: true, KidSafe: true}.Names(),
	)
}
