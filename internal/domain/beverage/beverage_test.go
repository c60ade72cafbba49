package beverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClone_CopiesSlices(t *testing.T) {
	orig := Beverage{BaseDrink: "Latte", Syrups: []string{"Vanilla"}, Toppings: []string{"Foam"}}

	b := orig.Clone()
	orig.Syrups[0] = "Caramel"
	orig.Toppings[0] = "Cinnamon"

	assert.Equal(t, []string{"Vanilla"}, b.Syrups)
	assert.Equal(t, []string{"Foam"}, b.Toppings)
	assert.Equal(t, "Latte", b.BaseDrink)
}

func TestBeverage_Temperature(t *testing.T) {
	tests := []struct {
		temp         string
		wantHot      bool
		wantExtraHot bool
	}{
		{temp: "Hot", wantHot: true},
		{temp: "hot", wantHot: true},
		{temp: "HOT", wantHot: true},
		{temp: "ExtraHot", wantExtraHot: true},
		{temp: "extrahot", wantExtraHot: true},
		{temp: "Iced"},
		{temp: ""},
	}

	for _, tt := range tests {
		t.Run(tt.temp, func(t *testing.T) {
			b := Beverage{Temp: tt.temp}
			assert.Equal(t, tt.wantHot, b.IsHot())
			assert.Equal(t, tt.wantExtraHot, b.IsExtraHot())
		})
	}
}

func TestBeverage_Milk(t *testing.T) {
	assert.True(t, Beverage{Milk: "2%"}.HasMilk())
	assert.False(t, Beverage{Milk: "   "}.HasMilk())
	assert.True(t, Beverage{PlantMilk: "Oat"}.HasPlantMilk())
	assert.False(t, Beverage{PlantMilk: "\t"}.HasPlantMilk())
}
