// Package beverage describes a single drink order line.
package beverage

import "strings"

// Size names recognised by the price list.
const (
	SizeTall   = "Tall"
	SizeGrande = "Grande"
	SizeVenti  = "Venti"
)

// Temperature names.
const (
	TempHot      = "Hot"
	TempIced     = "Iced"
	TempExtraHot = "ExtraHot"
)

// Beverage is an immutable description of one drink. Empty strings mean the
// option was not selected.
type Beverage struct {
	BaseDrink string
	Size      string
	Temp      string
	Milk      string
	PlantMilk string
	Shots     int
	Syrups    []string
	Toppings  []string
	IsDecaf   bool
}

// Clone returns a copy of b that shares no slices with it.
func (b Beverage) Clone() Beverage {
	b.Syrups = clone(b.Syrups)
	b.Toppings = clone(b.Toppings)
	return b
}

// IsHot reports whether the beverage is served Hot. Only the exact name
// (case-insensitive) counts; ExtraHot is a different temperature.
func (b Beverage) IsHot() bool {
	return strings.EqualFold(b.Temp, TempHot)
}

// IsExtraHot reports whether the beverage is served ExtraHot.
func (b Beverage) IsExtraHot() bool {
	return strings.EqualFold(b.Temp, TempExtraHot)
}

// HasMilk reports whether a dairy milk is selected.
func (b Beverage) HasMilk() bool {
	return !IsBlank(b.Milk)
}

// HasPlantMilk reports whether a plant milk is selected.
func (b Beverage) HasPlantMilk() bool {
	return !IsBlank(b.PlantMilk)
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func clone(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
