// Package validation checks beverage configurations. Its outcome is
// informational: pricing works on any beverage, valid or not.
package validation

import (
	"strings"

	"github.com/xenking/coffee-order/internal/domain/beverage"
)

const (
	maxShots  = 4
	maxSyrups = 5
)

// Error and warning messages.
const (
	MsgBaseDrinkRequired = "A base drink is required."
	MsgSizeRequired      = "A size selection is required."
	MsgTempRequired      = "Temperature (Hot/Iced) must be selected."
	MsgTempUnknown       = "Temperature must be one of Hot/Iced/ExtraHot."
	MsgMilkConflict      = "Milk selection invalid: choose dairy OR plant milk, not both."
	MsgShotsRange        = "Shots must be between 0 and 4 inclusive."
	MsgSyrups            = "Syrups must contain 0..5 non-empty entries."

	WarnTreeNuts = "Allergen: contains tree nuts (almond)."
)

// Result holds the problems found in a beverage. Errors make it invalid;
// warnings never do.
type Result struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks b and returns every error and warning found.
func Validate(b beverage.Beverage) Result {
	var r Result

	if beverage.IsBlank(b.BaseDrink) {
		r.Errors = append(r.Errors, MsgBaseDrinkRequired)
	}
	if beverage.IsBlank(b.Size) {
		r.Errors = append(r.Errors, MsgSizeRequired)
	}

	switch {
	case beverage.IsBlank(b.Temp):
		r.Errors = append(r.Errors, MsgTempRequired)
	case !knownTemp(b.Temp):
		r.Errors = append(r.Errors, MsgTempUnknown)
	}

	if b.HasMilk() && b.HasPlantMilk() {
		r.Errors = append(r.Errors, MsgMilkConflict)
	}
	if b.Shots < 0 || b.Shots > maxShots {
		r.Errors = append(r.Errors, MsgShotsRange)
	}
	if len(b.Syrups) > maxSyrups || hasBlank(b.Syrups) {
		r.Errors = append(r.Errors, MsgSyrups)
	}

	if strings.EqualFold(strings.TrimSpace(b.PlantMilk), "Almond") {
		r.Warnings = append(r.Warnings, WarnTreeNuts)
	}

	return r
}

func knownTemp(temp string) bool {
	t := strings.TrimSpace(temp)
	return strings.EqualFold(t, beverage.TempHot) ||
		strings.EqualFold(t, beverage.TempIced) ||
		strings.EqualFold(t, beverage.TempExtraHot)
}

func hasBlank(entries []string) bool {
	for _, e := range entries {
		if beverage.IsBlank(e) {
			return true
		}
	}
	return false
}
