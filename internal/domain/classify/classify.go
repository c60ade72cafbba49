// Package classify derives simple dietary and caffeine labels for a beverage.
package classify

import "github.com/xenking/coffee-order/internal/domain/beverage"

// Labels are the flags printed next to a beverage.
type Labels struct {
	Caffeinated   bool
	Decaf         bool
	DairyFree     bool
	VeganFriendly bool
	KidSafe       bool
}

// Classify computes the labels for b. Dairy-free drinks are treated as
// vegan-friendly.
func Classify(b beverage.Beverage) Labels {
	hasShots := b.Shots > 0
	dairyFree := !b.HasMilk()

	return Labels{
		Caffeinated:   hasShots && !b.IsDecaf,
		Decaf:         b.IsDecaf,
		DairyFree:     dairyFree,
		VeganFriendly: dairyFree,
		KidSafe:       (b.IsDecaf || !hasShots) && !b.IsExtraHot(),
	}
}

// Names returns the names of the labels that are set, in a fixed order.
func (l Labels) Names() []string {
	var out []string
	if l.Caffeinated {
		out = append(out, "caffeinated")
	}
	if l.Decaf {
		out = append(out, "decaf")
	}
	if l.DairyFree {
		out = append(out, "dairy-free")
	}
	if l.VeganFriendly {
		out = append(out, "vegan-friendly")
	}
	if l.KidSafe {
		out = append(out, "kid-safe")
	}
	return out
}
