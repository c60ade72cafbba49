package receipt

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Money formats d as US dollars with thousands grouping, e.g. $1,234.56.
// The amount is rounded half away from zero to cents first. Any magnitude
// is supported.
func Money(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)

	sign := ""
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign, s = "-", rest
	}
	whole, cents, _ := strings.Cut(s, ".")

	return sign + "$" + group(whole) + "." + cents
}

// group inserts thousands separators into a string of decimal digits.
func group(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return printer.Sprintf("%d", n)
	}
	// Past int64 there are at least 19 digits, so the last three always form
	// a complete group.
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	return group(head) + "," + tail
}
