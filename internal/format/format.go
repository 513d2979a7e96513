// Package format renders amounts and rates for Danish display surfaces.
// Rounding happens here and only here; the projection engine stays unrounded.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var danish = message.NewPrinter(language.MustParse("da-DK"))

const (
	million = 1_000_000
	billion = 1_000_000_000
)

// DKK formats an amount as whole kroner with Danish digit grouping.
func DKK(amount float64) string {
	return danish.Sprintf("%v kr.", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// CompactDKK abbreviates large magnitudes the way the marketing pages quote
// them. Amounts below one million fall back to the full figure.
func CompactDKK(amount float64) string {
	abs := amount
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= billion:
		return danish.Sprintf("%v mia. kr.", number.Decimal(amount/billion, number.MaxFractionDigits(1)))
	case abs >= million:
		return danish.Sprintf("%v mio. kr.", number.Decimal(amount/million, number.MaxFractionDigits(1)))
	default:
		return DKK(amount)
	}
}

// Percent formats a rate with at most one decimal and a Danish percent sign.
func Percent(value float64) string {
	return danish.Sprintf("%v %%", number.Decimal(value, number.MaxFractionDigits(1)))
}

// Years formats a duration in whole years.
func Years(years int) string {
	return danish.Sprintf("%d år", years)
}
