// Package calc implements monetary derivation for document forms: per-line
// amounts, subtotals and grand totals.
//
// Every derived value is rounded to 2 decimal places. Halves round away from
// zero (round-half-up for the non-negative amounts this domain allows), which
// is what decimal.Round does.
package calc

import "github.com/shopspring/decimal"

// monetaryPlaces is the number of decimal places kept on every derived value.
const monetaryPlaces = 2

// LineAmount returns the derived amount for a single line item:
// quantity * rate, rounded.
func LineAmount(quantity, rate float64) float64 {
	amount := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(rate))
	return round(amount)
}

// Subtotal returns the sum of the given line amounts, rounded.
func Subtotal(amounts []float64) float64 {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(decimal.NewFromFloat(a))
	}
	return round(sum)
}

// GrandTotal returns subtotal + shippingCost + tax, rounded.
func GrandTotal(subtotal, shippingCost, tax float64) float64 {
	total := decimal.NewFromFloat(subtotal).
		Add(decimal.NewFromFloat(shippingCost)).
		Add(decimal.NewFromFloat(tax))
	return round(total)
}

// Format renders a monetary value the way the form displays it: rounded to
// 2 decimal places with trailing zeros trimmed, so 250.00 formats as "250"
// and 292.5 as "292.5".
func Format(v float64) string {
	return decimal.NewFromFloat(v).Round(monetaryPlaces).String()
}

func round(d decimal.Decimal) float64 {
	f, _ := d.Round(monetaryPlaces).Float64()
	return f
}
