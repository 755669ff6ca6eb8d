package quote

import "github.com/shopspring/decimal"

// Rounding lives at the output boundary only. Internal math stays
// full-precision float64 so chained calculations (batch tiers) do not
// compound rounding error.

// Round2 rounds to two decimal places (money, hours).
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Round1 rounds to one decimal place (grams).
func Round1(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}
