// Package money holds the decimal helpers shared by the split calculator,
// the debt optimizer and the presentation layers.
package money

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits kept for every amount.
const Places = 2

var (
	// Cent is the smallest representable amount.
	Cent = decimal.New(1, -Places)

	// Tolerance is the largest difference still treated as equal.
	Tolerance = Cent

	// Hundred is used for percentage arithmetic.
	Hundred = decimal.NewFromInt(100)
)

// Round rounds to cents, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// WithinTolerance reports whether a and b differ by at most one cent.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}

// IsZero reports whether d is close enough to zero to count as settled.
func IsZero(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(Tolerance)
}

// Sum adds amounts without intermediate rounding.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Parse converts user input such as "12.5" into a decimal.
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// Format renders d for people, e.g. "$1,234.50" or "-$3.00".
func Format(d decimal.Decimal) string {
	d = Round(d)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", d.InexactFloat64())
}
