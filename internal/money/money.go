// Package money converts between user-facing dollar values and the integer
// cents every balance in the system is stored as.
package money

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAmount is returned for dollar values that cannot be represented
// as non-negative cents.
var ErrInvalidAmount = errors.New("invalid money amount")

// maxDollars keeps dollars*100 inside int64 range.
const maxDollars = 9e16

// DollarsToCents parses a user-entered decimal dollar value into cents,
// rounding half cents. Negative, non-finite, and overflowing values are
// rejected with ErrInvalidAmount.
func DollarsToCents(dollars float64) (int64, error) {
	if math.IsNaN(dollars) || math.IsInf(dollars, 0) {
		return 0, ErrInvalidAmount // Not a representable value
	}
	if dollars < 0 {
		return 0, ErrInvalidAmount // Balances never go negative
	}
	if dollars > maxDollars {
		return 0, fmt.Errorf("%w: too large", ErrInvalidAmount)
	}
	return int64(math.Round(dollars * 100)), nil
}

// CentsToDollarsString renders cents as "$12.34" for logs and display fields,
// using integer arithmetic only.
func CentsToDollarsString(cents int64) string {
	if cents < 0 {
		return "-" + CentsToDollarsString(-cents)
	}
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
