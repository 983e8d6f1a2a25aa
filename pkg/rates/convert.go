package rates

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnsupportedCurrency indicates a conversion involving a currency absent
// from the active rate table. The wrapped message names the missing code.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Convert converts amount from one currency to another using the given
// table. Identity conversions skip the table entirely. The result carries no
// display rounding; callers round for presentation only, never before
// further arithmetic.
func Convert(amount decimal.Decimal, from, to string, t Table) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	fromRate, ok := t.Rates[from]
	if !ok || fromRate.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: %s (no rate relative to %s)", ErrUnsupportedCurrency, from, t.Base)
	}
	toRate, ok := t.Rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s (no rate relative to %s)", ErrUnsupportedCurrency, to, t.Base)
	}

	// Re-base through the table's base currency: the multipliers cancel out
	// regardless of which currency the table is anchored to.
	return amount.Div(fromRate).Mul(toRate), nil
}
