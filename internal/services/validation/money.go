package validation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseAmountToPence converts a validated pounds value to pence. Callers
// are expected to run ValidateAmount first; unparseable input is an error.
func ParseAmountToPence(raw string) (int64, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return amount.Mul(decimal.NewFromInt(100)).IntPart(), nil
}

// FormatPence renders a pence value as pounds with two decimal places,
// e.g. 1050 -> "10.50".
func FormatPence(pence int64) string {
	return decimal.NewFromInt(pence).Div(decimal.NewFromInt(100)).StringFixed(2)
}
