// Package money coerces user-entered text into the numeric forms plan
// parameters store: currency rounded to cents and percentages as
// fractions. The engine itself never coerces; callers run these before
// UpdateParameter.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCurrency parses an amount like "30000", "$1,250.50" or "-42.1"
// and returns it rounded to cents.
func ParseCurrency(input string) (float64, error) {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty currency amount")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("invalid currency amount %q: %w", input, err)
	}
	f, _ := d.Round(2).Float64()
	return f, nil
}

// ParsePercent parses a percentage like "7", "7%" or "7.25" and returns
// it as a fraction (0.07).
func ParsePercent(input string) (float64, error) {
	cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(input), "%"))
	if cleaned == "" {
		return 0, fmt.Errorf("empty percentage")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q: %w", input, err)
	}
	f, _ := d.Div(decimal.NewFromInt(100)).Float64()
	return f, nil
}

// FormatCurrency renders a stored currency value for display, always
// with two decimal places.
func FormatCurrency(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatPercent renders a stored fraction as a percentage for display.
func FormatPercent(fraction float64) string {
	return decimal.NewFromFloat(fraction).Mul(decimal.NewFromInt(100)).String() + "%"
}
