// Package money holds the paise representation used for every currency
// amount in the system, together with parsing and INR display helpers.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is the only currency amounts are displayed in.
var Currency = currency.INR

var ErrInvalidAmount = errors.New("invalid amount")

var (
	displayLocale = language.MustParse("en-IN")
	symbol        = message.NewPrinter(displayLocale).Sprint(currency.NarrowSymbol(Currency))

	maxPaise = decimal.NewFromInt(math.MaxInt64)
	minPaise = decimal.NewFromInt(math.MinInt64)
	hundred  = decimal.NewFromInt(100)
)

// Rupees converts a whole rupee value into paise.
func Rupees(n int64) int64 {
	return n * 100
}

// Parse parses a decimal rupee string into paise.
// Format examples: "95.5" -> 9550, "10" -> 1000, "0.005" -> 1.
func Parse(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return FromDecimal(d)
}

// FromDecimal rounds a rupee decimal to whole paise. Values outside the
// int64 range return ErrInvalidAmount.
func FromDecimal(d decimal.Decimal) (int64, error) {
	paise := d.Mul(hundred).Round(0)
	if paise.GreaterThan(maxPaise) || paise.LessThan(minPaise) {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidAmount, d.String())
	}

	return paise.IntPart(), nil
}

// ToDecimal converts paise into an exact rupee decimal.
func ToDecimal(paise int64) decimal.Decimal {
	return decimal.New(paise, -2)
}

// Format renders paise for display, e.g. 5000 -> "₹50.00", with Indian
// digit grouping of the rupee part.
func Format(paise int64) string {
	sign := ""
	magnitude := uint64(paise)

	if paise < 0 {
		sign = "-"
		magnitude = -magnitude
	}

	p := message.NewPrinter(displayLocale)

	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, p.Sprintf("%d", magnitude/100), magnitude%100)
}
