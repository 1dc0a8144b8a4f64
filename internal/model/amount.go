package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// AmountDecimals is the finest precision an entered amount may carry
	AmountDecimals = 2
	// maxAmountExponent bounds the exponent before any arithmetic is done
	maxAmountExponent = 12
	maxAmountLength   = 32
)

// MaxAmount is the largest magnitude accepted for a single entered amount
var MaxAmount = decimal.New(1, maxAmountExponent)

// ParseAmount parses a user-entered amount. Sign rules belong to the ledger;
// only the format, the precision and the magnitude are checked here.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxAmountLength {
		return decimal.Zero, ErrInvalidAmount
	}

	val, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	// Exponents are checked first so the comparison below never rescales
	// to an unbounded number of digits.
	exp := val.Exponent()
	if exp < -AmountDecimals || exp > maxAmountExponent {
		return decimal.Zero, ErrInvalidAmount
	}
	if val.Abs().GreaterThan(MaxAmount) {
		return decimal.Zero, ErrInvalidAmount
	}

	return val, nil
}
