package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned for amount strings that do not parse as
// a decimal money value.
var ErrInvalidAmount = errors.New("invalid amount")

// Money is a monetary value in integer cents. Calculations stay in
// cents; callers convert to the decimal form only for display.
type Money struct {
	Cents int64
}

// ParseAmount converts a decimal string to Money with half-up rounding
// on the third decimal place. Both dot (12.34) and comma (12,34)
// separators are accepted, and a single leading '-' records a negative
// value (used by expense line items; receipt validation rejects
// negatives separately).
//
// Examples:
//
//	ParseAmount("500")    -> 50000 cents
//	ParseAmount("12,34")  -> 1234 cents
//	ParseAmount("12.346") -> 1235 cents
//	ParseAmount("-50")    -> -5000 cents
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg || strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Money{}, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	if intPart == "0" && fracPart == "" && len(parts) == 2 {
		return Money{}, ErrInvalidAmount
	}
	// ASCII digits only; the cent arithmetic below indexes by byte.
	for _, r := range intPart + fracPart {
		if r < '0' || r > '9' {
			return Money{}, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1 - 99) / 100
	if iv > maxSafe {
		return Money{}, ErrInvalidAmount
	}

	// First two fractional digits, half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if neg {
		cents = -cents
	}
	return Money{Cents: cents}, nil
}

// String renders the value as a plain decimal with two places,
// e.g. "450.00" or "-0.50".
func (m Money) String() string {
	c := m.Cents
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
