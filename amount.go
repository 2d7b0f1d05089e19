package wallet

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// maxMagnitude bounds the decimal exponent looked at before converting to
// float64, far beyond what a float64 can hold.
const maxMagnitude = 400

// ParseAmount parses a money amount typed on the command line.
//
// The whole input must be a finite decimal number, no leading or trailing
// characters are accepted, and the value must be strictly positive and
// representable as a float64.
// Errors wrap ErrInvalidAmount.
func ParseAmount(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: invalid numeric format for amount %q", ErrInvalidAmount, s)
	}
	if !inRange(d) {
		return Money{}, fmt.Errorf("%w: amount %q is out of range", ErrInvalidAmount, s)
	}
	if !d.IsPositive() {
		return Money{}, fmt.Errorf("%w: amount must be a positive value, got %q", ErrInvalidAmount, s)
	}
	return Money{value: d}, nil
}

// inRange reports whether d is zero or has a magnitude a float64 can hold,
// neither overflowing nor underflowing to zero.
func inRange(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}
	// digits left of the decimal point, negative for small values
	magnitude := d.NumDigits() + int(d.Exponent())
	if magnitude > maxMagnitude || magnitude < -maxMagnitude {
		return false
	}
	f := d.InexactFloat64()
	return !math.IsInf(f, 0) && f != 0
}
