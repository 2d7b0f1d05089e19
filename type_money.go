package wallet

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
//
// Values are exact in memory, the two fraction digits only apply to the
// textual form.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from a numeric value.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	case decimal.Decimal:
		return Money{value: v}
	}
	panic(fmt.Sprintf("unsupported money value %T", value))
}

// String returns the canonical representation with exactly two fraction digits.
// This is the form persisted in the wallet file.
func (m Money) String() string { return m.value.StringFixed(2) }

// Format returns the money formatted for the given ISO currency code, e.g.
// "$1,234.50" for USD. An empty or unknown code falls back to String.
func (m Money) Format(currency string) string {
	if currency == "" {
		return m.String()
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return m.String()
	}
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// KnownCurrency reports whether code is a currency Format can display.
func KnownCurrency(code string) bool { return money.GetCurrency(code) != nil }

func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }

// Exact returns the shortest exact representation, without padding, used in
// journal lines.
func (m Money) Exact() string { return m.value.String() }

// MarshalJSON writes money as a JSON number with two fraction digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}
