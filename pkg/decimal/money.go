package decimal

import (
	"math"

	"github.com/rpgo/numutil/pkg/numeric"
	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned by Money.Div for a zero divisor. It is the
// same sentinel as numeric.ErrDivisionByZero.
var ErrDivisionByZero = numeric.ErrDivisionByZero

// Money represents a monetary amount with exact decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by another amount
func (m Money) Mul(other Money) Money {
	return Money{m.Decimal.Mul(other.Decimal)}
}

// Div divides by another amount. The quotient keeps at least
// decimal.DivisionPrecision significant digits, however small it is.
func (m Money) Div(other Money) (Money, error) {
	if other.Decimal.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	return Money{m.Decimal.DivRound(other.Decimal, quotientPlaces(m.Decimal, other.Decimal))}, nil
}

// quotientPlaces returns the fractional digits needed to hold
// decimal.DivisionPrecision significant digits of a / b.
func quotientPlaces(a, b decimal.Decimal) int32 {
	lead := magnitude(a) - magnitude(b) - 1
	places := int64(decimal.DivisionPrecision) - lead + 1
	switch {
	case places < int64(decimal.DivisionPrecision):
		return int32(decimal.DivisionPrecision)
	case places > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(places)
}

// magnitude is the number of digits left of the decimal point, negative for
// values below 0.1 (0.004 has magnitude -2).
func magnitude(d decimal.Decimal) int64 {
	return int64(d.NumDigits()) + int64(d.Exponent())
}

// Percentage returns pct percent of the amount; pct is not bounded.
func (m Money) Percentage(pct Money) Money {
	return Money{m.Decimal.Mul(pct.Decimal).Shift(-2)}
}

// Round rounds the money amount to cents, halves away from zero
func (m Money) Round() Money {
	return m.RoundTo(2)
}

// RoundTo rounds to places fractional digits, halves away from zero.
// Negative places round the integer part. Any int is accepted: places beyond
// the amount's own digits leave it unchanged, places far enough left of the
// point yield Zero.
func (m Money) RoundTo(places int) Money {
	p, exp := int64(places), int64(m.Exponent())
	switch {
	case p >= -exp:
		return m
	case p < -magnitude(m.Decimal):
		return Zero()
	}
	return Money{m.Decimal.Round(int32(places))}
}

// InRange reports whether min <= m <= max.
func (m Money) InRange(min, max Money) bool {
	return m.GreaterThanOrEqual(min) && m.LessThanOrEqual(max)
}

// GreaterThanOrEqual checks if this amount is greater than or equal to another
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// LessThanOrEqual checks if this amount is less than or equal to another
func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Float64 returns the nearest float64 to the amount.
func (m Money) Float64() float64 {
	f, _ := m.Decimal.Float64()
	return f
}

// String returns the amount with exactly two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount as USD, e.g. "$1234.50" or "$-3.00"
func (m Money) Format() string {
	return "$" + m.String()
}
