// Package numeric provides stateless arithmetic, currency formatting, percentage,
// rounding and range helpers over float64.
//
// Every function is pure and safe for concurrent use. Divide is the only
// operation that can fail; it reports ErrDivisionByZero instead of returning
// Inf or NaN.
package numeric

import (
	"errors"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("Division by zero")

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b, or ErrDivisionByZero when b is zero (including -0).
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// FormatCurrency formats amount as USD with exactly two decimals, e.g. "$99.90".
// Halves round away from zero on the shortest decimal form of amount, so 2.675
// becomes "$2.68". Negative amounts keep their sign after the dollar sign
// ("$-12.50"); NaN and infinities render as "$NaN", "$+Inf" and "$-Inf".
func FormatCurrency(amount float64) string {
	if !isFinite(amount) {
		return "$" + strconv.FormatFloat(amount, 'f', 2, 64)
	}
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// CalculatePercentage returns percentage percent of value. The percentage is
// not bounded: 150 yields one and a half times value, -10 a negative share.
func CalculatePercentage(value, percentage float64) float64 {
	return (value * percentage) / 100
}

// RoundTo rounds value to the given number of fractional digits, halves away
// from zero. A negative decimals count rounds to the left of the decimal point
// (RoundTo(1250, -2) == 1300). Non-finite values are returned unchanged.
// Any int is accepted for decimals: counts past the last digit of value leave
// it unchanged, counts far enough left of the point yield 0.
func RoundTo(value float64, decimals int) float64 {
	if !isFinite(value) {
		return value
	}
	d := decimal.NewFromFloat(value)
	places, exp := int64(decimals), int64(d.Exponent())
	switch {
	case places >= -exp:
		return value
	case places < -(int64(d.NumDigits()) + exp):
		return 0
	}
	rounded, _ := d.Round(int32(decimals)).Float64()
	return rounded
}

// IsInRange reports whether min <= value <= max. An inverted range (min > max)
// contains nothing.
func IsInRange(value, min, max float64) bool {
	return value >= min && value <= max
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
