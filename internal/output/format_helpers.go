package output

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatValue renders a result value: floats in their shortest form,
// strings and bools as-is, nil as the empty string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// failureRate returns failures as a percentage of total.
func failureRate(failures, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(failures)).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(total)))
}
