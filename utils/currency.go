package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatYen formats an amount as Japanese yen with thousands separators.
// Example: 1300 -> "¥1,300". Fractional amounts keep two decimals; the
// whole amount is rounded to two decimals first so fractions carry into
// the integer part instead of overflowing the decimal field.
func FormatYen(amount float64) string {
	negative := amount < 0
	amount = math.Round(math.Abs(amount)*100) / 100

	integer := math.Floor(amount)
	cents := int(math.Round((amount - integer) * 100))

	formatted := fmt.Sprintf("%.0f", integer)
	var groups []string
	for i := len(formatted); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{formatted[start:i]}, groups...)
	}
	out := "¥" + strings.Join(groups, ",")
	if negative {
		out = "-" + out
	}
	if cents > 0 {
		out = fmt.Sprintf("%s.%02d", out, cents)
	}
	return out
}
