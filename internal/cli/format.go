// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount coerces keypad-style input to a whole-currency amount.
// Non-numeric input parses to 0 rather than failing; callers rely on it.
func ParseAmount(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatMoney renders an amount with its currency label.
// e.g., 1234 -> "1,234 MRU"
func FormatMoney(n int64, currency string) string {
	if currency == "" {
		return FormatNumber(n)
	}
	return FormatNumber(n) + " " + currency
}

// FormatSigned renders an amount with an explicit sign, for vault history.
func FormatSigned(n int64, currency string) string {
	if n >= 0 {
		return "+" + FormatMoney(n, currency)
	}
	return FormatMoney(n, currency)
}

// FormatPercent formats a 0-100 integer percentage.
func FormatPercent(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}

// ShortID returns the first 8 characters of an id for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
