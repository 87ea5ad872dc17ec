package utils

import (
	"strings"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount formats an amount with the currency's digit grouping, rounded
// to two decimals, without a symbol.
// Example: 1234.5 USD returns "1,234.50"; 123456 INR returns "1,23,456.00".
func FormatAmount(amount decimal.Decimal, currency string) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	var grouped string
	if currency == domain.CurrencyINR {
		grouped = groupIndian(parts[0])
	} else {
		grouped = groupThousands(parts[0])
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return sign + grouped + "." + parts[1]
}

// FormatCurrency formats an amount for display with the currency's symbol
// and digit grouping, rounded to two decimals.
// Example: 1234.5 USD returns "$1,234.50"; 123456 INR returns "₹1,23,456.00".
func FormatCurrency(amount decimal.Decimal, currency string) string {
	formatted := FormatAmount(amount, currency)

	symbol := "$"
	if currency == domain.CurrencyINR {
		symbol = "₹"
	}

	if strings.HasPrefix(formatted, "-") {
		return "-" + symbol + strings.TrimPrefix(formatted, "-")
	}
	return symbol + formatted
}

// groupThousands inserts en-US style separators: 1234567 -> 1,234,567.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupIndian inserts en-IN style separators: the last three digits form one
// group, the rest pair off. 1234567 -> 12,34,567.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	rest := digits[:n-3]
	last := digits[n-3:]
	var groups []string
	for len(rest) > 2 {
		groups = append([]string{rest[len(rest)-2:]}, groups...)
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		groups = append([]string{rest}, groups...)
	}
	return strings.Join(groups, ",") + "," + last
}
