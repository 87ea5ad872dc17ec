package invoicing

import (
	"strings"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

var onesNames = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensNames = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

var scaleNames = []string{"", "Thousand", "Million", "Billion"}

// AmountInWords renders a monetary amount as English words for the printed
// invoice, e.g. AmountInWords(1.5, "USD") == "One Dollar and Fifty Cents".
//
// The integer part is rendered in whole units (singular for exactly 1); a
// nonzero fractional part, rounded to two digits, is appended as
// "and <words> Cents"/"Paise". An exact integer gets no fractional clause,
// and a zero amount is the fixed "Zero Dollars"/"Zero Rupees". Any currency
// other than USD is rendered in Rupees.
//
// Negative amounts are not reachable through validation and their rendering
// is unspecified.
func AmountInWords(amount decimal.Decimal, currency string) string {
	if amount.IsZero() {
		if currency == domain.CurrencyUSD {
			return "Zero Dollars"
		}
		return "Zero Rupees"
	}

	integerPart := amount.IntPart()
	// Round the fraction to whole cents/paise to avoid float artifacts.
	fractionPart := amount.Sub(decimal.NewFromInt(integerPart)).Mul(oneHundred).Round(0).IntPart()

	var result string

	if integerPart > 0 {
		result = convertNumber(integerPart)
		if currency == domain.CurrencyUSD {
			if integerPart == 1 {
				result += " Dollar"
			} else {
				result += " Dollars"
			}
		} else {
			if integerPart == 1 {
				result += " Rupee"
			} else {
				result += " Rupees"
			}
		}
	}

	if fractionPart > 0 {
		if result != "" {
			result += " and "
		}
		result += convertNumber(fractionPart)
		if currency == domain.CurrencyUSD {
			if fractionPart == 1 {
				result += " Cent"
			} else {
				result += " Cents"
			}
		} else {
			if fractionPart == 1 {
				result += " Paisa"
			} else {
				result += " Paise"
			}
		}
	}

	return result
}

// convertNumber renders a positive integer as words, three digits at a time
// with a scale word per group.
func convertNumber(n int64) string {
	if n == 0 {
		return ""
	}

	result := ""
	scaleIndex := 0

	for n > 0 {
		chunk := n % 1000
		if chunk != 0 {
			chunkWords := convertHundreds(int(chunk))
			if scaleIndex > 0 {
				result = chunkWords + " " + scaleNames[scaleIndex] + " " + result
			} else {
				result = chunkWords + " " + result
			}
		}
		n /= 1000
		scaleIndex++
	}

	return strings.TrimSpace(result)
}

// convertHundreds renders 1–999: hundreds digit, then either a direct 0–19
// lookup or a tens word plus optional ones word.
func convertHundreds(n int) string {
	result := ""

	if n >= 100 {
		result += onesNames[n/100] + " Hundred "
		n %= 100
	}

	if n >= 20 {
		result += tensNames[n/10]
		if n%10 != 0 {
			result += " " + onesNames[n%10]
		}
	} else if n > 0 {
		result += onesNames[n]
	}

	return strings.TrimSpace(result)
}
