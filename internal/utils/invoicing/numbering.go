package invoicing

import (
	"fmt"
	"math/rand"
	"time"
)

// NewInvoiceNumber generates a default invoice number in the company's
// fiscal-year format: APRO/{yy}-{yy+1}/{MM}{rr}, where rr is a two-digit
// random suffix. The number is user-editable after generation.
func NewInvoiceNumber(now time.Time) string {
	year := now.Year()
	return fmt.Sprintf("APRO/%02d-%02d/%02d%02d", year%100, (year+1)%100, int(now.Month()), rand.Intn(100))
}
