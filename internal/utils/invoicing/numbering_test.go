package invoicing_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/Habib7442/apromax-admin/internal/utils/invoicing"
	"github.com/stretchr/testify/assert"
)

func TestNewInvoiceNumber(t *testing.T) {
	now := time.Date(2025, time.July, 18, 12, 0, 0, 0, time.UTC)

	number := invoicing.NewInvoiceNumber(now)

	assert.True(t, strings.HasPrefix(number, "APRO/25-26/07"))
	assert.Regexp(t, regexp.MustCompile(`^APRO/\d{2}-\d{2}/\d{4}$`), number)
}

func TestNewInvoiceNumber_CenturyRollover(t *testing.T) {
	now := time.Date(2099, time.December, 31, 23, 59, 0, 0, time.UTC)

	number := invoicing.NewInvoiceNumber(now)

	assert.True(t, strings.HasPrefix(number, "APRO/99-00/12"))
}
