package invoicing

import (
	"fmt"
	"strings"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidateInvoice checks the submission-time rules and returns a list of
// human-readable messages. An empty list means the invoice may be converted
// and persisted; a failing invoice must never reach the storage converter.
func ValidateInvoice(inv domain.Invoice) []string {
	var errs []string

	if strings.TrimSpace(inv.InvoiceNumber) == "" {
		errs = append(errs, "Invoice number is required")
	}
	if inv.InvoiceDate == "" {
		errs = append(errs, "Invoice date is required")
	}
	if inv.DueDate == "" {
		errs = append(errs, "Due date is required")
	}
	if strings.TrimSpace(inv.Client.Name) == "" {
		errs = append(errs, "Client name is required")
	}
	if strings.TrimSpace(inv.Client.Address) == "" {
		errs = append(errs, "Client address is required")
	}
	if strings.TrimSpace(inv.Subject) == "" {
		errs = append(errs, "Subject is required")
	}

	if len(inv.Items) == 0 {
		errs = append(errs, "At least one item is required")
	} else {
		for i, item := range inv.Items {
			if strings.TrimSpace(item.Description) == "" {
				errs = append(errs, fmt.Sprintf("Item %d: Description is required", i+1))
			}
			if strings.TrimSpace(item.HSNSAC) == "" {
				errs = append(errs, fmt.Sprintf("Item %d: HSN/SAC is required", i+1))
			}
			if item.Quantity <= 0 {
				errs = append(errs, fmt.Sprintf("Item %d: Quantity must be greater than 0", i+1))
			}
			if item.Rate.LessThanOrEqual(decimal.Zero) {
				errs = append(errs, fmt.Sprintf("Item %d: Rate must be greater than 0", i+1))
			}
		}
	}

	return errs
}
