// Package export renders invoices into downloadable documents. The layout
// mirrors the print view the admin panel produces: company header, office
// blocks, balance due, billing section, items table, totals, amount in
// words, notes, and the payment instructions with bank details.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/Habib7442/apromax-admin/internal/utils"
)

// currencySymbol picks the printable symbol. The rupee sign is outside the
// PDF core font charset, so INR renders as "Rs.".
func currencySymbol(currency string) string {
	if currency == domain.CurrencyUSD {
		return "$"
	}
	return "Rs."
}

// InvoicePDF renders invoices as A4 PDF documents.
type InvoicePDF struct {
	company domain.CompanyInfo
}

// NewInvoicePDF creates a renderer stamped with the given issuer block.
func NewInvoicePDF(company domain.CompanyInfo) *InvoicePDF {
	return &InvoicePDF{company: company}
}

// Render produces the PDF bytes for an invoice.
func (r *InvoicePDF) Render(inv *domain.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	sym := currencySymbol(inv.Currency)
	blue := func() { pdf.SetTextColor(0, 102, 204) }
	black := func() { pdf.SetTextColor(0, 0, 0) }

	// Company header
	blue()
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 10, r.company.Name, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(0, 102, 204)
	pdf.SetLineWidth(0.6)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(4)

	// Office blocks, two columns
	black()
	pdf.SetFont("Arial", "B", 8)
	y := pdf.GetY()
	pdf.CellFormat(90, 4, "Registered Office:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.MultiCell(85, 4, fmt.Sprintf("%s\nMobile: %s\nGSTIN: %s  PAN: %s",
		r.company.RegisteredAddress, r.company.RegisteredMobile, r.company.GSTIN, r.company.PAN), "", "L", false)
	leftEnd := pdf.GetY()

	pdf.SetXY(105, y)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(90, 4, "Branch Office:", "", 2, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.MultiCell(85, 4, fmt.Sprintf("%s\nIND: %s\nUSA: %s\nEmail: %s\nWebsite: %s",
		r.company.BranchAddress, r.company.BranchPhoneIND, r.company.BranchPhoneUSA,
		r.company.Email, r.company.Website), "", "L", false)
	if pdf.GetY() < leftEnd {
		pdf.SetY(leftEnd)
	}
	pdf.Ln(4)

	// Invoice number and balance due
	pdf.SetFont("Arial", "B", 11)
	y = pdf.GetY()
	pdf.CellFormat(110, 8, "Invoice No.: "+inv.InvoiceNumber, "", 0, "L", false, 0, "")
	pdf.SetFillColor(0, 102, 204)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "", 8)
	pdf.SetXY(135, y)
	pdf.CellFormat(60, 5, "Balance Due", "", 2, "C", true, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(60, 8, sym+utils.FormatAmount(inv.Total, inv.Currency), "", 1, "C", true, 0, "")
	black()
	pdf.Ln(4)

	// Billing section
	pdf.SetFont("Arial", "B", 10)
	y = pdf.GetY()
	pdf.CellFormat(90, 5, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(90, 5, inv.Client.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(85, 4.5, inv.Client.Address, "", "L", false)
	if inv.Client.Phone != "" {
		pdf.CellFormat(90, 4.5, "Phone: "+inv.Client.Phone, "", 1, "L", false, 0, "")
	}
	leftEnd = pdf.GetY()

	pdf.SetXY(115, y)
	pdf.SetFont("Arial", "", 9)
	meta := fmt.Sprintf("Invoice Date: %s\nDue Date: %s\nContact Name: %s\nContact No: %s",
		inv.InvoiceDate, inv.DueDate, inv.ContactName, inv.ContactNumber)
	pdf.MultiCell(80, 4.5, meta, "", "L", false)
	if pdf.GetY() < leftEnd {
		pdf.SetY(leftEnd)
	}
	pdf.Ln(3)

	if inv.Subject != "" {
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(0, 5, "Subject:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 4.5, inv.Subject, "", "L", false)
		pdf.Ln(3)
	}

	r.itemsTable(pdf, inv, sym)
	r.totals(pdf, inv, sym)

	pdf.SetFont("Arial", "BI", 9)
	pdf.CellFormat(28, 6, "Total In Words:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 6, inv.TotalInWords, "", "L", false)
	pdf.Ln(2)

	if inv.Notes != "" {
		blue()
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, "Notes", "", 1, "L", false, 0, "")
		black()
		pdf.SetFont("Arial", "", 8)
		pdf.MultiCell(0, 4, inv.Notes, "", "L", false)
		pdf.Ln(3)
	}

	r.paymentSection(pdf, inv)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *InvoicePDF) itemsTable(pdf *gofpdf.Fpdf, inv *domain.Invoice, sym string) {
	headers := []string{"Sr. No.", "Task & Description", "HSN/SAC", "Qty",
		fmt.Sprintf("Rate (in %s)", sym), "IGST", fmt.Sprintf("Amount (in %s)", sym)}
	widths := []float64{14, 62, 20, 12, 24, 22, 26}

	pdf.SetFillColor(0, 102, 204)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 8)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 8)
	for i, item := range inv.Items {
		desc := strings.ReplaceAll(item.Description, "\r\n", "\n")
		igst := fmt.Sprintf("%s\n%s%%", item.TaxAmount.StringFixed(2), item.TaxRate.String())

		lines := pdf.SplitLines([]byte(desc), widths[1]-2)
		rowHeight := 8.0
		if h := float64(len(lines)) * 4.0; h+2 > rowHeight {
			rowHeight = h + 2
		}

		x, y := pdf.GetX(), pdf.GetY()
		pdf.CellFormat(widths[0], rowHeight, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		descX := pdf.GetX()
		pdf.MultiCell(widths[1], 4, desc, "1", "L", false)
		pdf.SetXY(descX+widths[1], y)
		pdf.CellFormat(widths[2], rowHeight, item.HSNSAC, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], rowHeight, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], rowHeight, item.Rate.StringFixed(2), "1", 0, "R", false, 0, "")
		igstX := pdf.GetX()
		pdf.MultiCell(widths[5], rowHeight/2, igst, "1", "C", false)
		pdf.SetXY(igstX+widths[5], y)
		pdf.CellFormat(widths[6], rowHeight, item.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
		pdf.SetXY(x, y+rowHeight)
	}
	pdf.Ln(3)
}

func (r *InvoicePDF) totals(pdf *gofpdf.Fpdf, inv *domain.Invoice, sym string) {
	igstRate := decimal.Zero
	if len(inv.Items) > 0 {
		igstRate = inv.Items[0].TaxRate
	}

	labelX := 120.0
	pdf.SetFont("Arial", "", 9)
	pdf.SetX(labelX)
	pdf.CellFormat(45, 6, "Sub Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, sym+utils.FormatAmount(inv.SubTotal, inv.Currency), "1", 1, "R", false, 0, "")
	pdf.SetX(labelX)
	pdf.CellFormat(45, 6, fmt.Sprintf("IGST (%s%%)", igstRate.String()), "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, utils.FormatAmount(inv.TotalTax, inv.Currency), "1", 1, "R", false, 0, "")
	pdf.SetFillColor(0, 102, 204)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 9)
	pdf.SetX(labelX)
	pdf.CellFormat(45, 7, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, sym+utils.FormatAmount(inv.Total, inv.Currency), "1", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)
}

func (r *InvoicePDF) paymentSection(pdf *gofpdf.Fpdf, inv *domain.Invoice) {
	pdf.SetTextColor(0, 102, 204)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, "Payment Instructions", "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(30, 5, "Payment Method:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 5, inv.PaymentMethod, "", 1, "L", false, 0, "")
	pdf.Ln(1)

	b := inv.BankDetails
	pdf.SetFillColor(248, 249, 250)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(0, 5, "Bank Account Details for Payment", "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 8)
	details := [][2]string{
		{"Bank Name", b.BankName},
		{"Account Name", b.AccountName},
		{"Account Number", b.AccountNumber},
		{"Branch Name", b.BranchName},
		{"IFSC Code", b.IFSCCode},
		{"Swift Code", b.SwiftCode},
		{"Bank Address", b.BankAddress},
	}
	for _, d := range details {
		pdf.SetFont("Arial", "B", 8)
		pdf.CellFormat(32, 4.5, d[0]+":", "", 0, "L", true, 0, "")
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(0, 4.5, d[1], "", 1, "L", true, 0, "")
	}
}
