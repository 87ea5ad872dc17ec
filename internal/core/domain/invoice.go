package domain

import (
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Supported invoice currencies.
const (
	CurrencyUSD = "USD"
	CurrencyINR = "INR"
)

// LineItem is one billable row of an invoice. Amount and TaxAmount are
// derived fields: Amount = Quantity * Rate, TaxAmount = Amount * TaxRate / 100.
// They are recomputed on every edit, not on read; InvoiceTotals sums the
// stored values.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	HSNSAC      string          `json:"hsnSac"`
	Quantity    int64           `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Amount      decimal.Decimal `json:"amount"`
}

// ClientInfo is the billed party. Phone and Email are optional; after a
// storage round-trip an absent value comes back as an empty string.
type ClientInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// BankDetails is the remittance block printed on the invoice.
type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	BranchName    string `json:"branchName"`
	IFSCCode      string `json:"ifscCode"`
	SwiftCode     string `json:"swiftCode"`
	BankAddress   string `json:"bankAddress"`
}

// Invoice is the nested, form-friendly representation used throughout the
// API. The flattened counterpart lives in internal/models; the converters in
// internal/utils/mapping translate between the two.
type Invoice struct {
	DocumentFields
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   string          `json:"invoiceDate"`
	DueDate       string          `json:"dueDate"`
	ContactName   string          `json:"contactName"`
	ContactNumber string          `json:"contactNumber"`
	Client        ClientInfo      `json:"client"`
	Subject       string          `json:"subject"`
	Items         []LineItem      `json:"items"`
	SubTotal      decimal.Decimal `json:"subTotal"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	Total         decimal.Decimal `json:"total"`
	TotalInWords  string          `json:"totalInWords"`
	Notes         string          `json:"notes"`
	PaymentMethod string          `json:"paymentMethod"`
	BankDetails   BankDetails     `json:"bankDetails"`
	Currency      string          `json:"currency"`
	Status        InvoiceStatus   `json:"status"`
}

// InvoiceTotals are the invoice-level aggregates derived from the item list.
type InvoiceTotals struct {
	SubTotal decimal.Decimal `json:"subTotal"`
	TotalTax decimal.Decimal `json:"totalTax"`
	Total    decimal.Decimal `json:"total"`
}

// DefaultBankDetails is substituted when a stored bank details blob is
// missing or fails to parse so legacy records still render.
func DefaultBankDetails() BankDetails {
	return BankDetails{
		BankName:      "HDFC Bank Ltd.",
		AccountName:   "APROMAX ENGINEERING LLP",
		AccountNumber: "50200104107160",
		BranchName:    "Hatigaon",
		IFSCCode:      "HDFC0005671",
		SwiftCode:     "HDFCINBB",
		BankAddress:   "Near Police Station, Hatigaon, Guwahati - 781038, Assam, India.",
	}
}

// CompanyInfo is the issuing company block rendered on exported invoices.
type CompanyInfo struct {
	Name              string
	RegisteredAddress string
	RegisteredMobile  string
	GSTIN             string
	PAN               string
	BranchAddress     string
	BranchPhoneIND    string
	BranchPhoneUSA    string
	Email             string
	Website           string
}

// DefaultCompanyInfo returns the issuer block for AproMax Engineering LLP.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:              "AproMax Engineering LLP",
		RegisteredAddress: "835, Katigorah Part - III, Katigorah, Cachar, Assam 788805, India",
		RegisteredMobile:  "+91 9101362280",
		GSTIN:             "18ACGFA9077M1ZP",
		PAN:               "ACGFA9077M",
		BranchAddress:     "57, Idgah Rd, Hatigaon, Guwahati, Kamrup Metro, Assam 781038, India",
		BranchPhoneIND:    "+91 9577291349",
		BranchPhoneUSA:    "+1 (312) 313-9125",
		Email:             "Sufian.b@apromaxeng.com",
		Website:           "www.apromaxeng.com",
	}
}
