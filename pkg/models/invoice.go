package models

// InvoiceRecord is the normalized output of the extraction pipeline.
//
// Optional fields are pointers so that anything the extractor could not locate
// serializes as JSON null rather than a zero value. Every populated numeric
// field holds a parsed value, never a raw locale-formatted string.
type InvoiceRecord struct {
	InvoiceID    *string    `json:"invoice_id"`
	InvoiceDate  string     `json:"invoice_date"`
	BuyerName    *string    `json:"buyer_name"`
	SellerName   *string    `json:"seller_name"`
	TotalAmount  *float64   `json:"total_amount"`
	TaxAmount    *float64   `json:"tax_amount"`
	TotalWithTax *float64   `json:"total_with_tax"`
	Currency     string     `json:"currency"`
	LineItems    []LineItem `json:"line_items"`
}

// LineItem is one billable table row of an invoice. The extractor does not
// recover real descriptions; Description is a constant placeholder.
type LineItem struct {
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"unit_price"`
	LineTotal   *float64 `json:"line_total"`
}

// ValidationResult is the verdict for a single invoice record.
//
// Errors preserves rule evaluation order: required-field checks first, then
// date format, then currency, then the total reconciliation rule.
type ValidationResult struct {
	InvoiceID *string  `json:"invoice_id"`
	Valid     bool     `json:"valid"`
	Errors    []string `json:"errors"`
}

// Summary aggregates a batch of validation results.
//
// MissingCountByField only contains fields missing in at least one invoice of
// the batch; fields that were never missing are absent rather than zero.
type Summary struct {
	TotalInvoices       int            `json:"total_invoices"`
	ValidInvoices       int            `json:"valid_invoices"`
	InvalidInvoices     int            `json:"invalid_invoices"`
	MissingCountByField map[string]int `json:"missing_count_by_field"`
}

// String returns s as a *string, for building records by hand.
func String(s string) *string { return &s }

// Float returns f as a *float64, for building records by hand.
func Float(f float64) *float64 { return &f }
