// Package validator applies the invoice business rules and aggregates batch
// results.
//
// Validation is total: it always returns a result and never errors. Every
// rule runs; errors accumulate in rule order without short-circuiting.
package validator

import (
	"math"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog"

	"invoiceqc/internal/logger"
	"invoiceqc/pkg/models"
)

// Engine evaluates the configured rule set against invoice records.
type Engine struct {
	log   zerolog.Logger
	rules RuleSet
}

// New creates a validation engine with the given rule set.
func New(rules RuleSet) *Engine {
	return &Engine{
		log:   logger.WithComponent("validator"),
		rules: rules,
	}
}

// Validate evaluates all rules against one record. It is pure and
// deterministic; the same record always yields the same result.
func (e *Engine) Validate(record *models.InvoiceRecord) models.ValidationResult {
	errors := []string{}

	// Rule 1: required-field presence.
	for _, field := range e.rules.RequiredFields {
		if !fieldPresent(record, field) {
			errors = append(errors, CodeMissingFieldPrefix+field)
		}
	}

	// Rule 2: invoice_date must parse as a calendar date.
	if _, err := dateparse.ParseAny(record.InvoiceDate); err != nil {
		errors = append(errors, CodeBadDateFormat)
	}

	// Rule 3: currency must be in the allowed set.
	if !contains(e.rules.AllowedCurrencies, record.Currency) {
		errors = append(errors, CodeInvalidCurrency)
	}

	// Rule 4: line totals must reconcile with the declared total. The rule
	// only applies when line items were extracted; with no items there is
	// nothing to reconcile against.
	if len(record.LineItems) > 0 {
		var sum float64
		for _, item := range record.LineItems {
			if item.LineTotal != nil {
				sum += *item.LineTotal
			}
		}
		var total float64
		if record.TotalAmount != nil {
			total = *record.TotalAmount
		}
		if math.Abs(sum-total) > e.rules.TotalTolerance {
			errors = append(errors, CodeTotalMismatch)
		}
	}

	result := models.ValidationResult{
		InvoiceID: record.InvoiceID,
		Valid:     len(errors) == 0,
		Errors:    errors,
	}

	e.log.Debug().
		Bool("valid", result.Valid).
		Strs("errors", result.Errors).
		Msg("Invoice validated")

	return result
}

// fieldPresent applies the truthiness presence check to one required field.
// Empty strings and zero amounts count as absent, same as nil.
func fieldPresent(record *models.InvoiceRecord, field string) bool {
	switch field {
	case "invoice_id":
		return record.InvoiceID != nil && *record.InvoiceID != ""
	case "invoice_date":
		return record.InvoiceDate != ""
	case "buyer_name":
		return record.BuyerName != nil && *record.BuyerName != ""
	case "seller_name":
		return record.SellerName != nil && *record.SellerName != ""
	case "total_amount":
		return record.TotalAmount != nil && *record.TotalAmount != 0
	case "tax_amount":
		return record.TaxAmount != nil && *record.TaxAmount != 0
	case "total_with_tax":
		return record.TotalWithTax != nil && *record.TotalWithTax != 0
	case "currency":
		return record.Currency != ""
	default:
		// Unknown configured fields are treated as absent.
		return false
	}
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
