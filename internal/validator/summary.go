package validator

import (
	"strings"

	"invoiceqc/pkg/models"
)

// Summarize aggregates a batch of validation results into totals and a
// per-field missing-count histogram. Aggregation is commutative, so the
// input order does not affect the outcome.
func Summarize(results []models.ValidationResult) models.Summary {
	summary := models.Summary{
		TotalInvoices:       len(results),
		MissingCountByField: map[string]int{},
	}

	for _, result := range results {
		if result.Valid {
			summary.ValidInvoices++
		}
		for _, code := range result.Errors {
			if field, ok := strings.CutPrefix(code, CodeMissingFieldPrefix); ok {
				summary.MissingCountByField[field]++
			}
		}
	}

	summary.InvalidInvoices = summary.TotalInvoices - summary.ValidInvoices
	return summary
}
