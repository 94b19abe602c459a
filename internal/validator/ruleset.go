package validator

// Error codes emitted by the validation engine. Callers depend on these
// exact strings; changing them breaks downstream report consumers.
const (
	// CodeMissingFieldPrefix prefixes the field name of a failed
	// required-field check, e.g. "missing_field:buyer_name".
	CodeMissingFieldPrefix = "missing_field:"

	// CodeBadDateFormat is emitted when invoice_date does not parse as a
	// calendar date.
	CodeBadDateFormat = "bad_format:invoice_date"

	// CodeInvalidCurrency is emitted when the record currency is not in
	// the allowed set.
	CodeInvalidCurrency = "invalid_currency"

	// CodeTotalMismatch is emitted when the summed line totals do not
	// reconcile with the declared total amount.
	CodeTotalMismatch = "business_rule:total_mismatch"
)

// RuleSet is the immutable configuration of the validation engine. It is
// injected at construction so deployments can customize rules without
// touching process-wide state.
type RuleSet struct {
	// RequiredFields are checked for presence, in this order.
	RequiredFields []string

	// AllowedCurrencies is the closed set of accepted currency codes.
	AllowedCurrencies []string

	// TotalTolerance is the absolute tolerance for the line-total
	// reconciliation rule.
	TotalTolerance float64
}

// DefaultRuleSet returns the standard rule configuration.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		RequiredFields: []string{
			"invoice_id",
			"invoice_date",
			"buyer_name",
			"seller_name",
			"total_amount",
			"tax_amount",
			"total_with_tax",
			"currency",
		},
		AllowedCurrencies: []string{"EUR"},
		TotalTolerance:    0.01,
	}
}
