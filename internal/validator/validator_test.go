package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceqc/pkg/models"
)

// completeRecord returns a record that passes every rule.
func completeRecord() *models.InvoiceRecord {
	return &models.InvoiceRecord{
		InvoiceID:    models.String("AUFNR12345"),
		InvoiceDate:  "2024-01-15",
		BuyerName:    models.String("Musterfirma GmbH"),
		SellerName:   models.String("Softwareunternehmen"),
		TotalAmount:  models.Float(216),
		TaxAmount:    models.Float(41.04),
		TotalWithTax: models.Float(257.04),
		Currency:     "EUR",
		LineItems: []models.LineItem{
			{Description: "Item", Quantity: models.Float(4), UnitPrice: models.Float(16), LineTotal: models.Float(64)},
			{Description: "Item", Quantity: models.Float(10), UnitPrice: models.Float(12), LineTotal: models.Float(120)},
			{Description: "Item", Quantity: models.Float(2), UnitPrice: models.Float(16), LineTotal: models.Float(32)},
		},
	}
}

func TestValidateCompleteRecord(t *testing.T) {
	engine := New(DefaultRuleSet())

	result := engine.Validate(completeRecord())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	require.NotNil(t, result.InvoiceID)
	assert.Equal(t, "AUFNR12345", *result.InvoiceID)
}

func TestValidateMissingBuyer(t *testing.T) {
	engine := New(DefaultRuleSet())

	record := completeRecord()
	record.BuyerName = models.String("")

	result := engine.Validate(record)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"missing_field:buyer_name"}, result.Errors)
}

func TestValidateEmptyRecord(t *testing.T) {
	engine := New(DefaultRuleSet())

	result := engine.Validate(&models.InvoiceRecord{})
	assert.False(t, result.Valid)
	assert.Nil(t, result.InvoiceID)

	// Required-field errors come first, in configuration order, followed by
	// the date and currency rules. No line items means no reconciliation.
	assert.Equal(t, []string{
		"missing_field:invoice_id",
		"missing_field:invoice_date",
		"missing_field:buyer_name",
		"missing_field:seller_name",
		"missing_field:total_amount",
		"missing_field:tax_amount",
		"missing_field:total_with_tax",
		"missing_field:currency",
		"bad_format:invoice_date",
		"invalid_currency",
	}, result.Errors)
}

func TestValidateZeroAmountCountsAsMissing(t *testing.T) {
	engine := New(DefaultRuleSet())

	record := completeRecord()
	record.TaxAmount = models.Float(0)

	result := engine.Validate(record)
	assert.Contains(t, result.Errors, "missing_field:tax_amount")
}

func TestValidateBadDateFormat(t *testing.T) {
	engine := New(DefaultRuleSet())

	record := completeRecord()
	record.InvoiceDate = "kein Datum"

	result := engine.Validate(record)
	assert.Contains(t, result.Errors, "bad_format:invoice_date")
}

func TestValidateLenientDateFormats(t *testing.T) {
	engine := New(DefaultRuleSet())

	for _, date := range []string{"2024-01-15", "Jan 15, 2024", "01/15/2024"} {
		record := completeRecord()
		record.InvoiceDate = date

		result := engine.Validate(record)
		assert.NotContains(t, result.Errors, "bad_format:invoice_date", "date %q", date)
	}
}

func TestValidateInvalidCurrency(t *testing.T) {
	engine := New(DefaultRuleSet())

	record := completeRecord()
	record.Currency = "ABC"

	result := engine.Validate(record)
	assert.Contains(t, result.Errors, "invalid_currency")
}

func TestValidateCustomCurrencies(t *testing.T) {
	rules := DefaultRuleSet()
	rules.AllowedCurrencies = []string{"EUR", "CHF"}
	engine := New(rules)

	record := completeRecord()
	record.Currency = "CHF"

	result := engine.Validate(record)
	assert.NotContains(t, result.Errors, "invalid_currency")
}

func TestValidateTotalMismatch(t *testing.T) {
	engine := New(DefaultRuleSet())

	record := completeRecord()
	record.TotalAmount = models.Float(9999)

	result := engine.Validate(record)
	assert.Contains(t, result.Errors, "business_rule:total_mismatch")
}

func TestValidateTotalWithinTolerance(t *testing.T) {
	engine := New(DefaultRuleSet())

	record := completeRecord()
	record.LineItems = []models.LineItem{
		{LineTotal: models.Float(216.005)},
	}

	result := engine.Validate(record)
	assert.NotContains(t, result.Errors, "business_rule:total_mismatch")
}

func TestValidateNilLineTotalsCountAsZero(t *testing.T) {
	engine := New(DefaultRuleSet())

	record := completeRecord()
	record.LineItems = []models.LineItem{
		{LineTotal: models.Float(216)},
		{LineTotal: nil},
	}

	result := engine.Validate(record)
	assert.NotContains(t, result.Errors, "business_rule:total_mismatch")
}

func TestValidateEmptyLineItemsSkipsReconciliation(t *testing.T) {
	engine := New(DefaultRuleSet())

	record := completeRecord()
	record.LineItems = nil
	record.TotalAmount = models.Float(123456)

	result := engine.Validate(record)
	assert.NotContains(t, result.Errors, "business_rule:total_mismatch")
}

func TestValidateDeterministic(t *testing.T) {
	engine := New(DefaultRuleSet())

	record := completeRecord()
	record.Currency = "ABC"
	record.BuyerName = nil

	first := engine.Validate(record)
	second := engine.Validate(record)
	assert.Equal(t, first, second)
}
