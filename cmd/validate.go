package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoiceqc/internal/logger"
	"invoiceqc/internal/validator"
	"invoiceqc/pkg/models"
)

var validateCmd = &cobra.Command{
	Use:   "validate [json-file]",
	Short: "Validate extracted invoice JSON against the business rules",
	Long: `Validate one invoice record (or a JSON array of records) against the
configured rule set and write a report with the per-invoice results and a
batch summary.

Error codes in the report: missing_field:<name>, bad_format:invoice_date,
invalid_currency and business_rule:total_mismatch.`,
	Example: `  # Validate a single extracted record
  invoiceqc validate invoice.json -o report.json

  # Validate a batch (JSON array of records)
  invoiceqc validate invoices.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

// validationReport is the output for a single validated record.
type validationReport struct {
	Result  models.ValidationResult `json:"result"`
	Summary models.Summary          `json:"summary"`
}

// batchValidationReport is the output for a validated array of records.
type batchValidationReport struct {
	Results []models.ValidationResult `json:"results"`
	Summary models.Summary            `json:"summary"`
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("validate")

	inputPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")

	_, _, val, err := loadServices()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("Failed to read input file")
		return fmt.Errorf("failed to read input file: %w", err)
	}

	records, single, err := decodeRecords(data)
	if err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("Input is not valid invoice JSON")
		return fmt.Errorf("input is not valid invoice JSON: %w", err)
	}

	results := make([]models.ValidationResult, 0, len(records))
	for i := range records {
		results = append(results, val.Validate(&records[i]))
	}
	summary := validator.Summarize(results)

	log.Info().
		Int("invoices", summary.TotalInvoices).
		Int("valid", summary.ValidInvoices).
		Int("invalid", summary.InvalidInvoices).
		Msg("Validation completed")

	if single {
		return writeJSON(validationReport{Result: results[0], Summary: summary}, outputPath, log)
	}
	return writeJSON(batchValidationReport{Results: results, Summary: summary}, outputPath, log)
}

// decodeRecords accepts either a single invoice object or a JSON array of
// invoices. single reports which shape was found.
func decodeRecords(data []byte) ([]models.InvoiceRecord, bool, error) {
	var record models.InvoiceRecord
	if err := json.Unmarshal(data, &record); err == nil {
		return []models.InvoiceRecord{record}, true, nil
	}

	var records []models.InvoiceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, false, err
	}
	if len(records) == 0 {
		return nil, false, fmt.Errorf("input array is empty")
	}
	return records, false, nil
}
