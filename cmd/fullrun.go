package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"invoiceqc/internal/logger"
	"invoiceqc/internal/pdfdoc"
	"invoiceqc/internal/validator"
	"invoiceqc/pkg/models"
)

var fullRunCmd = &cobra.Command{
	Use:   "full-run [pdf-file]",
	Short: "Extract and validate a PDF invoice in one step",
	Long: `Run the full pipeline against a single PDF: extract the invoice fields,
validate the result against the business rules and write a combined report
containing the extracted record, the validation result and a summary.`,
	Example: `  # Full pipeline, report to stdout
  invoiceqc full-run invoice.pdf

  # Save the report
  invoiceqc full-run invoice.pdf -o report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runFullRun,
}

// fullRunReport combines extraction and validation output for one invoice.
type fullRunReport struct {
	Extracted *models.InvoiceRecord   `json:"extracted"`
	Result    models.ValidationResult `json:"result"`
	Summary   models.Summary          `json:"summary"`
}

func init() {
	rootCmd.AddCommand(fullRunCmd)

	fullRunCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runFullRun(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("full-run")

	pdfPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")

	_, ext, val, err := loadServices()
	if err != nil {
		return err
	}

	log.Info().
		Str("file", pdfPath).
		Str("output", outputPath).
		Msg("Starting full run")

	doc, err := pdfdoc.Open(pdfPath)
	if err != nil {
		log.Error().Err(err).Str("file", pdfPath).Msg("Failed to open PDF")
		return fmt.Errorf("failed to open PDF: %w", err)
	}

	record := ext.Extract(doc)
	result := val.Validate(record)
	summary := validator.Summarize([]models.ValidationResult{result})

	log.Info().
		Bool("valid", result.Valid).
		Strs("errors", result.Errors).
		Msg("Full run completed")

	return writeJSON(fullRunReport{
		Extracted: record,
		Result:    result,
		Summary:   summary,
	}, outputPath, log)
}
