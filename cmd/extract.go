package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"invoiceqc/internal/logger"
	"invoiceqc/internal/pdfdoc"
)

var extractCmd = &cobra.Command{
	Use:   "extract [pdf-file]",
	Short: "Extract structured invoice fields from a PDF",
	Long: `Run the extraction pipeline against a single PDF invoice and write the
normalized invoice record as JSON.

The extractors target German invoice layouts: Bestellung/AUFNR order
references, "Gesamtwert EUR" totals, the 19,00% MwSt. rate and
Kundenanschrift address blocks. Fields the extractors cannot locate are
written as JSON null; extraction itself never fails on missing data.`,
	Example: `  # Extract to stdout
  invoiceqc extract invoice.pdf

  # Save the extracted record to a JSON file
  invoiceqc extract invoice.pdf -o invoice.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("extract")

	pdfPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")

	_, ext, _, err := loadServices()
	if err != nil {
		return err
	}

	log.Info().
		Str("file", pdfPath).
		Str("output", outputPath).
		Msg("Starting extraction")

	doc, err := pdfdoc.Open(pdfPath)
	if err != nil {
		log.Error().Err(err).Str("file", pdfPath).Msg("Failed to open PDF")
		return fmt.Errorf("failed to open PDF: %w", err)
	}

	record := ext.Extract(doc)

	log.Info().
		Int("pages", doc.PageCount()).
		Int("line_items", len(record.LineItems)).
		Msg("Extraction completed")

	return writeJSON(record, outputPath, log)
}
