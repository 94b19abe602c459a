package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"invoiceqc/internal/config"
	"invoiceqc/internal/extractor"
	"invoiceqc/internal/logger"
	"invoiceqc/internal/validator"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "invoiceqc",
	Short: "Invoice QC - extract and validate German PDF invoices",
	Long: `Invoice QC extracts structured fields from German-formatted PDF
invoices and validates the result against a fixed set of business rules
(required fields, date format, allowed currency, line-total reconciliation).

Extraction is heuristic and locale-specific; missing data degrades to null
fields rather than failing. Validation reports an ordered list of error
codes per invoice plus batch-level summary statistics.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Invoice QC CLI")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

// loadServices builds the extraction and validation services from the
// environment configuration.
func loadServices() (*config.Config, *extractor.Service, *validator.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	rules := validator.DefaultRuleSet()
	rules.AllowedCurrencies = cfg.AllowedCurrencies
	rules.TotalTolerance = cfg.TotalTolerance

	return cfg, extractor.New(cfg.KnownSellers), validator.New(rules), nil
}

// writeJSON renders v as indented JSON to the given file, or to stdout when
// outputPath is empty.
func writeJSON(v interface{}, outputPath string, log zerolog.Logger) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal output to JSON")
		return fmt.Errorf("failed to create JSON output: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			log.Error().
				Err(err).
				Str("output_file", outputPath).
				Msg("Failed to write output file")
			return fmt.Errorf("failed to write output file: %w", err)
		}

		log.Info().
			Str("output_file", outputPath).
			Int("bytes", len(jsonData)).
			Msg("Output written to file")
		return nil
	}

	if _, err := os.Stdout.Write(jsonData); err != nil {
		log.Error().Err(err).Msg("Failed to write to stdout")
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Println()
	return nil
}
