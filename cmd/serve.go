package cmd

import (
	"github.com/spf13/cobra"

	"invoiceqc/internal/logger"
	"invoiceqc/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the invoice QC HTTP API",
	Long: `Start the HTTP server exposing the extraction and validation pipeline.

Endpoints:
  GET  /health                    Service status
  POST /validate-json             Validate a JSON array of invoice records
  POST /extract-and-validate-pdf  Upload a PDF, extract and validate it`,
	Example: `  # Serve on the configured port (default 8080)
  invoiceqc serve

  # Serve on a specific port
  invoiceqc serve --port 9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("port", "", "Port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("serve")

	cfg, ext, val, err := loadServices()
	if err != nil {
		return err
	}

	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}

	log.Info().Str("port", cfg.Port).Msg("Starting invoice QC API")
	return server.New(cfg, ext, val).Run()
}
