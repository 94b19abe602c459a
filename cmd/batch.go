package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"invoiceqc/internal/extractor"
	"invoiceqc/internal/logger"
	"invoiceqc/internal/pdfdoc"
	"invoiceqc/internal/validator"
	"invoiceqc/pkg/models"
)

var batchCmd = &cobra.Command{
	Use:   "batch [folder-path]",
	Short: "Extract and validate every PDF invoice in a folder",
	Long: `Process all PDF files in the given folder through the extraction and
validation pipeline and write a report with per-file results and batch
summary statistics, including a per-field missing-count histogram.

Files that cannot be read as PDF documents are reported individually and
excluded from the summary; they do not abort the batch.`,
	Example: `  # Process a folder, report to stdout
  invoiceqc batch ./invoices

  # Save the report and use more workers
  invoiceqc batch ./invoices -o report.json --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

// batchFileResult is the per-file outcome of a batch run.
type batchFileResult struct {
	File   string                   `json:"file"`
	Record *models.InvoiceRecord    `json:"record,omitempty"`
	Result *models.ValidationResult `json:"result,omitempty"`
	Error  string                   `json:"error,omitempty"`
}

// batchReport is the batch command output.
type batchReport struct {
	Files   []batchFileResult `json:"files"`
	Summary models.Summary    `json:"summary"`
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	batchCmd.Flags().Int("workers", 4, "Number of parallel workers")
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("batch")

	folderPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")
	workers, _ := cmd.Flags().GetInt("workers")
	if workers < 1 {
		workers = 1
	}

	folderInfo, err := os.Stat(folderPath)
	if err != nil {
		return fmt.Errorf("folder not found: %s", folderPath)
	}
	if !folderInfo.IsDir() {
		return fmt.Errorf("path is not a directory: %s", folderPath)
	}

	_, ext, val, err := loadServices()
	if err != nil {
		return err
	}

	files, err := listPDFs(folderPath)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no PDF files found in %s", folderPath)
	}

	log.Info().
		Str("folder", folderPath).
		Int("files", len(files)).
		Int("workers", workers).
		Msg("Starting batch processing")

	fileResults := processBatch(files, workers, ext, val)

	// Summarize only files that produced a validation result.
	var results []models.ValidationResult
	for _, fr := range fileResults {
		if fr.Result != nil {
			results = append(results, *fr.Result)
		}
	}
	summary := validator.Summarize(results)

	log.Info().
		Int("processed", len(results)).
		Int("failed", len(fileResults)-len(results)).
		Int("valid", summary.ValidInvoices).
		Int("invalid", summary.InvalidInvoices).
		Msg("Batch processing completed")

	return writeJSON(batchReport{Files: fileResults, Summary: summary}, outputPath, log)
}

// processBatch runs the pipeline over all files with a fixed-size worker
// pool. Results keep the input file order regardless of completion order.
func processBatch(files []string, workers int, ext *extractor.Service, val *validator.Engine) []batchFileResult {
	jobs := make(chan int)
	results := make([]batchFileResult, len(files))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = processFile(files[i], ext, val)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func processFile(path string, ext *extractor.Service, val *validator.Engine) batchFileResult {
	fr := batchFileResult{File: filepath.Base(path)}

	doc, err := pdfdoc.Open(path)
	if err != nil {
		fr.Error = err.Error()
		return fr
	}

	record := ext.Extract(doc)
	result := val.Validate(record)
	fr.Record = record
	fr.Result = &result
	return fr
}

// listPDFs returns the PDF files of a folder in name order.
func listPDFs(folderPath string) ([]string, error) {
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(folderPath, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
