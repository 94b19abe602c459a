package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"invoiceqc/internal/pdfdoc"
	"invoiceqc/internal/validator"
	"invoiceqc/pkg/models"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"env":     s.cfg.AppEnv,
		"version": APIVersion,
	})
}

// validateJSON validates a JSON array of invoice records and returns the
// per-invoice results plus a batch summary.
func (s *Server) validateJSON(c *gin.Context) {
	var invoices []models.InvoiceRecord
	if err := c.ShouldBindJSON(&invoices); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{
			Detail: "Request body must be a JSON array of invoices.",
		})
		return
	}
	if len(invoices) == 0 {
		c.JSON(http.StatusBadRequest, errorBody{
			Detail: "Request body must be a non-empty JSON array of invoices.",
		})
		return
	}

	results := make([]models.ValidationResult, 0, len(invoices))
	for i := range invoices {
		results = append(results, s.validator.Validate(&invoices[i]))
	}

	c.JSON(http.StatusOK, ValidateResponse{
		Results: results,
		Summary: validator.Summarize(results),
	})
}

// extractAndValidatePDF accepts a single uploaded PDF, runs the extraction
// pipeline and validates the extracted record.
func (s *Server) extractAndValidatePDF(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{
			Detail: "A PDF file upload named 'file' is required.",
		})
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, errorBody{
			Detail: "Only PDF files are supported.",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.log.Error().Err(err).Str("file", fileHeader.Filename).Msg("Failed to open upload")
		c.JSON(http.StatusInternalServerError, errorBody{
			Detail: "Failed to read uploaded file.",
		})
		return
	}
	defer file.Close()

	doc, err := pdfdoc.Read(file)
	if err != nil {
		s.log.Warn().Err(err).Str("file", fileHeader.Filename).Msg("Unreadable PDF upload")
		c.JSON(http.StatusBadRequest, errorBody{
			Detail: "Could not read the uploaded file as a PDF document.",
		})
		return
	}

	record := s.extractor.Extract(doc)
	result := s.validator.Validate(record)

	c.JSON(http.StatusOK, ExtractAndValidateResponse{
		Extracted: record,
		Result:    result,
		Summary:   validator.Summarize([]models.ValidationResult{result}),
	})
}
