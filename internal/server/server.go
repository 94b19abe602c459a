// Package server exposes the extraction and validation pipeline over HTTP.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"invoiceqc/internal/config"
	"invoiceqc/internal/extractor"
	"invoiceqc/internal/logger"
	"invoiceqc/internal/validator"
	"invoiceqc/pkg/models"
)

// APIVersion is reported by the health endpoint.
const APIVersion = "v1"

// ValidateResponse is the body returned by POST /validate-json.
type ValidateResponse struct {
	Results []models.ValidationResult `json:"results"`
	Summary models.Summary            `json:"summary"`
}

// ExtractAndValidateResponse is the body returned by POST /extract-and-validate-pdf.
type ExtractAndValidateResponse struct {
	Extracted *models.InvoiceRecord   `json:"extracted"`
	Result    models.ValidationResult `json:"result"`
	Summary   models.Summary          `json:"summary"`
}

// errorBody is the body of every error response.
type errorBody struct {
	Detail string `json:"detail"`
}

// Server wires the pipeline services into a gin router.
type Server struct {
	log       zerolog.Logger
	cfg       *config.Config
	extractor *extractor.Service
	validator *validator.Engine
	router    *gin.Engine
}

// New creates the HTTP server around the given pipeline services.
func New(cfg *config.Config, ext *extractor.Service, val *validator.Engine) *Server {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		log:       logger.WithComponent("server"),
		cfg:       cfg,
		extractor: ext,
		validator: val,
		router:    gin.Default(),
	}

	s.router.GET("/health", s.health)
	s.router.POST("/validate-json", s.validateJSON)
	s.router.POST("/extract-and-validate-pdf", s.extractAndValidatePDF)

	return s
}

// Router returns the configured gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server on the configured port and blocks.
func (s *Server) Run() error {
	s.log.Info().
		Str("port", s.cfg.Port).
		Str("env", s.cfg.AppEnv).
		Msg("Starting HTTP server")
	return s.router.Run(":" + s.cfg.Port)
}
