package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/docuflow/document-intelligence/internal/domain/workflow"
	"github.com/docuflow/document-intelligence/internal/extraction"
)

// Upload rejection messages. Part of the API contract.
const (
	msgNoFile      = "No file provided"
	msgEmptyName   = "No file selected"
	msgNotPDF      = "Only PDF files are accepted"
	msgTooLarge    = "File too large"
	serviceName    = "Document Intelligence API"
	serviceVersion = "1.0.0"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	extractor extraction.Extractor
	uploadDir string
	logger    Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(extractor extraction.Extractor, uploadDir string, logger Logger) *Handlers {
	return &Handlers{
		extractor: extractor,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// UploadResponse is the 200 body for both upload endpoints: the stored
// filename plus the raw-extraction data for the document kind.
type UploadResponse struct {
	Confidence     float64 `json:"confidence"`
	Data           any     `json:"data"`
	PredictionTime float64 `json:"predictionTime"`
	Filename       string  `json:"filename"`
}

// ErrorResponse is the 400 body for rejected uploads.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the health check body.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// Index handles GET /
func (h *Handlers) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "ERPNext Document Intelligence API",
		"version": serviceVersion,
		"endpoints": gin.H{
			"/upload/invoice": "POST - Upload and process invoice PDF",
			"/upload/po":      "POST - Upload and process purchase order PDF",
			"/health":         "GET - Health check",
		},
	})
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// UploadInvoice handles POST /upload/invoice
func (h *Handlers) UploadInvoice(c *gin.Context) {
	file, stored, ok := h.acceptUpload(c, "invoice")
	if !ok {
		return
	}
	defer file.Close()

	start := time.Now()
	data, err := h.extractor.ExtractInvoice(c.Request.Context(), file, stored)
	if err != nil {
		h.logger.Error("Invoice extraction failed", "filename", stored, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "extraction failed"})
		return
	}

	h.logger.Info("Invoice uploaded", "filename", stored)
	c.JSON(http.StatusOK, UploadResponse{
		Confidence:     0.85,
		Data:           data,
		PredictionTime: time.Since(start).Seconds(),
		Filename:       stored,
	})
}

// UploadPurchaseOrder handles POST /upload/po
func (h *Handlers) UploadPurchaseOrder(c *gin.Context) {
	file, stored, ok := h.acceptUpload(c, "po")
	if !ok {
		return
	}
	defer file.Close()

	start := time.Now()
	data, err := h.extractor.ExtractPurchaseOrder(c.Request.Context(), file, stored)
	if err != nil {
		h.logger.Error("Purchase order extraction failed", "filename", stored, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "extraction failed"})
		return
	}

	h.logger.Info("Purchase order uploaded", "filename", stored)
	c.JSON(http.StatusOK, UploadResponse{
		Confidence:     0.85,
		Data:           data,
		PredictionTime: time.Since(start).Seconds(),
		Filename:       stored,
	})
}

// acceptUpload validates the multipart upload, persists the raw file under
// the upload folder and returns it opened for extraction. It writes the 400
// response itself when the upload is rejected.
func (h *Handlers) acceptUpload(c *gin.Context, kind string) (multipart.File, string, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: msgTooLarge})
		case hasEmptyFilenamePart(c, "file"):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgEmptyName})
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoFile})
		}
		return nil, "", false
	}
	if !workflow.IsPDFFilename(header.Filename) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNotPDF})
		return nil, "", false
	}

	stored := fmt.Sprintf("%s_%s_%s_%s",
		kind,
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
		filepath.Base(header.Filename))

	if h.uploadDir != "" {
		if err := os.MkdirAll(h.uploadDir, 0755); err != nil {
			h.logger.Error("Failed to create upload folder", "dir", h.uploadDir, "error", err)
		} else if err := c.SaveUploadedFile(header, filepath.Join(h.uploadDir, stored)); err != nil {
			h.logger.Error("Failed to save upload", "filename", stored, "error", err)
		}
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Error("Failed to open upload", "filename", header.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to read upload"})
		return nil, "", false
	}
	return file, stored, true
}

// hasEmptyFilenamePart reports whether the field was sent as a part with an
// empty filename. Such a part is not surfaced by FormFile as a file; the
// multipart parser files it under the field name as an ordinary form value.
func hasEmptyFilenamePart(c *gin.Context, field string) bool {
	form := c.Request.MultipartForm
	return form != nil && len(form.Value[field]) > 0
}
