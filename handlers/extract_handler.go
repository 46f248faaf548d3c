package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"fedfilter-backend/repository"
	"fedfilter-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxQueryLength bounds inbound queries; the extraction core does not
// re-validate this
const maxQueryLength = 2000

// Extractor is the extraction service contract used by the handler
type Extractor interface {
	Extract(ctx context.Context, query string, temperature *float64) (map[string]interface{}, error)
}

// ExtractHandler handles HTTP requests for query extraction
type ExtractHandler struct {
	extractor Extractor
	logRepo   *repository.ExtractionLogRepository
	logger    *zap.Logger
	version   string
}

// NewExtractHandler creates a new extraction handler. logRepo may be nil
// when audit logging is disabled.
func NewExtractHandler(extractor Extractor, logRepo *repository.ExtractionLogRepository, logger *zap.Logger, version string) *ExtractHandler {
	return &ExtractHandler{
		extractor: extractor,
		logRepo:   logRepo,
		logger:    logger,
		version:   version,
	}
}

// ExtractRequest represents the request body for an extraction
type ExtractRequest struct {
	Query       string   `json:"query" binding:"required"`
	Temperature *float64 `json:"temperature"`
}

// Extract handles POST /api/extract
func (h *ExtractHandler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	if len(req.Query) == 0 || len(req.Query) > maxQueryLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "query must be between 1 and 2000 characters",
			},
		})
		return
	}

	if req.Temperature != nil && (*req.Temperature < 0 || *req.Temperature > 1) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "temperature must be between 0 and 1",
			},
		})
		return
	}

	result, err := h.extractor.Extract(c.Request.Context(), req.Query, req.Temperature)
	if err != nil {
		var provErr *service.ProviderError
		if errors.As(err, &provErr) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "PROVIDER_UNAVAILABLE",
					"message": "Inference provider error",
					"details": provErr.Message,
				},
			})
			return
		}

		var extErr *service.ExtractionError
		if errors.As(err, &extErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "EXTRACTION_FAILED",
					"message": extErr.Message,
					"details": extErr.Details,
				},
			})
			return
		}

		h.logger.Error("unexpected extraction failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// Health handles GET /health
func (h *ExtractHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// GetExtractionLog handles GET /api/extractions/:id
func (h *ExtractHandler) GetExtractionLog(c *gin.Context) {
	if h.logRepo == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "AUDIT_DISABLED",
				"message": "Extraction audit logging is not enabled",
			},
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid extraction log ID format",
			},
		})
		return
	}

	logEntry, err := h.logRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Extraction log not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    logEntry,
	})
}

// ListExtractionLogs handles GET /api/extractions
func (h *ExtractHandler) ListExtractionLogs(c *gin.Context) {
	if h.logRepo == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "AUDIT_DISABLED",
				"message": "Extraction audit logging is not enabled",
			},
		})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_REQUEST",
					"message": "limit must be an integer between 1 and 100",
				},
			})
			return
		}
		limit = parsed
	}

	logs, err := h.logRepo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list extraction logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    logs,
	})
}
