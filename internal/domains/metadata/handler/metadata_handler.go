package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"book-catalog-backend/internal/domains/metadata"
	"book-catalog-backend/internal/shared/response"
	"book-catalog-backend/pkg/logger"
)

// MetadataHandler xử lý HTTP requests cho metadata lookup
type MetadataHandler struct {
	service metadata.Service
}

// NewMetadataHandler tạo handler instance
func NewMetadataHandler(service metadata.Service) *MetadataHandler {
	return &MetadataHandler{service: service}
}

// FetchBookDetails - GET /fetch?isbn=...
// 200 {title, author, publication_date} | 400 isbn missing | 404 not found
func (h *MetadataHandler) FetchBookDetails(c *gin.Context) {
	isbn := c.Query("isbn")

	result, err := h.service.Lookup(c.Request.Context(), isbn)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// handleError map domain errors thành HTTP responses
func (h *MetadataHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, metadata.ErrMissingISBN):
		response.BadRequest(c, "ISBN is required")

	// Upstream failure và empty payload đều trả cùng message cho caller
	case errors.Is(err, metadata.ErrLookupFailed),
		errors.Is(err, metadata.ErrNotFound):
		response.NotFound(c, "Book details not found")

	default:
		logger.Error("metadata lookup failed", err)
		response.InternalServerError(c, "Internal server error")
	}
}
