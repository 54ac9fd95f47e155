package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-catalog-backend/internal/domains/account"
	"book-catalog-backend/internal/domains/book"
	"book-catalog-backend/internal/shared/middleware"
	"book-catalog-backend/internal/shared/response"
	"book-catalog-backend/pkg/logger"
)

// BookHandler xử lý HTTP requests cho book domain
type BookHandler struct {
	service book.Service
}

// NewBookHandler tạo handler instance
func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// CreateBook - POST /createbooks
// Body: {title, author, isbn, publication_date} → 201 + created book
func (h *BookHandler) CreateBook(c *gin.Context) {
	requester, ok := middleware.AccountFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), requester, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// ListBooks - GET /listbooks?page=N
// Response: {count, next, previous, results}
func (h *BookHandler) ListBooks(c *gin.Context) {
	requester, ok := middleware.AccountFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	result, err := h.service.List(c.Request.Context(), requester, page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// GetBook - GET /books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b)
}

// UpdateBook - PUT /books/:id (full update)
func (h *BookHandler) UpdateBook(c *gin.Context) {
	h.update(c, false)
}

// PatchBook - PATCH /books/:id (partial update)
func (h *BookHandler) PatchBook(c *gin.Context) {
	h.update(c, true)
}

func (h *BookHandler) update(c *gin.Context, partial bool) {
	requester, ok := middleware.AccountFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, ok := h.bookID(c)
	if !ok {
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), requester, id, req, partial)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// DeleteBook - DELETE /books/:id → 204; lần hai → 404
func (h *BookHandler) DeleteBook(c *gin.Context) {
	requester, ok := middleware.AccountFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, ok := h.bookID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), requester, id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// bookID parse path param, trả 404 cho id không phải số
// (id không tồn tại và id malformed đều là "not found" với caller)
func (h *BookHandler) bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, book.ErrBookNotFound.Error())
		return 0, false
	}
	return id, true
}

// handleError map domain errors thành HTTP responses
func (h *BookHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors

	switch {
	case errors.As(err, &vErrs):
		response.BadRequest(c, vErrs.Error())

	case errors.Is(err, account.ErrNoProfile):
		response.Forbidden(c, account.ErrNoProfile.Error())

	case errors.Is(err, book.ErrNotOwner):
		response.Forbidden(c, book.ErrNotOwner.Error())

	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, book.ErrBookNotFound.Error())

	case errors.Is(err, book.ErrInvalidPage):
		response.NotFound(c, "Invalid page")

	default:
		logger.Error("book operation failed", err)
		response.InternalServerError(c, "Internal server error")
	}
}
