package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-catalog-backend/internal/domains/account"
	"book-catalog-backend/internal/shared/response"
	"book-catalog-backend/pkg/logger"
)

// AccountHandler xử lý HTTP requests cho account domain
type AccountHandler struct {
	service account.Service
}

// NewAccountHandler tạo handler instance
func NewAccountHandler(service account.Service) *AccountHandler {
	return &AccountHandler{service: service}
}

// Register xử lý POST /user
// Body: {username, email} → 201 {token} hoặc 400 khi username/email đã tồn tại
func (h *AccountHandler) Register(c *gin.Context) {
	var req account.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tokenResp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, tokenResp)
}

// handleError map domain errors thành HTTP responses
func (h *AccountHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors

	switch {
	// 400 - conflict messages theo wire contract của API
	case errors.Is(err, account.ErrUsernameTaken):
		response.BadRequest(c, "Username already exists")

	case errors.Is(err, account.ErrEmailTaken):
		response.BadRequest(c, "Email already exists")

	// 400 - validation failure, expose field messages
	case errors.As(err, &vErrs):
		response.BadRequest(c, vErrs.Error())

	// 500 - log chi tiết, không expose internals
	default:
		logger.Error("register failed", err)
		response.InternalServerError(c, "Internal server error")
	}
}
