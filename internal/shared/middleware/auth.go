package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"book-catalog-backend/internal/domains/account"
	"book-catalog-backend/internal/shared/response"
)

// accountContextKey - resolved account được stash vào gin context dưới key này
const accountContextKey = "account"

// AuthMiddleware xác thực opaque bearer token.
// Token được resolve thành account qua account.Service (DB + cache);
// absence hoặc invalid → 401, request bị abort
func AuthMiddleware(accounts account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// 2. Extract token từ "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// 3. Resolve token thành account
		acc, err := accounts.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		// 4. Stash account vào context cho handlers
		c.Set(accountContextKey, acc)

		c.Next()
	}
}

// AccountFromContext lấy authenticated account mà AuthMiddleware đã set
func AccountFromContext(c *gin.Context) (*account.Account, bool) {
	value, exists := c.Get(accountContextKey)
	if !exists {
		return nil, false
	}

	acc, ok := value.(*account.Account)
	if !ok {
		return nil, false
	}

	return acc, true
}
