package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"book-catalog-backend/internal/shared/response"
)

// Recovery chặn panic từ handler chain: log kèm request id rồi trả
// error body chuẩn của API thay vì drop connection
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("panic", r).
					Msg("panic recovered")

				response.Error(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
