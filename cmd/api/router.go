package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"book-catalog-backend/internal/shared/middleware"
	"book-catalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Health check
	router.GET("/health", healthCheckHandler(c))

	setupAccountRoutes(router, c)
	setupBookRoutes(router, c)
	setupMetadataRoutes(router, c)

	return router
}

// ========================================
// ACCOUNT ROUTES
// ========================================
func setupAccountRoutes(router *gin.Engine, c *container.Container) {
	// Registration - không cần auth, trả về bearer token
	router.POST("/user", c.AccountHandler.Register)
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(router *gin.Engine, c *container.Container) {
	books := router.Group("/")
	books.Use(middleware.AuthMiddleware(c.AccountService))
	{
		books.POST("/createbooks", c.BookHandler.CreateBook)
		books.GET("/listbooks", c.BookHandler.ListBooks)
		books.GET("/books/:id", c.BookHandler.GetBook)
		books.PUT("/books/:id", c.BookHandler.UpdateBook)
		books.PATCH("/books/:id", c.BookHandler.PatchBook)
		books.DELETE("/books/:id", c.BookHandler.DeleteBook)
	}
}

// ========================================
// METADATA ROUTES
// ========================================
func setupMetadataRoutes(router *gin.Engine, c *container.Container) {
	// Standalone lookup path - không phụ thuộc stores, không cần auth
	router.GET("/fetch", c.MetadataHandler.FetchBookDetails)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
