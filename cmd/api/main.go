package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"book-catalog-backend/pkg/logger"
)

func main() {
	// Load từ .env file (development/local)
	// Production sẽ dùng system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	// Tùy theo APP_ENV: development (debug logs) hoặc production (optimize)
	env := getEnv("APP_ENV", "development")
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Init(env)

	log.Printf("🌍 Environment: %s", env)

	// Delegate toàn bộ logic sang Serve()
	// Giữ main() gọn gàng, chỉ làm entry point
	Serve()
}

// getEnv lấy environment variable với fallback default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
