package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App         AppConfig
	Redis       RedisConfig
	Pagination  PaginationConfig
	BookList    BookListConfig
	OpenLibrary OpenLibraryConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// PaginationConfig - fixed page size cho list endpoints
type PaginationConfig struct {
	PageSize int
}

// BookListConfig giữ list-scope policy: "all" trả về mọi book cho
// authenticated caller (reference behavior), "own" chỉ trả book của caller
type BookListConfig struct {
	Scope string
}

type OpenLibraryConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	lookupTimeout, err := time.ParseDuration(getEnv("OPENLIBRARY_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OPENLIBRARY_TIMEOUT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Book Catalog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Pagination: PaginationConfig{
			PageSize: getEnvInt("PAGE_SIZE", 10),
		},
		BookList: BookListConfig{
			Scope: getEnv("BOOK_LIST_SCOPE", "all"),
		},
		OpenLibrary: OpenLibraryConfig{
			BaseURL: getEnv("OPENLIBRARY_BASE_URL", "https://openlibrary.org"),
			Timeout: lookupTimeout,
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.Pagination.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be at least 1")
	}

	if c.BookList.Scope != "all" && c.BookList.Scope != "own" {
		return fmt.Errorf("BOOK_LIST_SCOPE must be \"all\" or \"own\", got %q", c.BookList.Scope)
	}

	if c.OpenLibrary.BaseURL == "" {
		return fmt.Errorf("OPENLIBRARY_BASE_URL must not be empty")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
