package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"book-catalog-backend/internal/config"
	infraCache "book-catalog-backend/internal/infrastructure/cache"
	"book-catalog-backend/internal/infrastructure/database"
	"book-catalog-backend/pkg/cache"

	"book-catalog-backend/internal/domains/account"
	accountHandler "book-catalog-backend/internal/domains/account/handler"
	accountRepo "book-catalog-backend/internal/domains/account/repository"
	accountService "book-catalog-backend/internal/domains/account/service"

	"book-catalog-backend/internal/domains/book"
	bookHandler "book-catalog-backend/internal/domains/book/handler"
	bookRepo "book-catalog-backend/internal/domains/book/repository"
	bookService "book-catalog-backend/internal/domains/book/service"

	"book-catalog-backend/internal/domains/metadata"
	metadataGateway "book-catalog-backend/internal/domains/metadata/gateway/openlibrary"
	metadataHandler "book-catalog-backend/internal/domains/metadata/handler"
	metadataService "book-catalog-backend/internal/domains/metadata/service"
)

// Container chứa TẤT CẢ dependencies của application
// Pattern: Service Locator + Dependency Injection
type Container struct {
	// Infrastructure layer - singleton, shared across domains
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	// Repository layer (data access)
	AccountRepo account.Repository
	BookRepo    book.Repository

	// Service layer (business logic)
	AccountService account.Service
	BookService    book.Service
	LookupService  metadata.Service

	// Handler layer (HTTP)
	AccountHandler  *accountHandler.AccountHandler
	BookHandler     *bookHandler.BookHandler
	MetadataHandler *metadataHandler.MetadataHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph.
// Thứ tự initialization: Config → Infrastructure → Repositories →
// Services → Handlers. Sai thứ tự → nil pointer dereference
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure không critical - log warning và continue
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}

	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.AccountRepo = accountRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)

	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.AccountService = accountService.NewAccountService(c.AccountRepo, c.Cache)
	c.BookService = bookService.NewBookService(
		c.BookRepo,
		c.Cache,
		cfg.Pagination.PageSize,
		book.ListScope(cfg.BookList.Scope),
	)

	lookupGateway, err := metadataGateway.NewClient(&metadataGateway.Config{
		BaseURL: cfg.OpenLibrary.BaseURL,
		Timeout: cfg.OpenLibrary.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init lookup gateway: %w", err)
	}
	c.LookupService = metadataService.NewMetadataService(lookupGateway)

	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.AccountHandler = accountHandler.NewAccountHandler(c.AccountService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.MetadataHandler = metadataHandler.NewMetadataHandler(c.LookupService)

	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup đóng các infrastructure connections khi shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Redis close failed: %v", err)
		}
	}
}
