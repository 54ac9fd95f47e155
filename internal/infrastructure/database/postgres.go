package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"book-catalog-backend/internal/migrations"
)

// DBConfig chứa tất cả các thông tin cấu hình để kết nối PostgreSQL
type DBConfig struct {
	// Thông tin kết nối cơ bản
	Host     string
	Port     int
	Username string
	Password string
	DBName   string
	SSLMode  string

	// Connection pool configuration
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	// Retry configuration
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// PostgresDB là wrapper quản lý connection pool và lifecycle của database
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

// NewPostgresDB tạo instance mới của PostgresDB
func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{
		Config: config,
		Pool:   nil, // Pool sẽ được set khi Connect() được gọi
	}
}

// buildConnectionString tạo DSN string theo định dạng PostgreSQL
func (db *PostgresDB) buildConnectionString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		db.Config.Username,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.DBName,
		db.Config.SSLMode,
	)
}

// configurePool tạo và cấu hình connection pool config
func (db *PostgresDB) configurePool(ctx context.Context) (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.buildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

// connectWithRetry thực hiện retry logic với exponential backoff
func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var lastErr error

	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		log.Printf("[DATABASE] Connection attempt %d/%d", attempt, db.Config.MaxRetries)

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, lastErr = pgxpool.NewWithConfig(connectCtx, config)
		cancel()

		if lastErr == nil {
			// Verify bằng ping
			if err := pool.Ping(ctx); err != nil {
				pool.Close()
				lastErr = err
				log.Printf("[DATABASE] Ping failed: %v", err)
			} else {
				log.Printf("[DATABASE] Successfully connected on attempt %d", attempt)
				return pool, nil
			}
		}

		log.Printf("[DATABASE] Attempt %d failed: %v", attempt, lastErr)

		if attempt < db.Config.MaxRetries {
			// Exponential backoff: delay = base_delay * 2^(attempt-1)
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))

			log.Printf("[DATABASE] Retrying in %v...", delay)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w",
		db.Config.MaxRetries, lastErr)
}

// Connect là entry point chính để establish database connection
func (db *PostgresDB) Connect(ctx context.Context) error {
	log.Println("[DATABASE] Initializing PostgreSQL connection...")

	config, err := db.configurePool(ctx)
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Pool = pool

	log.Println("[DATABASE] PostgreSQL connection established successfully")
	return nil
}

// Migrate chạy goose migrations từ embedded FS
// Goose cần *sql.DB nên mở một connection riêng qua pgx stdlib driver,
// đóng ngay sau khi migrate xong
func (db *PostgresDB) Migrate(ctx context.Context) error {
	log.Println("[DATABASE] Running migrations...")

	sqlDB, err := sql.Open("pgx", db.buildConnectionString())
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	log.Println("[DATABASE] Migrations up to date")
	return nil
}

// HealthCheck verify database connectivity và availability
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	stats := db.Pool.Stat()
	if stats.TotalConns() == 0 {
		return fmt.Errorf("no active database connections")
	}

	return nil
}

// Close đóng connection pool
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
		log.Println("[DATABASE] Connection pool closed")
	}
}
