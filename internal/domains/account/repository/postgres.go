package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-catalog-backend/internal/domains/account"
	"book-catalog-backend/pkg/database"
)

// postgresRepository là concrete implementation của account.Repository
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository tạo repository instance
func NewPostgresRepository(pool *pgxpool.Pool) account.Repository {
	return &postgresRepository{pool: pool}
}

// uniqueViolation là PostgreSQL error code cho unique constraint
const uniqueViolation = "23505"

// mapConstraintError convert pg unique violations thành domain errors
// Constraint names từ migration 00001_create_accounts.sql
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch {
		case strings.Contains(pgErr.ConstraintName, "username"):
			return account.ErrUsernameTaken
		case strings.Contains(pgErr.ConstraintName, "email"):
			return account.ErrEmailTaken
		}
	}
	return err
}

// Register tạo account, profile và token trong một transaction duy nhất.
// Token insert dùng ON CONFLICT DO NOTHING + reselect: nếu account đã có
// token thì candidate bị bỏ qua và token cũ được trả về (get-or-create).
func (r *postgresRepository) Register(ctx context.Context, username, email, candidateToken string) (string, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (string, error) {
		var accountID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO accounts (username, email)
			VALUES ($1, $2)
			RETURNING id
		`, username, email).Scan(&accountID)
		if err != nil {
			return "", mapConstraintError(err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO profiles (account_id)
			VALUES ($1)
		`, accountID)
		if err != nil {
			return "", fmt.Errorf("create profile: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO auth_tokens (token, account_id)
			VALUES ($1, $2)
			ON CONFLICT (account_id) DO NOTHING
		`, candidateToken, accountID)
		if err != nil {
			return "", fmt.Errorf("create token: %w", err)
		}

		var token string
		err = tx.QueryRow(ctx, `
			SELECT token FROM auth_tokens WHERE account_id = $1
		`, accountID).Scan(&token)
		if err != nil {
			return "", fmt.Errorf("fetch token: %w", err)
		}

		return token, nil
	})
}

// FindByToken resolve bearer token thành account, kèm profile id qua LEFT JOIN
func (r *postgresRepository) FindByToken(ctx context.Context, token string) (*account.Account, error) {
	query := `
		SELECT a.id, a.username, a.email, a.created_at, a.updated_at, p.id
		FROM auth_tokens t
		JOIN accounts a ON a.id = t.account_id
		LEFT JOIN profiles p ON p.account_id = a.id
		WHERE t.token = $1
	`

	var acc account.Account
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&acc.ID,
		&acc.Username,
		&acc.Email,
		&acc.CreatedAt,
		&acc.UpdatedAt,
		&acc.ProfileID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrInvalidToken
		}
		return nil, fmt.Errorf("find account by token: %w", err)
	}

	return &acc, nil
}

// FindByID tìm account theo ID
func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*account.Account, error) {
	query := `
		SELECT a.id, a.username, a.email, a.created_at, a.updated_at, p.id
		FROM accounts a
		LEFT JOIN profiles p ON p.account_id = a.id
		WHERE a.id = $1
	`

	var acc account.Account
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&acc.ID,
		&acc.Username,
		&acc.Email,
		&acc.CreatedAt,
		&acc.UpdatedAt,
		&acc.ProfileID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}

	return &acc, nil
}
