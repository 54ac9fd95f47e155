package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-catalog-backend/internal/domains/book"
)

// postgresRepository - Raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) error {
	query := `
		INSERT INTO books (title, author, isbn, publication_date, profile_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.Title,
		b.Author,
		b.ISBN,
		b.PublicationDate.Time,
		b.ProfileID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*book.Book, error) {
	query := `
		SELECT id, title, author, isbn, publication_date, profile_id, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var b book.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.ISBN,
		&b.PublicationDate,
		&b.ProfileID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book by id: %w", err)
	}

	return &b, nil
}

// List - stable order theo id; ownerProfileID = nil trả về tất cả
func (r *postgresRepository) List(ctx context.Context, ownerProfileID *int64, limit, offset int) ([]book.Book, int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM books
		WHERE $1::bigint IS NULL OR profile_id = $1
	`, ownerProfileID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, title, author, isbn, publication_date, profile_id, created_at, updated_at
		FROM books
		WHERE $1::bigint IS NULL OR profile_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`, ownerProfileID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0, limit)
	for rows.Next() {
		var b book.Book
		err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Author,
			&b.ISBN,
			&b.PublicationDate,
			&b.ProfileID,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return books, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	query := `
		UPDATE books
		SET title = $1, author = $2, isbn = $3, publication_date = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.Title,
		b.Author,
		b.ISBN,
		b.PublicationDate.Time,
		b.ID,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return book.ErrBookNotFound
		}
		return fmt.Errorf("update book: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}
