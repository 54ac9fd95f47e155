package book

import "context"

// Repository định nghĩa contract cho data access layer
type Repository interface {
	// Create persist book mới, gán ID + timestamps vào entity
	Create(ctx context.Context, b *Book) error

	// FindByID tìm book theo ID
	// Returns: ErrBookNotFound nếu không tồn tại
	FindByID(ctx context.Context, id int64) (*Book, error)

	// List trả về một trang books theo stable order (id tăng dần) kèm
	// total count. ownerProfileID != nil → chỉ books của profile đó
	List(ctx context.Context, ownerProfileID *int64, limit, offset int) ([]Book, int, error)

	// Update ghi đè toàn bộ mutable fields
	// Returns: ErrBookNotFound nếu book không tồn tại
	Update(ctx context.Context, b *Book) error

	// Delete xóa book
	// Returns: ErrBookNotFound nếu đã absent (idempotent failure)
	Delete(ctx context.Context, id int64) error
}
