package book

import (
	"context"

	"book-catalog-backend/internal/domains/account"
)

// Service định nghĩa business logic layer contract.
// Requester là account đã authenticate (middleware resolve từ token);
// ownership policy được enforce ở layer này
type Service interface {
	// Create stamp owner = requester's profile rồi persist
	// Returns: account.ErrNoProfile nếu requester chưa có profile
	Create(ctx context.Context, requester *account.Account, req CreateBookRequest) (*Book, error)

	// List trả về một trang books theo list-scope policy
	// Returns: ErrInvalidPage khi page vượt quá range
	List(ctx context.Context, requester *account.Account, page int) (*Page, error)

	// Get đọc một book (mọi authenticated requester)
	Get(ctx context.Context, id int64) (*Book, error)

	// Update yêu cầu ownership (ErrNotOwner nếu không phải owner)
	Update(ctx context.Context, requester *account.Account, id int64, req UpdateBookRequest, partial bool) (*Book, error)

	// Delete yêu cầu ownership; gọi lần hai → ErrBookNotFound
	Delete(ctx context.Context, requester *account.Account, id int64) error
}
