package account

import "context"

// Repository định nghĩa contract cho data access layer
type Repository interface {
	// Register tạo account + profile và get-or-create token, tất cả trong
	// MỘT transaction - caller thấy registration là atomic.
	// candidateToken chỉ được dùng nếu account chưa có token.
	// Returns: token đang gắn với account
	//          ErrUsernameTaken / ErrEmailTaken khi unique constraint vi phạm
	Register(ctx context.Context, username, email, candidateToken string) (string, error)

	// FindByToken resolve bearer token thành account (kèm profile id)
	// Returns: ErrInvalidToken nếu token không tồn tại
	FindByToken(ctx context.Context, token string) (*Account, error)

	// FindByID tìm account theo ID
	// Returns: ErrAccountNotFound nếu không tìm thấy
	FindByID(ctx context.Context, id int64) (*Account, error)
}
