package account

import "context"

// Service định nghĩa business logic layer contract
type Service interface {
	// Register validate input, tạo account + profile, issue token.
	// Token issuance là get-or-create - gọi lại cho account đã có token
	// trả về đúng token cũ.
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)

	// Authenticate resolve opaque bearer token thành account
	// Returns: ErrInvalidToken nếu token không hợp lệ
	Authenticate(ctx context.Context, token string) (*Account, error)
}
