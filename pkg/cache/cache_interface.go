package cache

import (
	"context"
	"time"
)

// Cache là contract chung cho cache layer. Services chỉ thấy interface
// này; Redis implementation sống ở internal/infrastructure/cache,
// tests dùng in-memory fake
type Cache interface {
	// Get đọc key và unmarshal vào dest.
	// Miss trả về (false, nil) và không đụng tới dest - miss không phải error
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set ghi value với TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete xóa một hoặc nhiều keys; key không tồn tại không phải error
	Delete(ctx context.Context, keys ...string) error

	// Ping verify connection còn sống
	Ping(ctx context.Context) error
}
