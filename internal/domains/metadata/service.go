package metadata

import "context"

// Service định nghĩa business logic layer contract
type Service interface {
	// Lookup fetch metadata theo ISBN từ external service và reshape
	// Returns: ErrMissingISBN / ErrLookupFailed / ErrNotFound
	Lookup(ctx context.Context, isbn string) (*BookMetadata, error)
}
