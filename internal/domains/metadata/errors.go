package metadata

import "errors"

var (
	// ErrMissingISBN - query param absent hoặc empty
	ErrMissingISBN = errors.New("isbn parameter is required")

	// ErrLookupFailed - network hoặc HTTP-level failure từ upstream
	// (đã log, converted - không retry)
	ErrLookupFailed = errors.New("book lookup failed")

	// ErrNotFound - upstream trả payload rỗng / không parse được
	ErrNotFound = errors.New("book details not found")
)
