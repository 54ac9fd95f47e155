package book

import "errors"

var (
	// Not Found
	ErrBookNotFound = errors.New("book not found")
	ErrInvalidPage  = errors.New("invalid page")

	// Authorization
	ErrNotOwner = errors.New("you do not have permission to modify this book")
)
