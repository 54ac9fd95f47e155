package metadata

import "context"

// UpstreamBook là raw record từ lookup service, trước khi reshape
type UpstreamBook struct {
	Title       string           `json:"title"`
	Authors     []UpstreamAuthor `json:"authors"`
	PublishDate string           `json:"publish_date"`
}

type UpstreamAuthor struct {
	Name string `json:"name"`
}

// Gateway định nghĩa contract cho external lookup service
type Gateway interface {
	// FetchByISBN thực hiện MỘT request (no retry) tới upstream
	FetchByISBN(ctx context.Context, isbn string) (*UpstreamBook, error)
}
