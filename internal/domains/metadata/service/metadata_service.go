package service

import (
	"context"

	"book-catalog-backend/internal/domains/metadata"
	"book-catalog-backend/pkg/logger"
)

// metadataService implement metadata.Service
type metadataService struct {
	gateway metadata.Gateway
}

// NewMetadataService tạo service instance
func NewMetadataService(gateway metadata.Gateway) metadata.Service {
	return &metadataService{gateway: gateway}
}

// Lookup gọi external service rồi reshape response:
// title + first author name (empty nếu absent) + publish date, verbatim.
// Gateway failure được log và convert thành ErrLookupFailed - không retry
func (s *metadataService) Lookup(ctx context.Context, isbn string) (*metadata.BookMetadata, error) {
	if isbn == "" {
		return nil, metadata.ErrMissingISBN
	}

	upstream, err := s.gateway.FetchByISBN(ctx, isbn)
	if err != nil {
		logger.Error("book metadata lookup failed", err)
		return nil, metadata.ErrLookupFailed
	}

	author := ""
	if len(upstream.Authors) > 0 {
		author = upstream.Authors[0].Name
	}

	result := &metadata.BookMetadata{
		Title:           upstream.Title,
		Author:          author,
		PublicationDate: upstream.PublishDate,
	}

	// Payload parse được nhưng rỗng → not found
	if result.Title == "" && result.Author == "" && result.PublicationDate == "" {
		return nil, metadata.ErrNotFound
	}

	return result, nil
}
