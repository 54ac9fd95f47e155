package service

import (
	"context"
	"fmt"
	"time"

	"book-catalog-backend/internal/domains/account"
	"book-catalog-backend/internal/domains/book"
	"book-catalog-backend/pkg/cache"
	"book-catalog-backend/pkg/logger"
)

// detailCacheTTL - book detail cache; invalidated khi mutate
const detailCacheTTL = 5 * time.Minute

// listBasePath dùng cho next/previous page markers
const listBasePath = "/listbooks"

// bookService implement book.Service
type bookService struct {
	repo     book.Repository
	cache    cache.Cache
	pageSize int
	scope    book.ListScope
}

// NewBookService tạo service instance.
// pageSize và scope đến từ config (fixed page size, list-scope policy)
func NewBookService(repo book.Repository, cache cache.Cache, pageSize int, scope book.ListScope) book.Service {
	return &bookService{
		repo:     repo,
		cache:    cache,
		pageSize: pageSize,
		scope:    scope,
	}
}

// Create resolve requester's profile, stamp owner, validate rồi persist
func (s *bookService) Create(ctx context.Context, requester *account.Account, req book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !requester.HasProfile() {
		return nil, account.ErrNoProfile
	}

	b, err := req.ToBook(*requester.ProfileID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return b, nil
}

// List trả về một trang theo fixed page size và list-scope policy
func (s *bookService) List(ctx context.Context, requester *account.Account, page int) (*book.Page, error) {
	if page < 1 {
		page = 1
	}

	ownerFilter := s.scope.OwnerFilter(requester.ProfileID)
	offset := (page - 1) * s.pageSize

	books, total, err := s.repo.List(ctx, ownerFilter, s.pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	if page > book.TotalPages(total, s.pageSize) {
		return nil, book.ErrInvalidPage
	}

	return book.NewPage(books, total, page, s.pageSize, listBasePath), nil
}

// Get đọc một book với cache-aside; cache failure không critical
func (s *bookService) Get(ctx context.Context, id int64) (*book.Book, error) {
	cacheKey := detailCacheKey(id)

	var cached book.Book
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Error("book cache read failed", err)
	}
	if found {
		return &cached, nil
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, b, detailCacheTTL); err != nil {
		logger.Error("book cache write failed", err)
	}

	return b, nil
}

// Update enforce ownership policy rồi merge các field có mặt
func (s *bookService) Update(ctx context.Context, requester *account.Account, id int64, req book.UpdateBookRequest, partial bool) (*book.Book, error) {
	if err := req.Validate(partial); err != nil {
		return nil, err
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !book.Authorize(book.ActionUpdate, requester.ProfileID, b) {
		return nil, book.ErrNotOwner
	}

	if err := req.ApplyTo(b); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.invalidateDetail(ctx, id)

	return b, nil
}

// Delete enforce ownership policy; xóa lần hai trả ErrBookNotFound
func (s *bookService) Delete(ctx context.Context, requester *account.Account, id int64) error {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !book.Authorize(book.ActionDelete, requester.ProfileID, b) {
		return book.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateDetail(ctx, id)

	return nil
}

func (s *bookService) invalidateDetail(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, detailCacheKey(id)); err != nil {
		logger.Error("book cache invalidation failed", err)
	}
}

func detailCacheKey(id int64) string {
	return fmt.Sprintf("book:detail:%d", id)
}
