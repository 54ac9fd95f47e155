package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"book-catalog-backend/internal/domains/account"
	"book-catalog-backend/pkg/cache"
	"book-catalog-backend/pkg/logger"
)

const (
	// authCacheTTL - token không expire nhưng cached account thì có,
	// để account metadata không stale quá lâu
	authCacheTTL = 15 * time.Minute

	// tokenBytes = 20 → 40 hex chars
	tokenBytes = 20
)

// accountService implement account.Service
type accountService struct {
	repo  account.Repository
	cache cache.Cache
}

// NewAccountService tạo service instance
func NewAccountService(repo account.Repository, cache cache.Cache) account.Service {
	return &accountService{
		repo:  repo,
		cache: cache,
	}
}

// Register validate input rồi giao cho repository tạo account + profile +
// token atomically. Uniqueness được enforce bằng DB constraint, không
// check-then-create ở application layer.
func (s *accountService) Register(ctx context.Context, req account.RegisterRequest) (*account.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	candidate, err := generateSecureToken(tokenBytes)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	token, err := s.repo.Register(ctx, req.Username, req.Email, candidate)
	if err != nil {
		return nil, err
	}

	return &account.TokenResponse{Token: token}, nil
}

// Authenticate resolve token thành account với Redis cache-aside.
// Cache failure không critical - log và fall through xuống DB.
func (s *accountService) Authenticate(ctx context.Context, token string) (*account.Account, error) {
	if token == "" {
		return nil, account.ErrInvalidToken
	}

	cacheKey := authCacheKey(token)

	var cached account.Account
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Error("auth cache read failed", err)
	}
	if found {
		return &cached, nil
	}

	acc, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, acc, authCacheTTL); err != nil {
		logger.Error("auth cache write failed", err)
	}

	return acc, nil
}

func authCacheKey(token string) string {
	return "auth:token:" + token
}

// generateSecureToken tạo random hex string (n bytes → 2n chars)
func generateSecureToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
