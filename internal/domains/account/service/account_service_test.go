package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog-backend/internal/domains/account"
)

// fakeRepo ghi lại các call để assert, trả về canned responses
type fakeRepo struct {
	registerToken string
	registerErr   error

	lastUsername  string
	lastEmail     string
	lastCandidate string

	accountsByToken map[string]*account.Account
	findByTokenCall int
}

func (f *fakeRepo) Register(_ context.Context, username, email, candidateToken string) (string, error) {
	f.lastUsername = username
	f.lastEmail = email
	f.lastCandidate = candidateToken

	if f.registerErr != nil {
		return "", f.registerErr
	}
	if f.registerToken != "" {
		return f.registerToken, nil
	}
	return candidateToken, nil
}

func (f *fakeRepo) FindByToken(_ context.Context, token string) (*account.Account, error) {
	f.findByTokenCall++

	acc, ok := f.accountsByToken[token]
	if !ok {
		return nil, account.ErrInvalidToken
	}
	return acc, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*account.Account, error) {
	return nil, account.ErrAccountNotFound
}

// memoryCache là in-memory Cache cho tests (JSON round-trip như Redis impl)
type memoryCache struct {
	entries map[string][]byte
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}

	data, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func (m *memoryCache) Ping(_ context.Context) error {
	return nil
}

func TestRegister(t *testing.T) {
	t.Run("issues 40-char hex token", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewAccountService(repo, newMemoryCache())

		resp, err := svc.Register(context.Background(), account.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
		})
		require.NoError(t, err)

		assert.Len(t, resp.Token, 40)
		assert.Regexp(t, "^[0-9a-f]{40}$", resp.Token)
		assert.Equal(t, "alice", repo.lastUsername)
		assert.Equal(t, "alice@example.com", repo.lastEmail)
		assert.Equal(t, resp.Token, repo.lastCandidate)
	})

	t.Run("returns existing token for repeat registration", func(t *testing.T) {
		repo := &fakeRepo{registerToken: "deadbeef"}
		svc := NewAccountService(repo, newMemoryCache())

		resp, err := svc.Register(context.Background(), account.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
		})
		require.NoError(t, err)

		// Repository giữ token cũ, candidate bị bỏ qua
		assert.Equal(t, "deadbeef", resp.Token)
	})

	t.Run("rejects invalid input before hitting repository", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewAccountService(repo, newMemoryCache())

		_, err := svc.Register(context.Background(), account.RegisterRequest{
			Username: "alice",
			Email:    "not-an-email",
		})

		assert.Error(t, err)
		assert.Empty(t, repo.lastUsername)
	})

	t.Run("propagates conflict errors", func(t *testing.T) {
		repo := &fakeRepo{registerErr: account.ErrUsernameTaken}
		svc := NewAccountService(repo, newMemoryCache())

		_, err := svc.Register(context.Background(), account.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
		})

		assert.ErrorIs(t, err, account.ErrUsernameTaken)
	})
}

func TestAuthenticate(t *testing.T) {
	profileID := int64(3)
	acc := &account.Account{ID: 1, Username: "alice", ProfileID: &profileID}

	t.Run("resolves token via repository and caches result", func(t *testing.T) {
		repo := &fakeRepo{accountsByToken: map[string]*account.Account{"tok": acc}}
		cache := newMemoryCache()
		svc := NewAccountService(repo, cache)

		got, err := svc.Authenticate(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, 1, repo.findByTokenCall)

		// Lần hai phải hit cache, không gọi repo
		got, err = svc.Authenticate(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		require.NotNil(t, got.ProfileID)
		assert.Equal(t, int64(3), *got.ProfileID)
		assert.Equal(t, 1, repo.findByTokenCall)
	})

	t.Run("rejects empty token without hitting repository", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewAccountService(repo, newMemoryCache())

		_, err := svc.Authenticate(context.Background(), "")

		assert.ErrorIs(t, err, account.ErrInvalidToken)
		assert.Zero(t, repo.findByTokenCall)
	})

	t.Run("unknown token returns invalid token", func(t *testing.T) {
		repo := &fakeRepo{accountsByToken: map[string]*account.Account{}}
		svc := NewAccountService(repo, newMemoryCache())

		_, err := svc.Authenticate(context.Background(), "unknown")

		assert.ErrorIs(t, err, account.ErrInvalidToken)
	})

	t.Run("cache failure falls through to repository", func(t *testing.T) {
		repo := &fakeRepo{accountsByToken: map[string]*account.Account{"tok": acc}}
		cache := newMemoryCache()
		cache.getErr = errors.New("redis down")
		svc := NewAccountService(repo, cache)

		got, err := svc.Authenticate(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, 1, repo.findByTokenCall)
	})
}

func TestGenerateSecureToken(t *testing.T) {
	first, err := generateSecureToken(tokenBytes)
	require.NoError(t, err)
	second, err := generateSecureToken(tokenBytes)
	require.NoError(t, err)

	assert.Len(t, first, 40)
	assert.NotEqual(t, first, second)
}
