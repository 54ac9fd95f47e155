package service

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog-backend/internal/domains/account"
	"book-catalog-backend/internal/domains/book"
)

// fakeRepo là in-memory book.Repository cho tests
type fakeRepo struct {
	books  map[int64]book.Book
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{books: make(map[int64]book.Book), nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, b *book.Book) error {
	b.ID = f.nextID
	f.nextID++
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.books[b.ID] = *b
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return &b, nil
}

func (f *fakeRepo) List(_ context.Context, ownerProfileID *int64, limit, offset int) ([]book.Book, int, error) {
	var all []book.Book
	for _, b := range f.books {
		if ownerProfileID != nil && b.ProfileID != *ownerProfileID {
			continue
		}
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := len(all)
	if offset >= total {
		return []book.Book{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (f *fakeRepo) Update(_ context.Context, b *book.Book) error {
	if _, ok := f.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	b.UpdatedAt = time.Now()
	f.books[b.ID] = *b
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

// memoryCache là in-memory Cache cho tests
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
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

func accountWithProfile(id, profileID int64) *account.Account {
	return &account.Account{ID: id, Username: "user", ProfileID: &profileID}
}

func validCreateRequest() book.CreateBookRequest {
	return book.CreateBookRequest{
		Title:           "The Go Programming Language",
		Author:          "Alan Donovan",
		ISBN:            "978-0134190440",
		PublicationDate: "2015-10-26",
	}
}

func seedBooks(t *testing.T, repo *fakeRepo, profileID int64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		b, err := validCreateRequest().ToBook(profileID)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), b))
	}
}

func TestCreate(t *testing.T) {
	t.Run("stamps requester profile as owner", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewBookService(repo, newMemoryCache(), 10, book.ScopeAll)

		created, err := svc.Create(context.Background(), accountWithProfile(1, 7), validCreateRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(7), created.ProfileID)
		assert.NotZero(t, created.ID)
	})

	t.Run("rejects requester without profile", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewBookService(repo, newMemoryCache(), 10, book.ScopeAll)

		_, err := svc.Create(context.Background(), &account.Account{ID: 1}, validCreateRequest())

		assert.ErrorIs(t, err, account.ErrNoProfile)
		assert.Empty(t, repo.books)
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewBookService(repo, newMemoryCache(), 10, book.ScopeAll)

		req := validCreateRequest()
		req.Title = ""

		_, err := svc.Create(context.Background(), accountWithProfile(1, 7), req)

		assert.Error(t, err)
		assert.Empty(t, repo.books)
	})
}

func TestList(t *testing.T) {
	t.Run("pages with fixed page size", func(t *testing.T) {
		repo := newFakeRepo()
		seedBooks(t, repo, 7, 25)
		svc := NewBookService(repo, newMemoryCache(), 10, book.ScopeAll)

		page, err := svc.List(context.Background(), accountWithProfile(1, 7), 2)
		require.NoError(t, err)

		assert.Equal(t, 25, page.Count)
		assert.Len(t, page.Results, 10)
		require.NotNil(t, page.Next)
		assert.Equal(t, "/listbooks?page=3", *page.Next)
		require.NotNil(t, page.Previous)
		assert.Equal(t, "/listbooks?page=1", *page.Previous)
	})

	t.Run("page beyond range returns invalid page", func(t *testing.T) {
		repo := newFakeRepo()
		seedBooks(t, repo, 7, 5)
		svc := NewBookService(repo, newMemoryCache(), 10, book.ScopeAll)

		_, err := svc.List(context.Background(), accountWithProfile(1, 7), 2)

		assert.ErrorIs(t, err, book.ErrInvalidPage)
	})

	t.Run("empty collection serves page one", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewBookService(repo, newMemoryCache(), 10, book.ScopeAll)

		page, err := svc.List(context.Background(), accountWithProfile(1, 7), 1)
		require.NoError(t, err)

		assert.Equal(t, 0, page.Count)
		assert.Empty(t, page.Results)
		assert.Nil(t, page.Next)
		assert.Nil(t, page.Previous)
	})

	t.Run("scope all shows every owner's books", func(t *testing.T) {
		repo := newFakeRepo()
		seedBooks(t, repo, 7, 3)
		seedBooks(t, repo, 8, 2)
		svc := NewBookService(repo, newMemoryCache(), 10, book.ScopeAll)

		page, err := svc.List(context.Background(), accountWithProfile(1, 7), 1)
		require.NoError(t, err)

		assert.Equal(t, 5, page.Count)
	})

	t.Run("scope own filters by requester", func(t *testing.T) {
		repo := newFakeRepo()
		seedBooks(t, repo, 7, 3)
		seedBooks(t, repo, 8, 2)
		svc := NewBookService(repo, newMemoryCache(), 10, book.ScopeOwn)

		page, err := svc.List(context.Background(), accountWithProfile(1, 7), 1)
		require.NoError(t, err)

		assert.Equal(t, 3, page.Count)
		for _, b := range page.Results {
			assert.Equal(t, int64(7), b.ProfileID)
		}
	})
}

func TestGet(t *testing.T) {
	t.Run("returns book and caches detail", func(t *testing.T) {
		repo := newFakeRepo()
		seedBooks(t, repo, 7, 1)
		cache := newMemoryCache()
		svc := NewBookService(repo, cache, 10, book.ScopeAll)

		got, err := svc.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)

		// Repo mất record, nhưng cache vẫn serve
		delete(repo.books, 1)

		got, err = svc.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		svc := NewBookService(newFakeRepo(), newMemoryCache(), 10, book.ScopeAll)

		_, err := svc.Get(context.Background(), 99)

		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestUpdate(t *testing.T) {
	title := "Renamed"

	t.Run("owner can update", func(t *testing.T) {
		repo := newFakeRepo()
		seedBooks(t, repo, 7, 1)
		svc := NewBookService(repo, newMemoryCache(), 10, book.ScopeAll)

		updated, err := svc.Update(context.Background(), accountWithProfile(1, 7), 1, book.UpdateBookRequest{Title: &title}, true)
		require.NoError(t, err)

		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "Renamed", repo.books[1].Title)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		repo := newFakeRepo()
		seedBooks(t, repo, 7, 1)
		svc := NewBookService(repo, newMemoryCache(), 10, book.ScopeAll)

		_, err := svc.Update(context.Background(), accountWithProfile(2, 8), 1, book.UpdateBookRequest{Title: &title}, true)

		assert.ErrorIs(t, err, book.ErrNotOwner)
		assert.NotEqual(t, "Renamed", repo.books[1].Title)
	})

	t.Run("update invalidates cached detail", func(t *testing.T) {
		repo := newFakeRepo()
		seedBooks(t, repo, 7, 1)
		cache := newMemoryCache()
		svc := NewBookService(repo, cache, 10, book.ScopeAll)

		_, err := svc.Get(context.Background(), 1)
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), accountWithProfile(1, 7), 1, book.UpdateBookRequest{Title: &title}, true)
		require.NoError(t, err)

		got, err := svc.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		svc := NewBookService(newFakeRepo(), newMemoryCache(), 10, book.ScopeAll)

		_, err := svc.Update(context.Background(), accountWithProfile(1, 7), 99, book.UpdateBookRequest{Title: &title}, true)

		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestDelete(t *testing.T) {
	t.Run("owner can delete, second delete is not found", func(t *testing.T) {
		repo := newFakeRepo()
		seedBooks(t, repo, 7, 1)
		svc := NewBookService(repo, newMemoryCache(), 10, book.ScopeAll)
		owner := accountWithProfile(1, 7)

		require.NoError(t, svc.Delete(context.Background(), owner, 1))

		err := svc.Delete(context.Background(), owner, 1)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		repo := newFakeRepo()
		seedBooks(t, repo, 7, 1)
		svc := NewBookService(repo, newMemoryCache(), 10, book.ScopeAll)

		err := svc.Delete(context.Background(), accountWithProfile(2, 8), 1)

		assert.ErrorIs(t, err, book.ErrNotOwner)
		assert.Contains(t, repo.books, int64(1))
	})
}
