package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"book-catalog-backend/internal/domains/account"
)

// fakeAccountService resolve đúng một token
type fakeAccountService struct {
	token string
	acc   *account.Account
}

func (f *fakeAccountService) Register(_ context.Context, _ account.RegisterRequest) (*account.TokenResponse, error) {
	return nil, nil
}

func (f *fakeAccountService) Authenticate(_ context.Context, token string) (*account.Account, error) {
	if token != f.token {
		return nil, account.ErrInvalidToken
	}
	return f.acc, nil
}

func setupAuthRouter(svc account.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(AuthMiddleware(svc))
	router.GET("/protected", func(c *gin.Context) {
		acc, ok := AccountFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": acc.Username})
	})
	return router
}

func getWithAuth(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	svc := &fakeAccountService{
		token: "deadbeef",
		acc:   &account.Account{ID: 1, Username: "alice"},
	}
	router := setupAuthRouter(svc)

	t.Run("valid bearer token passes", func(t *testing.T) {
		w := getWithAuth(router, "Bearer deadbeef")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username": "alice"}`, w.Body.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w := getWithAuth(router, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		w := getWithAuth(router, "Token deadbeef")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		w := getWithAuth(router, "Bearer")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		w := getWithAuth(router, "Bearer wrong")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAccountFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns false when not set", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, ok := AccountFromContext(c)
		assert.False(t, ok)
	})

	t.Run("returns false for wrong type", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(accountContextKey, "not-an-account")

		_, ok := AccountFromContext(c)
		assert.False(t, ok)
	})
}
