package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/integration/adapters"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthenticate(t *testing.T) {
	tokens := adapters.NewTokenService("secret")
	userID := uuid.New()
	valid, err := tokens.GenerateAccessToken(context.Background(), userID, true, time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", NewAuthMiddleware(tokens).Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "admin": GetIsAdminFromContext(c)})
	})

	cases := map[string]struct {
		header string
		status int
	}{
		"missing":      {"", http.StatusUnauthorized},
		"not bearer":   {"Basic abc", http.StatusUnauthorized},
		"empty bearer": {"Bearer ", http.StatusUnauthorized},
		"invalid":      {"Bearer nope", http.StatusUnauthorized},
		"valid":        {"Bearer " + valid, http.StatusOK},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.JSONEq(t, `{"id":"`+userID.String()+`","admin":true}`, w.Body.String())
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiterWithConfig(true, 2, time.Minute)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.POST("/w", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	hit := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/w", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, hit())
	assert.Equal(t, http.StatusCreated, hit())
	assert.Equal(t, http.StatusTooManyRequests, hit())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusCreated, hit())

	rl.Cleanup()
	assert.Len(t, rl.entries, 1)
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiterWithConfig(false, 1, time.Minute)
	r := gin.New()
	r.POST("/w", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/w", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
	}
}
