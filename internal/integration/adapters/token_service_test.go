package adapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/integration/adapters"
)

func TestTokenService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewTokenService("secret")
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(ctx, userID, true, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestTokenService_Rejects(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewTokenService("secret")

	other, err := adapters.NewTokenService("other").GenerateAccessToken(ctx, uuid.New(), false, time.Hour)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, adapters.CustomClaims{
		UserID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredToken, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	badSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, adapters.CustomClaims{UserID: "nope"})
	badSubjectToken, err := badSubject.SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret": other,
		"expired":      expiredToken,
		"bad user id":  badSubjectToken,
		"garbage":      "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(ctx, token)
			assert.Error(t, err)
		})
	}
}
