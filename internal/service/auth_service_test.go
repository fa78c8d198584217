package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindhealth/internal/model"
)

func TestAuthService_RoundTrip(t *testing.T) {
	svc := NewAuthService("secret")

	resp, err := svc.GenerateUserToken("u1", "u1@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.UserID)

	claims, err := svc.ValidateUserToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1@example.com", claims.Email)
}

func TestAuthService_RejectsForeignAndExpiredTokens(t *testing.T) {
	resp, err := NewAuthService("other").GenerateUserToken("u1", "")
	require.NoError(t, err)

	svc := NewAuthService("secret")
	_, err = svc.ValidateUserToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateUserToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &model.UserClaims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.ValidateUserToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, &model.UserClaims{})
	signed, err = anonymous.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.ValidateUserToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_RequiresUserID(t *testing.T) {
	_, err := NewAuthService("secret").GenerateUserToken("", "")
	assert.Error(t, err)
}
