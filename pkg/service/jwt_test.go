package service

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gearguard/pkg/errors"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	team := uint64(3)

	token, err := svc.GenerateToken(TokenSubject{UserID: 7, Email: "tech@plant.io", Role: "Technician", Name: "Tech One", TeamID: &team})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, "tech@plant.io", claims.Subject)
	assert.Equal(t, "Technician", claims.Role)
	assert.Equal(t, "Tech One", claims.Name)
	require.NotNil(t, claims.TeamID)
	assert.Equal(t, team, *claims.TeamID)
}

func TestValidateToken_Expired(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	svc := &jwtService{SecretKey: "secret", AccessTokenExp: time.Hour, now: func() time.Time { return issued }}
	token, err := svc.GenerateToken(TokenSubject{UserID: 1, Email: "a@b.io"})
	require.NoError(t, err)

	_, err = NewJWTService("secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret", time.Hour).GenerateToken(TokenSubject{UserID: 1, Email: "a@b.io"})
	require.NoError(t, err)

	_, err = NewJWTService("other", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_RejectsNonHMAC(t *testing.T) {
	claims := &JwtCustomClaim{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTService("secret", time.Hour).ValidateToken(unsigned)
	assert.Error(t, err)
}
