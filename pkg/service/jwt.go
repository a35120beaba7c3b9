package service

import (
	"errors"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	apperrors "gearguard/pkg/errors"
)

// JwtCustomClaim is the bearer token payload. Subject holds the user's email.
type JwtCustomClaim struct {
	UserID uint64  `json:"id"`
	Role   string  `json:"role"`
	Name   string  `json:"name"`
	TeamID *uint64 `json:"team_id"`
	jwt.RegisteredClaims
}

type TokenSubject struct {
	UserID uint64
	Email  string
	Role   string
	Name   string
	TeamID *uint64
}

type JWTService interface {
	GenerateToken(subject TokenSubject) (string, error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
	GetAccessTokenTTL() time.Duration
}

type jwtService struct {
	SecretKey      string
	AccessTokenExp time.Duration
	now            func() time.Time
}

func NewJWTService(secretKey string, accessTokenExp time.Duration) JWTService {
	return &jwtService{SecretKey: secretKey, AccessTokenExp: accessTokenExp, now: time.Now}
}

func (s *jwtService) GenerateToken(subject TokenSubject) (string, error) {
	now := s.now()
	claims := &JwtCustomClaim{
		UserID: subject.UserID,
		Role:   subject.Role,
		Name:   subject.Name,
		TeamID: subject.TeamID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.Email,
			ID:        strconv.FormatUint(subject.UserID, 10) + "-" + strconv.FormatInt(now.UnixNano(), 36),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.AccessTokenExp)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(s.SecretKey))
}

func (s *jwtService) GetAccessTokenTTL() time.Duration {
	return s.AccessTokenExp
}

// ValidateToken checks signature and expiry. No server-side session is consulted.
func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return []byte(s.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, apperrors.ErrTokenExpired
		case errors.Is(err, apperrors.ErrInvalidSigningMethod):
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
