package jwt

import (
	"errors"
	"time"

	"cohort-tools-be/internal/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity fields embedded in a token. JSON keys match the
// payload shape the frontend already consumes.
type Claims struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey []byte
	ttl       time.Duration
}

// NewJWTService creates a new JWT service. An empty secret is a configuration
// error: tokens signed with a guessable key are worthless.
func NewJWTService(secretKey string, ttl time.Duration) (*JWTService, error) {
	if secretKey == "" {
		return nil, errors.New("token secret is not configured")
	}
	return &JWTService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}, nil
}

// GenerateToken signs a token carrying the user's identity claims.
func (s *JWTService) GenerateToken(id, email, name string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:    id,
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// VerifyToken checks signature and expiry and returns the embedded claims.
func (s *JWTService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}
