// Package auth verifies bearer tokens and issues them for local development.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"prio/internal/shared/config"
)

// Claims are the token claims carried by access tokens.
type Claims struct {
	UserID  uint   `json:"uid"`
	UserSID string `json:"usid"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies access tokens.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a TokenService from configuration.
func NewTokenService(cfg *config.JWTConfig) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured")
	}
	return &TokenService{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.AccessTokenTTL,
	}, nil
}

// Issue signs an access token for the given user.
func (s *TokenService) Issue(userID uint, userSID string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:  userID,
		UserSID: userSID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userSID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates an access token.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == 0 || claims.UserSID == "" {
		return nil, fmt.Errorf("token is missing user identity")
	}

	return claims, nil
}
