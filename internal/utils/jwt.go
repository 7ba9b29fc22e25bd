package utils

import (
	"time" // Token lifetimes

	"github.com/golang-jwt/jwt/v5" // JWT library
)

const sessionTTL = 24 * time.Hour // Login tokens last a day, then clients re-authenticate

// SessionClaims is the payload carried by a login token
type SessionClaims struct {
	UserID               uint `json:"user_id"` // Account the session belongs to
	jwt.RegisteredClaims      // Standard expiry/issued-at claims
}

// GenerateJWT signs a session token for the given account
func GenerateJWT(userID uint, secret string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)), // Expiry window
			IssuedAt:  jwt.NewNumericDate(now),                 // Issued now
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseJWT validates a bearer token and returns its claims. Only HS256 is
// accepted; a token declaring any other algorithm fails outright.
func ParseJWT(tokenStr, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil // Shared signing secret
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
