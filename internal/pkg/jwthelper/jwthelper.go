package jwthelper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken      = errors.New("invalid session token")
	ErrUserAgentMismatch = errors.New("session token was issued to a different user agent")
)

// SessionClaims bind a session ID to the user agent it was issued to.
type SessionClaims struct {
	jwt.RegisteredClaims
	SID       string `json:"sid"`
	UserAgent string `json:"user_agent"`
}

func GenerateToken(signingKey []byte, sid, userAgent string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		SID:       sid,
		UserAgent: userAgent,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("token.SignedString -> %w", err)
	}

	return signed, nil
}

// ParseToken validates the signature, expiry and user-agent binding and
// returns the embedded session ID.
func ParseToken(signingKey []byte, tokenString, userAgent string) (string, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return signingKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("jwt.ParseWithClaims -> %w", err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.UserAgent != userAgent {
		return "", ErrUserAgentMismatch
	}

	return claims.SID, nil
}
